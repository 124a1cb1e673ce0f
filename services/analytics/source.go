package analytics

import (
	"context"
	"time"
)

// Window is the half-open interval [Start, End) every read is scoped to.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// OrderRow is the order summary shape analytics consumes.
type OrderRow struct {
	ID          string
	TotalAmount float64
	Status      string
	CreatedAt   time.Time
}

// OrderItemRow is a line item joined with the minimal product identity and
// the creation time of its order.
type OrderItemRow struct {
	OrderID      string
	ProductID    string
	ProductName  string
	Translations map[string]string
	Quantity     int
	UnitPrice    float64
	CreatedAt    time.Time
}

// DataSource is the record store behind the dashboard. Implementations must
// be safe for concurrent use: Aggregate calls every method at once.
type DataSource interface {
	Orders(ctx context.Context, w Window) ([]OrderRow, error)
	OrderItems(ctx context.Context, w Window) ([]OrderItemRow, error)
	NewCustomers(ctx context.Context, w Window) (int, error)
	BlogPosts(ctx context.Context, w Window) (int, error)
	ContactMessages(ctx context.Context, w Window) (int, error)
	DesignRequests(ctx context.Context, w Window) (int, error)
	CareerApplications(ctx context.Context, w Window) (int, error)
}
