package models

import "time"

// Granularity is the calendar unit a time selection is expressed in.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// TimeFilterValue is a calendar selection made on the analytics dashboard.
// Value is "YYYY-MM-DD" for day, "YYYY-MM" for month and "YYYY" for year.
type TimeFilterValue struct {
	Granularity Granularity `json:"granularity" form:"granularity" binding:"required,oneof=day month year" example:"month"`
	Value       string      `json:"value" form:"value" binding:"required" example:"2024-02"`
}

// Key identifies the selection in caches and logs.
func (t TimeFilterValue) Key() string {
	return string(t.Granularity) + ":" + t.Value
}

// TimeSeriesPoint is one bucket of the dense revenue trend.
type TimeSeriesPoint struct {
	Bucket  string  `json:"bucket" example:"05"`
	Orders  int     `json:"orders" example:"3"`
	Revenue float64 `json:"revenue" example:"249.90"`
}

// BestSellerRecord is a product ranked by quantity sold within the range.
type BestSellerRecord struct {
	ProductID    string            `json:"product_id"`
	Name         string            `json:"name"`
	Translations map[string]string `json:"translations,omitempty"` // locale -> localized product name
	Quantity     int               `json:"quantity"`
	Revenue      float64           `json:"revenue"`
}

// OrderBreakdown groups order counts by coarse status bucket.
// Completed + Processing + Cancelled <= Total: unclassified statuses only show up in Total and ByStatus.
type OrderBreakdown struct {
	Total      int               `json:"total"`
	Completed  int               `json:"completed"`
	Processing int               `json:"processing"`
	Cancelled  int               `json:"cancelled"`
	ByStatus   map[string]int    `json:"by_status"`
	Trend      []TimeSeriesPoint `json:"trend"`
}

// ContentCounts are the auxiliary CMS collections created within the range.
type ContentCounts struct {
	BlogPosts          int `json:"blog_posts"`
	ContactMessages    int `json:"contact_messages"`
	DesignRequests     int `json:"design_requests"`
	CareerApplications int `json:"career_applications"`
}

// AnalyticsSnapshot is the full, immutable aggregation of one resolved range.
type AnalyticsSnapshot struct {
	Range             TimeFilterValue    `json:"range"`
	Start             string             `json:"start" example:"2024-02-01T00:00:00Z"`
	End               string             `json:"end" example:"2024-03-01T00:00:00Z"`
	Label             string             `json:"label" example:"February 2024"`
	Orders            OrderBreakdown     `json:"orders"`
	Revenue           float64            `json:"revenue"`
	AverageOrderValue float64            `json:"average_order_value"`
	NewCustomers      int                `json:"new_customers"`
	BestSellers       []BestSellerRecord `json:"best_sellers"`
	Content           ContentCounts      `json:"content"`
	GeneratedAt       time.Time          `json:"generated_at"`
}

// NumberDiff is the signed change of a metric against its baseline.
type NumberDiff struct {
	Absolute float64 `json:"absolute"`
	Percent  float64 `json:"percent"`
}

// AnalyticsComparison pairs a primary snapshot with a comparison period.
type AnalyticsComparison struct {
	Primary           *AnalyticsSnapshot `json:"primary"`
	Comparison        *AnalyticsSnapshot `json:"comparison"`
	Revenue           NumberDiff         `json:"revenue"`
	Orders            NumberDiff         `json:"orders"`
	NewCustomers      NumberDiff         `json:"new_customers"`
	AverageOrderValue NumberDiff         `json:"average_order_value"`
	CompletedOrders   NumberDiff         `json:"completed_orders"`
}

// DashboardState is what an admin's dashboard currently shows.
type DashboardState struct {
	Selection  TimeFilterValue    `json:"selection"`
	Generation uint64             `json:"generation"`
	Snapshot   *AnalyticsSnapshot `json:"snapshot,omitempty"`
	Pending    *TimeFilterValue   `json:"pending,omitempty"`
}
