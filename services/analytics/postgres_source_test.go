package analytics

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Modeva-Ecommerce/modeva-analytics/models"
	"github.com/jackc/pgx/v5"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a fresh SQLite database in t.TempDir() with the analytics tables.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "analytics.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Order{}, &models.OrderItem{}, &models.User{},
		&models.BlogPost{}, &models.ContactMessage{}, &models.DesignRequest{}, &models.CareerApplication{},
	); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedSource(t *testing.T, db *gorm.DB) {
	t.Helper()
	orders := []models.Order{
		{ID: "o1", UserID: "u1", TotalAmount: 100, Status: "delivered", CreatedAt: ts("2024-02-05T10:00:00Z")},
		{ID: "o2", UserID: "u2", TotalAmount: 50, Status: "cancelled", CreatedAt: ts("2024-02-20T03:00:00Z")},
		{ID: "o0", UserID: "u1", TotalAmount: 999, Status: "delivered", CreatedAt: ts("2024-01-31T23:59:59Z")},
		{ID: "o3", UserID: "u3", TotalAmount: 75, Status: "pending", CreatedAt: ts("2024-03-01T00:00:00Z")},
	}
	if err := db.Create(&orders).Error; err != nil {
		t.Fatalf("create orders: %v", err)
	}
	items := []models.OrderItem{
		{ID: "i1", OrderID: "o1", ProductID: "p-coat", ProductName: "Wool Coat", ProductNameTranslations: datatypes.JSON(`{"fr":"Manteau en laine"}`), Price: 50, Quantity: 2},
		{ID: "i2", OrderID: "o2", ProductID: "p-shirt", ProductName: "Linen Shirt", Price: 25, Quantity: 2},
		{ID: "i0", OrderID: "o0", ProductID: "p-coat", ProductName: "Wool Coat", Price: 50, Quantity: 20},
	}
	if err := db.Create(&items).Error; err != nil {
		t.Fatalf("create items: %v", err)
	}
	users := []models.User{
		{Email: "a@example.com", Name: "A", CreatedAt: ts("2024-02-01T00:00:00Z")},
		{Email: "b@example.com", Name: "B", CreatedAt: ts("2024-02-29T23:59:59Z")},
		{Email: "c@example.com", Name: "C", CreatedAt: ts("2024-03-01T00:00:00Z")},
	}
	if err := db.Create(&users).Error; err != nil {
		t.Fatalf("create users: %v", err)
	}
	if err := db.Create(&[]models.BlogPost{
		{ID: "b1", Title: "Spring lookbook", CreatedAt: ts("2024-02-10T00:00:00Z")},
		{ID: "b2", Title: "Care guide", CreatedAt: ts("2024-01-10T00:00:00Z")},
	}).Error; err != nil {
		t.Fatalf("create blog posts: %v", err)
	}
	if err := db.Create(&[]models.ContactMessage{
		{ID: "c1", Email: "x@example.com", CreatedAt: ts("2024-02-11T00:00:00Z")},
		{ID: "c2", Email: "y@example.com", CreatedAt: ts("2024-02-12T00:00:00Z")},
	}).Error; err != nil {
		t.Fatalf("create contact messages: %v", err)
	}
	if err := db.Create(&models.DesignRequest{ID: "d1", Email: "z@example.com", Status: "quoted", CreatedAt: ts("2024-02-13T00:00:00Z")}).Error; err != nil {
		t.Fatalf("create design request: %v", err)
	}
}

func TestPostgresSource_ReadsAreScopedToWindow(t *testing.T) {
	db := testDB(t)
	seedSource(t, db)
	src := NewPostgresSource(db, nil, db, nil)
	ctx := context.Background()
	w := Window{Start: ts("2024-02-01T00:00:00Z"), End: ts("2024-03-01T00:00:00Z")}

	orders, err := src.Orders(ctx, w)
	if err != nil {
		t.Fatalf("Orders: %v", err)
	}
	if len(orders) != 2 || orders[0].ID != "o1" || orders[1].ID != "o2" {
		t.Fatalf("orders = %+v", orders)
	}
	if !orders[0].CreatedAt.Equal(ts("2024-02-05T10:00:00Z")) {
		t.Errorf("created_at = %s", orders[0].CreatedAt)
	}

	items, err := src.OrderItems(ctx, w)
	if err != nil {
		t.Fatalf("OrderItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %+v", items)
	}
	if items[0].ProductID != "p-coat" || items[0].Translations["fr"] != "Manteau en laine" {
		t.Errorf("first item = %+v", items[0])
	}
	if items[1].Translations != nil {
		t.Errorf("missing translations decoded as %v", items[1].Translations)
	}

	counts := []struct {
		name string
		read func(context.Context, Window) (int, error)
		want int
	}{
		{"new_customers", src.NewCustomers, 2},
		{"blog_posts", src.BlogPosts, 1},
		{"contact_messages", src.ContactMessages, 2},
		{"design_requests", src.DesignRequests, 1},
		{"career_applications", src.CareerApplications, 0},
	}
	for _, c := range counts {
		n, err := c.read(ctx, w)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if n != c.want {
			t.Errorf("%s = %d, want %d", c.name, n, c.want)
		}
	}
}

func TestPostgresSource_EndToEndAggregate(t *testing.T) {
	db := testDB(t)
	seedSource(t, db)

	snap, err := NewAggregator(NewPostgresSource(db, nil, db, nil)).Aggregate(context.Background(), monthSel("2024-02"))
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if snap.Orders.Total != 2 || snap.Revenue != 150 || snap.AverageOrderValue != 75 {
		t.Errorf("orders=%d revenue=%v aov=%v", snap.Orders.Total, snap.Revenue, snap.AverageOrderValue)
	}
	if len(snap.BestSellers) != 2 || snap.BestSellers[0].ProductID != "p-coat" || snap.BestSellers[0].Quantity != 2 {
		t.Errorf("best sellers = %+v", snap.BestSellers)
	}
	if snap.NewCustomers != 2 || snap.Content.ContactMessages != 2 {
		t.Errorf("counts: customers=%d content=%+v", snap.NewCustomers, snap.Content)
	}
}

// countQuerier answers every QueryRow with a fixed count and records the SQL.
type countQuerier struct {
	count   int64
	queries []string
}

type countRow struct{ n int64 }

func (r countRow) Scan(dest ...any) error {
	*dest[0].(*int64) = r.n
	return nil
}

func (q *countQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	q.queries = append(q.queries, sql)
	return countRow{n: q.count}
}

func TestPostgresSource_CountsUseEachDatabasePool(t *testing.T) {
	shop := &countQuerier{count: 7}
	cms := &countQuerier{count: 3}
	src := &PostgresSource{EcommercePool: shop, CMSPool: cms}
	ctx := context.Background()
	w := Window{Start: ts("2024-02-01T00:00:00Z"), End: ts("2024-03-01T00:00:00Z")}

	n, err := src.NewCustomers(ctx, w)
	if err != nil || n != 7 {
		t.Fatalf("NewCustomers = %d, %v; want 7", n, err)
	}
	posts, err := src.BlogPosts(ctx, w)
	if err != nil || posts != 3 {
		t.Fatalf("BlogPosts = %d, %v; want 3", posts, err)
	}

	if len(shop.queries) != 1 || shop.queries[0] != windowCountSQL("users") {
		t.Errorf("ecommerce pool queries = %q", shop.queries)
	}
	if len(cms.queries) != 1 || cms.queries[0] != windowCountSQL("blog_posts") {
		t.Errorf("cms pool queries = %q", cms.queries)
	}
}

func TestNewPostgresSource_NilPoolsFallBackToGorm(t *testing.T) {
	src := NewPostgresSource(nil, nil, nil, nil)
	if src.EcommercePool != nil || src.CMSPool != nil {
		t.Fatalf("nil pools were stored as non-nil queriers: %+v", src)
	}
}
