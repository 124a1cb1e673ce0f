package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Modeva-Ecommerce/modeva-analytics/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// rowQuerier is the part of *pgxpool.Pool used for window counts.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresSource reads orders, line items and customers from the ecommerce
// database and content counts from the CMS database. Counts go through the
// pgx pool of their database when one is configured and fall back to gorm.
type PostgresSource struct {
	Ecommerce     *gorm.DB
	EcommercePool rowQuerier
	CMSGorm       *gorm.DB
	CMSPool       rowQuerier
}

func NewPostgresSource(ecommerce *gorm.DB, ecommercePool *pgxpool.Pool, cmsGorm *gorm.DB, cmsPool *pgxpool.Pool) *PostgresSource {
	s := &PostgresSource{Ecommerce: ecommerce, CMSGorm: cmsGorm}
	if ecommercePool != nil {
		s.EcommercePool = ecommercePool
	}
	if cmsPool != nil {
		s.CMSPool = cmsPool
	}
	return s
}

func (s *PostgresSource) Orders(ctx context.Context, w Window) ([]OrderRow, error) {
	var rows []OrderRow
	if err := s.Ecommerce.WithContext(ctx).
		Model(&models.Order{}).
		Select("id, total_amount, status, created_at").
		Where("created_at >= ? AND created_at < ?", w.Start, w.End).
		Order("created_at ASC, id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].CreatedAt = rows[i].CreatedAt.UTC()
	}
	return rows, nil
}

type orderItemScan struct {
	OrderID                 string
	ProductID               string
	ProductName             string
	ProductNameTranslations datatypes.JSON
	Quantity                int
	Price                   float64
	CreatedAt               time.Time
}

func (s *PostgresSource) OrderItems(ctx context.Context, w Window) ([]OrderItemRow, error) {
	var scanned []orderItemScan
	if err := s.Ecommerce.WithContext(ctx).
		Table("order_items AS oi").
		Select(`oi.order_id, oi.product_id, oi.product_name,
			COALESCE(oi.product_name_translations, 'null') AS product_name_translations,
			oi.quantity, oi.price, o.created_at`).
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("o.created_at >= ? AND o.created_at < ?", w.Start, w.End).
		Order("o.created_at ASC, oi.id ASC").
		Scan(&scanned).Error; err != nil {
		return nil, err
	}

	rows := make([]OrderItemRow, 0, len(scanned))
	for _, it := range scanned {
		translations, err := decodeTranslations(it.ProductNameTranslations)
		if err != nil {
			return nil, fmt.Errorf("product %s translations: %w", it.ProductID, err)
		}
		rows = append(rows, OrderItemRow{
			OrderID:      it.OrderID,
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Translations: translations,
			Quantity:     it.Quantity,
			UnitPrice:    it.Price,
			CreatedAt:    it.CreatedAt.UTC(),
		})
	}
	return rows, nil
}

func (s *PostgresSource) NewCustomers(ctx context.Context, w Window) (int, error) {
	return countWindow(ctx, s.EcommercePool, s.Ecommerce, models.User{}.TableName(), w)
}

func (s *PostgresSource) BlogPosts(ctx context.Context, w Window) (int, error) {
	return s.countCMS(ctx, models.BlogPost{}.TableName(), w)
}

func (s *PostgresSource) ContactMessages(ctx context.Context, w Window) (int, error) {
	return s.countCMS(ctx, models.ContactMessage{}.TableName(), w)
}

func (s *PostgresSource) DesignRequests(ctx context.Context, w Window) (int, error) {
	return s.countCMS(ctx, models.DesignRequest{}.TableName(), w)
}

func (s *PostgresSource) CareerApplications(ctx context.Context, w Window) (int, error) {
	return s.countCMS(ctx, models.CareerApplication{}.TableName(), w)
}

func (s *PostgresSource) countCMS(ctx context.Context, table string, w Window) (int, error) {
	return countWindow(ctx, s.CMSPool, s.CMSGorm, table, w)
}

// countWindow counts rows of table created inside w. table is always a
// model table name, never user input.
func countWindow(ctx context.Context, pool rowQuerier, db *gorm.DB, table string, w Window) (int, error) {
	if pool != nil {
		var n int64
		if err := pool.QueryRow(ctx, windowCountSQL(table), w.Start, w.End).Scan(&n); err != nil {
			return 0, err
		}
		return int(n), nil
	}

	var n int64
	if err := db.WithContext(ctx).
		Table(table).
		Where("created_at >= ? AND created_at < ?", w.Start, w.End).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}

func windowCountSQL(table string) string {
	return fmt.Sprintf(`SELECT COUNT(id) FROM %s WHERE created_at >= $1 AND created_at < $2`, table)
}

func decodeTranslations(raw datatypes.JSON) (map[string]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var out map[string]string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
