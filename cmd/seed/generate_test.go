package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Modeva-Ecommerce/modeva-analytics/models"
	"github.com/Modeva-Ecommerce/modeva-analytics/services/analytics"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSQLite(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestGenerate_Deterministic(t *testing.T) {
	today := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	a := generate(7, 60, 5, today)
	b := generate(7, 60, 5, today)

	if len(a.Orders) == 0 || len(a.Orders) != len(b.Orders) || len(a.Items) != len(b.Items) {
		t.Fatalf("orders %d/%d items %d/%d", len(a.Orders), len(b.Orders), len(a.Items), len(b.Items))
	}
	for i := range a.Orders {
		if a.Orders[i].ID != b.Orders[i].ID || a.Orders[i].TotalAmount != b.Orders[i].TotalAmount {
			t.Fatalf("order %d differs between runs", i)
		}
	}
	for _, o := range a.Orders {
		if !o.CreatedAt.Before(today) || o.CreatedAt.Before(today.AddDate(0, 0, -60)) {
			t.Errorf("order %s at %s outside history", o.ID, o.CreatedAt)
		}
		if o.TotalAmount < o.Subtotal {
			t.Errorf("order %s total below subtotal", o.ID)
		}
	}
}

func TestInsert_FeedsAggregator(t *testing.T) {
	ecommerce := openSQLite(t, "ecommerce.db")
	cms := openSQLite(t, "cms.db")
	if err := migrate(ecommerce, cms); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	today := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	data := generate(11, 29, 4, today)
	if err := insert(ecommerce, cms, data); err != nil {
		t.Fatalf("insert: %v", err)
	}

	agg := analytics.NewAggregator(analytics.NewPostgresSource(ecommerce, nil, cms, nil))
	snap, err := agg.Aggregate(context.Background(), models.TimeFilterValue{Granularity: models.GranularityMonth, Value: "2024-02"})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if snap.Orders.Total != len(data.Orders) {
		t.Errorf("orders = %d, want %d", snap.Orders.Total, len(data.Orders))
	}
	if snap.NewCustomers != len(data.Users) {
		t.Errorf("new customers = %d, want %d", snap.NewCustomers, len(data.Users))
	}
	if snap.Content.ContactMessages != len(data.Messages) {
		t.Errorf("contact messages = %d, want %d", snap.Content.ContactMessages, len(data.Messages))
	}
}
