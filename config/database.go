package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	CmsDB       *pgxpool.Pool
	EcommerceDB *pgxpool.Pool

	CmsGorm       *gorm.DB
	EcommerceGorm *gorm.DB
)

// InitDB opens both databases through pgx and GORM. Analytics only reads,
// so the pools stay small.
func InitDB() {
	cmsURL := databaseURL("CMS_DB_URL", "modeva_cms_backend")
	ecommerceURL := databaseURL("ECOMMERCE_DB_URL", "modeva_ecommerce")

	CmsDB = openPool("CMS", cmsURL)
	EcommerceDB = openPool("Ecommerce", ecommerceURL)

	CmsGorm = openGorm("CMS", cmsURL)
	EcommerceGorm = openGorm("Ecommerce", ecommerceURL)
}

func databaseURL(key, dbname string) string {
	if url := os.Getenv(key); url != "" {
		return url
	}
	logrus.Warnf("⚠️ %s not set, using local default", key)
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable&TimeZone=UTC",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		dbname,
	)
}

func openPool(name, url string) *pgxpool.Pool {
	ctx, cancel := WithTimeout()
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		logrus.Fatalf("❌ Unable to connect to %s database: %v", name, err)
	}
	if err = pool.Ping(ctx); err != nil {
		logrus.Fatalf("❌ %s database ping failed: %v", name, err)
	}
	logrus.Infof("✅ %s database connected (pgx)", name)
	return pool
}

func openGorm(name, dsn string) *gorm.DB {
	gormLogger := logger.Default.LogMode(logger.Warn)
	if IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		logrus.Fatalf("❌ Failed to connect to %s database with GORM: %v", name, err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	logrus.Infof("✅ %s database connected (GORM)", name)
	return db
}

func CloseDB() {
	for name, pool := range map[string]*pgxpool.Pool{"CMS": CmsDB, "Ecommerce": EcommerceDB} {
		if pool != nil {
			pool.Close()
			logrus.Infof("✅ %s database connection closed (pgx)", name)
		}
	}
	for name, db := range map[string]*gorm.DB{"CMS": CmsGorm, "Ecommerce": EcommerceGorm} {
		if db == nil {
			continue
		}
		if sqlDB, _ := db.DB(); sqlDB != nil {
			sqlDB.Close()
			logrus.Infof("✅ %s database connection closed (GORM)", name)
		}
	}
}

// WithTimeout returns a context with a 10s timeout (Neon cold starts need more than 5s)
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// WithParentTimeout is WithTimeout derived from parent.
func WithParentTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
