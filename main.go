// @title Modeva Analytics API
// @version 1.0
// @description Sales and content analytics for the Modeva admin dashboard
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Modeva-Ecommerce/modeva-analytics/cache"
	"github.com/Modeva-Ecommerce/modeva-analytics/config"
	"github.com/Modeva-Ecommerce/modeva-analytics/controllers/cms/analytics_controller"
	"github.com/Modeva-Ecommerce/modeva-analytics/docs"
	"github.com/Modeva-Ecommerce/modeva-analytics/middleware"
	"github.com/Modeva-Ecommerce/modeva-analytics/routes/cms_routes"
	"github.com/Modeva-Ecommerce/modeva-analytics/services"
	"github.com/Modeva-Ecommerce/modeva-analytics/services/analytics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	config.InitLogger()
	cfg := config.LoadAnalytics()

	config.InitDB()
	defer config.CloseDB()
	config.ConnectRedis()
	defer config.CloseRedis()

	if err := services.InitJWTService(config.JWTSecret()); err != nil {
		logrus.Fatalf("❌ Failed to initialize JWT service: %v", err)
	}
	logrus.Info("✅ JWT Service initialized")

	source := analytics.NewPostgresSource(config.EcommerceGorm, config.EcommerceDB, config.CmsGorm, config.CmsDB)
	snapshots := cache.NewSnapshotCache(cfg.CacheTTL, nil)
	aggregator := analytics.NewAggregator(source,
		analytics.WithCache(snapshots),
		analytics.WithLocale(cfg.Locale),
	)
	analytics_controller.InitAnalytics(aggregator, analytics.NewDashboard(aggregator), cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go pruneSnapshots(ctx, snapshots, cfg.CacheTTL)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length", middleware.RequestIDHeader},
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "cached_snapshots": snapshots.Len()})
	})

	api := router.Group("/api/v1")
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	cms_routes.SetupAnalyticsRoutes(adminGroup)

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logrus.Infof("🚀 Analytics server is running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("❌ server error: %v", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down")
	shutdownCtx, cancel := config.WithCustomTimeout(15 * time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("❌ graceful shutdown failed: %v", err)
	}
}

// pruneSnapshots drops expired snapshots once per TTL.
func pruneSnapshots(ctx context.Context, c *cache.SnapshotCache, every time.Duration) {
	if every <= 0 {
		every = cache.DefaultTTL
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := c.Prune(); n > 0 {
				logrus.Debugf("[analytics.cache] pruned %d snapshots", n)
			}
		}
	}
}
