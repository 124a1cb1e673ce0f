package cms_routes

import (
	"time"

	"github.com/Modeva-Ecommerce/modeva-analytics/controllers/cms/analytics_controller"
	"github.com/Modeva-Ecommerce/modeva-analytics/middleware"
	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")

	analytics.GET("/snapshot", analytics_controller.GetSnapshot)
	analytics.GET("/compare", analytics_controller.GetComparison)
	// Exports render whole documents, so they get a tighter budget.
	analytics.GET("/export", middleware.RateLimiter(20, time.Minute), analytics_controller.ExportReport)

	dashboard := analytics.Group("/dashboard")
	dashboard.Use(middleware.AdminAuthMiddleware())
	dashboard.GET("", analytics_controller.GetDashboard)
	dashboard.PUT("/selection", analytics_controller.SelectDashboardRange)
}
