package analytics_controller

import (
	"net/http"
	"strconv"

	"github.com/Modeva-Ecommerce/modeva-analytics/config"
	"github.com/Modeva-Ecommerce/modeva-analytics/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GetSnapshot godoc
// @Summary Get analytics snapshot
// @Description Aggregates orders, revenue, best sellers, new customers and content counts for one calendar day, month or year
// @Tags Admin - Analytics
// @Produce json
// @Param granularity query string true "day, month or year"
// @Param value query string true "YYYY-MM-DD, YYYY-MM or YYYY"
// @Param refresh query bool false "bypass the snapshot cache"
// @Success 200 {object} models.ApiResponse{data=models.AnalyticsSnapshot}
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /admin/analytics/snapshot [get]
func GetSnapshot(c *gin.Context) {
	logrus.Debugf("[admin.analytics-snapshot] start")

	sel, err := bindSelection(c)
	if err != nil {
		respondError(c, "admin.analytics-snapshot", err)
		return
	}

	ctx, cancel := config.WithParentTimeout(c.Request.Context())
	defer cancel()

	refresh, _ := strconv.ParseBool(c.Query("refresh"))
	aggregate := aggregator.Aggregate
	if refresh {
		aggregate = aggregator.Refresh
	}

	snap, err := aggregate(ctx, sel)
	if err != nil {
		respondError(c, "admin.analytics-snapshot", err)
		return
	}

	logrus.Infof("[admin.analytics-snapshot] success key=%s orders=%d revenue=%.2f", sel.Key(), snap.Orders.Total, snap.Revenue)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Analytics snapshot fetched successfully", snap))
}
