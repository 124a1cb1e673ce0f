package analytics_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-analytics/config"
	"github.com/Modeva-Ecommerce/modeva-analytics/models"
	"github.com/Modeva-Ecommerce/modeva-analytics/utils/timerange"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GetComparison godoc
// @Summary Compare two analytics periods
// @Description Aggregates the selected period and a comparison period of the same granularity and diffs their headline metrics. The comparison defaults to the preceding period.
// @Tags Admin - Analytics
// @Produce json
// @Param granularity query string true "day, month or year"
// @Param value query string true "primary period"
// @Param compare_value query string false "comparison period, defaults to the previous one"
// @Success 200 {object} models.ApiResponse{data=models.AnalyticsComparison}
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /admin/analytics/compare [get]
func GetComparison(c *gin.Context) {
	logrus.Debugf("[admin.analytics-compare] start")

	primary, err := bindSelection(c)
	if err != nil {
		respondError(c, "admin.analytics-compare", err)
		return
	}

	var comparison models.TimeFilterValue
	if v := c.Query("compare_value"); v != "" {
		comparison = models.TimeFilterValue{Granularity: primary.Granularity, Value: v}
		err = timerange.Validate(comparison)
	} else {
		comparison, err = timerange.Previous(primary)
	}
	if err != nil {
		respondError(c, "admin.analytics-compare", err)
		return
	}

	ctx, cancel := config.WithParentTimeout(c.Request.Context())
	defer cancel()

	result, err := aggregator.Compare(ctx, primary, comparison)
	if err != nil {
		respondError(c, "admin.analytics-compare", err)
		return
	}

	logrus.Infof("[admin.analytics-compare] success primary=%s comparison=%s", primary.Key(), comparison.Key())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Analytics comparison fetched successfully", result))
}
