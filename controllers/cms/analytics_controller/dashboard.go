package analytics_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-analytics/config"
	"github.com/Modeva-Ecommerce/modeva-analytics/models"
	"github.com/Modeva-Ecommerce/modeva-analytics/utils/timerange"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SelectDashboardRange godoc
// @Summary Change the dashboard time selection
// @Description Makes the posted selection the admin's active one and aggregates it. A request overtaken by a newer selection from the same admin returns 409.
// @Tags Admin - Analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param selection body models.TimeFilterValue true "selection"
// @Success 200 {object} models.ApiResponse{data=models.DashboardState}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /admin/analytics/dashboard/selection [put]
func SelectDashboardRange(c *gin.Context) {
	adminID := c.GetString("adminID")
	logrus.Debugf("[admin.analytics-dashboard-select] start admin=%s", adminID)

	var sel models.TimeFilterValue
	if err := c.ShouldBindJSON(&sel); err != nil {
		respondError(c, "admin.analytics-dashboard-select", &timerange.ValidationError{
			Field:  "selection",
			Value:  sel.Key(),
			Reason: "granularity (day, month, year) and value are required",
		})
		return
	}

	// Bound to the request so a client that navigates away stops the reads.
	ctx, cancel := config.WithParentTimeout(c.Request.Context())
	defer cancel()

	state, err := dashboard.Select(ctx, adminID, sel)
	if err != nil {
		respondError(c, "admin.analytics-dashboard-select", err)
		return
	}

	logrus.Infof("[admin.analytics-dashboard-select] success admin=%s key=%s generation=%d", adminID, sel.Key(), state.Generation)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard selection updated", state))
}

// GetDashboard godoc
// @Summary Get the dashboard state
// @Description Returns the admin's active selection and the last snapshot computed for it
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.DashboardState}
// @Failure 404 {object} models.ApiResponse
// @Router /admin/analytics/dashboard [get]
func GetDashboard(c *gin.Context) {
	adminID := c.GetString("adminID")

	state, ok := dashboard.State(adminID)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No dashboard selection yet"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard fetched successfully", state))
}
