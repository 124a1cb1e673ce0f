package analytics_controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-analytics/config"
	"github.com/Modeva-Ecommerce/modeva-analytics/models"
	"github.com/Modeva-Ecommerce/modeva-analytics/services/analytics"
	"github.com/Modeva-Ecommerce/modeva-analytics/services/report"
	"github.com/Modeva-Ecommerce/modeva-analytics/utils/timerange"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	aggregator *analytics.Aggregator
	dashboard  *analytics.Dashboard
	settings   config.Analytics
)

// InitAnalytics wires the aggregator and dashboard used by every handler.
// It must run before the routes are served.
func InitAnalytics(agg *analytics.Aggregator, dash *analytics.Dashboard, cfg config.Analytics) {
	aggregator = agg
	dashboard = dash
	settings = cfg
}

// bindSelection reads granularity and value from the query string.
func bindSelection(c *gin.Context) (models.TimeFilterValue, error) {
	var sel models.TimeFilterValue
	if err := c.ShouldBindQuery(&sel); err != nil {
		return sel, &timerange.ValidationError{
			Field:  "selection",
			Value:  c.Query("granularity") + ":" + c.Query("value"),
			Reason: "granularity (day, month, year) and value are required",
		}
	}
	return sel, timerange.Validate(sel)
}

// reportOptions builds the presentation options for locale, falling back to
// the configured default.
func reportOptions(locale string) report.Options {
	if locale == "" {
		locale = settings.Locale
	}
	return report.Options{
		Locale:   locale,
		Currency: report.CurrencyFormatter(locale, settings.Currency),
		Number:   report.NumberFormatter(locale),
	}
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, tag string, err error) {
	var (
		validationErr *timerange.ValidationError
		sourceErr     *analytics.DataSourceError
		exportErr     *report.ExportError
	)

	status, message := http.StatusInternalServerError, "Failed to build analytics"
	switch {
	case errors.As(err, &validationErr):
		status, message = http.StatusBadRequest, validationErr.Error()
	case errors.Is(err, analytics.ErrSuperseded):
		status, message = http.StatusConflict, "Selection superseded by a newer one"
	case errors.As(err, &sourceErr):
		status, message = http.StatusBadGateway, "Failed to read analytics data"
	case errors.Is(err, report.ErrUnsupportedFormat):
		status, message = http.StatusBadRequest, "Unsupported export format"
	case errors.As(err, &exportErr):
		message = "Failed to export report"
	case errors.Is(err, context.DeadlineExceeded):
		status, message = http.StatusGatewayTimeout, "Analytics request timed out"
	}

	if status >= http.StatusInternalServerError {
		logrus.Errorf("[%s] ERROR err=%v", tag, err)
	} else {
		logrus.Warnf("[%s] rejected status=%d err=%v", tag, status, err)
	}
	c.JSON(status, models.ErrorResponse(c, message))
}
