package analytics_controller

import (
	"fmt"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-analytics/config"
	"github.com/Modeva-Ecommerce/modeva-analytics/services/report"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ExportReport godoc
// @Summary Download an analytics report
// @Description Exports the snapshot of a period as CSV, a spreadsheet (.xls) or PDF
// @Tags Admin - Analytics
// @Produce text/csv
// @Produce application/vnd.ms-excel
// @Produce application/pdf
// @Param granularity query string true "day, month or year"
// @Param value query string true "YYYY-MM-DD, YYYY-MM or YYYY"
// @Param format query string true "csv, xls or pdf"
// @Param locale query string false "presentation locale, e.g. fr-FR"
// @Success 200 {file} file
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/export [get]
func ExportReport(c *gin.Context) {
	logrus.Debugf("[admin.analytics-export] start")

	sel, err := bindSelection(c)
	if err != nil {
		respondError(c, "admin.analytics-export", err)
		return
	}

	exporter, err := report.ForFormat(c.DefaultQuery("format", report.FormatCSV), settings.PDFEngine)
	if err != nil {
		respondError(c, "admin.analytics-export", err)
		return
	}

	ctx, cancel := config.WithParentTimeout(c.Request.Context())
	defer cancel()

	snap, err := aggregator.Aggregate(ctx, sel)
	if err != nil {
		respondError(c, "admin.analytics-export", err)
		return
	}

	artifact, err := exporter.Export(snap, reportOptions(c.Query("locale")))
	if err != nil {
		respondError(c, "admin.analytics-export", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, artifact.Filename, artifact.Filename))
	c.Header("Content-Length", fmt.Sprintf("%d", len(artifact.Body)))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")

	logrus.Infof("[admin.analytics-export] success key=%s format=%s bytes=%d", sel.Key(), exporter.Format(), len(artifact.Body))
	c.Data(http.StatusOK, artifact.MIMEType, artifact.Body)
}
