// Package report serializes analytics snapshots into downloadable files.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-analytics/models"
)

const (
	FormatCSV         = "csv"
	FormatSpreadsheet = "xls"
	FormatPDF         = "pdf"

	// PDF engines selectable through REPORT_PDF_ENGINE.
	EngineMinimal = "minimal"
	EngineMaroto  = "maroto"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// ExportError wraps a serializer failure. It is not expected for snapshots
// produced by the aggregator.
type ExportError struct {
	Format string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// Artifact is an in-memory file ready to be downloaded or written to disk.
type Artifact struct {
	Filename string
	MIMEType string
	Body     []byte
}

// Options carries presentation settings. Zero values fall back to English
// and USD.
type Options struct {
	Locale   string
	Currency func(amount float64) string
	Number   func(n int) string
}

func (o Options) withDefaults() Options {
	if o.Locale == "" {
		o.Locale = "en"
	}
	if o.Currency == nil {
		o.Currency = CurrencyFormatter(o.Locale, "USD")
	}
	if o.Number == nil {
		o.Number = NumberFormatter(o.Locale)
	}
	return o
}

// Exporter turns a snapshot into one artifact.
type Exporter interface {
	Format() string
	Export(snap *models.AnalyticsSnapshot, opts Options) (Artifact, error)
}

// ForFormat returns the exporter for format. pdfEngine picks the PDF
// implementation and defaults to the minimal builder.
func ForFormat(format, pdfEngine string) (Exporter, error) {
	switch strings.ToLower(format) {
	case FormatCSV:
		return CSV{}, nil
	case FormatSpreadsheet, "excel", "xlsx":
		return Spreadsheet{}, nil
	case FormatPDF:
		if strings.EqualFold(pdfEngine, EngineMaroto) {
			return MarotoPDF{}, nil
		}
		return MinimalPDF{}, nil
	}
	return nil, &ExportError{Format: format, Err: ErrUnsupportedFormat}
}

// Filename is analytics-<value>.<ext>, with the raw selection value.
func Filename(snap *models.AnalyticsSnapshot, ext string) string {
	return "analytics-" + snap.Range.Value + "." + ext
}
