package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Modeva-Ecommerce/modeva-analytics/models"
)

// Section titles of the CSV layout. Consumers parse on these, so the order
// and wording are fixed.
const (
	csvBestSellers  = "Best Sellers"
	csvRevenueTrend = "Revenue Trend"
)

// CSV writes the metric table, best sellers and trend as raw, unformatted numbers.
type CSV struct{}

func (CSV) Format() string { return FormatCSV }

func (CSV) Export(snap *models.AnalyticsSnapshot, _ Options) (Artifact, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	section := func(rows [][]string) error {
		if err := w.WriteAll(rows); err != nil {
			return err
		}
		return w.Error()
	}

	rows := [][]string{{"Metric", "Value"}}
	for _, m := range metrics(snap) {
		rows = append(rows, []string{m.Label, m.raw()})
	}
	if err := section(rows); err != nil {
		return Artifact{}, &ExportError{Format: FormatCSV, Err: err}
	}

	buf.WriteString("\n")
	rows = [][]string{{csvBestSellers}, {"Product", "Quantity", "Revenue"}}
	for _, b := range snap.BestSellers {
		rows = append(rows, []string{b.Name, strconv.Itoa(b.Quantity), formatRaw(b.Revenue)})
	}
	if err := section(rows); err != nil {
		return Artifact{}, &ExportError{Format: FormatCSV, Err: err}
	}

	buf.WriteString("\n")
	rows = [][]string{{csvRevenueTrend}, {"Bucket", "Orders", "Revenue"}}
	for _, p := range snap.Orders.Trend {
		rows = append(rows, []string{p.Bucket, strconv.Itoa(p.Orders), formatRaw(p.Revenue)})
	}
	if err := section(rows); err != nil {
		return Artifact{}, &ExportError{Format: FormatCSV, Err: err}
	}

	return Artifact{
		Filename: Filename(snap, "csv"),
		MIMEType: "text/csv",
		Body:     buf.Bytes(),
	}, nil
}

// ParsedCSV is a CSV report read back into its three sections. Values are
// kept as the exact strings found in the file.
type ParsedCSV struct {
	Metrics     [][2]string
	BestSellers [][3]string
	Trend       [][3]string
}

// Metric returns the value of the metric labelled label.
func (p ParsedCSV) Metric(label string) (string, bool) {
	for _, m := range p.Metrics {
		if m[0] == label {
			return m[1], true
		}
	}
	return "", false
}

// ParseCSV reads a report produced by CSV.Export.
func ParseCSV(r io.Reader) (ParsedCSV, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var out ParsedCSV
	state := "metrics-header"
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ParsedCSV{}, err
		}

		if len(rec) == 1 {
			switch rec[0] {
			case csvBestSellers:
				state = "best-header"
				continue
			case csvRevenueTrend:
				state = "trend-header"
				continue
			}
		}

		switch state {
		case "metrics-header":
			state = "metrics"
		case "best-header":
			state = "best"
		case "trend-header":
			state = "trend"
		case "metrics":
			if len(rec) != 2 {
				return ParsedCSV{}, fmt.Errorf("metric row has %d fields", len(rec))
			}
			out.Metrics = append(out.Metrics, [2]string{rec[0], rec[1]})
		case "best":
			if len(rec) != 3 {
				return ParsedCSV{}, fmt.Errorf("best seller row has %d fields", len(rec))
			}
			out.BestSellers = append(out.BestSellers, [3]string{rec[0], rec[1], rec[2]})
		case "trend":
			if len(rec) != 3 {
				return ParsedCSV{}, fmt.Errorf("trend row has %d fields", len(rec))
			}
			out.Trend = append(out.Trend, [3]string{rec[0], rec[1], rec[2]})
		}
	}
	return out, nil
}
