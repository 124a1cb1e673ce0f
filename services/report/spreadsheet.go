package report

import (
	"bytes"
	"html/template"

	"github.com/Modeva-Ecommerce/modeva-analytics/models"
)

// Spreadsheet emits an HTML table document that spreadsheet applications
// open as a worksheet when served as application/vnd.ms-excel.
type Spreadsheet struct{}

var spreadsheetTmpl = template.Must(template.New("xls").Parse(`<html>
<head><meta charset="UTF-8"><title>{{.Title}}</title></head>
<body>
<table>
<tr><th>Metric</th><th>Value</th></tr>
{{- range .Metrics}}
<tr><td>{{.Label}}</td><td>{{.Value}}</td></tr>
{{- end}}
</table>
{{- if .BestSellers}}
<br/>
<table>
<tr><th>Product</th><th>Quantity</th><th>Revenue</th></tr>
{{- range .BestSellers}}
<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{.Revenue}}</td></tr>
{{- end}}
</table>
{{- end}}
</body>
</html>
`))

type spreadsheetRow struct {
	Label string
	Value string
}

type spreadsheetSeller struct {
	Name     string
	Quantity string
	Revenue  string
}

func (Spreadsheet) Format() string { return FormatSpreadsheet }

func (Spreadsheet) Export(snap *models.AnalyticsSnapshot, opts Options) (Artifact, error) {
	opts = opts.withDefaults()

	data := struct {
		Title       string
		Metrics     []spreadsheetRow
		BestSellers []spreadsheetSeller
	}{Title: "Analytics " + snap.Label}

	for _, m := range metrics(snap) {
		data.Metrics = append(data.Metrics, spreadsheetRow{Label: m.Label, Value: m.display(opts)})
	}
	for _, b := range snap.BestSellers {
		data.BestSellers = append(data.BestSellers, spreadsheetSeller{
			Name:     b.Name,
			Quantity: opts.Number(b.Quantity),
			Revenue:  opts.Currency(b.Revenue),
		})
	}

	var buf bytes.Buffer
	if err := spreadsheetTmpl.Execute(&buf, data); err != nil {
		return Artifact{}, &ExportError{Format: FormatSpreadsheet, Err: err}
	}
	return Artifact{
		Filename: Filename(snap, "xls"),
		MIMEType: "application/vnd.ms-excel",
		Body:     buf.Bytes(),
	}, nil
}
