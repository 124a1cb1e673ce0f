package report

import (
	"github.com/Modeva-Ecommerce/modeva-analytics/models"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// MarotoPDF renders the same lines as MinimalPDF through maroto, the library
// the CMS uses for invoices. Output may span several pages.
type MarotoPDF struct{}

func (MarotoPDF) Format() string { return FormatPDF }

func (MarotoPDF) Export(snap *models.AnalyticsSnapshot, opts Options) (Artifact, error) {
	opts = opts.withDefaults()

	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	lines := documentLines(snap, opts)
	for _, line := range lines {
		line := line
		style := props.Text{Size: 9, Color: mediumGray}
		height := 5.0
		switch {
		case line == "Best sellers" || line == "Revenue trend":
			style = props.Text{Size: 11, Style: consts.Bold, Color: darkGray}
			height = 7
		case line == "":
			m.Row(4, func() {})
			continue
		}
		m.Row(height, func() {
			m.Col(12, func() {
				m.Text(line, style)
			})
		})
	}

	buf, err := m.Output()
	if err != nil {
		return Artifact{}, &ExportError{Format: FormatPDF, Err: err}
	}
	return Artifact{
		Filename: Filename(snap, "pdf"),
		MIMEType: "application/pdf",
		Body:     buf.Bytes(),
	}, nil
}
