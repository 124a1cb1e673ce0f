package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-analytics/models"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Page geometry of the minimal document, in points (A4).
const (
	pdfPageWidth  = 595
	pdfPageHeight = 842
	pdfMarginLeft = 50
	pdfMarginTop  = 50
	pdfFontSize   = 9
	pdfLeading    = 11
)

// MinimalPDF assembles a one-page PDF by hand: header, five objects
// (catalog, page tree, page, font, content stream), xref table and trailer.
type MinimalPDF struct{}

func (MinimalPDF) Format() string { return FormatPDF }

func (MinimalPDF) Export(snap *models.AnalyticsSnapshot, opts Options) (Artifact, error) {
	opts = opts.withDefaults()
	text := strings.Join(documentLines(snap, opts), "\n")
	body, err := BuildPDF(text)
	if err != nil {
		return Artifact{}, &ExportError{Format: FormatPDF, Err: err}
	}
	return Artifact{
		Filename: Filename(snap, "pdf"),
		MIMEType: "application/pdf",
		Body:     body,
	}, nil
}

// BuildPDF lays out text (newline separated) on a single page in Helvetica.
func BuildPDF(text string) ([]byte, error) {
	escaped, err := escapePDFText(text)
	if err != nil {
		return nil, err
	}

	var content bytes.Buffer
	fmt.Fprintf(&content, "BT\n/F1 %d Tf\n%d TL\n%d %d Td\n", pdfFontSize, pdfLeading, pdfMarginLeft, pdfPageHeight-pdfMarginTop)
	content.WriteString("(")
	content.WriteString(strings.ReplaceAll(escaped, "\n", ") Tj\nT* ("))
	content.WriteString(") Tj\nET")

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>", pdfPageWidth, pdfPageHeight),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", content.Len(), content.String()),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefAt := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n", len(objects)+1)
	out.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefAt)

	return out.Bytes(), nil
}

// escapePDFText converts text to WinAnsi bytes and escapes the characters
// reserved by PDF string literals. Newlines are left for the caller.
func escapePDFText(text string) (string, error) {
	enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	encoded, err := enc.String(text)
	if err != nil {
		return "", err
	}
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`, "\r", "")
	return r.Replace(encoded), nil
}
