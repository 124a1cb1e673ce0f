package report

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/Modeva-Ecommerce/modeva-analytics/models"
)

// ─── Helpers ──────────────────────────────────────────────────────────────────

func sampleSnapshot() *models.AnalyticsSnapshot {
	trend := make([]models.TimeSeriesPoint, 29)
	for i := range trend {
		trend[i] = models.TimeSeriesPoint{Bucket: fmt.Sprintf("%02d", i+1)}
	}
	trend[4] = models.TimeSeriesPoint{Bucket: "05", Orders: 1, Revenue: 100.1}
	trend[19] = models.TimeSeriesPoint{Bucket: "20", Orders: 1, Revenue: 49.95}

	return &models.AnalyticsSnapshot{
		Range: models.TimeFilterValue{Granularity: models.GranularityMonth, Value: "2024-02"},
		Start: "2024-02-01T00:00:00Z",
		End:   "2024-03-01T00:00:00Z",
		Label: "February 2024",
		Orders: models.OrderBreakdown{
			Total: 2, Completed: 1, Cancelled: 1,
			ByStatus: map[string]int{"delivered": 1, "cancelled": 1},
			Trend:    trend,
		},
		Revenue:           150.05,
		AverageOrderValue: 75.025,
		NewCustomers:      3,
		BestSellers: []models.BestSellerRecord{
			{ProductID: "p1", Name: `The "Riviera" Linen Shirt, navy`, Quantity: 4, Revenue: 140},
			{ProductID: "p2", Name: "Wool Coat (long)", Quantity: 1, Revenue: 10.05},
		},
		Content: models.ContentCounts{BlogPosts: 2, ContactMessages: 5, DesignRequests: 1, CareerApplications: 0},
	}
}

func testOptions() Options {
	return Options{
		Locale:   "en",
		Currency: func(v float64) string { return fmt.Sprintf("$%.2f", v) },
		Number:   strconv.Itoa,
	}
}

// ─── CSV ──────────────────────────────────────────────────────────────────────

func TestCSV_RoundTrip(t *testing.T) {
	snap := sampleSnapshot()
	art, err := CSV{}.Export(snap, testOptions())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if art.Filename != "analytics-2024-02.csv" || art.MIMEType != "text/csv" {
		t.Errorf("artifact = %s %s", art.Filename, art.MIMEType)
	}

	parsed, err := ParseCSV(bytes.NewReader(art.Body))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}

	wantMetrics := map[string]string{
		"Timeframe":           "February 2024",
		"Revenue":             strconv.FormatFloat(snap.Revenue, 'f', -1, 64),
		"Total orders":        "2",
		"Completed orders":    "1",
		"Processing orders":   "0",
		"Cancelled orders":    "1",
		"Average order value": "75.025",
		"New customers":       "3",
		"Blog posts":          "2",
		"Contact messages":    "5",
		"Design requests":     "1",
		"Career applications": "0",
	}
	if len(parsed.Metrics) != len(wantMetrics) {
		t.Fatalf("metrics = %d rows, want %d", len(parsed.Metrics), len(wantMetrics))
	}
	for label, want := range wantMetrics {
		got, ok := parsed.Metric(label)
		if !ok || got != want {
			t.Errorf("metric %q = %q, want %q", label, got, want)
		}
	}
	if parsed.Metrics[0][0] != "Timeframe" || parsed.Metrics[11][0] != "Career applications" {
		t.Errorf("metric order changed: %v", parsed.Metrics)
	}

	if len(parsed.BestSellers) != 2 {
		t.Fatalf("best sellers = %v", parsed.BestSellers)
	}
	if parsed.BestSellers[0] != [3]string{`The "Riviera" Linen Shirt, navy`, "4", "140"} {
		t.Errorf("best seller 0 = %v", parsed.BestSellers[0])
	}
	if parsed.BestSellers[1] != [3]string{"Wool Coat (long)", "1", "10.05"} {
		t.Errorf("best seller 1 = %v", parsed.BestSellers[1])
	}

	if len(parsed.Trend) != len(snap.Orders.Trend) {
		t.Fatalf("trend = %d rows, want %d", len(parsed.Trend), len(snap.Orders.Trend))
	}
	for i, p := range snap.Orders.Trend {
		want := [3]string{p.Bucket, strconv.Itoa(p.Orders), strconv.FormatFloat(p.Revenue, 'f', -1, 64)}
		if parsed.Trend[i] != want {
			t.Errorf("trend[%d] = %v, want %v", i, parsed.Trend[i], want)
		}
	}
}

func TestCSV_SectionLayout(t *testing.T) {
	art, _ := CSV{}.Export(sampleSnapshot(), Options{})
	text := string(art.Body)

	if !strings.HasPrefix(text, "Metric,Value\nTimeframe,February 2024\n") {
		t.Errorf("unexpected head: %q", text[:40])
	}
	best := strings.Index(text, "\n\nBest Sellers\nProduct,Quantity,Revenue\n")
	trend := strings.Index(text, "\n\nRevenue Trend\nBucket,Orders,Revenue\n")
	if best < 0 || trend < 0 || best > trend {
		t.Fatalf("sections missing or out of order: best=%d trend=%d", best, trend)
	}
	if !strings.Contains(text, `"The ""Riviera"" Linen Shirt, navy",4,140`) {
		t.Errorf("product name not CSV-escaped")
	}
	if strings.Count(text, "Metric,Value") != 1 {
		t.Errorf("header repeated")
	}
}

// ─── Spreadsheet ──────────────────────────────────────────────────────────────

func TestSpreadsheet_FormattedTables(t *testing.T) {
	art, err := Spreadsheet{}.Export(sampleSnapshot(), testOptions())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if art.Filename != "analytics-2024-02.xls" || art.MIMEType != "application/vnd.ms-excel" {
		t.Errorf("artifact = %s %s", art.Filename, art.MIMEType)
	}
	html := string(art.Body)
	if n := strings.Count(html, "<table>"); n != 2 {
		t.Errorf("tables = %d, want 2", n)
	}
	for _, want := range []string{
		"<tr><td>Revenue</td><td>$150.05</td></tr>",
		"<tr><td>New customers</td><td>3</td></tr>",
		"<tr><td>Total orders</td><td>2</td></tr>",
		"<td>The &#34;Riviera&#34; Linen Shirt, navy</td><td>4</td><td>$140.00</td>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestSpreadsheet_OmitsEmptyBestSellers(t *testing.T) {
	snap := sampleSnapshot()
	snap.BestSellers = nil
	art, err := Spreadsheet{}.Export(snap, testOptions())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if n := strings.Count(string(art.Body), "<table>"); n != 1 {
		t.Errorf("tables = %d, want 1", n)
	}
}

// ─── Minimal PDF ──────────────────────────────────────────────────────────────

var xrefEntry = regexp.MustCompile(`^(\d{10}) (\d{5}) ([nf]) $`)

func TestMinimalPDF_XrefOffsetsPointAtObjects(t *testing.T) {
	art, err := MinimalPDF{}.Export(sampleSnapshot(), testOptions())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if art.Filename != "analytics-2024-02.pdf" || art.MIMEType != "application/pdf" {
		t.Errorf("artifact = %s %s", art.Filename, art.MIMEType)
	}
	doc := art.Body
	if !bytes.HasPrefix(doc, []byte("%PDF-1.4\n")) {
		t.Fatalf("missing header")
	}
	if !bytes.HasSuffix(doc, []byte("%%EOF\n")) {
		t.Fatalf("missing EOF marker")
	}

	// startxref must point at the xref keyword.
	sx := bytes.LastIndex(doc, []byte("startxref\n"))
	rest := strings.SplitN(string(doc[sx+len("startxref\n"):]), "\n", 2)
	xrefAt, err := strconv.Atoi(rest[0])
	if err != nil {
		t.Fatalf("startxref value %q", rest[0])
	}
	if !bytes.HasPrefix(doc[xrefAt:], []byte("xref\n0 6\n")) {
		t.Fatalf("startxref %d does not point at xref table", xrefAt)
	}

	lines := strings.Split(string(doc[xrefAt:]), "\n")
	entries := lines[2:8]
	for i, entry := range entries {
		if len(entry)+1 != 20 {
			t.Errorf("xref entry %d is %d bytes, want 20", i, len(entry)+1)
		}
		m := xrefEntry.FindStringSubmatch(entry)
		if m == nil {
			t.Fatalf("xref entry %d malformed: %q", i, entry)
		}
		if i == 0 {
			if m[3] != "f" {
				t.Errorf("entry 0 must be free")
			}
			continue
		}
		off, _ := strconv.Atoi(m[1])
		want := fmt.Sprintf("%d 0 obj\n", i)
		if !bytes.HasPrefix(doc[off:], []byte(want)) {
			t.Errorf("object %d: offset %d starts with %q", i, off, doc[off:off+10])
		}
	}
	if !strings.Contains(string(doc), "trailer\n<< /Size 6 /Root 1 0 R >>") {
		t.Errorf("trailer missing")
	}
}

func TestMinimalPDF_StreamLengthAndContent(t *testing.T) {
	art, _ := MinimalPDF{}.Export(sampleSnapshot(), testOptions())
	doc := string(art.Body)

	m := regexp.MustCompile(`<< /Length (\d+) >>\nstream\n`).FindStringSubmatchIndex(doc)
	if m == nil {
		t.Fatal("content stream not found")
	}
	length, _ := strconv.Atoi(doc[m[2]:m[3]])
	streamStart := m[1]
	if !strings.HasPrefix(doc[streamStart+length:], "\nendstream") {
		t.Errorf("/Length %d does not end at endstream", length)
	}

	stream := doc[streamStart : streamStart+length]
	for _, want := range []string{
		"(Revenue: $150.05) Tj\nT* ",
		`(Wool Coat \(long\) ` + "\x97" + ` 1 \($10.05\)) Tj`,
		"(05: $100.10 / 1) Tj",
		"(Revenue trend) Tj",
	} {
		if !strings.Contains(stream, want) {
			t.Errorf("stream missing %q", want)
		}
	}
	if !strings.HasPrefix(stream, "BT\n") || !strings.HasSuffix(stream, "ET") {
		t.Errorf("stream not wrapped in BT/ET")
	}
}

func TestMinimalPDF_BodyOpensWithMetricRows(t *testing.T) {
	snap := sampleSnapshot()
	opts := testOptions()

	lines := documentLines(snap, opts)
	ms := metrics(snap)
	for i, m := range ms {
		if want := m.Label + ": " + m.display(opts); lines[i] != want {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want)
		}
	}
	if lines[len(ms)] != "" {
		t.Errorf("line after metrics = %q, want blank separator", lines[len(ms)])
	}

	art, err := MinimalPDF{}.Export(snap, opts)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !bytes.Contains(art.Body, []byte(" Td\n(Timeframe: February 2024) Tj\n")) {
		t.Errorf("pdf text does not start at the Timeframe row")
	}
}

func TestBuildPDF_EscapesReservedCharacters(t *testing.T) {
	doc, err := BuildPDF(`a\b (c)` + "\nnext")
	if err != nil {
		t.Fatalf("BuildPDF: %v", err)
	}
	if !strings.Contains(string(doc), `(a\\b \(c\)) Tj`+"\nT* (next) Tj") {
		t.Errorf("escaping wrong:\n%s", doc)
	}
}

// ─── Cross-format ─────────────────────────────────────────────────────────────

func TestFormatsCarryTheSameContent(t *testing.T) {
	snap := sampleSnapshot()
	opts := testOptions()

	pdfArt, _ := MinimalPDF{}.Export(snap, opts)
	xlsArt, _ := Spreadsheet{}.Export(snap, opts)
	csvArt, _ := CSV{}.Export(snap, opts)

	for _, m := range metrics(snap) {
		display := m.display(opts)
		if !bytes.Contains(pdfArt.Body, []byte(m.Label+": "+display)) {
			t.Errorf("pdf missing metric %s", m.Label)
		}
		if !bytes.Contains(xlsArt.Body, []byte("<td>"+m.Label+"</td>")) {
			t.Errorf("xls missing metric %s", m.Label)
		}
		if !bytes.Contains(csvArt.Body, []byte(m.Label+",")) {
			t.Errorf("csv missing metric %s", m.Label)
		}
	}
}

func TestForFormat(t *testing.T) {
	cases := []struct {
		format, engine string
		want           Exporter
	}{
		{"csv", "", CSV{}},
		{"XLS", "", Spreadsheet{}},
		{"pdf", "", MinimalPDF{}},
		{"pdf", "maroto", MarotoPDF{}},
	}
	for _, tc := range cases {
		got, err := ForFormat(tc.format, tc.engine)
		if err != nil {
			t.Fatalf("ForFormat(%s): %v", tc.format, err)
		}
		if got != tc.want {
			t.Errorf("ForFormat(%s, %s) = %T, want %T", tc.format, tc.engine, got, tc.want)
		}
	}

	_, err := ForFormat("docx", "")
	var ee *ExportError
	if !errors.As(err, &ee) || !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want unsupported ExportError", err)
	}
}

func TestMarotoPDF_Renders(t *testing.T) {
	art, err := MarotoPDF{}.Export(sampleSnapshot(), testOptions())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !bytes.HasPrefix(art.Body, []byte("%PDF-")) {
		t.Errorf("not a PDF: %q", art.Body[:8])
	}
	if art.Filename != "analytics-2024-02.pdf" {
		t.Errorf("filename = %s", art.Filename)
	}
}

func TestDefaultFormatters(t *testing.T) {
	cur := CurrencyFormatter("en-US", "EUR")(150.5)
	if !strings.Contains(cur, "150") {
		t.Errorf("currency = %q", cur)
	}
	if got := NumberFormatter("en")(1234567); got != "1,234,567" {
		t.Errorf("number = %q", got)
	}
	if got := NumberFormatter("de")(1234567); got != "1.234.567" {
		t.Errorf("number(de) = %q", got)
	}
}
