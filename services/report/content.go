package report

import (
	"fmt"
	"strconv"

	"github.com/Modeva-Ecommerce/modeva-analytics/models"
)

type metricKind int

const (
	kindText metricKind = iota
	kindMoney
	kindCount
)

type metric struct {
	Label string
	Kind  metricKind
	Text  string
	Value float64
}

// metrics is the flat metric table shared by every format, in report order.
func metrics(snap *models.AnalyticsSnapshot) []metric {
	return []metric{
		{Label: "Timeframe", Kind: kindText, Text: snap.Label},
		{Label: "Revenue", Kind: kindMoney, Value: snap.Revenue},
		{Label: "Total orders", Kind: kindCount, Value: float64(snap.Orders.Total)},
		{Label: "Completed orders", Kind: kindCount, Value: float64(snap.Orders.Completed)},
		{Label: "Processing orders", Kind: kindCount, Value: float64(snap.Orders.Processing)},
		{Label: "Cancelled orders", Kind: kindCount, Value: float64(snap.Orders.Cancelled)},
		{Label: "Average order value", Kind: kindMoney, Value: snap.AverageOrderValue},
		{Label: "New customers", Kind: kindCount, Value: float64(snap.NewCustomers)},
		{Label: "Blog posts", Kind: kindCount, Value: float64(snap.Content.BlogPosts)},
		{Label: "Contact messages", Kind: kindCount, Value: float64(snap.Content.ContactMessages)},
		{Label: "Design requests", Kind: kindCount, Value: float64(snap.Content.DesignRequests)},
		{Label: "Career applications", Kind: kindCount, Value: float64(snap.Content.CareerApplications)},
	}
}

// raw renders the machine-readable value used by the CSV.
func (m metric) raw() string {
	if m.Kind == kindText {
		return m.Text
	}
	return formatRaw(m.Value)
}

// display renders the value through the caller's formatters.
func (m metric) display(opts Options) string {
	switch m.Kind {
	case kindMoney:
		return opts.Currency(m.Value)
	case kindCount:
		return opts.Number(int(m.Value))
	}
	return m.Text
}

func formatRaw(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// documentLines is the text body of the PDF renderers. It opens with the
// same metric rows as the CSV, starting at Timeframe.
func documentLines(snap *models.AnalyticsSnapshot, opts Options) []string {
	var lines []string
	for _, m := range metrics(snap) {
		lines = append(lines, m.Label+": "+m.display(opts))
	}

	lines = append(lines, "", "Best sellers")
	if len(snap.BestSellers) == 0 {
		lines = append(lines, "No sales in this period")
	}
	for _, b := range snap.BestSellers {
		lines = append(lines, fmt.Sprintf("%s — %s (%s)", b.Name, opts.Number(b.Quantity), opts.Currency(b.Revenue)))
	}

	lines = append(lines, "", "Revenue trend")
	for _, p := range snap.Orders.Trend {
		lines = append(lines, fmt.Sprintf("%s: %s / %s", p.Bucket, opts.Currency(p.Revenue), opts.Number(p.Orders)))
	}
	return lines
}
