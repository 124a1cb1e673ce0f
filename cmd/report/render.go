package main

import (
	"fmt"
	"io"

	"github.com/Modeva-Ecommerce/modeva-analytics/models"
	"github.com/Modeva-Ecommerce/modeva-analytics/services/report"
	"github.com/olekukonko/tablewriter"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(header)
	tw.SetBorder(true)
	tw.SetRowLine(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAutoWrapText(false)
	return tw
}

func renderSnapshot(w io.Writer, snap *models.AnalyticsSnapshot, opts report.Options) error {
	fmt.Fprintf(w, "%s (%s → %s)\n", snap.Label, snap.Start, snap.End)

	tw := newTable(w, "METRIC", "VALUE")
	tw.AppendBulk([][]string{
		{"Revenue", opts.Currency(snap.Revenue)},
		{"Orders", opts.Number(snap.Orders.Total)},
		{"Completed", opts.Number(snap.Orders.Completed)},
		{"Processing", opts.Number(snap.Orders.Processing)},
		{"Cancelled", opts.Number(snap.Orders.Cancelled)},
		{"Average order value", opts.Currency(snap.AverageOrderValue)},
		{"New customers", opts.Number(snap.NewCustomers)},
		{"Blog posts", opts.Number(snap.Content.BlogPosts)},
		{"Contact messages", opts.Number(snap.Content.ContactMessages)},
		{"Design requests", opts.Number(snap.Content.DesignRequests)},
		{"Career applications", opts.Number(snap.Content.CareerApplications)},
	})
	tw.Render()

	if len(snap.BestSellers) > 0 {
		fmt.Fprintln(w, "\nBest sellers")
		tw = newTable(w, "#", "PRODUCT", "QUANTITY", "REVENUE")
		for i, b := range snap.BestSellers {
			tw.Append([]string{fmt.Sprint(i + 1), b.Name, opts.Number(b.Quantity), opts.Currency(b.Revenue)})
		}
		tw.Render()
	}

	fmt.Fprintln(w, "\nRevenue trend")
	tw = newTable(w, "BUCKET", "ORDERS", "REVENUE")
	tw.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})
	for _, p := range snap.Orders.Trend {
		tw.Append([]string{p.Bucket, opts.Number(p.Orders), opts.Currency(p.Revenue)})
	}
	tw.Render()
	return nil
}

func renderComparison(w io.Writer, cmp *models.AnalyticsComparison, opts report.Options) error {
	fmt.Fprintf(w, "%s vs %s\n", cmp.Primary.Label, cmp.Comparison.Label)

	tw := newTable(w, "METRIC", cmp.Primary.Range.Value, cmp.Comparison.Range.Value, "CHANGE", "%")
	row := func(label, a, b, change string, d models.NumberDiff) {
		tw.Append([]string{label, a, b, change, fmt.Sprintf("%+.1f%%", d.Percent)})
	}
	row("Revenue", opts.Currency(cmp.Primary.Revenue), opts.Currency(cmp.Comparison.Revenue), opts.Currency(cmp.Revenue.Absolute), cmp.Revenue)
	row("Orders", opts.Number(cmp.Primary.Orders.Total), opts.Number(cmp.Comparison.Orders.Total), fmt.Sprintf("%+.0f", cmp.Orders.Absolute), cmp.Orders)
	row("Completed", opts.Number(cmp.Primary.Orders.Completed), opts.Number(cmp.Comparison.Orders.Completed), fmt.Sprintf("%+.0f", cmp.CompletedOrders.Absolute), cmp.CompletedOrders)
	row("Average order value", opts.Currency(cmp.Primary.AverageOrderValue), opts.Currency(cmp.Comparison.AverageOrderValue), opts.Currency(cmp.AverageOrderValue.Absolute), cmp.AverageOrderValue)
	row("New customers", opts.Number(cmp.Primary.NewCustomers), opts.Number(cmp.Comparison.NewCustomers), fmt.Sprintf("%+.0f", cmp.NewCustomers.Absolute), cmp.NewCustomers)
	tw.Render()
	return nil
}
