package main

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/Modeva-Ecommerce/modeva-analytics/models"
	"github.com/Modeva-Ecommerce/modeva-analytics/services/analytics"
	"github.com/Modeva-Ecommerce/modeva-analytics/services/report"
	"github.com/Modeva-Ecommerce/modeva-analytics/utils/timerange"
)

func plainOptions() report.Options {
	return report.Options{
		Locale:   "en",
		Currency: func(v float64) string { return fmt.Sprintf("$%.2f", v) },
		Number:   strconv.Itoa,
	}
}

func snapshotFor(value string, revenue float64, orders int) *models.AnalyticsSnapshot {
	return &models.AnalyticsSnapshot{
		Range:   models.TimeFilterValue{Granularity: models.GranularityYear, Value: value},
		Label:   value,
		Revenue: revenue,
		Orders: models.OrderBreakdown{
			Total: orders,
			Trend: []models.TimeSeriesPoint{{Bucket: "01", Orders: orders, Revenue: revenue}},
		},
	}
}

func TestRenderSnapshot(t *testing.T) {
	snap := snapshotFor("2024", 1250.5, 3)
	snap.BestSellers = []models.BestSellerRecord{{ProductID: "p1", Name: "Wool Coat", Quantity: 4, Revenue: 800}}

	var buf bytes.Buffer
	if err := renderSnapshot(&buf, snap, plainOptions()); err != nil {
		t.Fatalf("renderSnapshot: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"$1250.50", "Wool Coat", "Best sellers", "Revenue trend", "METRIC"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSnapshot_NoBestSellers(t *testing.T) {
	var buf bytes.Buffer
	_ = renderSnapshot(&buf, snapshotFor("2024", 0, 0), plainOptions())
	if strings.Contains(buf.String(), "Best sellers") {
		t.Error("empty best seller table rendered")
	}
}

func TestRenderComparison(t *testing.T) {
	cmp := analytics.Compare(snapshotFor("2024", 150, 3), snapshotFor("2023", 100, 2))

	var buf bytes.Buffer
	if err := renderComparison(&buf, &cmp, plainOptions()); err != nil {
		t.Fatalf("renderComparison: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"2024 vs 2023", "+50.0%", "$50.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestComparisonSelection(t *testing.T) {
	month := func(v string) models.TimeFilterValue {
		return models.TimeFilterValue{Granularity: models.GranularityMonth, Value: v}
	}
	year := func(v string) models.TimeFilterValue {
		return models.TimeFilterValue{Granularity: models.GranularityYear, Value: v}
	}

	cases := []struct {
		name    string
		primary models.TimeFilterValue
		value   string
		want    string
		wantErr bool
	}{
		{"previous by default", month("2024-03"), "", "2024-02", false},
		{"explicit value", month("2024-03"), "2023-03", "2023-03", false},
		{"explicit value on the first year", year("0001"), "0005", "0005", false},
		{"no previous year", year("0001"), "", "", true},
		{"malformed value", month("2024-03"), "2023-3", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := comparisonSelection(tc.primary, tc.value)
			if tc.wantErr {
				var ve *timerange.ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("err = %v, want ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("comparisonSelection: %v", err)
			}
			if got.Value != tc.want || got.Granularity != tc.primary.Granularity {
				t.Errorf("got %+v, want %s", got, tc.want)
			}
		})
	}
}
