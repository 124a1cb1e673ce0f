package analytics

import (
	"math"

	"github.com/Modeva-Ecommerce/modeva-analytics/models"
)

// Diff returns the change of current against baseline. A zero baseline gives
// 0% when current is also zero and 100% otherwise.
func Diff(current, baseline float64) models.NumberDiff {
	d := models.NumberDiff{Absolute: current - baseline}
	switch {
	case baseline != 0:
		d.Percent = (current - baseline) / math.Abs(baseline) * 100
	case current == 0:
		d.Percent = 0
	default:
		d.Percent = 100
	}
	return d
}

// Compare diffs the headline metrics of primary against comparison.
func Compare(primary, comparison *models.AnalyticsSnapshot) models.AnalyticsComparison {
	return models.AnalyticsComparison{
		Primary:           primary,
		Comparison:        comparison,
		Revenue:           Diff(primary.Revenue, comparison.Revenue),
		Orders:            Diff(float64(primary.Orders.Total), float64(comparison.Orders.Total)),
		NewCustomers:      Diff(float64(primary.NewCustomers), float64(comparison.NewCustomers)),
		AverageOrderValue: Diff(primary.AverageOrderValue, comparison.AverageOrderValue),
		CompletedOrders:   Diff(float64(primary.Orders.Completed), float64(comparison.Orders.Completed)),
	}
}
