// Package timerange turns dashboard calendar selections into half-open UTC
// intervals and the bucket keys used by the revenue trend.
package timerange

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Modeva-Ecommerce/modeva-analytics/models"
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
	yearLayout  = "2006"
)

// ValidationError reports a selection that cannot be resolved.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Range is a resolved selection: [Start, End) in UTC plus a display label.
type Range struct {
	Start time.Time
	End   time.Time
	Label string
}

// StartISO returns Start as an RFC 3339 timestamp.
func (r Range) StartISO() string { return r.Start.Format(time.RFC3339) }

// EndISO returns End as an RFC 3339 timestamp.
func (r Range) EndISO() string { return r.End.Format(time.RFC3339) }

// Contains reports whether t falls inside the half-open interval.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Resolve resolves sel with an English label.
func Resolve(sel models.TimeFilterValue) (Range, error) {
	return ResolveLocale(sel, "en")
}

// ResolveLocale resolves sel and formats its label for locale.
func ResolveLocale(sel models.TimeFilterValue, locale string) (Range, error) {
	start, err := parseStart(sel)
	if err != nil {
		return Range{}, err
	}

	var end time.Time
	switch sel.Granularity {
	case models.GranularityDay:
		end = start.AddDate(0, 0, 1)
	case models.GranularityMonth:
		end = start.AddDate(0, 1, 0)
	case models.GranularityYear:
		end = start.AddDate(1, 0, 0)
	}

	return Range{
		Start: start,
		End:   end,
		Label: formatLabel(sel.Granularity, start, locale),
	}, nil
}

// BucketKeys lists the trend buckets of sel in chronological order:
// "00:00".."23:00" for a day, "01".."28|29|30|31" for a month, "01".."12" for a year.
func BucketKeys(sel models.TimeFilterValue) ([]string, error) {
	start, err := parseStart(sel)
	if err != nil {
		return nil, err
	}

	switch sel.Granularity {
	case models.GranularityDay:
		keys := make([]string, 0, 24)
		for h := 0; h < 24; h++ {
			keys = append(keys, fmt.Sprintf("%02d:00", h))
		}
		return keys, nil
	case models.GranularityMonth:
		n := DaysInMonth(start.Year(), start.Month())
		keys := make([]string, 0, n)
		for d := 1; d <= n; d++ {
			keys = append(keys, fmt.Sprintf("%02d", d))
		}
		return keys, nil
	default:
		keys := make([]string, 0, 12)
		for m := 1; m <= 12; m++ {
			keys = append(keys, fmt.Sprintf("%02d", m))
		}
		return keys, nil
	}
}

// BucketFor maps a timestamp inside the resolved range of sel to its bucket key.
// Timestamps outside the range must be filtered by the caller.
func BucketFor(sel models.TimeFilterValue, t time.Time) string {
	t = t.UTC()
	switch sel.Granularity {
	case models.GranularityDay:
		return fmt.Sprintf("%02d:00", t.Hour())
	case models.GranularityMonth:
		return fmt.Sprintf("%02d", t.Day())
	case models.GranularityYear:
		return fmt.Sprintf("%02d", int(t.Month()))
	}
	return ""
}

// Previous returns the selection immediately before sel at the same granularity.
func Previous(sel models.TimeFilterValue) (models.TimeFilterValue, error) {
	start, err := parseStart(sel)
	if err != nil {
		return models.TimeFilterValue{}, err
	}

	switch sel.Granularity {
	case models.GranularityDay:
		return models.TimeFilterValue{Granularity: sel.Granularity, Value: start.AddDate(0, 0, -1).Format(dayLayout)}, nil
	case models.GranularityMonth:
		return models.TimeFilterValue{Granularity: sel.Granularity, Value: start.AddDate(0, -1, 0).Format(monthLayout)}, nil
	default:
		prev := start.AddDate(-1, 0, 0)
		if prev.Year() < 1 {
			return models.TimeFilterValue{}, &ValidationError{Field: "value", Value: sel.Value, Reason: "no previous year"}
		}
		return models.TimeFilterValue{Granularity: sel.Granularity, Value: prev.Format(yearLayout)}, nil
	}
}

// Current returns the selection of granularity g that contains now.
func Current(g models.Granularity, now time.Time) models.TimeFilterValue {
	now = now.UTC()
	switch g {
	case models.GranularityDay:
		return models.TimeFilterValue{Granularity: g, Value: now.Format(dayLayout)}
	case models.GranularityYear:
		return models.TimeFilterValue{Granularity: g, Value: now.Format(yearLayout)}
	default:
		return models.TimeFilterValue{Granularity: models.GranularityMonth, Value: now.Format(monthLayout)}
	}
}

// Validate checks sel without resolving it.
func Validate(sel models.TimeFilterValue) error {
	_, err := parseStart(sel)
	return err
}

// DaysInMonth returns the number of days of month m in year y.
func DaysInMonth(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func parseStart(sel models.TimeFilterValue) (time.Time, error) {
	var layout string
	switch sel.Granularity {
	case models.GranularityDay:
		layout = dayLayout
	case models.GranularityMonth:
		layout = monthLayout
	case models.GranularityYear:
		layout = yearLayout
	default:
		return time.Time{}, &ValidationError{Field: "granularity", Value: string(sel.Granularity), Reason: "must be one of day, month, year"}
	}

	if len(sel.Value) != len(layout) {
		return time.Time{}, &ValidationError{Field: "value", Value: sel.Value, Reason: "expected format " + formatHint(sel.Granularity)}
	}
	// time.Parse tolerates some non-digit input in numeric fields, so check first.
	for i := 0; i < len(layout); i++ {
		if layout[i] == '-' {
			if sel.Value[i] != '-' {
				return time.Time{}, &ValidationError{Field: "value", Value: sel.Value, Reason: "expected format " + formatHint(sel.Granularity)}
			}
			continue
		}
		if _, err := strconv.Atoi(sel.Value[i : i+1]); err != nil {
			return time.Time{}, &ValidationError{Field: "value", Value: sel.Value, Reason: "non-numeric date part"}
		}
	}

	start, err := time.ParseInLocation(layout, sel.Value, time.UTC)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "value", Value: sel.Value, Reason: "not a calendar date"}
	}
	if start.Year() < 1 || start.Year() > 9998 {
		return time.Time{}, &ValidationError{Field: "value", Value: sel.Value, Reason: "year out of range"}
	}
	return start, nil
}

func formatHint(g models.Granularity) string {
	switch g {
	case models.GranularityDay:
		return "YYYY-MM-DD"
	case models.GranularityMonth:
		return "YYYY-MM"
	}
	return "YYYY"
}
