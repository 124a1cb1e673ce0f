package analytics

import "strings"

// StatusClass is the coarse bucket an order status rolls up into.
type StatusClass int

const (
	StatusUnclassified StatusClass = iota
	StatusCompleted
	StatusProcessing
	StatusCancelled
)

func (c StatusClass) String() string {
	switch c {
	case StatusCompleted:
		return "completed"
	case StatusProcessing:
		return "processing"
	case StatusCancelled:
		return "cancelled"
	}
	return "unclassified"
}

// The three sets are closed and mutually exclusive. A status added to the
// order workflow needs an explicit entry here; until then it is counted in
// the total and the raw histogram only.
var (
	completedStatuses = map[string]struct{}{
		"delivered": {},
		"completed": {},
	}
	processingStatuses = map[string]struct{}{
		"pending":          {},
		"processing":       {},
		"shipped":          {},
		"out_for_delivery": {},
		"in_review":        {},
		"reviewing":        {},
		"quoted":           {},
		"scheduled":        {},
	}
	cancelledStatuses = map[string]struct{}{
		"cancelled": {},
		"rejected":  {},
		"closed":    {},
		"archived":  {},
	}
)

// ClassifyStatus maps a raw order status to its coarse bucket.
func ClassifyStatus(status string) StatusClass {
	s := strings.ToLower(strings.TrimSpace(status))
	if _, ok := completedStatuses[s]; ok {
		return StatusCompleted
	}
	if _, ok := processingStatuses[s]; ok {
		return StatusProcessing
	}
	if _, ok := cancelledStatuses[s]; ok {
		return StatusCancelled
	}
	return StatusUnclassified
}
