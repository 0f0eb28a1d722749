package search

import (
	"sort"

	"club-events/internal/models"
)

// Display priority per status. Lower sorts first.
const (
	priorityOngoing   = 0
	priorityUpcoming  = 1
	priorityCompleted = 2
)

// Rank orders results for display: ongoing events first, then upcoming
// by soonest start, then completed from most recent to oldest. Equal
// keys keep their input order. The input slice is not modified.
func Rank(results []Result) []Result {
	out := make([]Result, len(results))
	copy(out, results)

	sort.SliceStable(out, func(i, j int) bool {
		pi := statusPriority(out[i].Classification.Status)
		pj := statusPriority(out[j].Classification.Status)
		if pi != pj {
			return pi < pj
		}
		a, b := out[i].Event.ScheduledAt, out[j].Event.ScheduledAt
		if a.Equal(b) {
			return false
		}
		if pi == priorityCompleted {
			return a.After(b)
		}
		return a.Before(b)
	})

	return out
}

func statusPriority(s models.Status) int {
	switch s {
	case models.StatusOngoing:
		return priorityOngoing
	case models.StatusUpcoming:
		return priorityUpcoming
	default:
		return priorityCompleted
	}
}
