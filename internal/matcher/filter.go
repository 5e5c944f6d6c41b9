package matcher

import "github.com/scholarmatch/scholarmatch/internal/model"

// Deadline range names accepted by Criteria.DeadlineRange.
const (
	DeadlineWeek    = "week"
	DeadlineMonth   = "month"
	DeadlineQuarter = "quarter"
	DeadlineYear    = "year"
)

var deadlineLimits = map[string]int{
	DeadlineWeek:    7,
	DeadlineMonth:   30,
	DeadlineQuarter: 90,
	DeadlineYear:    365,
}

// DeadlineLimit resolves a deadline range name to its inclusive upper bound
// in days. Unrecognized names fall back to the year bound.
func DeadlineLimit(name string) int {
	if limit, ok := deadlineLimits[name]; ok {
		return limit
	}
	return deadlineLimits[DeadlineYear]
}

// Criteria narrows a match list. Every field is optional; the set criteria
// are combined with AND. Amount bounds exclude non-numeric amounts rather
// than erroring.
type Criteria struct {
	MinAmount     *float64
	MaxAmount     *float64
	Category      string
	DeadlineRange string
}

// IsZero reports whether no criterion is set.
func (c Criteria) IsZero() bool {
	return c.Category == "" && c.MinAmount == nil && c.MaxAmount == nil && c.DeadlineRange == ""
}

// Filter returns the matches satisfying the criteria. It never mutates the
// input and is idempotent: re-filtering its own output with the same
// criteria returns an equal list.
func Filter(matches []model.Match, criteria Criteria) []model.Match {
	filtered := make([]model.Match, 0, len(matches))

	maxDays := 0
	if criteria.DeadlineRange != "" {
		maxDays = DeadlineLimit(criteria.DeadlineRange)
	}

	for _, m := range matches {
		if criteria.Category != "" && m.Category != criteria.Category {
			continue
		}
		if criteria.MinAmount != nil && (!m.Amount.Numeric || m.Amount.Value < *criteria.MinAmount) {
			continue
		}
		if criteria.MaxAmount != nil && (!m.Amount.Numeric || m.Amount.Value > *criteria.MaxAmount) {
			continue
		}
		if criteria.DeadlineRange != "" && m.DeadlineDays > maxDays {
			continue
		}
		filtered = append(filtered, m)
	}

	return filtered
}
