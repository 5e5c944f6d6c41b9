package matcher

import "github.com/scholarmatch/scholarmatch/internal/model"

// topValueCount caps TotalPotentialValue at the best-ranked matches,
// reflecting realistic near-term value rather than total catalog value.
const topValueCount = 10

// urgentWindowDays bounds what counts as an urgent deadline.
const urgentWindowDays = 30

// Summary holds aggregate statistics over a match list.
type Summary struct {
	Categories          map[string]int `json:"categories"`
	TotalMatches        int            `json:"total_matches"`
	TotalPotentialValue float64        `json:"total_potential_value"`
	AverageScore        int            `json:"average_match_score"`
	UrgentDeadlines     int            `json:"urgent_deadlines"`
}

// Summarize computes summary statistics over matches, which must be in the
// engine's sort order. An empty list yields a zero-valued summary.
func Summarize(matches []model.Match) Summary {
	summary := Summary{Categories: map[string]int{}}
	if len(matches) == 0 {
		return summary
	}

	summary.TotalMatches = len(matches)

	scoreTotal := 0
	for i := range matches {
		m := &matches[i]

		if i < topValueCount && m.Amount.Numeric {
			summary.TotalPotentialValue += m.Amount.Value
		}
		scoreTotal += m.Score
		if m.DeadlineDays < urgentWindowDays {
			summary.UrgentDeadlines++
		}
		summary.Categories[m.CategoryOrDefault()]++
	}

	summary.AverageScore = scoreTotal / len(matches)
	return summary
}
