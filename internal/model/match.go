package model

// Urgency classifies how close a scholarship deadline is.
type Urgency string

// Urgency levels, derived from days until deadline.
const (
	UrgencyCritical Urgency = "critical" // under 7 days
	UrgencyHigh     Urgency = "high"     // under 30 days
	UrgencyMedium   Urgency = "medium"   // under 90 days
	UrgencyLow      Urgency = "low"
)

// UrgencyForDays maps days-until-deadline onto an urgency level.
func UrgencyForDays(days int) Urgency {
	switch {
	case days < 7:
		return UrgencyCritical
	case days < 30:
		return UrgencyHigh
	case days < 90:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

// Match is a scholarship that passed the hard filters and the score
// threshold for one profile. It owns a deep copy of the scholarship and is
// never mutated after construction.
type Match struct {
	Scholarship

	Score   int      `json:"match_score"`
	Reasons []string `json:"match_reasons"`
	Urgency Urgency  `json:"urgency"`
}

// NewMatch builds a match from a scholarship, copying the scholarship and
// deriving urgency from its deadline.
func NewMatch(s Scholarship, score int, reasons []string) Match {
	return Match{
		Scholarship: s.Clone(),
		Score:       score,
		Reasons:     reasons,
		Urgency:     UrgencyForDays(s.DeadlineDays),
	}
}
