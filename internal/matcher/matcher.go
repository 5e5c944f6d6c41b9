package matcher

import (
	"log/slog"
	"sort"

	"github.com/scholarmatch/scholarmatch/internal/model"
)

// Config holds configuration options for the matching engine.
type Config struct {
	// Diagnostics, when set, receives every scholarship excluded by the
	// hard filters during a run.
	Diagnostics Collector
	// Threshold is the minimum score (inclusive) a scholarship must reach
	// to appear in the results.
	Threshold int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Threshold: 40}
}

// Engine matches a scholarship catalog against one profile. It is stateless
// between runs; each run is a pure function of the profile and the catalog
// snapshot.
type Engine struct {
	diagnostics Collector
	threshold   int
}

// New creates a matching engine with the default configuration.
func New() *Engine {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a matching engine with custom configuration.
func NewWithConfig(config Config) *Engine {
	return &Engine{
		threshold:   config.Threshold,
		diagnostics: config.Diagnostics,
	}
}

// Match scores every scholarship against the profile and returns the
// qualifying ones, sorted by score descending, then amount descending
// (non-numeric amounts rank as 0), then days-until-deadline ascending.
// The sort is stable, so equal keys keep catalog order. The input catalog
// is treated as read-only; returned matches hold deep copies.
func (e *Engine) Match(profile model.Profile, scholarships []model.Scholarship) []model.Match {
	matches := make([]model.Match, 0, len(scholarships))
	excluded := 0

	for _, s := range scholarships {
		result := Score(profile, s)

		if result.HardFailure {
			excluded++
			if e.diagnostics != nil {
				e.diagnostics.HardFailure(s.Name, result.Reasons[0])
			}
			continue
		}
		if result.Score < e.threshold {
			continue
		}

		matches = append(matches, model.NewMatch(s, result.Score, result.Reasons))
	}

	if excluded > 0 {
		slog.Debug("scholarships excluded by hard filters", "count", excluded)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := &matches[i], &matches[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if av, bv := a.Amount.SortValue(), b.Amount.SortValue(); av != bv {
			return av > bv
		}
		return a.DeadlineDays < b.DeadlineDays
	})

	return matches
}

// HardFailure describes a scholarship a profile is ineligible for.
type HardFailure struct {
	Scholarship string       `json:"scholarship"`
	Category    string       `json:"category"`
	Reason      string       `json:"failure_reason"`
	Amount      model.Amount `json:"amount"`
}

// HardFailures reports every scholarship the profile fails a hard filter
// on, with the failing reason. Useful for understanding why a student does
// not match parts of the catalog.
func (e *Engine) HardFailures(profile model.Profile, scholarships []model.Scholarship) []HardFailure {
	var failures []HardFailure
	for _, s := range scholarships {
		result := Score(profile, s)
		if !result.HardFailure {
			continue
		}
		failures = append(failures, HardFailure{
			Scholarship: s.Name,
			Amount:      s.Amount,
			Category:    s.CategoryOrDefault(),
			Reason:      result.Reasons[0],
		})
	}
	return failures
}
