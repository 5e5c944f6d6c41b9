// Package model defines the core domain models used throughout the application.
package model

// Sentinel values carried inside catalog records.
const (
	// AnyMajor inside Scholarship.Majors means the award is open to all majors.
	AnyMajor = "Any"
	// AllStates inside Scholarship.States means the award has no residency restriction.
	AllStates = "All"
	// UnknownDeadlineDays marks a missing or unparseable deadline. Treated as
	// non-urgent everywhere.
	UnknownDeadlineDays = 999
)

// Scholarship represents a single award in the catalog. Name is the unique
// key within a catalog, compared case-insensitively. Empty requirement sets
// mean "unrestricted"; see the scorer for how each set is interpreted.
type Scholarship struct {
	Name                 string   `json:"name"`
	Amount               Amount   `json:"amount"`
	Deadline             string   `json:"deadline"` // YYYY-MM-DD
	Category             string   `json:"category"`
	MinGPA               float64  `json:"min_gpa"`
	Majors               []string `json:"majors"`
	GradeLevels          []string `json:"grade_levels"`
	States               []string `json:"states"`
	Demographics         []string `json:"demographics"`
	Interests            []string `json:"interests"`
	SpecialCircumstances []string `json:"special_circumstances"`
	Description          string   `json:"description"`
	Requirements         []string `json:"requirements"`
	URL                  string   `json:"url"`
	Eligibility          string   `json:"eligibility,omitempty"`

	// DeadlineDays is derived from Deadline relative to the current date on
	// every catalog load. The matching core never parses dates itself.
	DeadlineDays int `json:"deadline_days"`
}

// OpenToAllMajors reports whether the award has no major restriction.
func (s *Scholarship) OpenToAllMajors() bool {
	return len(s.Majors) == 0 || contains(s.Majors, AnyMajor)
}

// OpenToAllStates reports whether the award has no residency restriction.
func (s *Scholarship) OpenToAllStates() bool {
	return len(s.States) == 0 || contains(s.States, AllStates)
}

// Clone returns a deep copy of the scholarship. Matches are built from
// clones so repeated runs never annotate the caller's catalog in place.
func (s Scholarship) Clone() Scholarship {
	c := s
	c.Majors = cloneStrings(s.Majors)
	c.GradeLevels = cloneStrings(s.GradeLevels)
	c.States = cloneStrings(s.States)
	c.Demographics = cloneStrings(s.Demographics)
	c.Interests = cloneStrings(s.Interests)
	c.SpecialCircumstances = cloneStrings(s.SpecialCircumstances)
	c.Requirements = cloneStrings(s.Requirements)
	return c
}

// CategoryOrDefault returns the category, falling back to "General".
func (s *Scholarship) CategoryOrDefault() string {
	if s.Category == "" {
		return "General"
	}
	return s.Category
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}
