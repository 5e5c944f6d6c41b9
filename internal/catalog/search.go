package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/scholarmatch/scholarmatch/internal/model"
)

// SearchCriteria narrows a catalog search. All fields are optional and
// combined with AND.
type SearchCriteria struct {
	MinAmount *float64
	MaxAmount *float64
	Query     string
	Category  string
}

// Search returns the scholarships matching the criteria. The keyword query
// is case-insensitive over name, description, and category; amount bounds
// exclude non-numeric amounts.
func Search(scholarships []model.Scholarship, criteria SearchCriteria) []model.Scholarship {
	query := strings.ToLower(criteria.Query)

	results := make([]model.Scholarship, 0, len(scholarships))
	for _, s := range scholarships {
		if query != "" &&
			!strings.Contains(strings.ToLower(s.Name), query) &&
			!strings.Contains(strings.ToLower(s.Description), query) &&
			!strings.Contains(strings.ToLower(s.Category), query) {
			continue
		}
		if criteria.Category != "" && s.Category != criteria.Category {
			continue
		}
		if criteria.MinAmount != nil && (!s.Amount.Numeric || s.Amount.Value < *criteria.MinAmount) {
			continue
		}
		if criteria.MaxAmount != nil && (!s.Amount.Numeric || s.Amount.Value > *criteria.MaxAmount) {
			continue
		}
		results = append(results, s)
	}
	return results
}

// Categories returns the sorted unique categories present in the catalog.
// Scholarships without a category count under "General".
func Categories(scholarships []model.Scholarship) []string {
	seen := make(map[string]struct{})
	for i := range scholarships {
		seen[scholarships[i].CategoryOrDefault()] = struct{}{}
	}

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

// ByName finds a scholarship by exact, case-insensitive name.
func ByName(scholarships []model.Scholarship, name string) (model.Scholarship, bool) {
	for _, s := range scholarships {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return model.Scholarship{}, false
}

// Stats summarizes a whole catalog, before any matching.
type Stats struct {
	Categories        map[string]int
	TotalScholarships int
	TotalFunding      float64
	AverageAmount     float64
	UrgentDeadlines   int
}

// Statistics computes catalog-level totals. Non-numeric amounts are
// excluded from funding figures. An empty catalog yields zero values.
func Statistics(scholarships []model.Scholarship) Stats {
	stats := Stats{Categories: map[string]int{}}
	if len(scholarships) == 0 {
		return stats
	}

	stats.TotalScholarships = len(scholarships)

	numeric := 0
	for i := range scholarships {
		s := &scholarships[i]
		if s.Amount.Numeric {
			stats.TotalFunding += s.Amount.Value
			numeric++
		}
		if s.DeadlineDays < 30 {
			stats.UrgentDeadlines++
		}
		stats.Categories[s.CategoryOrDefault()]++
	}
	if numeric > 0 {
		stats.AverageAmount = stats.TotalFunding / float64(numeric)
	}
	return stats
}

// Validate checks a scholarship record for catalog-level problems and
// returns one message per problem. A valid record yields nil.
func Validate(s model.Scholarship) []string {
	var problems []string

	if s.Name == "" {
		problems = append(problems, "missing required field: name")
	}
	if !s.Amount.Numeric && s.Amount.Text == "" {
		problems = append(problems, "missing required field: amount")
	} else if s.Amount.Numeric && s.Amount.Value <= 0 {
		problems = append(problems, "amount must be a positive number")
	}
	if s.Deadline == "" {
		problems = append(problems, "missing required field: deadline")
	} else if _, err := parseDeadline(s.Deadline); err != nil {
		problems = append(problems, fmt.Sprintf("deadline must be in %s format", dateLayout))
	}
	if s.Category == "" {
		problems = append(problems, "missing required field: category")
	}
	if s.MinGPA < 0 || s.MinGPA > 4.0 {
		problems = append(problems, "min_gpa must be between 0 and 4.0")
	}

	return problems
}
