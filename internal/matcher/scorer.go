// Package matcher implements the scholarship matching engine: a hard-filter
// eligibility gate followed by weighted multi-factor scoring, plus the
// aggregation and filtering utilities that operate on its output.
package matcher

import (
	"fmt"
	"strings"

	"github.com/scholarmatch/scholarmatch/internal/model"
)

// Factor weights. The final score is normalized against the full table even
// though the hard filters already guarantee full credit for GPA and grade
// level; that keeps percentages stable and interpretable.
const (
	weightGPA           = 20
	weightMajor         = 25
	weightGradeLevel    = 20
	weightState         = 10
	weightDemographics  = 10
	weightInterests     = 10
	weightCircumstances = 5

	totalWeight = weightGPA + weightMajor + weightGradeLevel + weightState +
		weightDemographics + weightInterests + weightCircumstances
)

const hardFailTag = "HARD FAIL"

// Result is the outcome of scoring one (profile, scholarship) pair.
// A hard failure carries score 0 and exactly one tagged reason.
type Result struct {
	Reasons     []string
	Score       int
	HardFailure bool
}

// Score evaluates a scholarship against a profile. Eligibility gates run
// first, in fixed order, and short-circuit; only eligible pairs reach the
// weighted factors. The returned score is an integer percentage in [0,100].
func Score(profile model.Profile, s model.Scholarship) Result {
	// Hard filter 1: GPA floor.
	if s.MinGPA > 0 && profile.GPA < s.MinGPA {
		return hardFail(fmt.Sprintf("GPA requirement not met (need %.1f, have %.1f)", s.MinGPA, profile.GPA))
	}

	// Hard filter 2: grade level.
	if len(s.GradeLevels) > 0 && !containsString(s.GradeLevels, profile.GradeLevel) {
		return hardFail(fmt.Sprintf("grade level not eligible (need: %s, have: %s)",
			strings.Join(s.GradeLevels, ", "), profile.GradeLevel))
	}

	// Hard filter 3: state, unless open to all states.
	if len(s.States) > 0 && !s.OpenToAllStates() && !containsString(s.States, profile.State) {
		return hardFail(fmt.Sprintf("location not eligible (need: %s, have: %s)",
			strings.Join(s.States, ", "), profile.State))
	}

	score := 0
	reasons := make([]string, 0, 7)

	// 1. GPA: always full credit once the hard filter passed.
	score += weightGPA
	if s.MinGPA > 0 {
		reasons = append(reasons, fmt.Sprintf("✓ Meets GPA requirement (%.1f)", s.MinGPA))
	} else {
		reasons = append(reasons, "✓ No GPA requirement")
	}

	// 2. Major.
	switch {
	case len(s.Majors) > 0 && containsString(s.Majors, profile.Major):
		score += weightMajor
		reasons = append(reasons, fmt.Sprintf("✓ Perfect major match: %s", profile.Major))
	case s.OpenToAllMajors():
		score += weightMajor
		reasons = append(reasons, "✓ Open to all majors")
	default:
		reasons = append(reasons, fmt.Sprintf("○ Major preference: %s (you have: %s)",
			strings.Join(s.Majors, ", "), profile.Major))
	}

	// 3. Grade level: guaranteed by the hard filter, restated for the reader.
	score += weightGradeLevel
	reasons = append(reasons, "✓ Grade level eligible")

	// 4. State.
	if len(s.States) > 0 && !s.OpenToAllStates() {
		score += weightState
		reasons = append(reasons, fmt.Sprintf("✓ State match: %s", profile.State))
	} else {
		score += weightState
		reasons = append(reasons, "✓ Available nationwide")
	}

	// 5. Demographics: ethnicity and gender awards are independent halves.
	if len(s.Demographics) == 0 {
		score += weightDemographics / 2
		reasons = append(reasons, "✓ No demographic restrictions")
	} else {
		matched := false
		if shared := intersect(profile.Ethnicity, s.Demographics); len(shared) > 0 {
			score += weightDemographics / 2
			matched = true
			reasons = append(reasons, fmt.Sprintf("✓ Demographics match: %s", strings.Join(shared, ", ")))
		}
		if profile.Gender != model.GenderUndisclosed && containsString(s.Demographics, profile.Gender) {
			score += weightDemographics / 2
			matched = true
			reasons = append(reasons, fmt.Sprintf("✓ Gender match: %s", profile.Gender))
		}
		if !matched {
			reasons = append(reasons, fmt.Sprintf("○ Demographic preference: %s",
				strings.Join(head(s.Demographics, 2), ", ")))
		}
	}

	// 6. Interests: 3 points per shared interest, capped at the weight.
	if len(s.Interests) == 0 {
		score += weightInterests / 2
		reasons = append(reasons, "✓ No interest requirements")
	} else if shared := intersect(profile.Interests, s.Interests); len(shared) > 0 {
		pts := len(shared) * 3
		if pts > weightInterests {
			pts = weightInterests
		}
		score += pts
		reasons = append(reasons, fmt.Sprintf("✓ Interests: %s", strings.Join(head(shared, 3), ", ")))
	} else {
		reasons = append(reasons, fmt.Sprintf("○ Preferred interests: %s",
			strings.Join(head(s.Interests, 2), ", ")))
	}

	// 7. Special circumstances: partial credit when unrestricted.
	if len(s.SpecialCircumstances) == 0 {
		score += 2
	} else if shared := intersect(profile.SpecialCircumstances, s.SpecialCircumstances); len(shared) > 0 {
		score += weightCircumstances
		reasons = append(reasons, fmt.Sprintf("✓ Special: %s", strings.Join(shared, ", ")))
	} else {
		reasons = append(reasons, fmt.Sprintf("○ Preference for: %s",
			strings.Join(s.SpecialCircumstances, ", ")))
	}

	return Result{
		Score:   score * 100 / totalWeight,
		Reasons: reasons,
	}
}

func hardFail(detail string) Result {
	return Result{
		Score:       0,
		Reasons:     []string{fmt.Sprintf("✗ %s: %s", hardFailTag, detail)},
		HardFailure: true,
	}
}

func containsString(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

// intersect returns the members of a that appear in b, preserving a's order
// so reason strings are deterministic.
func intersect(a, b []string) []string {
	var shared []string
	for _, v := range a {
		if containsString(b, v) {
			shared = append(shared, v)
		}
	}
	return shared
}

func head(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}
