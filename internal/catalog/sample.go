package catalog

import (
	"time"

	"github.com/scholarmatch/scholarmatch/internal/model"
)

// Sample returns a small demo catalog with deadlines derived from now.
// Used as a fallback when no catalog has been imported yet.
func Sample(now time.Time) []model.Scholarship {
	deadline := func(days int) string {
		return midnightUTC(now).AddDate(0, 0, days).Format(dateLayout)
	}

	scholarships := []model.Scholarship{
		{
			Name:         "STEM Excellence Scholarship",
			Amount:       model.NewAmount(5000),
			Deadline:     deadline(45),
			MinGPA:       3.5,
			Majors:       []string{"STEM", "Engineering"},
			GradeLevels:  []string{"High School Senior", "College Freshman"},
			States:       []string{model.AllStates},
			Interests:    []string{"STEM Clubs"},
			Category:     "STEM",
			Description:  "Annual scholarship for students pursuing STEM degrees with demonstrated academic excellence.",
			Requirements: []string{"Essay (500 words)", "2 Recommendation Letters", "Transcript"},
			URL:          "https://example.com/stem-scholarship",
			Eligibility:  "Minimum 3.5 GPA, pursuing STEM degree",
		},
		{
			Name:                 "First Generation Scholar Award",
			Amount:               model.NewAmount(10000),
			Deadline:             deadline(26),
			MinGPA:               3.0,
			Majors:               []string{model.AnyMajor},
			GradeLevels:          []string{"High School Senior"},
			States:               []string{model.AllStates},
			SpecialCircumstances: []string{"First Generation College Student"},
			Category:             "First Generation",
			Description:          "Supporting first-generation college students in their educational journey.",
			Requirements:         []string{"Personal Statement", "Proof of first-gen status", "Transcript"},
			URL:                  "https://example.com/first-gen",
			Eligibility:          "First generation college student, minimum 3.0 GPA",
		},
		{
			Name:         "Women in Technology Grant",
			Amount:       model.NewAmount(7500),
			Deadline:     deadline(88),
			MinGPA:       3.2,
			Majors:       []string{"STEM", "Engineering"},
			GradeLevels:  []string{"College Sophomore", "College Junior", "College Senior"},
			States:       []string{model.AllStates},
			Demographics: []string{"Female"},
			Interests:    []string{"STEM Clubs", "Entrepreneurship"},
			Category:     "Women in STEM",
			Description:  "Empowering women pursuing technology and engineering careers.",
			Requirements: []string{"Project Portfolio", "Essay", "Recommendation"},
			URL:          "https://example.com/women-tech",
			Eligibility:  "Female students in STEM fields, min 3.2 GPA",
		},
	}

	RefreshDeadlines(scholarships, now)
	return scholarships
}
