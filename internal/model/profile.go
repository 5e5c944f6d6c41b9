package model

import "time"

// GenderUndisclosed is excluded from demographic matching.
const GenderUndisclosed = "Prefer not to say"

// Profile represents a student's submitted profile. It is immutable during
// a matching run. ID and CreatedAt are assigned by the store on save;
// required fields (name, email, grade level, major, state) are validated by
// the presentation layer before a profile reaches the matching core.
type Profile struct {
	CreatedAt            time.Time `json:"created_at,omitempty"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	GradeLevel           string    `json:"grade_level"`
	Major                string    `json:"major"`
	State                string    `json:"state"`
	Gender               string    `json:"gender"`
	Ethnicity            []string  `json:"ethnicity"`
	Interests            []string  `json:"interests"`
	SpecialCircumstances []string  `json:"special_circumstances"`
	GPA                  float64   `json:"gpa"`
	ID                   int64     `json:"id,omitempty"`
}
