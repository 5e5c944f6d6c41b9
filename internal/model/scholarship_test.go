package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScholarship_OpenToAllMajors(t *testing.T) {
	tests := []struct {
		name   string
		majors []string
		want   bool
	}{
		{"empty is unrestricted", nil, true},
		{"Any sentinel is unrestricted", []string{"STEM", AnyMajor}, true},
		{"explicit list is restricted", []string{"STEM"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Scholarship{Majors: tt.majors}
			assert.Equal(t, tt.want, s.OpenToAllMajors())
		})
	}
}

func TestScholarship_OpenToAllStates(t *testing.T) {
	assert.True(t, (&Scholarship{}).OpenToAllStates())
	assert.True(t, (&Scholarship{States: []string{AllStates}}).OpenToAllStates())
	assert.False(t, (&Scholarship{States: []string{"California"}}).OpenToAllStates())
}

func TestScholarship_Clone(t *testing.T) {
	original := Scholarship{
		Name:         "Original",
		Majors:       []string{"STEM"},
		States:       []string{"California"},
		Requirements: []string{"Essay"},
	}

	clone := original.Clone()
	clone.Majors[0] = "changed"
	clone.States = append(clone.States, "Texas")
	clone.Requirements[0] = "changed"

	assert.Equal(t, "STEM", original.Majors[0])
	assert.Len(t, original.States, 1)
	assert.Equal(t, "Essay", original.Requirements[0])
}

func TestScholarship_CategoryOrDefault(t *testing.T) {
	assert.Equal(t, "STEM", (&Scholarship{Category: "STEM"}).CategoryOrDefault())
	assert.Equal(t, "General", (&Scholarship{}).CategoryOrDefault())
}

func TestUrgencyForDays(t *testing.T) {
	tests := []struct {
		want Urgency
		days int
	}{
		{UrgencyCritical, 0},
		{UrgencyCritical, 6},
		{UrgencyHigh, 7},
		{UrgencyHigh, 29},
		{UrgencyMedium, 30},
		{UrgencyMedium, 89},
		{UrgencyLow, 90},
		{UrgencyLow, UnknownDeadlineDays},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, UrgencyForDays(tt.days), "days=%d", tt.days)
	}
}
