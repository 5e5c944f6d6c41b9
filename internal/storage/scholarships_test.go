package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarmatch/scholarmatch/internal/model"
)

func testScholarships() []model.Scholarship {
	return []model.Scholarship{
		{
			Name:                 "STEM Excellence Scholarship",
			Amount:               model.NewAmount(5000),
			Deadline:             "2026-01-15",
			Category:             "STEM",
			MinGPA:               3.5,
			Majors:               []string{"STEM", "Engineering"},
			GradeLevels:          []string{"High School Senior"},
			States:               []string{model.AllStates},
			Interests:            []string{"STEM Clubs"},
			Description:          "Annual STEM scholarship.",
			Requirements:         []string{"Essay", "Transcript"},
			URL:                  "https://example.com/stem",
			Eligibility:          "Min 3.5 GPA",
			SpecialCircumstances: nil,
		},
		{
			Name:     "Varies Award",
			Amount:   model.VariesAmount(),
			Deadline: "2026-03-01",
			Category: "General",
		},
	}
}

func TestSaveScholarships_RoundTrip(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.SaveScholarships(ctx, testScholarships()))

	listed, err := store.ListScholarships(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	first := listed[0]
	assert.Equal(t, "STEM Excellence Scholarship", first.Name)
	assert.Equal(t, model.NewAmount(5000), first.Amount)
	assert.Equal(t, "2026-01-15", first.Deadline)
	assert.Equal(t, 3.5, first.MinGPA)
	assert.Equal(t, []string{"STEM", "Engineering"}, first.Majors)
	assert.Equal(t, []string{model.AllStates}, first.States)
	assert.Equal(t, []string{"Essay", "Transcript"}, first.Requirements)
	assert.Nil(t, first.SpecialCircumstances, "empty sets stay unrestricted")

	second := listed[1]
	assert.False(t, second.Amount.Numeric)
	assert.Equal(t, "Varies", second.Amount.Display())
}

func TestSaveScholarships_PreservesCatalogOrder(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	batch1 := []model.Scholarship{{Name: "First", Deadline: "2026-01-01", Category: "A", Amount: model.NewAmount(1)}}
	batch2 := []model.Scholarship{{Name: "Second", Deadline: "2026-01-01", Category: "A", Amount: model.NewAmount(1)}}

	require.NoError(t, store.SaveScholarships(ctx, batch1))
	require.NoError(t, store.SaveScholarships(ctx, batch2))

	listed, err := store.ListScholarships(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "First", listed[0].Name)
	assert.Equal(t, "Second", listed[1].Name)
}

func TestSaveScholarships_UpsertByCaseInsensitiveName(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, store.SaveScholarships(ctx, testScholarships()))

	updated := []model.Scholarship{{
		Name:     "stem excellence scholarship",
		Amount:   model.NewAmount(7500),
		Deadline: "2026-02-01",
		Category: "STEM",
	}}
	require.NoError(t, store.SaveScholarships(ctx, updated))

	count, err := store.CountScholarships(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	got, err := store.GetScholarshipByName(ctx, "STEM Excellence Scholarship")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.NewAmount(7500), got.Amount)
	assert.Equal(t, "2026-02-01", got.Deadline)
}

func TestGetScholarshipByName_Missing(t *testing.T) {
	store := setupTestDB(t)

	got, err := store.GetScholarshipByName(context.Background(), "Nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveScholarships_RejectsEmptyName(t *testing.T) {
	store := setupTestDB(t)

	err := store.SaveScholarships(context.Background(), []model.Scholarship{{Name: "  "}})
	require.Error(t, err)
}
