package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarmatch/scholarmatch/internal/model"
)

func testProfile() model.Profile {
	return model.Profile{
		Name:                 "Jane Doe",
		Email:                "jane@example.com",
		GPA:                  3.7,
		GradeLevel:           "High School Senior",
		Major:                "STEM",
		State:                "California",
		Gender:               "Female",
		Ethnicity:            []string{"Asian American"},
		Interests:            []string{"STEM Clubs", "Community Service"},
		SpecialCircumstances: []string{"First Generation College Student"},
	}
}

func TestSaveProfile_AssignsIDAndTimestamp(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	first := testProfile()
	require.NoError(t, store.SaveProfile(ctx, &first))
	assert.Equal(t, int64(1), first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second := testProfile()
	second.Email = "other@example.com"
	require.NoError(t, store.SaveProfile(ctx, &second))
	assert.Equal(t, int64(2), second.ID)
}

func TestGetProfileByEmail(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	profile := testProfile()
	require.NoError(t, store.SaveProfile(ctx, &profile))

	t.Run("case-insensitive lookup", func(t *testing.T) {
		got, err := store.GetProfileByEmail(ctx, "JANE@example.COM")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Jane Doe", got.Name)
		assert.Equal(t, 3.7, got.GPA)
		assert.Equal(t, []string{"STEM Clubs", "Community Service"}, got.Interests)
	})

	t.Run("missing email returns nil", func(t *testing.T) {
		got, err := store.GetProfileByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("reusing an email returns the latest revision", func(t *testing.T) {
		revised := testProfile()
		revised.GPA = 3.9
		require.NoError(t, store.SaveProfile(ctx, &revised))

		got, err := store.GetProfileByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 3.9, got.GPA)
	})
}

func TestListProfiles(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	profiles, err := store.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, profiles)

	a := testProfile()
	require.NoError(t, store.SaveProfile(ctx, &a))
	b := testProfile()
	b.Email = "b@example.com"
	require.NoError(t, store.SaveProfile(ctx, &b))

	profiles, err = store.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, int64(1), profiles[0].ID)
	assert.Equal(t, int64(2), profiles[1].ID)
}

func TestSaveProfile_Validation(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	require.Error(t, store.SaveProfile(ctx, nil))

	missingName := testProfile()
	missingName.Name = ""
	require.Error(t, store.SaveProfile(ctx, &missingName))

	missingEmail := testProfile()
	missingEmail.Email = ""
	require.Error(t, store.SaveProfile(ctx, &missingEmail))
}
