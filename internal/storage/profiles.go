package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/scholarmatch/scholarmatch/internal/model"
)

const profileColumns = `id, name, email, gpa, grade_level, major, state, gender,
	ethnicity, interests, special_circumstances, created_at`

// SaveProfile stores a student profile and assigns its sequential ID and
// creation timestamp. The profile's required fields are validated by the
// CLI layer before save.
func (s *SQLiteStorage) SaveProfile(ctx context.Context, profile *model.Profile) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if profile == nil {
		return ErrNilProfile
	}
	if err := validateString(profile.Name, "profile name"); err != nil {
		return err
	}
	if err := validateString(profile.Email, "profile email"); err != nil {
		return err
	}

	ethnicity, err := encodeStrings(profile.Ethnicity)
	if err != nil {
		return err
	}
	interests, err := encodeStrings(profile.Interests)
	if err != nil {
		return err
	}
	circumstances, err := encodeStrings(profile.SpecialCircumstances)
	if err != nil {
		return err
	}

	createdAt := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (name, email, gpa, grade_level, major, state, gender,
			ethnicity, interests, special_circumstances, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		profile.Name, profile.Email, profile.GPA, profile.GradeLevel,
		profile.Major, profile.State, profile.Gender,
		ethnicity, interests, circumstances, createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read profile id: %w", err)
	}

	profile.ID = id
	profile.CreatedAt = createdAt

	slog.Debug("saved profile", "id", id, "email", profile.Email)
	return nil
}

// GetProfileByEmail returns the most recently saved profile for an email,
// compared case-insensitively, or nil when none exists.
func (s *SQLiteStorage) GetProfileByEmail(ctx context.Context, email string) (*model.Profile, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(email, "email"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE email = ? COLLATE NOCASE
		ORDER BY id DESC
		LIMIT 1`, email)

	profile, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListProfiles returns all saved profiles in creation order.
func (s *SQLiteStorage) ListProfiles(ctx context.Context) ([]model.Profile, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var profiles []model.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}
	return profiles, nil
}

func scanProfile(row rowScanner) (model.Profile, error) {
	var profile model.Profile
	var ethnicity, interests, circumstances string

	err := row.Scan(
		&profile.ID, &profile.Name, &profile.Email, &profile.GPA,
		&profile.GradeLevel, &profile.Major, &profile.State, &profile.Gender,
		&ethnicity, &interests, &circumstances, &profile.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return profile, err
	}
	if err != nil {
		return profile, fmt.Errorf("failed to scan profile: %w", err)
	}

	if profile.Ethnicity, err = decodeStrings(ethnicity); err != nil {
		return profile, err
	}
	if profile.Interests, err = decodeStrings(interests); err != nil {
		return profile, err
	}
	if profile.SpecialCircumstances, err = decodeStrings(circumstances); err != nil {
		return profile, err
	}
	return profile, nil
}
