package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/scholarmatch/scholarmatch/internal/model"
)

// scholarshipColumns is the column list shared by every scholarship query.
const scholarshipColumns = `name, amount, amount_text, amount_numeric, deadline, category,
	min_gpa, majors, grade_levels, states, demographics, interests,
	special_circumstances, description, requirements, url, eligibility`

// SaveScholarships upserts a batch of scholarships into the catalog,
// keyed by case-insensitive name. Catalog order is preserved via the
// position column so later listings keep the original ranking ties stable.
func (s *SQLiteStorage) SaveScholarships(ctx context.Context, scholarships []model.Scholarship) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var next int
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position), -1) + 1 FROM scholarships`).Scan(&next); err != nil {
		return fmt.Errorf("failed to read catalog position: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO scholarships (`+scholarshipColumns+`, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			amount = excluded.amount,
			amount_text = excluded.amount_text,
			amount_numeric = excluded.amount_numeric,
			deadline = excluded.deadline,
			category = excluded.category,
			min_gpa = excluded.min_gpa,
			majors = excluded.majors,
			grade_levels = excluded.grade_levels,
			states = excluded.states,
			demographics = excluded.demographics,
			interests = excluded.interests,
			special_circumstances = excluded.special_circumstances,
			description = excluded.description,
			requirements = excluded.requirements,
			url = excluded.url,
			eligibility = excluded.eligibility`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range scholarships {
		sch := &scholarships[i]
		if err := validateString(sch.Name, "scholarship name"); err != nil {
			return err
		}

		fields, err := encodeScholarshipSets(sch)
		if err != nil {
			return err
		}

		if _, err := stmt.ExecContext(ctx,
			sch.Name, sch.Amount.Value, sch.Amount.Text, sch.Amount.Numeric,
			sch.Deadline, sch.Category, sch.MinGPA,
			fields.majors, fields.gradeLevels, fields.states, fields.demographics,
			fields.interests, fields.circumstances, sch.Description,
			fields.requirements, sch.URL, sch.Eligibility, next+i,
		); err != nil {
			return fmt.Errorf("failed to upsert scholarship %q: %w", sch.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit scholarships: %w", err)
	}

	slog.Debug("saved scholarships", "count", len(scholarships))
	return nil
}

// ListScholarships returns the catalog snapshot in insertion order.
// DeadlineDays is left at zero; callers refresh it from the deadline date.
func (s *SQLiteStorage) ListScholarships(ctx context.Context) ([]model.Scholarship, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+scholarshipColumns+`
		FROM scholarships
		ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query scholarships: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var scholarships []model.Scholarship
	for rows.Next() {
		sch, err := scanScholarship(rows)
		if err != nil {
			return nil, err
		}
		scholarships = append(scholarships, sch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scholarships: %w", err)
	}
	return scholarships, nil
}

// GetScholarshipByName returns a scholarship by case-insensitive name, or
// nil when absent.
func (s *SQLiteStorage) GetScholarshipByName(ctx context.Context, name string) (*model.Scholarship, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT `+scholarshipColumns+`
		FROM scholarships
		WHERE name = ? COLLATE NOCASE`, name)

	sch, err := scanScholarship(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sch, nil
}

// CountScholarships returns the catalog size.
func (s *SQLiteStorage) CountScholarships(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scholarships`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count scholarships: %w", err)
	}
	return count, nil
}

type encodedSets struct {
	majors        string
	gradeLevels   string
	states        string
	demographics  string
	interests     string
	circumstances string
	requirements  string
}

func encodeScholarshipSets(sch *model.Scholarship) (encodedSets, error) {
	var fields encodedSets
	var err error

	encode := func(dst *string, values []string, column string) {
		if err != nil {
			return
		}
		if *dst, err = encodeStrings(values); err != nil {
			err = fmt.Errorf("scholarship %q column %s: %w", sch.Name, column, err)
		}
	}

	encode(&fields.majors, sch.Majors, "majors")
	encode(&fields.gradeLevels, sch.GradeLevels, "grade_levels")
	encode(&fields.states, sch.States, "states")
	encode(&fields.demographics, sch.Demographics, "demographics")
	encode(&fields.interests, sch.Interests, "interests")
	encode(&fields.circumstances, sch.SpecialCircumstances, "special_circumstances")
	encode(&fields.requirements, sch.Requirements, "requirements")

	return fields, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScholarship(row rowScanner) (model.Scholarship, error) {
	var sch model.Scholarship
	var majors, gradeLevels, states, demographics, interests, circumstances, requirements string

	err := row.Scan(
		&sch.Name, &sch.Amount.Value, &sch.Amount.Text, &sch.Amount.Numeric,
		&sch.Deadline, &sch.Category, &sch.MinGPA,
		&majors, &gradeLevels, &states, &demographics,
		&interests, &circumstances, &sch.Description,
		&requirements, &sch.URL, &sch.Eligibility,
	)
	if err == sql.ErrNoRows {
		return sch, err
	}
	if err != nil {
		return sch, fmt.Errorf("failed to scan scholarship: %w", err)
	}

	decode := func(dst *[]string, data string, column string) {
		if err != nil {
			return
		}
		if *dst, err = decodeStrings(data); err != nil {
			err = fmt.Errorf("scholarship %q column %s: %w", sch.Name, column, err)
		}
	}

	decode(&sch.Majors, majors, "majors")
	decode(&sch.GradeLevels, gradeLevels, "grade_levels")
	decode(&sch.States, states, "states")
	decode(&sch.Demographics, demographics, "demographics")
	decode(&sch.Interests, interests, "interests")
	decode(&sch.SpecialCircumstances, circumstances, "special_circumstances")
	decode(&sch.Requirements, requirements, "requirements")

	return sch, err
}
