package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/scholarmatch/scholarmatch/internal/catalog"
	"github.com/scholarmatch/scholarmatch/internal/common"
	"github.com/scholarmatch/scholarmatch/internal/config"
	"github.com/scholarmatch/scholarmatch/internal/matcher"
	"github.com/scholarmatch/scholarmatch/internal/model"
	"github.com/scholarmatch/scholarmatch/internal/storage"
)

// initStorage opens the database with proper path expansion and runs
// migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/scholarmatch/scholarmatch.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

func closeStorage(store *storage.SQLiteStorage) {
	if err := store.Close(); err != nil {
		slog.Error("Failed to close database", "error", err)
	}
}

// loadCatalog returns the stored catalog with fresh deadline countdowns.
// An empty store falls back to the bundled sample catalog; any load failure
// degrades to an empty catalog so matching never crashes.
func loadCatalog(ctx context.Context, store *storage.SQLiteStorage, now time.Time) []model.Scholarship {
	scholarships, err := store.ListScholarships(ctx)
	if err != nil {
		slog.Error("Failed to load catalog, continuing with empty catalog", "error", err)
		return nil
	}

	if len(scholarships) == 0 {
		slog.Warn("Catalog is empty, seeding sample scholarships")
		scholarships = catalog.Sample(now)
		if err := store.SaveScholarships(ctx, scholarships); err != nil {
			slog.Error("Failed to seed sample catalog", "error", err)
		}
	}

	catalog.RefreshDeadlines(scholarships, now)
	return scholarships
}

// loadProfileFile reads a profile from a JSON file and validates the fields
// the matching core assumes were checked upstream.
func loadProfileFile(path string) (model.Profile, error) {
	var profile model.Profile

	data, err := os.ReadFile(config.ExpandPath(path)) // #nosec G304 -- user-supplied profile path
	if err != nil {
		return profile, fmt.Errorf("failed to read profile: %w", err)
	}
	if err := json.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("failed to decode profile: %w", err)
	}
	if err := validateProfile(&profile); err != nil {
		return profile, err
	}
	return profile, nil
}

// validateProfile enforces the presentation-layer contract: the core itself
// never re-validates these fields.
func validateProfile(profile *model.Profile) error {
	if strings.TrimSpace(profile.Name) == "" {
		return common.NewUserError("profile is missing a name", nil)
	}
	if !strings.Contains(profile.Email, "@") {
		return common.NewUserError(fmt.Sprintf("%q is not a valid email address", profile.Email), nil)
	}
	if strings.TrimSpace(profile.GradeLevel) == "" ||
		strings.TrimSpace(profile.Major) == "" ||
		strings.TrimSpace(profile.State) == "" {
		return common.NewUserError("profile must include grade level, major, and state", nil)
	}
	if profile.GPA < 0 || profile.GPA > 4.0 {
		return common.NewUserError("profile GPA must be between 0.0 and 4.0", nil)
	}
	return nil
}

// amountBound converts a flag value into an optional amount bound, treating
// the flag's zero value as unset.
func amountBound(v float64, set bool) *float64 {
	if !set {
		return nil
	}
	return &v
}

// buildCriteria assembles filter criteria from the match command's flags.
func buildCriteria(category string, minAmount, maxAmount float64, minSet, maxSet bool, deadlineRange string) matcher.Criteria {
	return matcher.Criteria{
		Category:      category,
		MinAmount:     amountBound(minAmount, minSet),
		MaxAmount:     amountBound(maxAmount, maxSet),
		DeadlineRange: deadlineRange,
	}
}
