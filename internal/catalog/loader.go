// Package catalog loads and saves scholarship catalogs as JSON flat files
// and derives the volatile deadline countdown the matching core depends on.
package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/scholarmatch/scholarmatch/internal/model"
)

// dateLayout is the catalog deadline format.
const dateLayout = "2006-01-02"

// Load reads a scholarship catalog from a JSON file and refreshes every
// deadline countdown relative to now.
func Load(path string, now time.Time) ([]model.Scholarship, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied catalog path
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var scholarships []model.Scholarship
	if err := json.Unmarshal(data, &scholarships); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	RefreshDeadlines(scholarships, now)
	slog.Debug("loaded catalog", "path", path, "count", len(scholarships))
	return scholarships, nil
}

// Save writes a catalog to a JSON file, creating parent directories.
func Save(path string, scholarships []model.Scholarship) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create catalog directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(scholarships, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

// DeadlineDays returns the whole days from now until the deadline, at UTC
// calendar-day granularity. Past deadlines clamp to 0; an empty or
// unparseable deadline maps to the non-urgent sentinel.
func DeadlineDays(deadline string, now time.Time) int {
	parsed, err := parseDeadline(deadline)
	if err != nil {
		return model.UnknownDeadlineDays
	}

	days := int(parsed.Sub(midnightUTC(now)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// RefreshDeadlines recomputes DeadlineDays for every scholarship in place.
// Called on every catalog load so the countdown never goes stale.
func RefreshDeadlines(scholarships []model.Scholarship, now time.Time) {
	for i := range scholarships {
		scholarships[i].DeadlineDays = DeadlineDays(scholarships[i].Deadline, now)
	}
}

func parseDeadline(deadline string) (time.Time, error) {
	return time.Parse(dateLayout, deadline)
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
