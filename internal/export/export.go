// Package export renders match results into the tabular and JSON forms
// consumed by downstream tooling.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/scholarmatch/scholarmatch/internal/model"
)

// Header is the column set of the tabular match projection.
var Header = []string{"Scholarship", "Amount", "Match", "Deadline", "Days Left", "Category"}

// Row projects one match onto the tabular columns. Amount renders as a
// currency string when numeric, otherwise the literal catalog value.
func Row(m *model.Match) []string {
	return []string{
		m.Name,
		m.Amount.Display(),
		fmt.Sprintf("%d%%", m.Score),
		m.Deadline,
		strconv.Itoa(m.DeadlineDays),
		m.CategoryOrDefault(),
	}
}

// WriteCSV writes the tabular projection of matches as CSV.
func WriteCSV(w io.Writer, matches []model.Match) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i := range matches {
		if err := cw.Write(Row(&matches[i])); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// WriteJSON writes the full match records as indented JSON.
func WriteJSON(w io.Writer, matches []model.Match) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(matches); err != nil {
		return fmt.Errorf("failed to encode matches: %w", err)
	}
	return nil
}
