package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Amount is a scholarship award value. Catalogs carry either a dollar
// figure or a free-form string such as "Varies"; both survive a round trip
// through JSON. Non-numeric amounts sort as 0 and are excluded from
// monetary aggregation.
type Amount struct {
	Value   float64
	Text    string
	Numeric bool
}

// NewAmount returns a numeric amount.
func NewAmount(v float64) Amount {
	return Amount{Value: v, Numeric: true}
}

// VariesAmount returns the non-numeric "Varies" sentinel.
func VariesAmount() Amount {
	return Amount{Text: "Varies"}
}

// SortValue is the key used when ranking matches by amount.
func (a Amount) SortValue() float64 {
	if a.Numeric {
		return a.Value
	}
	return 0
}

// Display renders the amount for tables and exports: a currency string when
// numeric, otherwise the literal catalog value.
func (a Amount) Display() string {
	if a.Numeric {
		return "$" + formatDollars(a.Value)
	}
	if a.Text != "" {
		return a.Text
	}
	return "Varies"
}

// UnmarshalJSON accepts a JSON number or any string value.
func (a *Amount) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*a = Amount{}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*a = Amount{Value: v, Numeric: true}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("amount must be a number or string: %w", err)
	}
	*a = Amount{Text: s}
	return nil
}

// MarshalJSON writes the amount back in its catalog form.
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.Numeric {
		return json.Marshal(a.Value)
	}
	if a.Text == "" {
		return json.Marshal("Varies")
	}
	return json.Marshal(a.Text)
}

// formatDollars renders a float with thousands separators, dropping the
// fraction when it is whole.
func formatDollars(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimSuffix(s, ".00")

	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + frac
}
