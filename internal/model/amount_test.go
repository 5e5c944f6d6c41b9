package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Amount
	}{
		{"number", `5000`, Amount{Value: 5000, Numeric: true}},
		{"fractional number", `2500.5`, Amount{Value: 2500.5, Numeric: true}},
		{"varies string", `"Varies"`, Amount{Text: "Varies"}},
		{"arbitrary string", `"Up to full tuition"`, Amount{Text: "Up to full tuition"}},
		{"null", `null`, Amount{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tt.in), &a))
			assert.Equal(t, tt.want, a)
		})
	}

	t.Run("missing field leaves the zero value", func(t *testing.T) {
		var s Scholarship
		require.NoError(t, json.Unmarshal([]byte(`{"name":"X"}`), &s))
		assert.False(t, s.Amount.Numeric)
		assert.Equal(t, 0.0, s.Amount.SortValue())
	})

	t.Run("rejects objects", func(t *testing.T) {
		var a Amount
		assert.Error(t, json.Unmarshal([]byte(`{}`), &a))
	})
}

func TestAmount_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   Amount
		want string
	}{
		{"number", NewAmount(5000), `5000`},
		{"string", Amount{Text: "Varies"}, `"Varies"`},
		{"zero value falls back to Varies", Amount{}, `"Varies"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestAmount_Display(t *testing.T) {
	tests := []struct {
		name string
		in   Amount
		want string
	}{
		{"whole dollars group with commas", NewAmount(10000), "$10,000"},
		{"small amount", NewAmount(500), "$500"},
		{"seven figures", NewAmount(1234567), "$1,234,567"},
		{"cents are kept", NewAmount(2500.5), "$2,500.50"},
		{"non-numeric shows the literal", Amount{Text: "Up to $2,000"}, "Up to $2,000"},
		{"zero value shows Varies", Amount{}, "Varies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Display())
		})
	}
}

func TestAmount_SortValue(t *testing.T) {
	assert.Equal(t, 7500.0, NewAmount(7500).SortValue())
	assert.Equal(t, 0.0, VariesAmount().SortValue())
	assert.Equal(t, 0.0, Amount{}.SortValue())
}
