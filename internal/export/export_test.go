package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarmatch/scholarmatch/internal/model"
)

func testMatches() []model.Match {
	return []model.Match{
		model.NewMatch(model.Scholarship{
			Name:         "STEM Excellence Award",
			Amount:       model.NewAmount(5000),
			Deadline:     "2025-12-19",
			Category:     "STEM",
			DeadlineDays: 45,
		}, 88, []string{"✓ Meets GPA requirement (3.7)"}),
		model.NewMatch(model.Scholarship{
			Name:         "Community Leaders Grant",
			Amount:       model.VariesAmount(),
			Deadline:     "2026-01-30",
			DeadlineDays: 87,
		}, 64, nil),
	}
}

func TestRow(t *testing.T) {
	matches := testMatches()

	row := Row(&matches[0])
	assert.Equal(t, []string{"STEM Excellence Award", "$5,000", "88%", "2025-12-19", "45", "STEM"}, row)

	row = Row(&matches[1])
	assert.Equal(t, []string{"Community Leaders Grant", "Varies", "64%", "2026-01-30", "87", "General"}, row)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testMatches()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Header, records[0])
	assert.Equal(t, "STEM Excellence Award", records[1][0])
	assert.Equal(t, "$5,000", records[1][1])
	assert.Equal(t, "Varies", records[2][1])
	assert.Equal(t, "64%", records[2][2])
}

func TestWriteCSV_EmptyMatches(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, Header, records[0])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, testMatches()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, "STEM Excellence Award", decoded[0]["name"])
	assert.Equal(t, float64(88), decoded[0]["match_score"])
	assert.Equal(t, float64(5000), decoded[0]["amount"])
	assert.Equal(t, "Varies", decoded[1]["amount"])
}
