package llm_test

import (
	"testing"

	"github.com/playdex/game-curator/internal/llm"
	"github.com/stretchr/testify/assert"
)

func TestExtractTitles(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		count    int
		expected []string
	}{
		{
			"bare array",
			`["Hades", "Dead Cells", "Rogue Legacy 2", "Cult of the Lamb"]`,
			4,
			[]string{"Hades", "Dead Cells", "Rogue Legacy 2", "Cult of the Lamb"},
		},
		{
			"array wrapped in prose",
			"Here are some games you might like:\n[\"Hades\", \"Dead Cells\"]\nEnjoy!",
			4,
			[]string{"Hades", "Dead Cells"},
		},
		{
			"array in code fence",
			"```json\n[\"Celeste\"]\n```",
			4,
			[]string{"Celeste"},
		},
		{
			"more titles than requested are truncated",
			`["A", "B", "C", "D", "E"]`,
			3,
			[]string{"A", "B", "C"},
		},
		{
			"fewer titles than requested kept as-is",
			`["A", "B"]`,
			4,
			[]string{"A", "B"},
		},
		{
			"no array at all",
			"Sorry, I cannot recommend any games.",
			4,
			nil,
		},
		{
			"brackets but invalid JSON",
			"[Hades, Dead Cells]",
			4,
			nil,
		},
		{
			"closing bracket before opening",
			"] nonsense [",
			4,
			nil,
		},
		{
			"empty content",
			"",
			4,
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := llm.ExtractTitles(tt.content, tt.count)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractTitles_PreservesOrder(t *testing.T) {
	got := llm.ExtractTitles(`["Z", "A", "M"]`, 10)
	assert.Equal(t, []string{"Z", "A", "M"}, got)
}
