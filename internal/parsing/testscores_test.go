package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorsfleite/resume-parser/internal/tokens"
)

func TestParseTestScores_NameAndScore(t *testing.T) {
	lines := []tokens.Line{
		{Text: "GMAT", Bold: true},
		{Text: "Score:710"},
		{Text: "IELTS", Bold: true},
		{Text: "Score: 8.5"},
	}

	scores := parseTestScores(lines)
	require.Len(t, scores, 2)
	assert.Equal(t, "GMAT", scores[0].Name)
	assert.Equal(t, "710", scores[0].Score)
	assert.Equal(t, "IELTS", scores[1].Name)
	assert.Equal(t, "8.5", scores[1].Score)
}

func TestParseTestScores_NameWithoutScore(t *testing.T) {
	lines := []tokens.Line{
		{Text: "SAT", Bold: true},
	}

	scores := parseTestScores(lines)
	require.Len(t, scores, 1)
	assert.Equal(t, "SAT", scores[0].Name)
	assert.Empty(t, scores[0].Score)
}

func TestParseTestScores_IgnoresOtherLines(t *testing.T) {
	lines := []tokens.Line{
		{Text: "GRE", Bold: true},
		{Text: "Taken in autumn"},
		{Text: "Score:325"},
	}

	scores := parseTestScores(lines)
	require.Len(t, scores, 1)
	assert.Equal(t, "325", scores[0].Score)
}
