package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorsfleite/resume-parser/internal/tokens"
)

func TestParseLanguages_WithProficiency(t *testing.T) {
	lines := []tokens.Line{
		{Text: "English"},
		{Text: "(Native or bilingual proficiency)"},
		{Text: "French"},
		{Text: "(Elementary proficiency)"},
	}

	langs := parseLanguages(lines)
	require.Len(t, langs, 2)
	assert.Equal(t, "English", langs[0].Name)
	assert.Equal(t, "Native or bilingual", langs[0].Level)
	assert.Equal(t, "French", langs[1].Name)
	assert.Equal(t, "Elementary", langs[1].Level)
}

func TestParseLanguages_WithoutProficiency(t *testing.T) {
	lines := []tokens.Line{
		{Text: "Portuguese"},
		{Text: "Spanish"},
		{Text: "(Professional working proficiency)"},
	}

	langs := parseLanguages(lines)
	require.Len(t, langs, 2)
	assert.Equal(t, "Portuguese", langs[0].Name)
	assert.Empty(t, langs[0].Level)
	assert.Equal(t, "Professional working", langs[1].Level)
}
