package ingestion

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTokens_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.pdf")

	_, _, err := ExtractTokens(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestPageTokens_GroupsByBaselineAndFont(t *testing.T) {
	content := pdf.Content{Text: []pdf.Text{
		{S: "Jane", Font: "Helvetica-Bold", Y: 700},
		{S: " ", Font: "Helvetica-Bold", Y: 700},
		{S: "Doe", Font: "Helvetica-Bold", Y: 700},
		{S: "Summary", Font: "Helvetica", Y: 680},
		{S: "likes ", Font: "Helvetica", Y: 660},
		{S: "parsing", Font: "Helvetica-Oblique", Y: 660},
	}}

	toks := pageTokens(content)
	require.Len(t, toks, 4)

	assert.Equal(t, "Jane Doe", toks[0].Text)
	assert.True(t, toks[0].Bold)
	assert.False(t, toks[0].Italic)

	assert.Equal(t, "Summary", toks[1].Text)
	assert.False(t, toks[1].Bold)

	assert.Equal(t, "likes ", toks[2].Text)

	assert.Equal(t, "parsing", toks[3].Text)
	assert.True(t, toks[3].Italic)
}

func TestPageTokens_Empty(t *testing.T) {
	assert.Empty(t, pageTokens(pdf.Content{}))
}

func TestFontClassification(t *testing.T) {
	assert.True(t, isBoldFont("Times-Bold"))
	assert.True(t, isBoldFont("ArialBoldMT"))
	assert.False(t, isBoldFont("Times-Roman"))

	assert.True(t, isItalicFont("Times-Italic"))
	assert.True(t, isItalicFont("Courier-Oblique"))
	assert.False(t, isItalicFont("Courier"))
}
