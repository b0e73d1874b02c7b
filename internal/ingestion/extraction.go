// Package ingestion extracts styled text tokens from profile PDF exports.
package ingestion

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/victorsfleite/resume-parser/internal/tokens"
)

var (
	// ErrNotFound is returned when the input file does not exist.
	ErrNotFound = fmt.Errorf("input file not found")
	// ErrNotReadable is returned when the input file cannot be read.
	ErrNotReadable = fmt.Errorf("input file not readable")
)

// ExtractTokens opens the PDF at path and returns its styled text tokens in
// document order, together with the raw file bytes for the independent
// hyperlink scan.
func ExtractTokens(path string) ([]tokens.Token, []byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrNotReadable, path, err)
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	var toks []tokens.Token
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		toks = append(toks, pageTokens(page.Content())...)
	}
	return toks, raw, nil
}

// pageTokens groups consecutive text runs sharing a baseline and font into
// one styled token.
func pageTokens(content pdf.Content) []tokens.Token {
	var toks []tokens.Token
	var b strings.Builder
	var groupY float64
	var groupFont string

	flush := func() {
		if b.Len() == 0 {
			return
		}
		toks = append(toks, tokens.Token{
			Text:   b.String(),
			Bold:   isBoldFont(groupFont),
			Italic: isItalicFont(groupFont),
		})
		b.Reset()
	}

	for _, t := range content.Text {
		if b.Len() > 0 && (t.Y != groupY || t.Font != groupFont) {
			flush()
		}
		if b.Len() == 0 {
			groupY, groupFont = t.Y, t.Font
		}
		b.WriteString(t.S)
	}
	flush()

	return toks
}

func isBoldFont(font string) bool {
	return strings.Contains(strings.ToLower(font), "bold")
}

func isItalicFont(font string) bool {
	name := strings.ToLower(font)
	return strings.Contains(name, "italic") || strings.Contains(name, "oblique")
}
