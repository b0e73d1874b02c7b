// Package tokens models the styled text stream produced by the document-text
// extractor and locates titled sections within it.
package tokens

// Token is a styled unit of extracted text. Tokens arrive in document order
// and are treated as opaque except for text and style flags.
type Token struct {
	Text   string
	Bold   bool
	Italic bool
}

// pageMarker is the decorative text that precedes a page number token.
const pageMarker = "Page"

// Normalize drops decorative page-marker token pairs: a token reading exactly
// "Page" immediately followed by a numeric token is removed together with
// that number. No other filtering happens here; running Normalize twice is a
// no-op.
func Normalize(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		if toks[i].Text == pageMarker && i+1 < len(toks) && isNumeric(toks[i+1].Text) {
			i++
			continue
		}
		out = append(out, toks[i])
	}
	return out
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
