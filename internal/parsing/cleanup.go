package parsing

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// punctReplacer folds smart punctuation to its single-byte equivalents so the
// endorsement patterns only have to match ASCII shapes.
var punctReplacer = strings.NewReplacer(
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"„", `"`, // low double quote
	"‘", "'",
	"’", "'",
	"—", "--", // em dash
	"–", "-",
	" ", " ",
)

// markStripper removes combining marks left over after decomposition.
var markStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// cleanLine normalizes a line's encoding before pattern matching: trim, fold
// smart punctuation, strip combining marks, then drop the stray '?'
// placeholders the upstream text decoder substitutes for unmappable glyphs.
func cleanLine(text string) string {
	text = punctReplacer.Replace(strings.TrimSpace(text))
	if folded, _, err := transform.String(markStripper, text); err == nil {
		text = folded
	}
	return strings.TrimSpace(strings.ReplaceAll(text, "?", ""))
}
