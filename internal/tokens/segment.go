package tokens

import "strings"

// Line is a paragraph produced by merging wrapped continuation lines. Style
// flags come from the paragraph's first token.
type Line struct {
	Text   string
	Bold   bool
	Italic bool
}

// FindSection returns the merged lines of the titled section, or nil when the
// title never occurs verbatim in the stream. The section body is the
// half-open token range after the title's first occurrence, up to the next
// token matching any known section title or the end of the stream.
func FindSection(title Section, toks []Token) []Line {
	start := -1
	for i, t := range toks {
		if t.Text == string(title) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	end := len(toks)
	for i := start; i < end; i++ {
		if IsSectionTitle(toks[i].Text) {
			end = i
			break
		}
	}

	return MergeLines(toks[start:end])
}

// MergeLines joins wrapped lines back into paragraphs. The first token starts
// a paragraph; each subsequent token whose text begins with a space is
// appended (leading space included) to the previous paragraph instead of
// starting a new one.
func MergeLines(toks []Token) []Line {
	var lines []Line
	for _, t := range toks {
		if len(lines) > 0 && strings.HasPrefix(t.Text, " ") {
			lines[len(lines)-1].Text += t.Text
			continue
		}
		lines = append(lines, Line{Text: t.Text, Bold: t.Bold, Italic: t.Italic})
	}
	return lines
}
