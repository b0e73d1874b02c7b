package parsing

import (
	"regexp"
	"strings"

	"github.com/victorsfleite/resume-parser/internal/tokens"
	"github.com/victorsfleite/resume-parser/internal/types"
)

// endState tracks which endorsement field the scan last populated.
type endState int

const (
	endNone endState = iota
	endSummary
	endName
	endPosition
	endRelation
)

var (
	// recommendedRE marks the line endorsement parsing begins after, e.g.
	// "2 people have recommended Jane".
	recommendedRE = regexp.MustCompile(`^\d+ (?:person|people) (?:has|have) recommended`)
	// authorRE matches the dash-delimited endorser name line once smart
	// punctuation has been folded.
	authorRE = regexp.MustCompile(`^--\s*(.+)$`)
)

// activityMarker ends the endorsement region without being consumed.
const activityMarker = "Profile Notes and Activity"

// parseEndorsements operates on the token tail beyond the last occurrence of
// the subject's own name, outside the titled-section mechanism. The trailing
// contact boilerplate line is dropped, the "have recommended" line located,
// and a per-line state machine run over everything after it.
func parseEndorsements(name string, toks []tokens.Token) []types.Endorsement {
	if name == "" {
		return nil
	}

	last := -1
	for i, t := range toks {
		if strings.TrimSpace(t.Text) == name {
			last = i
		}
	}
	if last < 0 || last+1 >= len(toks) {
		return nil
	}

	lines := tokens.MergeLines(toks[last+1:])
	if len(lines) > 0 {
		// The tail always ends with the "Contact X on LinkedIn" boilerplate.
		lines = lines[:len(lines)-1]
	}

	start := -1
	for i, ln := range lines {
		if recommendedRE.MatchString(cleanLine(ln.Text)) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var out []types.Endorsement
	var current types.Endorsement
	state := endNone

	flush := func() {
		if current != (types.Endorsement{}) {
			out = append(out, current)
			current = types.Endorsement{}
		}
	}

	for _, ln := range lines[start:] {
		text := cleanLine(ln.Text)
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, activityMarker) {
			break
		}

		switch {
		case strings.HasPrefix(text, `"`):
			flush()
			current.Text = strings.Trim(text, `"`)
			state = endSummary
		case authorRE.MatchString(text) || ln.Bold:
			if m := authorRE.FindStringSubmatch(text); m != nil {
				current.Author = strings.TrimSpace(m[1])
			} else {
				current.Author = text
			}
			state = endName
		case ln.Italic && strings.HasPrefix(text, ","):
			current.Position = strings.TrimSpace(strings.TrimPrefix(text, ","))
			state = endPosition
		case (state == endName || state == endPosition) && strings.HasPrefix(text, ","):
			current.Relation = capitalize(strings.TrimSpace(strings.TrimPrefix(text, ",")))
			state = endRelation
		default:
			// Continuation of the quoted summary, including its closing line.
			if current.Text != "" {
				current.Text += "\n"
			}
			current.Text += strings.TrimSuffix(text, `"`)
			state = endSummary
		}
	}
	flush()

	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
