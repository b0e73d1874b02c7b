package parsing

import (
	"regexp"
	"strings"

	"github.com/victorsfleite/resume-parser/internal/tokens"
	"github.com/victorsfleite/resume-parser/internal/types"
)

// scoreRE matches the score value line of a test-score entry.
var scoreRE = regexp.MustCompile(`^Score:\s*(.+)$`)

// parseTestScores opens a new score record on each bold line and sets the
// score value from "Score:<value>" lines. Other lines are ignored.
func parseTestScores(lines []tokens.Line) []types.TestScore {
	var out []types.TestScore
	var current types.TestScore
	open := false

	flush := func() {
		if open {
			out = append(out, current)
			current = types.TestScore{}
			open = false
		}
	}

	for _, ln := range lines {
		text := strings.TrimSpace(ln.Text)
		if text == "" {
			continue
		}
		if ln.Bold {
			flush()
			current = types.TestScore{Name: text}
			open = true
			continue
		}
		if m := scoreRE.FindStringSubmatch(text); m != nil && open {
			current.Score = strings.TrimSpace(m[1])
		}
	}
	flush()

	return out
}
