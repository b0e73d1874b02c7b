package parsing

import (
	"strings"

	"github.com/victorsfleite/resume-parser/internal/tokens"
	"github.com/victorsfleite/resume-parser/internal/types"
)

// parseCourses accumulates bold lines into the current course name; the first
// non-bold line after a name closes that course. Blank and single-dot filler
// lines are skipped entirely.
func parseCourses(lines []tokens.Line) []types.Course {
	var out []types.Course
	var name strings.Builder

	flush := func() {
		if name.Len() > 0 {
			out = append(out, types.Course{Name: name.String()})
			name.Reset()
		}
	}

	for _, ln := range lines {
		text := strings.TrimSpace(ln.Text)
		if text == "" || text == "." {
			continue
		}
		if ln.Bold {
			if name.Len() > 0 {
				name.WriteString(" ")
			}
			name.WriteString(text)
			continue
		}
		flush()
	}
	flush()

	return out
}
