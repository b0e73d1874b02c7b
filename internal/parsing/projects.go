package parsing

import (
	"strings"

	"github.com/victorsfleite/resume-parser/internal/dates"
	"github.com/victorsfleite/resume-parser/internal/tokens"
	"github.com/victorsfleite/resume-parser/internal/types"
)

const membersMarker = "Members:"

// parseProjects scans project entries: bold lines extend the current project
// name when the previous line was also a name line, otherwise they close the
// previous project and open a new one. Date-range lines set start/end, a
// "Members:" line splits into the member list, anything else accumulates into
// the summary.
func parseProjects(lines []tokens.Line) ([]types.Project, error) {
	var out []types.Project
	var current types.Project
	open := false
	prevWasName := false

	flush := func() {
		if open {
			out = append(out, current)
			current = types.Project{}
			open = false
		}
	}

	for _, ln := range lines {
		text := strings.TrimSpace(ln.Text)
		if text == "" {
			continue
		}

		if ln.Bold {
			if prevWasName && open {
				current.Name += " " + text
			} else {
				flush()
				current = types.Project{Name: text}
				open = true
			}
			prevWasName = true
			continue
		}
		prevWasName = false

		switch {
		case monthRangeRE.MatchString(text):
			start, end, err := dates.ParseRange(text, " to ")
			if err != nil {
				return nil, &SectionError{Section: tokens.SectionProjects, Line: text, Message: "invalid date range", Cause: err}
			}
			current.Start = &start
			current.End = end
			open = true
		case strings.HasPrefix(text, membersMarker):
			for _, member := range strings.Split(strings.TrimPrefix(text, membersMarker), ",") {
				if member = strings.TrimSpace(member); member != "" {
					current.Members = append(current.Members, member)
				}
			}
			open = true
		default:
			if current.Summary != "" {
				current.Summary += "\n"
			}
			current.Summary += text
			open = true
		}
	}
	flush()

	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
