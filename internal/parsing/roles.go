package parsing

import (
	"regexp"
	"strings"

	"github.com/victorsfleite/resume-parser/internal/dates"
	"github.com/victorsfleite/resume-parser/internal/tokens"
	"github.com/victorsfleite/resume-parser/internal/types"
)

const roleSeparator = " at "

var (
	// roleDateRE matches a date-range line of a role: an optional month word,
	// a four-digit year, then the dash range. Anchored so years inside
	// summary prose do not misfire.
	roleDateRE = regexp.MustCompile(`^(?:[A-Za-z]+ )?\d{4} - .+$`)
	// durationRE matches the parenthesized duration line that follows a date
	// range, e.g. "(1 year 2 months)".
	durationRE = regexp.MustCompile(`^\(.*\)$`)
)

// roleBuilder accumulates one role record while scanning section lines.
type roleBuilder struct {
	title   string
	date    string
	summary strings.Builder
}

// parseRoles runs a single-pass scan over the merged lines of an
// experience-like section, tracking the currently open record. A bold line
// containing " at " implicitly closes the previous record and opens a new
// one; a date or summary line arriving before any title line opens a
// placeholder record so list positions are preserved.
func parseRoles(section tokens.Section, lines []tokens.Line) ([]types.Role, error) {
	var open []*roleBuilder
	current := func() *roleBuilder {
		if len(open) == 0 {
			open = append(open, &roleBuilder{})
		}
		return open[len(open)-1]
	}

	for _, ln := range lines {
		text := strings.TrimSpace(ln.Text)
		switch {
		case text == "":
		case roleDateRE.MatchString(text):
			current().date = text
		case ln.Bold && strings.Contains(ln.Text, roleSeparator):
			open = append(open, &roleBuilder{title: text})
		case durationRE.MatchString(text):
		case strings.HasPrefix(text, "Page"):
		default:
			current().summary.WriteString(text)
			current().summary.WriteString("\n")
		}
	}

	roles := make([]types.Role, 0, len(open))
	for _, b := range open {
		role, err := b.build(section)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	if len(roles) == 0 {
		return nil, nil
	}
	return roles, nil
}

// build splits the accumulated title line on " at " into (title,
// organisation) and parses the captured date range, if any.
func (b *roleBuilder) build(section tokens.Section) (types.Role, error) {
	role := types.Role{Summary: b.summary.String()}

	parts := strings.Split(b.title, roleSeparator)
	switch len(parts) {
	case 0:
		return role, &SectionError{Section: section, Line: b.title, Message: "empty role title"}
	case 1:
		role.Title = parts[0]
		role.Organisation = parts[0]
	case 2:
		role.Title = parts[0]
		role.Organisation = parts[1]
	default:
		// Interior " at " occurrences belong to neither field.
		role.Title = parts[0]
		role.Organisation = parts[len(parts)-1]
	}

	if b.date != "" {
		start, end, err := dates.ParseRange(b.date, " - ")
		if err != nil {
			return role, &SectionError{Section: section, Line: b.date, Message: "invalid date range", Cause: err}
		}
		role.Start = &start
		role.End = end
	}

	return role, nil
}
