package parsing

import (
	"regexp"
	"strings"
	"time"

	"github.com/victorsfleite/resume-parser/internal/dates"
	"github.com/victorsfleite/resume-parser/internal/tokens"
	"github.com/victorsfleite/resume-parser/internal/types"
)

// entryState tracks which field of the current bold-led record the scan is
// positioned on. Organizations and honors share the same line grammar.
type entryState int

const (
	stateNone entryState = iota
	stateName
	stateDetail
	stateDates
	stateSummary
)

// monthRangeRE matches the fixed "<Month> <Year> to <Month> <Year>|Present"
// date-range shape of bold-led sections.
var monthRangeRE = regexp.MustCompile(`^[A-Za-z]+ \d{4} to (?:[A-Za-z]+ \d{4}|Present)$`)

// boldEntry is the shared record shape produced by the finite-state walk.
type boldEntry struct {
	name    string
	detail  string
	start   *time.Time
	end     *time.Time
	summary string
	open    bool
}

// parseBoldEntries runs the small finite-state walk shared by the
// organizations and honors extractors: a bold line flushes the open record
// and starts a new one; a date-range line parses via the " to " separator; a
// plain line directly after the name sets the detail field; anything after
// the dates accumulates into the summary. Any other combination is fatal.
func parseBoldEntries(section tokens.Section, lines []tokens.Line) ([]boldEntry, error) {
	var out []boldEntry
	var current boldEntry
	state := stateNone

	flush := func() {
		if current.open {
			out = append(out, current)
			current = boldEntry{}
		}
	}

	for _, ln := range lines {
		text := strings.TrimSpace(ln.Text)
		if text == "" {
			continue
		}

		switch {
		case ln.Bold:
			flush()
			current = boldEntry{name: text, open: true}
			state = stateName
		case state == stateNone:
			return nil, &SectionError{Section: section, Line: text, Message: "line outside any entry"}
		case monthRangeRE.MatchString(text):
			start, end, err := dates.ParseRange(text, " to ")
			if err != nil {
				return nil, &SectionError{Section: section, Line: text, Message: "invalid date range", Cause: err}
			}
			current.start = &start
			current.end = end
			state = stateDates
		case state == stateName:
			current.detail = text
			state = stateDetail
		case state == stateDates || state == stateSummary:
			if current.summary != "" {
				current.summary += "\n"
			}
			current.summary += text
			state = stateSummary
		default:
			return nil, &SectionError{Section: section, Line: text, Message: "unexpected line"}
		}
	}
	flush()

	return out, nil
}

func parseOrganizations(lines []tokens.Line) ([]types.Organization, error) {
	entries, err := parseBoldEntries(tokens.SectionOrganizations, lines)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	out := make([]types.Organization, 0, len(entries))
	for _, e := range entries {
		out = append(out, types.Organization{
			Name:     e.name,
			Position: e.detail,
			Start:    e.start,
			End:      e.end,
			Summary:  e.summary,
		})
	}
	return out, nil
}

func parseHonorsAwards(lines []tokens.Line) ([]types.HonorAward, error) {
	entries, err := parseBoldEntries(tokens.SectionHonorsAwards, lines)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	out := make([]types.HonorAward, 0, len(entries))
	for _, e := range entries {
		out = append(out, types.HonorAward{
			Title:   e.name,
			Issuer:  e.detail,
			Start:   e.start,
			End:     e.end,
			Summary: e.summary,
		})
	}
	return out, nil
}
