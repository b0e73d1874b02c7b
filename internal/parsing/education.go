package parsing

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/victorsfleite/resume-parser/internal/tokens"
	"github.com/victorsfleite/resume-parser/internal/types"
)

const (
	activitiesMarker = "Activities and Societies:"
	gradeMarker      = "Grade:"
)

// eduRule is one entry of the ordered pattern cascade. Rules are evaluated
// top-down, first match wins: later, more general patterns would misfire on
// lines meant for earlier, more specific ones.
type eduRule struct {
	re    *regexp.Regexp
	apply func(e *types.Education, m []string)
}

var eduRules = []eduRule{
	{
		// "<level>, <course>, <startYear> - <endYear>"
		re: regexp.MustCompile(`^(.+?), (.+?), (\d{4}) - (\d{4})$`),
		apply: func(e *types.Education, m []string) {
			e.Level, e.Course = m[1], m[2]
			e.Start, e.End = yearDate(m[3]), yearDate(m[4])
		},
	},
	{
		// "<level>, <course>, <year>"
		re: regexp.MustCompile(`^(.+?), (.+?), (\d{4})$`),
		apply: func(e *types.Education, m []string) {
			e.Level, e.Course = m[1], m[2]
			e.End = yearDate(m[3])
		},
	},
	{
		// "<level>, <startYear> - <endYear>"
		re: regexp.MustCompile(`^(.+?), (\d{4}) - (\d{4})$`),
		apply: func(e *types.Education, m []string) {
			e.Level = m[1]
			e.Start, e.End = yearDate(m[2]), yearDate(m[3])
		},
	},
	{
		// "<level>, <year>"
		re: regexp.MustCompile(`^(.+?), (\d{4})$`),
		apply: func(e *types.Education, m []string) {
			e.Level = m[1]
			e.End = yearDate(m[2])
		},
	},
	{
		// "<startYear> - <endYear>" with no label, applied to the currently
		// open entry.
		re: regexp.MustCompile(`^(\d{4}) - (\d{4})$`),
		apply: func(e *types.Education, m []string) {
			e.Start, e.End = yearDate(m[1]), yearDate(m[2])
		},
	},
}

// parseEducation interprets each merged line through the ordered cascade.
// Lines matching no rule and no marker open a new institution, flushing the
// in-progress entry.
func parseEducation(lines []tokens.Line) []types.Education {
	var out []types.Education
	var current types.Education

	flush := func() {
		if current != (types.Education{}) {
			out = append(out, current)
			current = types.Education{}
		}
	}

	for i := 0; i < len(lines); i++ {
		text := strings.TrimSpace(lines[i].Text)
		if text == "" {
			continue
		}

		if rule, m := matchEduRule(text); rule != nil {
			rule.apply(&current, m)
			continue
		}

		if strings.HasPrefix(text, activitiesMarker) {
			var b strings.Builder
			b.WriteString(strings.TrimSpace(strings.TrimPrefix(text, activitiesMarker)))
			if b.Len() == 0 && i+1 < len(lines) {
				i++
				b.WriteString(strings.TrimSpace(lines[i].Text))
			}
			for i+1 < len(lines) && strings.HasPrefix(lines[i+1].Text, " ") {
				i++
				b.WriteString(lines[i].Text)
			}
			current.Activities = strings.TrimSpace(b.String())
			continue
		}

		if text == gradeMarker {
			if i+1 < len(lines) {
				i++
				current.Grade = strings.TrimSpace(lines[i].Text)
			}
			continue
		}

		flush()
		current.Institution = text
	}
	flush()

	return out
}

func matchEduRule(text string) (*eduRule, []string) {
	for i := range eduRules {
		if m := eduRules[i].re.FindStringSubmatch(text); m != nil {
			return &eduRules[i], m
		}
	}
	return nil, nil
}

// yearDate resolves a four-digit year to January 1 of that year. The regexes
// guarantee the text is numeric.
func yearDate(s string) *time.Time {
	year, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	t := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &t
}
