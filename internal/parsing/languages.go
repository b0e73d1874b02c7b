package parsing

import (
	"regexp"
	"strings"

	"github.com/victorsfleite/resume-parser/internal/tokens"
	"github.com/victorsfleite/resume-parser/internal/types"
)

// proficiencyRE matches the parenthesized proficiency line that may follow a
// language name, e.g. "(Native or bilingual proficiency)".
var proficiencyRE = regexp.MustCompile(`^\((.+) proficiency\)$`)

// parseLanguages emits one language per line; when the following line carries
// a proficiency level, it is attached and the scan advances past both lines.
func parseLanguages(lines []tokens.Line) []types.Language {
	var out []types.Language
	for i := 0; i < len(lines); i++ {
		name := strings.TrimSpace(lines[i].Text)
		if name == "" {
			continue
		}
		lang := types.Language{Name: name}
		if i+1 < len(lines) {
			if m := proficiencyRE.FindStringSubmatch(strings.TrimSpace(lines[i+1].Text)); m != nil {
				lang.Level = m[1]
				i++
			}
		}
		out = append(out, lang)
	}
	return out
}
