package parsing

import (
	"regexp"
	"strings"

	"github.com/victorsfleite/resume-parser/internal/dates"
	"github.com/victorsfleite/resume-parser/internal/tokens"
	"github.com/victorsfleite/resume-parser/internal/types"
)

// certRule is one entry of the ordered detail-line cascade, most to least
// specific.
type certRule struct {
	re    *regexp.Regexp
	apply func(c *types.Certification, m []string) error
}

var certRules = []certRule{
	{
		// "<authority>, License <id>, <obtained> to <validUntil>"
		re: regexp.MustCompile(`^(.+?), License (.+?), (.+ to .+)$`),
		apply: func(c *types.Certification, m []string) error {
			c.Authority, c.License = m[1], m[2]
			obtained, validUntil, err := dates.ParseRange(m[3], " to ")
			if err != nil {
				return err
			}
			c.Obtained = &obtained
			c.ValidUntil = validUntil
			return nil
		},
	},
	{
		// "<authority>, License <id>, <obtained>"
		re: regexp.MustCompile(`^(.+?), License (.+?), (.+)$`),
		apply: func(c *types.Certification, m []string) error {
			c.Authority, c.License = m[1], m[2]
			obtained, err := dates.Parse(m[3])
			if err != nil {
				return err
			}
			c.Obtained = &obtained
			return nil
		},
	},
	{
		// "<authority>, License <id>"
		re: regexp.MustCompile(`^(.+?), License (.+)$`),
		apply: func(c *types.Certification, m []string) error {
			c.Authority, c.License = m[1], m[2]
			return nil
		},
	},
	{
		// "<authority>, <obtained>"
		re: regexp.MustCompile(`^(.+?), ([A-Za-z]+ \d{4}|\d{4})$`),
		apply: func(c *types.Certification, m []string) error {
			c.Authority = m[1]
			obtained, err := dates.Parse(m[2])
			if err != nil {
				return err
			}
			c.Obtained = &obtained
			return nil
		},
	},
	{
		// "<authority>"
		re: regexp.MustCompile(`^(\S.*)$`),
		apply: func(c *types.Certification, m []string) error {
			c.Authority = m[1]
			return nil
		},
	},
}

// parseCertifications walks paragraph pairs with fixed stride 2: line 2i is
// the certification title, line 2i+1 the detail line. A detail line matching
// none of the cascade patterns is fatal; there is no silent skip.
func parseCertifications(lines []tokens.Line) ([]types.Certification, error) {
	var out []types.Certification
	for i := 0; i < len(lines); i += 2 {
		cert := types.Certification{Title: strings.TrimSpace(lines[i].Text)}
		if i+1 >= len(lines) {
			return nil, &SectionError{
				Section: tokens.SectionCertifications,
				Line:    cert.Title,
				Message: "certification title without details",
			}
		}

		detail := strings.TrimSpace(lines[i+1].Text)
		matched := false
		for _, rule := range certRules {
			m := rule.re.FindStringSubmatch(detail)
			if m == nil {
				continue
			}
			if err := rule.apply(&cert, m); err != nil {
				return nil, &SectionError{
					Section: tokens.SectionCertifications,
					Line:    detail,
					Message: "invalid certification date",
					Cause:   err,
				}
			}
			matched = true
			break
		}
		if !matched {
			return nil, &SectionError{
				Section: tokens.SectionCertifications,
				Line:    detail,
				Message: "unrecognized certification details",
			}
		}

		out = append(out, cert)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
