package parsing

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/victorsfleite/resume-parser/internal/tokens"
	"github.com/victorsfleite/resume-parser/internal/types"
)

// contactRE captures the subject's given name from the contact boilerplate
// line present elsewhere in the document.
var contactRE = regexp.MustCompile(`Contact (.+?) on LinkedIn`)

// emailLookahead is how many tokens after the name are searched for an email
// address.
const emailLookahead = 5

// extractIdentity pulls the full name from the first token, splits it into
// given name and surname, and looks for an email address among the tokens
// immediately following the name. Absence of an email is not an error.
func extractIdentity(toks []tokens.Token, profile *types.Profile, wantName, wantEmail bool) {
	if len(toks) == 0 {
		return
	}

	if wantName {
		full := fullName(toks)
		given := firstWord(full)
		for _, t := range toks {
			if m := contactRE.FindStringSubmatch(t.Text); m != nil {
				given = m[1]
				break
			}
		}
		profile.Name = given
		profile.Surname = strings.TrimSpace(strings.Replace(full, given, "", 1))
	}

	if wantEmail {
		validate := validator.New()
		for _, t := range toks[1:min(len(toks), 1+emailLookahead)] {
			candidate := strings.TrimSpace(t.Text)
			if candidate == "" {
				continue
			}
			if validate.Var(candidate, "email") == nil {
				profile.Email = candidate
				break
			}
		}
	}
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}
