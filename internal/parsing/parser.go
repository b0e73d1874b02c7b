// Package parsing implements the per-section heuristic extractors that turn a
// styled token stream into a structured profile.
package parsing

import (
	"regexp"
	"strings"

	"github.com/victorsfleite/resume-parser/internal/tokens"
	"github.com/victorsfleite/resume-parser/internal/types"
)

// hyperlinkRE matches embedded hyperlink annotations in the raw, unparsed
// file content.
var hyperlinkRE = regexp.MustCompile(`URI\s*\(([^)]+)\)`)

// Parse runs the extractors selected by requested over the token stream and
// assembles one aggregate profile. An empty request set means parse
// everything. raw is the unparsed file content, scanned independently for an
// embedded hyperlink.
//
// A section title that never occurs in the stream is not an error; the
// corresponding field is simply left unset.
func Parse(toks []tokens.Token, raw []byte, requested []tokens.Section) (*types.Profile, error) {
	toks = tokens.Normalize(toks)
	profile := &types.Profile{}

	want := func(s tokens.Section) bool {
		if len(requested) == 0 {
			return true
		}
		for _, r := range requested {
			if r == s {
				return true
			}
		}
		return false
	}

	if want(tokens.SectionName) || want(tokens.SectionEmail) {
		extractIdentity(toks, profile, want(tokens.SectionName), want(tokens.SectionEmail))
	}

	if want(tokens.SectionSummary) {
		profile.Summary = joinSection(tokens.SectionSummary, toks)
	}

	if want(tokens.SectionExperience) {
		roles, err := parseRoles(tokens.SectionExperience, tokens.FindSection(tokens.SectionExperience, toks))
		if err != nil {
			return nil, err
		}
		profile.CurrentRole, profile.PreviousRoles = splitCurrentRole(roles)
	}

	if want(tokens.SectionVolunteer) {
		roles, err := parseRoles(tokens.SectionVolunteer, tokens.FindSection(tokens.SectionVolunteer, toks))
		if err != nil {
			return nil, err
		}
		profile.VolunteerRoles = roles
	}

	if want(tokens.SectionEducation) {
		profile.Education = parseEducation(tokens.FindSection(tokens.SectionEducation, toks))
	}

	if want(tokens.SectionCertifications) {
		certs, err := parseCertifications(tokens.FindSection(tokens.SectionCertifications, toks))
		if err != nil {
			return nil, err
		}
		profile.Certifications = certs
	}

	if want(tokens.SectionLanguages) {
		profile.Languages = parseLanguages(tokens.FindSection(tokens.SectionLanguages, toks))
	}

	if want(tokens.SectionInterests) {
		profile.Interests = joinSection(tokens.SectionInterests, toks)
	}

	if want(tokens.SectionOrganizations) {
		orgs, err := parseOrganizations(tokens.FindSection(tokens.SectionOrganizations, toks))
		if err != nil {
			return nil, err
		}
		profile.Organizations = orgs
	}

	if want(tokens.SectionHonorsAwards) {
		honors, err := parseHonorsAwards(tokens.FindSection(tokens.SectionHonorsAwards, toks))
		if err != nil {
			return nil, err
		}
		profile.HonorsAwards = honors
	}

	if want(tokens.SectionCourses) {
		profile.Courses = parseCourses(tokens.FindSection(tokens.SectionCourses, toks))
	}

	if want(tokens.SectionProjects) {
		projects, err := parseProjects(tokens.FindSection(tokens.SectionProjects, toks))
		if err != nil {
			return nil, err
		}
		profile.Projects = projects
	}

	if want(tokens.SectionTestScores) {
		profile.TestScores = parseTestScores(tokens.FindSection(tokens.SectionTestScores, toks))
	}

	if want(tokens.SectionRecommendations) {
		profile.Endorsements = parseEndorsements(fullName(toks), toks)
	}

	if want(tokens.SectionURL) {
		profile.URL = scanHyperlink(raw)
	}

	return profile, nil
}

// fullName is the subject's full name, always the first token of the stream.
func fullName(toks []tokens.Token) string {
	if len(toks) == 0 {
		return ""
	}
	return strings.TrimSpace(toks[0].Text)
}

// joinSection flattens a free-text section (Summary, Interests) into a single
// string, one merged paragraph per line.
func joinSection(section tokens.Section, toks []tokens.Token) string {
	lines := tokens.FindSection(section, toks)
	parts := make([]string, 0, len(lines))
	for _, ln := range lines {
		if text := strings.TrimSpace(ln.Text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}

// splitCurrentRole lifts the open-ended role out of the ordered list. The
// remaining roles keep their document order, most recent first.
func splitCurrentRole(roles []types.Role) (*types.Role, []types.Role) {
	var current *types.Role
	previous := make([]types.Role, 0, len(roles))
	for _, role := range roles {
		if current == nil && role.Start != nil && role.End == nil {
			r := role
			current = &r
			continue
		}
		previous = append(previous, role)
	}
	if len(previous) == 0 {
		previous = nil
	}
	return current, previous
}

// scanHyperlink runs the independent raw-byte scan. The last match wins: the
// most relevant link typically appears last in the underlying structure.
func scanHyperlink(raw []byte) string {
	matches := hyperlinkRE.FindAllSubmatch(raw, -1)
	if len(matches) == 0 {
		return ""
	}
	return string(matches[len(matches)-1][1])
}
