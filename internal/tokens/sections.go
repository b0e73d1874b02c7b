package tokens

// Section identifies one of the fixed section titles of the profile export
// template. The value is the verbatim title text as it appears in the
// document.
type Section string

// Titled sections, in the order the template emits them.
const (
	SectionSummary         Section = "Summary"
	SectionExperience      Section = "Experience"
	SectionSkills          Section = "Skills & Expertise"
	SectionEducation       Section = "Education"
	SectionCertifications  Section = "Certifications"
	SectionVolunteer       Section = "Volunteer Experience"
	SectionLanguages       Section = "Languages"
	SectionInterests       Section = "Interests"
	SectionOrganizations   Section = "Organizations"
	SectionCourses         Section = "Courses"
	SectionProjects        Section = "Projects"
	SectionHonorsAwards    Section = "Honors and Awards"
	SectionTestScores      Section = "Test Scores"
	SectionURL             Section = "URL"
)

// Non-section identifiers, used only for selective-parsing filtering. They do
// not bound token ranges.
const (
	SectionName            Section = "Name"
	SectionEmail           Section = "Email Address"
	SectionRecommendations Section = "Recommendations"
)

// sectionTitles is the process-wide table of titles that bound sections.
var sectionTitles = []Section{
	SectionSummary,
	SectionExperience,
	SectionSkills,
	SectionEducation,
	SectionCertifications,
	SectionVolunteer,
	SectionLanguages,
	SectionInterests,
	SectionOrganizations,
	SectionCourses,
	SectionProjects,
	SectionHonorsAwards,
	SectionTestScores,
	SectionURL,
}

// Sections returns every identifier accepted for selective parsing.
func Sections() []Section {
	all := make([]Section, 0, len(sectionTitles)+3)
	all = append(all, sectionTitles...)
	all = append(all, SectionName, SectionEmail, SectionRecommendations)
	return all
}

// IsSectionTitle reports whether text matches any known section title
// verbatim.
func IsSectionTitle(text string) bool {
	for _, title := range sectionTitles {
		if text == string(title) {
			return true
		}
	}
	return false
}

// ParseSection resolves a section name to its identifier.
func ParseSection(name string) (Section, bool) {
	for _, s := range Sections() {
		if name == string(s) {
			return s, true
		}
	}
	return "", false
}
