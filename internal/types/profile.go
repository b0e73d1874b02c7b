// Package types defines the data-holder types produced by parsing a profile export.
package types

import "time"

// Profile is the aggregate result of parsing a profile export.
// Fields stay zero for sections that were not requested or not present in the
// document.
type Profile struct {
	Name     string `json:"name,omitempty"`
	Surname  string `json:"surname,omitempty"`
	Email    string `json:"email,omitempty"`
	Summary  string `json:"summary,omitempty"`
	Interests string `json:"interests,omitempty"`

	// CurrentRole is the single role with an open end date, lifted out of the
	// ordered list.
	CurrentRole    *Role  `json:"current_role,omitempty"`
	PreviousRoles  []Role `json:"previous_roles,omitempty"`
	VolunteerRoles []Role `json:"volunteer_roles,omitempty"`

	Education      []Education     `json:"education,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Languages      []Language      `json:"languages,omitempty"`
	Organizations  []Organization  `json:"organizations,omitempty"`
	HonorsAwards   []HonorAward    `json:"honors_awards,omitempty"`
	Courses        []Course        `json:"courses,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	TestScores     []TestScore     `json:"test_scores,omitempty"`
	Endorsements   []Endorsement   `json:"endorsements,omitempty"`

	// URL is the last embedded hyperlink found by the raw-byte scan.
	URL string `json:"url,omitempty"`
}

// Role is the shared shape for employment and volunteer experience entries.
// A nil End means the role is still ongoing. Fields are independently
// optional: a date/summary group that never saw a title line is emitted as a
// placeholder record with empty title and organisation.
type Role struct {
	Title        string     `json:"title"`
	Organisation string     `json:"organisation"`
	Start        *time.Time `json:"start,omitempty"`
	End          *time.Time `json:"end,omitempty"`
	Summary      string     `json:"summary,omitempty"`
}

// Education is populated incrementally as successive lines are interpreted;
// every field is optional.
type Education struct {
	Institution string     `json:"institution,omitempty"`
	Level       string     `json:"level,omitempty"`
	Course      string     `json:"course,omitempty"`
	Start       *time.Time `json:"start,omitempty"`
	End         *time.Time `json:"end,omitempty"`
	Grade       string     `json:"grade,omitempty"`
	Activities  string     `json:"activities,omitempty"`
}

// Certification describes one certification title/detail pair.
type Certification struct {
	Title      string     `json:"title"`
	Authority  string     `json:"authority,omitempty"`
	License    string     `json:"license,omitempty"`
	Obtained   *time.Time `json:"obtained,omitempty"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`
}

// Language pairs a language name with an optional proficiency level.
type Language struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// Organization is a membership entry with an optional date range.
type Organization struct {
	Name     string     `json:"name"`
	Position string     `json:"position,omitempty"`
	Start    *time.Time `json:"start,omitempty"`
	End      *time.Time `json:"end,omitempty"`
	Summary  string     `json:"summary,omitempty"`
}

// HonorAward is an honor or award entry with an optional date range.
type HonorAward struct {
	Title   string     `json:"title"`
	Issuer  string     `json:"issuer,omitempty"`
	Start   *time.Time `json:"start,omitempty"`
	End     *time.Time `json:"end,omitempty"`
	Summary string     `json:"summary,omitempty"`
}

// Course is a single course name.
type Course struct {
	Name string `json:"name"`
}

// Project is a project entry with optional dates, members and summary.
type Project struct {
	Name    string     `json:"name"`
	Start   *time.Time `json:"start,omitempty"`
	End     *time.Time `json:"end,omitempty"`
	Members []string   `json:"members,omitempty"`
	Summary string     `json:"summary,omitempty"`
}

// TestScore pairs a test name with its score value.
type TestScore struct {
	Name  string `json:"name"`
	Score string `json:"score,omitempty"`
}

// Endorsement is one free-text recommendation from the document tail.
type Endorsement struct {
	Text     string `json:"text,omitempty"`
	Author   string `json:"author,omitempty"`
	Position string `json:"position,omitempty"`
	Relation string `json:"relation,omitempty"`
}
