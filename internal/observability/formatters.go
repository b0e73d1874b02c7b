// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/victorsfleite/resume-parser/internal/types"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of a parsed profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	if profile.Name != "" || profile.Surname != "" {
		sb.WriteString(fmt.Sprintf("Name:     %s %s\n", profile.Name, profile.Surname))
	}
	if profile.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", profile.Email))
	}
	if profile.CurrentRole != nil {
		sb.WriteString(fmt.Sprintf("Current:  %s at %s\n", profile.CurrentRole.Title, profile.CurrentRole.Organisation))
	}
	if profile.URL != "" {
		sb.WriteString(fmt.Sprintf("URL:      %s\n", profile.URL))
	}
	sb.WriteString("\n")

	counts := []struct {
		label string
		n     int
	}{
		{"Previous roles", len(profile.PreviousRoles)},
		{"Volunteer roles", len(profile.VolunteerRoles)},
		{"Education", len(profile.Education)},
		{"Certifications", len(profile.Certifications)},
		{"Languages", len(profile.Languages)},
		{"Organizations", len(profile.Organizations)},
		{"Honors & awards", len(profile.HonorsAwards)},
		{"Courses", len(profile.Courses)},
		{"Projects", len(profile.Projects)},
		{"Test scores", len(profile.TestScores)},
		{"Endorsements", len(profile.Endorsements)},
	}
	for _, c := range counts {
		if c.n > 0 {
			sb.WriteString(fmt.Sprintf("%-16s %d\n", c.label+":", c.n))
		}
	}

	p.printBox("Parsed Profile", strings.TrimRight(sb.String(), "\n"))
}
