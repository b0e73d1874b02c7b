package parsing

import (
	"fmt"

	"github.com/victorsfleite/resume-parser/internal/tokens"
)

// SectionError reports a line inside a section that failed every pattern its
// extractor recognizes, or a date expression that failed to parse. Any
// SectionError aborts the whole conversion; there is no partial result.
type SectionError struct {
	Section tokens.Section
	Line    string
	Message string
	Cause   error
}

func (e *SectionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parsing %s: %s: %q: %v", e.Section, e.Message, e.Line, e.Cause)
	}
	return fmt.Sprintf("parsing %s: %s: %q", e.Section, e.Message, e.Line)
}

func (e *SectionError) Unwrap() error {
	return e.Cause
}
