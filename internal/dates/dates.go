// Package dates parses the loosely formatted date expressions found in
// profile exports: "May 2015", "2015", and ranges of either with an optional
// "Present" end marker.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Present is the literal end marker denoting an open-ended range.
const Present = "Present"

var (
	monthYearRE = regexp.MustCompile(`^[A-Za-z]+ \d{4}$`)
	yearRE      = regexp.MustCompile(`^\d{4}$`)
)

// monthLayouts covers full and abbreviated English month names.
var monthLayouts = []string{"January 2006", "Jan 2006"}

// RangeError reports a date-range expression that did not split into exactly
// two parts around the expected separator.
type RangeError struct {
	Text string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("malformed date range: %q", e.Text)
}

// DateError reports a date expression with an unrecognized shape.
type DateError struct {
	Text string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("unparseable date: %q", e.Text)
}

// ParseRange splits text on sep into exactly two parts and parses each as a
// date. A literal "Present" in the end position yields a nil end, marking the
// range as still open.
func ParseRange(text, sep string) (time.Time, *time.Time, error) {
	parts := strings.Split(text, sep)
	if len(parts) != 2 {
		return time.Time{}, nil, &RangeError{Text: text}
	}

	start, err := Parse(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, nil, err
	}

	endText := strings.TrimSpace(parts[1])
	if endText == Present {
		return start, nil, nil
	}
	end, err := Parse(endText)
	if err != nil {
		return time.Time{}, nil, err
	}
	return start, &end, nil
}

// Parse resolves "May 2015" to the first day of that month and "2015" to
// January 1 of that year. Any other shape is an error.
func Parse(text string) (time.Time, error) {
	switch {
	case monthYearRE.MatchString(text):
		for _, layout := range monthLayouts {
			if t, err := time.Parse(layout, text); err == nil {
				return t, nil
			}
		}
		return time.Time{}, &DateError{Text: text}
	case yearRE.MatchString(text):
		year, err := strconv.Atoi(text)
		if err != nil {
			return time.Time{}, &DateError{Text: text}
		}
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, &DateError{Text: text}
}
