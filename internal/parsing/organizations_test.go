package parsing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorsfleite/resume-parser/internal/tokens"
)

func TestParseOrganizations_FullEntry(t *testing.T) {
	lines := []tokens.Line{
		{Text: "Association for Computing Machinery", Bold: true},
		{Text: "Professional Member"},
		{Text: "January 2014 to Present"},
		{Text: "Attends the annual conference."},
		{Text: "Organizes the local chapter."},
	}

	orgs, err := parseOrganizations(lines)
	require.NoError(t, err)
	require.Len(t, orgs, 1)

	o := orgs[0]
	assert.Equal(t, "Association for Computing Machinery", o.Name)
	assert.Equal(t, "Professional Member", o.Position)
	require.NotNil(t, o.Start)
	assert.Equal(t, time.January, o.Start.Month())
	assert.Nil(t, o.End)
	assert.Equal(t, "Attends the annual conference.\nOrganizes the local chapter.", o.Summary)
}

func TestParseOrganizations_MultipleEntries(t *testing.T) {
	lines := []tokens.Line{
		{Text: "First Society", Bold: true},
		{Text: "May 2010 to May 2012"},
		{Text: "Second Society", Bold: true},
		{Text: "Treasurer"},
	}

	orgs, err := parseOrganizations(lines)
	require.NoError(t, err)
	require.Len(t, orgs, 2)
	require.NotNil(t, orgs[0].Start)
	require.NotNil(t, orgs[0].End)
	assert.Equal(t, 2012, orgs[0].End.Year())
	assert.Equal(t, "Treasurer", orgs[1].Position)
}

func TestParseOrganizations_LineOutsideEntryIsFatal(t *testing.T) {
	lines := []tokens.Line{
		{Text: "Not a bold name line"},
	}

	_, err := parseOrganizations(lines)
	require.Error(t, err)
	var sectionErr *SectionError
	require.ErrorAs(t, err, &sectionErr)
	assert.Equal(t, tokens.SectionOrganizations, sectionErr.Section)
}

func TestParseOrganizations_UnexpectedLineIsFatal(t *testing.T) {
	lines := []tokens.Line{
		{Text: "Society", Bold: true},
		{Text: "Member"},
		{Text: "Another plain line before any dates"},
	}

	_, err := parseOrganizations(lines)
	require.Error(t, err)
	var sectionErr *SectionError
	require.ErrorAs(t, err, &sectionErr)
	assert.Equal(t, "unexpected line", sectionErr.Message)
}

func TestParseHonorsAwards_MapsFields(t *testing.T) {
	lines := []tokens.Line{
		{Text: "Employee of the Year", Bold: true},
		{Text: "Acme Corp"},
		{Text: "December 2016 to December 2016"},
		{Text: "Awarded for outstanding delivery."},
	}

	honors, err := parseHonorsAwards(lines)
	require.NoError(t, err)
	require.Len(t, honors, 1)
	assert.Equal(t, "Employee of the Year", honors[0].Title)
	assert.Equal(t, "Acme Corp", honors[0].Issuer)
	require.NotNil(t, honors[0].Start)
	assert.Equal(t, time.December, honors[0].Start.Month())
	assert.Equal(t, "Awarded for outstanding delivery.", honors[0].Summary)
}
