package parsing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorsfleite/resume-parser/internal/tokens"
)

func TestParseCertifications_FullDetail(t *testing.T) {
	lines := []tokens.Line{
		{Text: "Certified Scrum Master", Bold: true},
		{Text: "Scrum Alliance, License 000311932, May 2014 to May 2016"},
	}

	certs, err := parseCertifications(lines)
	require.NoError(t, err)
	require.Len(t, certs, 1)

	c := certs[0]
	assert.Equal(t, "Certified Scrum Master", c.Title)
	assert.Equal(t, "Scrum Alliance", c.Authority)
	assert.Equal(t, "000311932", c.License)
	require.NotNil(t, c.Obtained)
	assert.Equal(t, time.May, c.Obtained.Month())
	require.NotNil(t, c.ValidUntil)
	assert.Equal(t, 2016, c.ValidUntil.Year())
}

func TestParseCertifications_LicenseAndObtained(t *testing.T) {
	lines := []tokens.Line{
		{Text: "AWS Solutions Architect", Bold: true},
		{Text: "Amazon Web Services, License ABC-123, March 2019"},
	}

	certs, err := parseCertifications(lines)
	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.Equal(t, "ABC-123", certs[0].License)
	require.NotNil(t, certs[0].Obtained)
	assert.Equal(t, 2019, certs[0].Obtained.Year())
	assert.Nil(t, certs[0].ValidUntil)
}

func TestParseCertifications_LicenseOnly(t *testing.T) {
	lines := []tokens.Line{
		{Text: "First Aid", Bold: true},
		{Text: "Red Cross, License FA-9"},
	}

	certs, err := parseCertifications(lines)
	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.Equal(t, "Red Cross", certs[0].Authority)
	assert.Equal(t, "FA-9", certs[0].License)
	assert.Nil(t, certs[0].Obtained)
}

func TestParseCertifications_AuthorityAndDate(t *testing.T) {
	lines := []tokens.Line{
		{Text: "Driving Licence", Bold: true},
		{Text: "DVLA, June 2008"},
	}

	certs, err := parseCertifications(lines)
	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.Equal(t, "DVLA", certs[0].Authority)
	assert.Empty(t, certs[0].License)
	require.NotNil(t, certs[0].Obtained)
	assert.Equal(t, time.June, certs[0].Obtained.Month())
}

func TestParseCertifications_AuthorityOnly(t *testing.T) {
	lines := []tokens.Line{
		{Text: "Yellow Belt", Bold: true},
		{Text: "Six Sigma Institute"},
	}

	certs, err := parseCertifications(lines)
	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.Equal(t, "Six Sigma Institute", certs[0].Authority)
}

func TestParseCertifications_OddPairIsFatal(t *testing.T) {
	lines := []tokens.Line{
		{Text: "Orphan Title", Bold: true},
	}

	_, err := parseCertifications(lines)
	require.Error(t, err)
	var sectionErr *SectionError
	require.ErrorAs(t, err, &sectionErr)
	assert.Equal(t, tokens.SectionCertifications, sectionErr.Section)
}

func TestParseCertifications_UnmatchedDetailIsFatal(t *testing.T) {
	lines := []tokens.Line{
		{Text: "Some Title", Bold: true},
		{Text: "   "},
	}

	_, err := parseCertifications(lines)
	require.Error(t, err)
	var sectionErr *SectionError
	require.ErrorAs(t, err, &sectionErr)
	assert.Contains(t, sectionErr.Message, "unrecognized")
}

func TestParseCertifications_EmptySection(t *testing.T) {
	certs, err := parseCertifications(nil)
	require.NoError(t, err)
	assert.Nil(t, certs)
}
