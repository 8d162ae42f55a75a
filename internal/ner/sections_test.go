package ner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentifySections(t *testing.T) {
	text := strings.Join([]string{
		"EMPLOYMENT AGREEMENT between ACME Corp and Jane Doe.",
		"Duties: the employee will manage the Douala office.",
		"Compensation: a monthly salary of 450 000 FCFA.",
		"Termination: either party may give one month notice.",
	}, "\n")

	sections := IdentifySections(text)
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.Name
	}
	require.Equal(t, []string{"job_description", "compensation", "termination"}, names)

	for _, s := range sections {
		require.NotEmpty(t, s.Text)
		require.Contains(t, text, s.Text)
	}
}

func TestIdentifySectionsFallbackWholeDocument(t *testing.T) {
	text := "short text with none of the probe words"
	sections := IdentifySections(text)
	require.Len(t, sections, 1)
	require.Equal(t, "", sections[0].Name)
	require.Equal(t, text, sections[0].Text)
}

func TestSectionOf(t *testing.T) {
	sections := []Section{
		{Name: "compensation", Text: "a monthly salary of 450 000 FCFA"},
		{Name: "termination", Text: "one month notice applies"},
	}
	require.Equal(t, "compensation", SectionOf(sections, "450 000 FCFA"))
	require.Equal(t, "termination", SectionOf(sections, "ONE MONTH NOTICE"))
	require.Equal(t, "", SectionOf(sections, "not present"))
	require.Equal(t, "", SectionOf(sections, ""))
}
