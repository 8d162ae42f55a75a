package constants

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEntityType(t *testing.T) {
	tests := []struct {
		input string
		want  EntityType
		known bool
	}{
		{"PERSON", Person, true},
		{"person", Person, true},
		{"PER", Person, true},
		{"ORGANIZATION", Org, true},
		{"company", Org, true},
		{"GPE", Location, true},
		{"LOC", Location, true},
		{"CURRENCY", Money, true},
		{"COMPENSATION", Salary, true},
		{"TIME", Date, true},
		{" salary ", Salary, true},
		{"", Misc, false},
		{"GIBBERISH", Misc, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, known := CanonicalizeEntityType(tt.input)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.known, known)
		})
	}
}

func TestMapExtToFormat(t *testing.T) {
	require.Equal(t, PDF, MapExtToFormat("pdf"))
	require.Equal(t, PDF, MapExtToFormat(".PDF"))
	require.Equal(t, DOCX, MapExtToFormat("docx"))
	require.Equal(t, DOCX, MapExtToFormat("doc"))
	require.Equal(t, "", MapExtToFormat("txt"))
	require.Equal(t, "", MapExtToFormat(""))
}
