package textextract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapses runs of spaces and tabs",
			in:   "salary   of\t\t500",
			want: "salary of 500",
		},
		{
			name: "strips page number artifacts",
			in:   "clause one\nPage 3\nclause two",
			want: "clause one\nclause two",
		},
		{
			name: "strips n-of-m page markers",
			in:   "intro 2/14 body",
			want: "intro body",
		},
		{
			name: "strips separator lines",
			in:   "header\n------------\nbody",
			want: "header\nbody",
		},
		{
			name: "collapses dotted leaders",
			in:   "Article 5........ Termination",
			want: "Article 5. Termination",
		},
		{
			name: "drops blank lines and trims edges",
			in:   "  first  \n\n\n  second  ",
			want: "first\nsecond",
		},
		{
			name: "empty input",
			in:   "   \n\n  ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeNFC(t *testing.T) {
	// e + combining acute accent folds into the precomposed form
	decomposed := "salarié"
	require.Equal(t, "salarié", Normalize(decomposed))
}
