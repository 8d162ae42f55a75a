package constants

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from ContractStatus
		to   ContractStatus
		want bool
	}{
		{"pending to extracting", StatusPending, StatusExtracting, true},
		{"extracting to extracted", StatusExtracting, StatusExtracted, true},
		{"extracted to summarizing", StatusExtracted, StatusSummarizing, true},
		{"summarizing to completed", StatusSummarizing, StatusCompleted, true},
		{"completed re-enters summarizing", StatusCompleted, StatusSummarizing, true},
		{"failed retries extraction", StatusFailed, StatusExtracting, true},
		{"failed retries summarizing", StatusFailed, StatusSummarizing, true},
		{"pending to failed", StatusPending, StatusFailed, true},
		{"extracting to failed", StatusExtracting, StatusFailed, true},
		{"summarizing to failed", StatusSummarizing, StatusFailed, true},

		{"pending cannot skip to extracted", StatusPending, StatusExtracted, false},
		{"pending cannot skip to summarizing", StatusPending, StatusSummarizing, false},
		{"extracted cannot go back to extracting", StatusExtracted, StatusExtracting, false},
		{"completed cannot fail", StatusCompleted, StatusFailed, false},
		{"completed cannot re-extract", StatusCompleted, StatusExtracting, false},
		{"failed cannot complete directly", StatusFailed, StatusCompleted, false},
		{"no self transition", StatusExtracting, StatusExtracting, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	require.True(t, IsTerminal(StatusCompleted))
	require.True(t, IsTerminal(StatusFailed))
	require.False(t, IsTerminal(StatusPending))
	require.False(t, IsTerminal(StatusExtracting))
	require.False(t, IsTerminal(StatusExtracted))
	require.False(t, IsTerminal(StatusSummarizing))
}
