package summarize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreConfidenceCoveredTerms(t *testing.T) {
	original := strings.Repeat("filler words here. ", 30) +
		"The salary and benefits are set out below. Termination requires notice. The position is permanent."
	summary := "The contract sets a salary with benefits, describes the position, and covers termination."

	score := scoreConfidence(summary, original)
	require.Greater(t, score, float32(0.5))
	require.LessOrEqual(t, score, float32(0.95))
}

func TestScoreConfidenceMissedTermsScoresLower(t *testing.T) {
	original := strings.Repeat("filler words here. ", 30) +
		"The salary and benefits are set out below. Termination requires notice. The position is permanent."
	covering := "The contract sets a salary with benefits, describes the position, and covers termination."
	missing := "This document is an agreement between two parties about various matters."

	require.Greater(t, scoreConfidence(covering, original), scoreConfidence(missing, original))
}

func TestScoreConfidenceCapped(t *testing.T) {
	original := "salary position compensation benefits termination"
	// summary longer than the original with full coverage would exceed the cap
	summary := strings.Repeat(original+" ", 5)
	require.LessOrEqual(t, scoreConfidence(summary, original), float32(0.95))
}

func TestScoreConfidenceBounds(t *testing.T) {
	score := scoreConfidence("", "some original text without key terms")
	require.GreaterOrEqual(t, score, float32(0))
	require.LessOrEqual(t, score, float32(1))
}
