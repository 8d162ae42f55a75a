package constants

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBandFor(t *testing.T) {
	band, ok := BandFor(TierBrief)
	require.True(t, ok)
	require.Equal(t, WordBand{Min: 100, Max: 150}, band)

	band, ok = BandFor(TierStandard)
	require.True(t, ok)
	require.Equal(t, WordBand{Min: 200, Max: 250}, band)

	band, ok = BandFor(TierDetailed)
	require.True(t, ok)
	require.Equal(t, WordBand{Min: 300, Max: 400}, band)

	_, ok = BandFor(Tier("verbose"))
	require.False(t, ok)
}

func TestParseTier(t *testing.T) {
	tier, ok := ParseTier("  Brief ")
	require.True(t, ok)
	require.Equal(t, TierBrief, tier)

	tier, ok = ParseTier("DETAILED")
	require.True(t, ok)
	require.Equal(t, TierDetailed, tier)

	_, ok = ParseTier("")
	require.False(t, ok)
	_, ok = ParseTier("medium")
	require.False(t, ok)
}
