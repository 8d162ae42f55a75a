package constants

import "strings"

// Tier is a summary verbosity level mapped to a target word-count band.
type Tier string

const (
	TierBrief    Tier = "brief"
	TierStandard Tier = "standard"
	TierDetailed Tier = "detailed"
)

// Tiers holds the allowed values for the summary tier field.
var Tiers = []string{string(TierBrief), string(TierStandard), string(TierDetailed)}

// WordBand is the inclusive target word-count range for a tier.
type WordBand struct {
	Min int
	Max int
}

// BandTolerance is the fraction a generated summary may overshoot or
// undershoot its band before it is treated as a generation defect.
const BandTolerance = 0.20

var tierBands = map[Tier]WordBand{
	TierBrief:    {Min: 100, Max: 150},
	TierStandard: {Min: 200, Max: 250},
	TierDetailed: {Min: 300, Max: 400},
}

// BandFor returns the word band for the tier. Unknown tiers report ok=false.
func BandFor(t Tier) (WordBand, bool) {
	b, ok := tierBands[t]
	return b, ok
}

// ParseTier normalizes user input into a Tier.
func ParseTier(input string) (Tier, bool) {
	switch Tier(strings.ToLower(strings.TrimSpace(input))) {
	case TierBrief:
		return TierBrief, true
	case TierStandard:
		return TierStandard, true
	case TierDetailed:
		return TierDetailed, true
	}
	return "", false
}
