package summarize

import (
	"math"
	"strings"
)

// confidenceKeyTerms are the facts a usable contract summary must cover.
var confidenceKeyTerms = []string{
	"salary", "position", "compensation", "benefits", "termination",
	"salaire", "poste", "rémunération", "préavis",
}

const confidenceCap = 0.95

// scoreConfidence derives an advisory [0,1] confidence from key-term coverage
// and the summary/source length ratio. It is surfaced to the caller and never
// used to gate acceptance.
func scoreConfidence(summary, original string) float32 {
	originalLower := strings.ToLower(original)
	summaryLower := strings.ToLower(summary)

	presentInOriginal := 0
	coveredInSummary := 0
	for _, term := range confidenceKeyTerms {
		if strings.Contains(originalLower, term) {
			presentInOriginal++
			if strings.Contains(summaryLower, term) {
				coveredInSummary++
			}
		}
	}

	coverage := 0.5
	if presentInOriginal > 0 {
		coverage = float64(coveredInSummary) / float64(presentInOriginal)
	}

	originalWords := wordCount(original)
	lengthScore := 0.0
	if originalWords > 0 {
		ratio := float64(wordCount(summary)) / float64(originalWords)
		lengthScore = math.Min(ratio*3, 1.0)
	}

	confidence := 0.6*coverage + 0.4*lengthScore
	if confidence > confidenceCap {
		confidence = confidenceCap
	}
	if confidence < 0 {
		confidence = 0
	}
	return float32(math.Round(confidence*100) / 100)
}
