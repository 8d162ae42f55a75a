package summarize

import (
	"regexp"
	"sort"
	"strings"
)

var (
	reSentenceEnd = regexp.MustCompile(`(?:[.!?])\s+`)
	reFinancial   = regexp.MustCompile(`[$€]\s?\d+|\d+\s*%|\b\d[\d\s.,]*\s*fcfa\b`)
)

// importantKeywords score chunks for selection when a document produces more
// chunks than the tier budget allows. Bilingual on purpose.
var importantKeywords = []string{
	"salary", "compensation", "position", "benefits", "termination",
	"responsibilities", "employee", "employer", "contract", "agreement",
	"salaire", "rémunération", "poste", "préavis", "employeur", "salarié",
}

// splitSentences breaks text on sentence boundaries, dropping empties.
func splitSentences(text string) []string {
	parts := reSentenceEnd.Split(text, -1)
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// chunkBySentences packs whole sentences into chunks of at most maxWords
// words. Sentences are never split, so each chunk stays coherent prose.
func chunkBySentences(text string, maxWords int) []string {
	sentences := splitSentences(text)
	var chunks []string
	var current []string
	currentWords := 0

	for _, s := range sentences {
		w := wordCount(s)
		if currentWords+w > maxWords && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
			current = current[:0]
			currentWords = 0
		}
		current = append(current, s)
		currentWords += w
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}

// selectImportantChunks keeps the maxChunks highest-scoring chunks while
// preserving their original document order, so the combined summary still
// reads front to back.
func selectImportantChunks(chunks []string, maxChunks int) []string {
	if len(chunks) <= maxChunks {
		return chunks
	}

	type scored struct {
		index int
		score int
	}
	ranked := make([]scored, len(chunks))
	for i, chunk := range chunks {
		lower := strings.ToLower(chunk)
		score := 0
		for _, kw := range importantKeywords {
			score += strings.Count(lower, kw)
		}
		score += len(reFinancial.FindAllString(lower, -1)) * 2
		ranked[i] = scored{index: i, score: score}
	}
	sort.SliceStable(ranked, func(a, b int) bool { return ranked[a].score > ranked[b].score })

	keep := ranked[:maxChunks]
	sort.Slice(keep, func(a, b int) bool { return keep[a].index < keep[b].index })

	out := make([]string, len(keep))
	for i, k := range keep {
		out[i] = chunks[k.index]
	}
	return out
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

// truncateAtSentence trims text to at most maxWords words, cutting at the
// last complete sentence that fits when one exists.
func truncateAtSentence(text string, maxWords int) string {
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return text
	}
	clipped := strings.Join(words[:maxWords], " ")
	if idx := strings.LastIndexAny(clipped, ".!?"); idx > len(clipped)/2 {
		return clipped[:idx+1]
	}
	return clipped + "."
}
