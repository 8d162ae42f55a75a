package summarize

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitSentences(t *testing.T) {
	got := splitSentences("First clause. Second clause! Third clause? Fourth")
	require.Equal(t, []string{"First clause", "Second clause", "Third clause", "Fourth"}, got)
}

func TestChunkBySentencesKeepsSentencesWhole(t *testing.T) {
	var sentences []string
	for i := 0; i < 20; i++ {
		sentences = append(sentences, fmt.Sprintf("Sentence number %d has exactly seven words total. ", i))
	}
	text := strings.Join(sentences, "")

	chunks := chunkBySentences(text, 30)
	require.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		require.LessOrEqual(t, wordCount(c), 30)
		require.NotContains(t, c, "  ")
	}

	// nothing lost: every sentence appears in exactly one chunk
	joined := strings.Join(chunks, " ")
	for i := 0; i < 20; i++ {
		require.Contains(t, joined, fmt.Sprintf("Sentence number %d", i))
	}
}

func TestChunkBySentencesOversizedSentence(t *testing.T) {
	long := strings.Repeat("word ", 100) + "end."
	chunks := chunkBySentences(long, 30)
	require.Len(t, chunks, 1, "a single oversized sentence still forms one chunk")
}

func TestSelectImportantChunksPrefersContractTerms(t *testing.T) {
	chunks := []string{
		"The weather was pleasant and nothing notable happened in this clause at all.",
		"The employee shall receive a salary of 450 000 FCFA with benefits and compensation.",
		"Termination requires notice from the employer to the salarié per the contract.",
		"Another filler paragraph about office furniture and parking arrangements.",
	}
	kept := selectImportantChunks(chunks, 2)
	require.Equal(t, []string{chunks[1], chunks[2]}, kept, "keeps top-scoring chunks in document order")
}

func TestSelectImportantChunksNoopWhenUnderBudget(t *testing.T) {
	chunks := []string{"one", "two"}
	require.Equal(t, chunks, selectImportantChunks(chunks, 5))
}

func TestTruncateAtSentence(t *testing.T) {
	text := "First sentence here. Second sentence follows. Third one is long and runs over."
	out := truncateAtSentence(text, 7)
	require.Equal(t, "First sentence here. Second sentence follows.", out)

	require.Equal(t, text, truncateAtSentence(text, 1000))
}
