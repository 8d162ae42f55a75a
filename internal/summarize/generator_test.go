package summarize

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/internal/common"
)

// fakeGen answers every prompt with a canned reply (or error) and counts
// calls.
type fakeGen struct {
	reply string
	err   error
	calls int
}

func (f *fakeGen) Generate(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeGen) ModelName() string { return "fake-model" }

// prose builds n sentences of plain text, 8 words each.
func prose(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString("The employee shall receive a salary each month. ")
	}
	return strings.TrimSpace(sb.String())
}

const sourceText = "The employment agreement between ACME Corp and Jane Doe sets a monthly salary " +
	"of 450 000 FCFA, describes the position, and regulates termination with one month of notice. " +
	"Benefits include health coverage."

func TestGenerateWithinBand(t *testing.T) {
	gen := &fakeGen{reply: prose(15)} // 120 words, inside the brief band
	g := NewGenerator(gen, Config{}, nil)

	draft, err := g.Generate(context.Background(), sourceText, constants.LangEnglish, constants.TierBrief)
	require.NoError(t, err)
	require.Equal(t, "fake-model", draft.ModelName)
	require.GreaterOrEqual(t, draft.WordCount, 100)
	require.LessOrEqual(t, draft.WordCount, 150)
	require.GreaterOrEqual(t, draft.Confidence, float32(0))
	require.LessOrEqual(t, draft.Confidence, float32(0.95))
}

func TestGenerateTruncatesOvershoot(t *testing.T) {
	gen := &fakeGen{reply: prose(30)} // 240 words, far over the brief band max
	g := NewGenerator(gen, Config{}, nil)

	draft, err := g.Generate(context.Background(), sourceText, constants.LangEnglish, constants.TierBrief)
	require.NoError(t, err)
	require.LessOrEqual(t, draft.WordCount, 150)
	require.True(t, strings.HasSuffix(draft.Content, "."), "truncation keeps a sentence boundary")
}

func TestGenerateClampsModestOvershoot(t *testing.T) {
	gen := &fakeGen{reply: prose(20)} // 160 words, just past the brief band max
	g := NewGenerator(gen, Config{}, nil)

	draft, err := g.Generate(context.Background(), sourceText, constants.LangEnglish, constants.TierBrief)
	require.NoError(t, err)
	require.LessOrEqual(t, draft.WordCount, 150, "anything above the band max is truncated")
	require.True(t, strings.HasSuffix(draft.Content, "."))
}

func TestGenerateRejectsSevereUndershoot(t *testing.T) {
	gen := &fakeGen{reply: "Too short."} // 2 words against a 100-word minimum
	g := NewGenerator(gen, Config{}, nil)

	_, err := g.Generate(context.Background(), sourceText, constants.LangEnglish, constants.TierBrief)
	require.ErrorIs(t, err, common.ErrGenerationFailed)
}

func TestGenerateTimeout(t *testing.T) {
	gen := &fakeGen{err: context.DeadlineExceeded}
	g := NewGenerator(gen, Config{}, nil)

	_, err := g.Generate(context.Background(), sourceText, constants.LangEnglish, constants.TierStandard)
	require.ErrorIs(t, err, common.ErrGenerationTimeout)
}

func TestGenerateModelUnavailable(t *testing.T) {
	gen := &fakeGen{err: common.ErrModelUnavailable}
	g := NewGenerator(gen, Config{}, nil)

	_, err := g.Generate(context.Background(), sourceText, constants.LangEnglish, constants.TierStandard)
	require.ErrorIs(t, err, common.ErrModelUnavailable)
}

func TestGenerateOtherErrorsBecomeGenerationFailed(t *testing.T) {
	gen := &fakeGen{err: errors.New("boom")}
	g := NewGenerator(gen, Config{}, nil)

	_, err := g.Generate(context.Background(), sourceText, constants.LangEnglish, constants.TierStandard)
	require.ErrorIs(t, err, common.ErrGenerationFailed)
}

func TestGenerateRejectsUnknownTier(t *testing.T) {
	g := NewGenerator(&fakeGen{reply: prose(15)}, Config{}, nil)
	_, err := g.Generate(context.Background(), sourceText, constants.LangEnglish, constants.Tier("huge"))
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestGenerateRejectsEmptyText(t *testing.T) {
	g := NewGenerator(&fakeGen{reply: prose(15)}, Config{}, nil)
	_, err := g.Generate(context.Background(), "   ", constants.LangEnglish, constants.TierBrief)
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestGenerateNilModel(t *testing.T) {
	g := NewGenerator(nil, Config{}, nil)
	_, err := g.Generate(context.Background(), sourceText, constants.LangEnglish, constants.TierBrief)
	require.ErrorIs(t, err, common.ErrModelUnavailable)
}

func TestGenerateMapReduceOverChunks(t *testing.T) {
	// a long document forces multiple chunks plus a condensation pass
	long := prose(400) // 3200 words -> several 800-word chunks
	gen := &fakeGen{reply: prose(15)}
	g := NewGenerator(gen, Config{}, nil)

	draft, err := g.Generate(context.Background(), long, constants.LangEnglish, constants.TierBrief)
	require.NoError(t, err)
	require.Greater(t, gen.calls, 2, "expects per-chunk calls plus a condensation call")
	require.LessOrEqual(t, draft.WordCount, 150)
}
