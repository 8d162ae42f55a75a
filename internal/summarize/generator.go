// Package summarize generates natural-language contract summaries at a
// requested verbosity tier, enforcing the tier's word band as a generation
// constraint rather than a suggestion.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/internal/common"
	"github.com/ebolowa/contract-insight/internal/entity"
	"github.com/ebolowa/contract-insight/internal/llm"
)

// Config holds generation behavior knobs.
type Config struct {
	MaxChunkWords int // sentence-packing chunk size; default 800
}

// maxChunksPerTier caps map-reduce fan-out so short tiers stay fast.
var maxChunksPerTier = map[constants.Tier]int{
	constants.TierBrief:    5,
	constants.TierStandard: 8,
	constants.TierDetailed: 10,
}

// Generator produces tiered summaries through a warm llm.Generator. The model
// handle is shared and read-only; Generator is safe for concurrent use.
type Generator struct {
	gen    llm.Generator
	cfg    Config
	logger *slog.Logger
}

func NewGenerator(gen llm.Generator, cfg Config, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxChunkWords <= 0 {
		cfg.MaxChunkWords = 800
	}
	return &Generator{gen: gen, cfg: cfg, logger: logger}
}

// Generate summarizes text at the requested tier. The caller owns the
// wall-clock budget via ctx; deadline expiry is reported as
// common.ErrGenerationTimeout so the orchestrator can fail the attempt
// cleanly.
func (g *Generator) Generate(ctx context.Context, text string, lang constants.Language, tier constants.Tier) (entity.SummaryDraft, error) {
	start := time.Now()

	band, ok := constants.BandFor(tier)
	if !ok {
		return entity.SummaryDraft{}, fmt.Errorf("unknown tier %q: %w", tier, common.ErrInvalidInput)
	}
	if strings.TrimSpace(text) == "" {
		return entity.SummaryDraft{}, fmt.Errorf("empty input text: %w", common.ErrInvalidInput)
	}
	if g.gen == nil {
		return entity.SummaryDraft{}, fmt.Errorf("no generation model configured: %w", common.ErrModelUnavailable)
	}

	chunks := chunkBySentences(text, g.cfg.MaxChunkWords)
	maxChunks := maxChunksPerTier[tier]
	if len(chunks) > maxChunks {
		g.logger.Debug("summarize.chunk_selection", "have", len(chunks), "keep", maxChunks)
		chunks = selectImportantChunks(chunks, maxChunks)
	}

	g.logger.Info("summarize.start",
		"tier", tier, "lang", lang,
		"chunks", len(chunks), "band_min", band.Min, "band_max", band.Max)

	// map: per-chunk partial summaries
	chunkTarget := band.Max / len(chunks)
	if chunkTarget < 40 {
		chunkTarget = 40
	}
	partials := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		partial, err := g.gen.Generate(ctx, chunkPrompt(chunk, lang, chunkTarget))
		if err != nil {
			return entity.SummaryDraft{}, g.translate(ctx, err)
		}
		g.logger.Debug("summarize.chunk_done", "chunk", i+1, "of", len(chunks), "words", wordCount(partial))
		if s := strings.TrimSpace(partial); s != "" {
			partials = append(partials, s)
		}
	}
	if len(partials) == 0 {
		return entity.SummaryDraft{}, fmt.Errorf("model produced no content: %w", common.ErrGenerationFailed)
	}

	// reduce: combine and condense into the band
	combined := strings.Join(partials, " ")
	if len(partials) > 1 || wordCount(combined) > band.Max {
		condensed, err := g.gen.Generate(ctx, condensePrompt(combined, lang, band))
		if err != nil {
			return entity.SummaryDraft{}, g.translate(ctx, err)
		}
		if s := strings.TrimSpace(condensed); s != "" {
			combined = s
		}
	}

	summary := postprocess(combined)

	// the band is a constraint: clamp overshoot, reject severe undershoot
	wc := wordCount(summary)
	if wc > band.Max {
		summary = truncateAtSentence(summary, band.Max)
		wc = wordCount(summary)
	}
	if wc < int(float64(band.Min)*(1-constants.BandTolerance)) {
		return entity.SummaryDraft{}, fmt.Errorf("summary of %d words is below the %s band [%d,%d]: %w",
			wc, tier, band.Min, band.Max, common.ErrGenerationFailed)
	}

	draft := entity.SummaryDraft{
		Content:    summary,
		Confidence: scoreConfidence(summary, text),
		WordCount:  wc,
		ModelName:  g.gen.ModelName(),
	}

	g.logger.Info("summarize.done",
		"tier", tier, "words", wc, "confidence", draft.Confidence,
		"duration_ms", time.Since(start).Milliseconds())
	return draft, nil
}

// translate maps provider/context errors onto the fixed taxonomy; callers
// never see raw transport errors.
func (g *Generator) translate(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", common.ErrGenerationTimeout, err)
	case errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, common.ErrModelUnavailable):
		return err
	default:
		return fmt.Errorf("%w: %v", common.ErrGenerationFailed, err)
	}
}

func postprocess(summary string) string {
	summary = strings.Join(strings.Fields(summary), " ")
	if summary != "" && !strings.HasSuffix(summary, ".") {
		summary += "."
	}
	return summary
}

func chunkPrompt(chunk string, lang constants.Language, targetWords int) string {
	language := "English"
	if lang == constants.LangFrench {
		language = "French"
	}
	return fmt.Sprintf(
		"Summarize the following employment-contract excerpt in %s, in about %d words. "+
			"Keep every concrete fact: parties, dates, amounts, obligations. Output plain prose only.\n\n%s",
		language, targetWords, chunk)
}

func condensePrompt(text string, lang constants.Language, band constants.WordBand) string {
	language := "English"
	if lang == constants.LangFrench {
		language = "French"
	}
	return fmt.Sprintf(
		"Rewrite the following notes as one coherent %s summary of an employment contract. "+
			"The result MUST be between %d and %d words. Keep parties, dates, amounts, and obligations; "+
			"drop repetition. Output plain prose only.\n\n%s",
		language, band.Min, band.Max, text)
}
