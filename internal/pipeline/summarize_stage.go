package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/internal/common"
	"github.com/ebolowa/contract-insight/internal/entity"
	"github.com/ebolowa/contract-insight/internal/summarize"
)

// SummarizeConfig holds behavior knobs for the summarize stage.
type SummarizeConfig struct {
	Timeout   time.Duration // wall-clock budget per generation; default 2m
	CacheSize int           // contract→text LRU entries; default 256
}

type cachedText struct {
	text string
	lang constants.Language
}

// SummarizeStage generates one summary record for a contract at a tier. The
// extracted text is immutable once written, so repeated generations for the
// same contract are served from an LRU cache instead of re-reading the wide
// text column.
type SummarizeStage struct {
	Contracts ContractStore
	Summaries SummaryStore
	Generator *summarize.Generator
	Cfg       SummarizeConfig
	Logger    *slog.Logger

	texts *lru.Cache[uuid.UUID, cachedText]
}

func NewSummarizeStage(contracts ContractStore, summaries SummaryStore, gen *summarize.Generator, cfg SummarizeConfig, logger *slog.Logger) *SummarizeStage {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 256
	}
	cache, _ := lru.New[uuid.UUID, cachedText](cfg.CacheSize)
	return &SummarizeStage{
		Contracts: contracts,
		Summaries: summaries,
		Generator: gen,
		Cfg:       cfg,
		Logger:    logger,
		texts:     cache,
	}
}

// Run advances the contract to SUMMARIZING, generates at the requested tier,
// and appends a Summary record. Generation failure moves the contract to
// FAILED but keeps the extracted text, so a retry skips extraction entirely.
func (s *SummarizeStage) Run(ctx context.Context, contractID uuid.UUID, tier constants.Tier) (*entity.Summary, error) {
	start := time.Now()

	c, err := s.Contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("load contract: %w", err)
	}
	if !constants.CanTransition(c.Status, constants.StatusSummarizing) {
		return nil, fmt.Errorf("cannot summarize from %s: %w", c.Status, common.ErrInvalidTransition)
	}

	text, lang, err := s.contractText(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, fmt.Errorf("contract has no extracted text, resubmit the document: %w", common.ErrInvalidInput)
	}

	if err := s.Contracts.SetStatus(ctx, contractID, constants.StatusSummarizing); err != nil {
		return nil, fmt.Errorf("set status: %w", err)
	}

	genCtx, cancel := context.WithTimeout(ctx, s.Cfg.Timeout)
	defer cancel()

	draft, err := s.Generator.Generate(genCtx, text, lang, tier)
	if err != nil {
		s.Logger.Error("pipeline.summarize.failed", "contract_id", contractID, "tier", tier, "err", err)
		return nil, s.fail(contractID, err)
	}

	sum, err := s.Summaries.Create(ctx, contractID, tier, draft)
	if err != nil {
		return nil, s.fail(contractID, fmt.Errorf("%w: persist summary: %v", common.ErrDatabase, err))
	}
	if err := s.Contracts.MarkCompleted(ctx, contractID); err != nil {
		return nil, fmt.Errorf("mark completed: %w", err)
	}

	s.Logger.Info("pipeline.summarize.ok",
		"contract_id", contractID,
		"summary_id", sum.ID,
		"tier", tier,
		"words", sum.WordCount,
		"confidence", sum.Confidence,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return sum, nil
}

func (s *SummarizeStage) contractText(ctx context.Context, contractID uuid.UUID) (string, constants.Language, error) {
	if hit, ok := s.texts.Get(contractID); ok {
		return hit.text, hit.lang, nil
	}
	text, lang, err := s.Contracts.GetText(ctx, contractID)
	if err != nil {
		return "", "", fmt.Errorf("load extracted text: %w", err)
	}
	if text != "" {
		s.texts.Add(contractID, cachedText{text: text, lang: lang})
	}
	return text, lang, nil
}

// Invalidate drops a contract's cached text, for deletes and re-extractions.
func (s *SummarizeStage) Invalidate(contractID uuid.UUID) {
	s.texts.Remove(contractID)
}

// fail records the failure on a detached context: the caller may already be
// gone (canceled RPC, expired deadline) and the status write must not depend
// on it, or the contract would sit SUMMARIZING until the janitor sweep.
func (s *SummarizeStage) fail(contractID uuid.UUID, cause error) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	kind := common.ErrorKind(cause)
	if err := s.Contracts.MarkFailed(ctx, contractID, kind, cause.Error()); err != nil {
		s.Logger.Error("pipeline.summarize.mark_failed", "contract_id", contractID, "err", err)
	}
	return cause
}
