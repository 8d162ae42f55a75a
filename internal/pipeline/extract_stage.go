package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/internal/common"
	"github.com/ebolowa/contract-insight/internal/entity"
	"github.com/ebolowa/contract-insight/internal/langdetect"
	"github.com/ebolowa/contract-insight/internal/ner"
	"github.com/ebolowa/contract-insight/internal/textextract"
)

// ExtractStage turns an uploaded document into persisted text, a detected
// language, and an opportunistic entity set.
type ExtractStage struct {
	Contracts ContractStore
	Entities  EntityStore
	Extractor textextract.TextExtractor
	Detector  *langdetect.Detector
	NER       *ner.Extractor
	Logger    *slog.Logger
}

func NewExtractStage(contracts ContractStore, entities EntityStore, tx textextract.TextExtractor, det *langdetect.Detector, nx *ner.Extractor, logger *slog.Logger) *ExtractStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStage{
		Contracts: contracts,
		Entities:  entities,
		Extractor: tx,
		Detector:  det,
		NER:       nx,
		Logger:    logger,
	}
}

// Run advances the contract PENDING→EXTRACTING→EXTRACTED. Extraction errors
// move the contract to FAILED with the taxonomy kind recorded; entity tagging
// is best-effort and can only degrade the result, never fail the stage.
func (s *ExtractStage) Run(ctx context.Context, contractID uuid.UUID, doc entity.Document) error {
	start := time.Now()

	c, err := s.Contracts.GetByID(ctx, contractID)
	if err != nil {
		return fmt.Errorf("load contract: %w", err)
	}
	if !constants.CanTransition(c.Status, constants.StatusExtracting) {
		return fmt.Errorf("cannot extract from %s: %w", c.Status, common.ErrInvalidTransition)
	}
	if err := s.Contracts.SetStatus(ctx, contractID, constants.StatusExtracting); err != nil {
		return fmt.Errorf("set status: %w", err)
	}

	res, err := s.Extractor.Extract(ctx, doc)
	if err != nil {
		s.Logger.Error("pipeline.extract.failed", "contract_id", contractID, "err", err)
		return s.fail(contractID, err)
	}

	lang, certain := s.Detector.Detect(res.Text)
	res.Language = lang
	if !certain {
		s.Logger.Warn("pipeline.langdetect.uncertain", "contract_id", contractID, "default", lang)
	}

	// Entities ride along with extraction: a missing or failing model yields a
	// degraded (possibly empty) set, not a FAILED contract.
	set, err := s.NER.Extract(ctx, res.Text, lang)
	if err != nil {
		s.Logger.Warn("pipeline.ner.failed", "contract_id", contractID, "err", err)
		set = entity.ExtractionSet{Degraded: true}
	}
	for i := range set.Entities {
		set.Entities[i].ContractID = contractID
	}

	degraded := set.Degraded || !certain
	if err := s.Contracts.SaveExtraction(ctx, contractID, res, degraded); err != nil {
		return s.fail(contractID, fmt.Errorf("%w: persist extraction: %v", common.ErrDatabase, err))
	}
	if err := s.Entities.ReplaceForContract(ctx, contractID, set.Entities); err != nil {
		return s.fail(contractID, fmt.Errorf("%w: persist entities: %v", common.ErrDatabase, err))
	}
	if err := s.Contracts.SetStatus(ctx, contractID, constants.StatusExtracted); err != nil {
		return fmt.Errorf("set status: %w", err)
	}

	s.Logger.Info("pipeline.extract.ok",
		"contract_id", contractID,
		"format", res.Format,
		"pages", res.Pages,
		"lang", lang,
		"entities", len(set.Entities),
		"degraded", degraded,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// fail records the failure on a detached context so an expired or canceled
// caller context cannot strand the contract in EXTRACTING.
func (s *ExtractStage) fail(contractID uuid.UUID, cause error) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	kind := common.ErrorKind(cause)
	if err := s.Contracts.MarkFailed(ctx, contractID, kind, cause.Error()); err != nil {
		s.Logger.Error("pipeline.extract.mark_failed", "contract_id", contractID, "err", err)
	}
	return cause
}
