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
)

// Processor sequences the extract and summarize stages and owns the per-
// contract concurrency guarantee: at most one in-flight run per contract,
// concurrent callers refused with ErrAlreadyProcessing. A panic inside a
// stage is recovered and recorded as a FAILED attempt, so no contract is ever
// stranded in a non-terminal status.
type Processor struct {
	Logger    *slog.Logger
	Extract   *ExtractStage
	Summarize *SummarizeStage
	Contracts ContractStore

	locks *contractLocks
}

func NewProcessor(logger *slog.Logger, extract *ExtractStage, summarize *SummarizeStage, contracts ContractStore) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger:    logger,
		Extract:   extract,
		Summarize: summarize,
		Contracts: contracts,
		locks:     newContractLocks(),
	}
}

// ProcessContract runs the extract stage for a freshly ingested (or
// resubmitted) document.
func (p *Processor) ProcessContract(ctx context.Context, contractID uuid.UUID, doc entity.Document) error {
	if !p.locks.tryAcquire(contractID) {
		return fmt.Errorf("contract %s: %w", contractID, common.ErrAlreadyProcessing)
	}
	defer p.locks.release(contractID)

	// resubmission invalidates any text cached from a prior attempt
	p.Summarize.Invalidate(contractID)

	var err error
	func() {
		defer p.recover(contractID, &err)
		err = p.Extract.Run(ctx, contractID, doc)
	}()
	return err
}

// GenerateSummary runs the summarize stage for an already-extracted contract.
func (p *Processor) GenerateSummary(ctx context.Context, contractID uuid.UUID, tier constants.Tier) (*entity.Summary, error) {
	if !p.locks.tryAcquire(contractID) {
		return nil, fmt.Errorf("contract %s: %w", contractID, common.ErrAlreadyProcessing)
	}
	defer p.locks.release(contractID)

	var (
		sum *entity.Summary
		err error
	)
	func() {
		defer p.recover(contractID, &err)
		sum, err = p.Summarize.Run(ctx, contractID, tier)
	}()
	return sum, err
}

// recover converts a stage panic into a FAILED contract plus an error return.
// The rescue runs on a detached context: by the time a stage panics, the
// caller's context may already be canceled.
func (p *Processor) recover(contractID uuid.UUID, errp *error) {
	r := recover()
	if r == nil {
		return
	}
	cause := fmt.Errorf("stage panic: %v", r)
	p.Logger.Error("pipeline.panic", "contract_id", contractID, "panic", r)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// only an in-flight status needs rescuing; a panic before the stage moved
	// the contract leaves it in a valid resting state already
	if c, err := p.Contracts.GetByID(ctx, contractID); err == nil &&
		(c.Status == constants.StatusExtracting || c.Status == constants.StatusSummarizing) {
		if err := p.Contracts.MarkFailed(ctx, contractID, common.ErrorKind(cause), cause.Error()); err != nil {
			p.Logger.Error("pipeline.panic.mark_failed", "contract_id", contractID, "err", err)
		}
	}
	*errp = cause
}
