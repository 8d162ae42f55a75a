// Package job hosts scheduled maintenance. The janitor is the backstop that
// keeps the status machine honest: nothing may sit in an in-flight status
// forever, even across a crashed worker or a lost daemon.
package job

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/ebolowa/contract-insight/internal/entity"
)

// ContractStore is the slice of contract storage the janitor needs.
type ContractStore interface {
	ListStuck(ctx context.Context, cutoff time.Time) ([]*entity.Contract, error)
	MarkFailed(ctx context.Context, id uuid.UUID, kind, message string) error
}

const staleKind = "STALE_PROCESSING"

type Janitor struct {
	contracts  ContractStore
	staleAfter time.Duration
	logger     *slog.Logger
	cron       *cron.Cron
}

// NewJanitor schedules a sweep at the given cron spec. staleAfter is how long
// a contract may hold EXTRACTING/SUMMARIZING before it is declared abandoned.
func NewJanitor(contracts ContractStore, spec string, staleAfter time.Duration, logger *slog.Logger) (*Janitor, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if staleAfter <= 0 {
		staleAfter = 30 * time.Minute
	}
	j := &Janitor{
		contracts:  contracts,
		staleAfter: staleAfter,
		logger:     logger,
		cron:       cron.New(),
	}
	if _, err := j.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := j.Sweep(ctx); err != nil {
			logger.Error("janitor.sweep_failed", "err", err)
		}
	}); err != nil {
		return nil, fmt.Errorf("invalid janitor schedule %q: %w", spec, err)
	}
	return j, nil
}

func (j *Janitor) Start() {
	j.cron.Start()
	j.logger.Info("janitor started", "stale_after", j.staleAfter)
}

// Stop halts scheduling and waits for a running sweep, bounded by ctx.
func (j *Janitor) Stop(ctx context.Context) {
	done := j.cron.Stop().Done()
	select {
	case <-done:
	case <-ctx.Done():
		j.logger.Warn("janitor stop interrupted by context")
	}
}

// Sweep fails every contract stuck in an in-flight status past the deadline.
// Returns how many were failed.
func (j *Janitor) Sweep(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-j.staleAfter)
	stuck, err := j.contracts.ListStuck(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("list stuck contracts: %w", err)
	}

	failed := 0
	for _, c := range stuck {
		msg := fmt.Sprintf("stuck in %s for more than %s", c.Status, j.staleAfter)
		if err := j.contracts.MarkFailed(ctx, c.ID, staleKind, msg); err != nil {
			j.logger.Error("janitor.mark_failed", "contract_id", c.ID, "err", err)
			continue
		}
		j.logger.Warn("janitor failed stale contract", "contract_id", c.ID, "was", c.Status)
		failed++
	}
	if failed > 0 || len(stuck) > 0 {
		j.logger.Info("janitor.sweep.done", "stuck", len(stuck), "failed", failed)
	}
	return failed, nil
}
