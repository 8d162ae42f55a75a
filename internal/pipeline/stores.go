// Package pipeline orchestrates contract processing: extraction, entity
// tagging, and summary generation, with the contract status machine as the
// single source of truth for progress.
package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/internal/entity"
)

// ContractStore is the persistence surface the orchestrator needs for
// contract rows. Implementations live in internal/repository.
type ContractStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error)
	// GetText returns the persisted extracted text and detected language.
	// The text column is wide, so it is fetched separately from GetByID.
	GetText(ctx context.Context, id uuid.UUID) (string, constants.Language, error)
	// SetStatus writes a status the orchestrator has already validated.
	SetStatus(ctx context.Context, id uuid.UUID, status constants.ContractStatus) error
	// SaveExtraction persists the derived text, detected language, and the
	// degraded flag in one write.
	SaveExtraction(ctx context.Context, id uuid.UUID, res entity.ExtractedText, degraded bool) error
	// MarkFailed records the taxonomy kind and message and moves to FAILED.
	MarkFailed(ctx context.Context, id uuid.UUID, kind, message string) error
	// MarkCompleted moves to COMPLETED and stamps processed_at.
	MarkCompleted(ctx context.Context, id uuid.UUID) error
}

// EntityStore persists extracted entities for a contract.
type EntityStore interface {
	// ReplaceForContract swaps the contract's entity set atomically, so a
	// re-extraction never leaves a mix of old and new rows.
	ReplaceForContract(ctx context.Context, contractID uuid.UUID, ents []entity.Entity) error
}

// SummaryStore persists summary records. Records are append-only: a new
// generation for the same (contract, tier) creates a new row.
type SummaryStore interface {
	Create(ctx context.Context, contractID uuid.UUID, tier constants.Tier, draft entity.SummaryDraft) (*entity.Summary, error)
}
