package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/gen/ent"
	entsummary "github.com/ebolowa/contract-insight/gen/ent/summary"
	"github.com/ebolowa/contract-insight/internal/common"
	"github.com/ebolowa/contract-insight/internal/entity"
)

// SummaryRepository persists append-only summary records. Satisfies
// pipeline.SummaryStore.
type SummaryRepository interface {
	Create(ctx context.Context, contractID uuid.UUID, tier constants.Tier, draft entity.SummaryDraft) (*entity.Summary, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Summary, error)
	// ListByContract returns all records, newest first; the head per tier is
	// the current summary.
	ListByContract(ctx context.Context, contractID uuid.UUID) ([]entity.Summary, error)
	Approve(ctx context.Context, id uuid.UUID) (*entity.Summary, error)
}

type summaryRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewSummaryRepository(entc *ent.Client, log *slog.Logger) SummaryRepository {
	if log == nil {
		log = slog.Default()
	}
	return &summaryRepo{ent: entc, log: log}
}

func (r *summaryRepo) Create(ctx context.Context, contractID uuid.UUID, tier constants.Tier, draft entity.SummaryDraft) (*entity.Summary, error) {
	row, err := r.ent.Summary.
		Create().
		SetContractID(contractID).
		SetTier(string(tier)).
		SetContent(draft.Content).
		SetConfidence(draft.Confidence).
		SetWordCount(draft.WordCount).
		SetModelName(draft.ModelName).
		Save(ctx)
	if err != nil {
		r.log.Error("summary create failed", "contract_id", contractID, "tier", tier, "err", err)
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	r.log.Info("summary created", "summary_id", row.ID, "contract_id", contractID, "tier", tier, "words", row.WordCount)
	return toSummary(row), nil
}

func (r *summaryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Summary, error) {
	row, err := r.ent.Summary.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	return toSummary(row), nil
}

func (r *summaryRepo) ListByContract(ctx context.Context, contractID uuid.UUID) ([]entity.Summary, error) {
	rows, err := r.ent.Summary.
		Query().
		Where(entsummary.ContractID(contractID)).
		Order(ent.Desc(entsummary.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	out := make([]entity.Summary, len(rows))
	for i, row := range rows {
		out[i] = *toSummary(row)
	}
	return out, nil
}

func (r *summaryRepo) Approve(ctx context.Context, id uuid.UUID) (*entity.Summary, error) {
	row, err := r.ent.Summary.
		UpdateOneID(id).
		SetApproved(true).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	r.log.Info("summary approved", "summary_id", id)
	return toSummary(row), nil
}

func toSummary(row *ent.Summary) *entity.Summary {
	return &entity.Summary{
		ID:         row.ID,
		ContractID: row.ContractID,
		Tier:       constants.Tier(row.Tier),
		Content:    row.Content,
		Confidence: row.Confidence,
		WordCount:  row.WordCount,
		ModelName:  row.ModelName,
		Approved:   row.Approved,
		CreatedAt:  row.CreatedAt,
	}
}
