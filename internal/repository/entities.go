package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/gen/ent"
	ententity "github.com/ebolowa/contract-insight/gen/ent/entity"
	"github.com/ebolowa/contract-insight/internal/common"
	"github.com/ebolowa/contract-insight/internal/entity"
)

// EntityRepository persists extracted entities. Satisfies
// pipeline.EntityStore.
type EntityRepository interface {
	ReplaceForContract(ctx context.Context, contractID uuid.UUID, ents []entity.Entity) error
	ListByContract(ctx context.Context, contractID uuid.UUID) ([]entity.Entity, error)
}

type entityRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewEntityRepository(entc *ent.Client, log *slog.Logger) EntityRepository {
	if log == nil {
		log = slog.Default()
	}
	return &entityRepo{ent: entc, log: log}
}

// ReplaceForContract swaps the contract's entity set in one transaction so a
// re-extraction never leaves a mix of old and new rows.
func (r *entityRepo) ReplaceForContract(ctx context.Context, contractID uuid.UUID, ents []entity.Entity) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return common.WrapError(common.ErrDatabase, err.Error())
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Entity.Delete().Where(ententity.ContractID(contractID)).Exec(ctx); err != nil {
		return common.WrapError(common.ErrDatabase, err.Error())
	}

	if len(ents) > 0 {
		bulk := make([]*ent.EntityCreate, len(ents))
		for i, e := range ents {
			create := tx.Entity.Create().
				SetContractID(contractID).
				SetType(string(e.Type)).
				SetValue(e.Value).
				SetConfidence(e.Confidence).
				SetPosition(e.Position)
			if e.Section != "" {
				create.SetSection(e.Section)
			}
			bulk[i] = create
		}
		if _, err = tx.Entity.CreateBulk(bulk...).Save(ctx); err != nil {
			return common.WrapError(common.ErrDatabase, err.Error())
		}
	}

	if err = tx.Commit(); err != nil {
		return common.WrapError(common.ErrDatabase, err.Error())
	}
	r.log.Info("entities replaced", "contract_id", contractID, "count", len(ents))
	return nil
}

func (r *entityRepo) ListByContract(ctx context.Context, contractID uuid.UUID) ([]entity.Entity, error) {
	rows, err := r.ent.Entity.
		Query().
		Where(ententity.ContractID(contractID)).
		Order(ent.Asc(ententity.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	out := make([]entity.Entity, len(rows))
	for i, row := range rows {
		out[i] = entity.Entity{
			ID:         row.ID,
			ContractID: row.ContractID,
			Type:       constants.EntityType(row.Type),
			Value:      row.Value,
			Confidence: row.Confidence,
			Position:   row.Position,
		}
		if row.Section != nil {
			out[i].Section = *row.Section
		}
	}
	return out, nil
}
