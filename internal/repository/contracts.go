package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/gen/ent"
	entcontract "github.com/ebolowa/contract-insight/gen/ent/contract"
	"github.com/ebolowa/contract-insight/internal/common"
	"github.com/ebolowa/contract-insight/internal/entity"
)

// CreateContractParams is everything the ingest boundary knows at accept time.
type CreateContractParams struct {
	Filename    string
	FileExt     string
	Size        int
	ContentHash []byte
}

// ContractRepository is the full contract storage surface. It satisfies
// pipeline.ContractStore plus the lookup, delete, and janitor queries the
// server and jobs need.
type ContractRepository interface {
	Create(ctx context.Context, params CreateContractParams) (*entity.Contract, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error)
	GetText(ctx context.Context, id uuid.UUID) (string, constants.Language, error)
	SetStatus(ctx context.Context, id uuid.UUID, status constants.ContractStatus) error
	SaveExtraction(ctx context.Context, id uuid.UUID, res entity.ExtractedText, degraded bool) error
	MarkFailed(ctx context.Context, id uuid.UUID, kind, message string) error
	MarkCompleted(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListStuck returns contracts sitting in an in-flight status since before
	// the cutoff. Used by the stale-contract janitor.
	ListStuck(ctx context.Context, cutoff time.Time) ([]*entity.Contract, error)
}

type contractRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewContractRepository(entc *ent.Client, log *slog.Logger) ContractRepository {
	if log == nil {
		log = slog.Default()
	}
	return &contractRepo{ent: entc, log: log}
}

func (r *contractRepo) Create(ctx context.Context, params CreateContractParams) (*entity.Contract, error) {
	row, err := r.ent.Contract.
		Create().
		SetFilename(params.Filename).
		SetFileExt(params.FileExt).
		SetSize(params.Size).
		SetContentHash(params.ContentHash).
		SetStatus(string(constants.StatusPending)).
		Save(ctx)
	if err != nil {
		r.log.Error("contract create failed", "filename", params.Filename, "err", err)
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	r.log.Info("contract created", "contract_id", row.ID, "filename", params.Filename, "size", params.Size)
	return toContract(row), nil
}

func (r *contractRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	row, err := r.ent.Contract.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	return toContract(row), nil
}

func (r *contractRepo) GetText(ctx context.Context, id uuid.UUID) (string, constants.Language, error) {
	row, err := r.ent.Contract.
		Query().
		Where(entcontract.ID(id)).
		Select(entcontract.FieldExtractedText, entcontract.FieldLanguage).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", "", common.ErrNotFound
		}
		return "", "", common.WrapError(common.ErrDatabase, err.Error())
	}
	text := ""
	if row.ExtractedText != nil {
		text = *row.ExtractedText
	}
	lang := constants.DefaultLanguage
	if row.Language != nil && *row.Language != "" {
		lang = constants.Language(*row.Language)
	}
	return text, lang, nil
}

func (r *contractRepo) SetStatus(ctx context.Context, id uuid.UUID, status constants.ContractStatus) error {
	_, err := r.ent.Contract.
		UpdateOneID(id).
		SetStatus(string(status)).
		SetStatusChangedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.log.Error("contract status update failed", "contract_id", id, "status", status, "err", err)
		return common.WrapError(common.ErrDatabase, err.Error())
	}
	return nil
}

func (r *contractRepo) SaveExtraction(ctx context.Context, id uuid.UUID, res entity.ExtractedText, degraded bool) error {
	_, err := r.ent.Contract.
		UpdateOneID(id).
		SetExtractedText(res.Text).
		SetLanguage(string(res.Language)).
		SetDegraded(degraded).
		ClearErrorKind().
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.log.Error("contract extraction save failed", "contract_id", id, "err", err)
		return common.WrapError(common.ErrDatabase, err.Error())
	}
	return nil
}

func (r *contractRepo) MarkFailed(ctx context.Context, id uuid.UUID, kind, message string) error {
	_, err := r.ent.Contract.
		UpdateOneID(id).
		SetStatus(string(constants.StatusFailed)).
		SetStatusChangedAt(time.Now()).
		SetErrorKind(kind).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.log.Error("contract mark failed errored", "contract_id", id, "err", err)
		return common.WrapError(common.ErrDatabase, err.Error())
	}
	r.log.Warn("contract marked FAILED", "contract_id", id, "kind", kind)
	return nil
}

func (r *contractRepo) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.Contract.
		UpdateOneID(id).
		SetStatus(string(constants.StatusCompleted)).
		SetStatusChangedAt(time.Now()).
		SetProcessedAt(time.Now()).
		ClearErrorKind().
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return common.WrapError(common.ErrDatabase, err.Error())
	}
	return nil
}

func (r *contractRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// entities and summaries cascade with the row
	err := r.ent.Contract.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return common.WrapError(common.ErrDatabase, err.Error())
	}
	r.log.Info("contract deleted", "contract_id", id)
	return nil
}

func (r *contractRepo) ListStuck(ctx context.Context, cutoff time.Time) ([]*entity.Contract, error) {
	rows, err := r.ent.Contract.
		Query().
		Where(
			entcontract.StatusIn(
				string(constants.StatusExtracting),
				string(constants.StatusSummarizing),
			),
			entcontract.StatusChangedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	out := make([]*entity.Contract, len(rows))
	for i, row := range rows {
		out[i] = toContract(row)
	}
	return out, nil
}

func toContract(row *ent.Contract) *entity.Contract {
	c := &entity.Contract{
		ID:          row.ID,
		Filename:    row.Filename,
		FileExt:     row.FileExt,
		Size:        row.Size,
		Status:      constants.ContractStatus(row.Status),
		Degraded:    row.Degraded,
		UploadedAt:  row.UploadedAt,
		ProcessedAt: row.ProcessedAt,
	}
	if row.Language != nil {
		c.Language = *row.Language
	}
	if row.ErrorKind != nil {
		c.ErrorKind = *row.ErrorKind
	}
	if row.ErrorMessage != nil {
		c.ErrorMessage = *row.ErrorMessage
	}
	if row.ExtractedText != nil {
		c.ExtractedText = *row.ExtractedText
	}
	return c
}
