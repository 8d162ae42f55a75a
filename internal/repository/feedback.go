package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ebolowa/contract-insight/gen/ent"
	entfeedback "github.com/ebolowa/contract-insight/gen/ent/feedback"
	"github.com/ebolowa/contract-insight/internal/common"
	"github.com/ebolowa/contract-insight/internal/entity"
)

type FeedbackRepository interface {
	Create(ctx context.Context, summaryID uuid.UUID, rating int, comment string) (*entity.Feedback, error)
	ListBySummary(ctx context.Context, summaryID uuid.UUID) ([]entity.Feedback, error)
}

type feedbackRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewFeedbackRepository(entc *ent.Client, log *slog.Logger) FeedbackRepository {
	if log == nil {
		log = slog.Default()
	}
	return &feedbackRepo{ent: entc, log: log}
}

func (r *feedbackRepo) Create(ctx context.Context, summaryID uuid.UUID, rating int, comment string) (*entity.Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating %d outside 1..5: %w", rating, common.ErrInvalidInput)
	}
	create := r.ent.Feedback.
		Create().
		SetSummaryID(summaryID).
		SetRating(rating)
	if comment != "" {
		create.SetComment(comment)
	}
	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, common.ErrNotFound
		}
		r.log.Error("feedback create failed", "summary_id", summaryID, "err", err)
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	r.log.Info("feedback recorded", "summary_id", summaryID, "rating", rating)
	return toFeedback(row), nil
}

func (r *feedbackRepo) ListBySummary(ctx context.Context, summaryID uuid.UUID) ([]entity.Feedback, error) {
	rows, err := r.ent.Feedback.
		Query().
		Where(entfeedback.SummaryID(summaryID)).
		Order(ent.Asc(entfeedback.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	out := make([]entity.Feedback, len(rows))
	for i, row := range rows {
		out[i] = *toFeedback(row)
	}
	return out, nil
}

func toFeedback(row *ent.Feedback) *entity.Feedback {
	f := &entity.Feedback{
		ID:        row.ID,
		SummaryID: row.SummaryID,
		Rating:    row.Rating,
		CreatedAt: row.CreatedAt,
	}
	if row.Comment != nil {
		f.Comment = *row.Comment
	}
	return f
}
