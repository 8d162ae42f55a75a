package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ebolowa/contract-insight/constants"
	contractspb "github.com/ebolowa/contract-insight/gen/proto/contracts/v1"
	"github.com/ebolowa/contract-insight/internal/async"
	"github.com/ebolowa/contract-insight/internal/common"
	"github.com/ebolowa/contract-insight/internal/entity"
	"github.com/ebolowa/contract-insight/internal/pipeline"
	"github.com/ebolowa/contract-insight/internal/repository"
)

type SummaryService struct {
	contractspb.UnimplementedSummaryServiceServer
	processor *pipeline.Processor
	queue     async.Queue
	summaries repository.SummaryRepository
	feedback  repository.FeedbackRepository
	logger    *slog.Logger
}

func NewSummaryService(
	proc *pipeline.Processor,
	queue async.Queue,
	summaries repository.SummaryRepository,
	feedback repository.FeedbackRepository,
	logger *slog.Logger,
) *SummaryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummaryService{
		processor: proc,
		queue:     queue,
		summaries: summaries,
		feedback:  feedback,
		logger:    logger,
	}
}

func (s *SummaryService) GenerateSummary(ctx context.Context, req *contractspb.GenerateSummaryRequest) (*contractspb.GenerateSummaryResponse, error) {
	contractID, tier, err := parseSummaryArgs(req.GetContractId(), req.GetTier())
	if err != nil {
		return nil, err
	}

	sum, err := s.processor.GenerateSummary(ctx, contractID, tier)
	if err != nil {
		s.logger.Error("generate summary failed", "contract_id", contractID, "tier", tier, "err", err)
		return nil, common.GRPCStatus(err)
	}
	return &contractspb.GenerateSummaryResponse{Summary: toPBSummary(sum)}, nil
}

func (s *SummaryService) EnqueueSummary(ctx context.Context, req *contractspb.EnqueueSummaryRequest) (*contractspb.EnqueueSummaryResponse, error) {
	contractID, tier, err := parseSummaryArgs(req.GetContractId(), req.GetTier())
	if err != nil {
		return nil, err
	}

	ticket, err := s.queue.Enqueue(ctx, async.Job{
		ContractID:  contractID,
		Tier:        tier,
		SubmittedAt: time.Now(),
	})
	if err != nil {
		return nil, status.Error(codes.Unavailable, "summary queue is shutting down")
	}
	s.logger.Info("summary enqueued", "ticket_id", ticket.ID, "contract_id", contractID, "tier", tier)
	return &contractspb.EnqueueSummaryResponse{TicketId: ticket.ID.String()}, nil
}

func (s *SummaryService) ListSummaries(ctx context.Context, req *contractspb.ListSummariesRequest) (*contractspb.ListSummariesResponse, error) {
	contractID, err := parseContractID(req.GetContractId())
	if err != nil {
		return nil, err
	}
	sums, err := s.summaries.ListByContract(ctx, contractID)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	out := make([]*contractspb.Summary, 0, len(sums))
	for i := range sums {
		out = append(out, toPBSummary(&sums[i]))
	}
	return &contractspb.ListSummariesResponse{Summaries: out}, nil
}

func (s *SummaryService) ApproveSummary(ctx context.Context, req *contractspb.ApproveSummaryRequest) (*contractspb.ApproveSummaryResponse, error) {
	id, err := parseSummaryID(req.GetSummaryId())
	if err != nil {
		return nil, err
	}
	sum, err := s.summaries.Approve(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	s.logger.Info("summary approved", "summary_id", id)
	return &contractspb.ApproveSummaryResponse{Summary: toPBSummary(sum)}, nil
}

func (s *SummaryService) SubmitFeedback(ctx context.Context, req *contractspb.SubmitFeedbackRequest) (*contractspb.SubmitFeedbackResponse, error) {
	id, err := parseSummaryID(req.GetSummaryId())
	if err != nil {
		return nil, err
	}
	rating := int(req.GetRating())
	if rating < 1 || rating > 5 {
		return nil, status.Error(codes.InvalidArgument, "rating must be between 1 and 5")
	}

	fb, err := s.feedback.Create(ctx, id, rating, strings.TrimSpace(req.GetComment()))
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &contractspb.SubmitFeedbackResponse{FeedbackId: fb.ID.String()}, nil
}

func parseSummaryArgs(rawContractID, rawTier string) (uuid.UUID, constants.Tier, error) {
	contractID, err := parseContractID(rawContractID)
	if err != nil {
		return uuid.Nil, "", err
	}
	tier, ok := constants.ParseTier(rawTier)
	if !ok {
		return uuid.Nil, "", status.Errorf(codes.InvalidArgument, "tier must be one of %s", strings.Join(constants.Tiers, ", "))
	}
	return contractID, tier, nil
}

func parseSummaryID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "summary_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "summary_id must be a UUID")
	}
	return id, nil
}

func toPBSummary(sum *entity.Summary) *contractspb.Summary {
	return &contractspb.Summary{
		Id:         sum.ID.String(),
		ContractId: sum.ContractID.String(),
		Tier:       string(sum.Tier),
		Content:    sum.Content,
		Confidence: sum.Confidence,
		WordCount:  int32(sum.WordCount),
		ModelName:  sum.ModelName,
		Approved:   sum.Approved,
		CreatedAt:  sum.CreatedAt.UTC().Format(time.RFC3339),
	}
}
