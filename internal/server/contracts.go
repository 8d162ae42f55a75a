// Package server exposes the contract pipeline over gRPC.
package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	contractspb "github.com/ebolowa/contract-insight/gen/proto/contracts/v1"
	"github.com/ebolowa/contract-insight/internal/common"
	"github.com/ebolowa/contract-insight/internal/entity"
	"github.com/ebolowa/contract-insight/internal/export"
	"github.com/ebolowa/contract-insight/internal/ingest"
	"github.com/ebolowa/contract-insight/internal/pipeline"
	"github.com/ebolowa/contract-insight/internal/repository"
)

// processTimeout bounds the background extraction kicked off by a submit.
const processTimeout = 3 * time.Minute

type ContractService struct {
	contractspb.UnimplementedContractServiceServer
	ingestor  ingest.Ingestor
	processor *pipeline.Processor
	contracts repository.ContractRepository
	entities  repository.EntityRepository
	exporter  *export.Service
	logger    *slog.Logger
}

func NewContractService(
	ing ingest.Ingestor,
	proc *pipeline.Processor,
	contracts repository.ContractRepository,
	entities repository.EntityRepository,
	exporter *export.Service,
	logger *slog.Logger,
) *ContractService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContractService{
		ingestor:  ing,
		processor: proc,
		contracts: contracts,
		entities:  entities,
		exporter:  exporter,
		logger:    logger,
	}
}

// SubmitContract accepts the upload synchronously and runs extraction in the
// background; the client polls GetContract for progress.
func (s *ContractService) SubmitContract(ctx context.Context, req *contractspb.SubmitContractRequest) (*contractspb.SubmitContractResponse, error) {
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}

	res, err := s.ingestor.Submit(ctx, req.GetContent(), filename)
	if err != nil {
		s.logger.Error("submit rejected", "filename", filename, "err", err)
		return nil, common.GRPCStatus(err)
	}

	doc := entity.Document{
		Bytes:    req.GetContent(),
		Filename: res.Contract.Filename,
		Ext:      res.Contract.FileExt,
		Size:     res.Contract.Size,
	}
	go func() {
		pctx, cancel := context.WithTimeout(context.Background(), processTimeout)
		defer cancel()
		if err := s.processor.ProcessContract(pctx, res.Contract.ID, doc); err != nil {
			s.logger.Error("pipeline.failed", "contract_id", res.Contract.ID, "err", err)
		}
	}()

	s.logger.Info("contract submitted", "contract_id", res.Contract.ID, "filename", filename)
	return &contractspb.SubmitContractResponse{
		Contract:       toPBContract(res.Contract),
		ContentHashHex: res.HashHex,
	}, nil
}

func (s *ContractService) GetContract(ctx context.Context, req *contractspb.GetContractRequest) (*contractspb.GetContractResponse, error) {
	id, err := parseContractID(req.GetContractId())
	if err != nil {
		return nil, err
	}

	c, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	ents, err := s.entities.ListByContract(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}

	out := make([]*contractspb.Entity, 0, len(ents))
	for _, e := range ents {
		out = append(out, &contractspb.Entity{
			Id:         e.ID.String(),
			Type:       string(e.Type),
			Value:      e.Value,
			Confidence: e.Confidence,
			Section:    e.Section,
			Position:   int32(e.Position),
		})
	}
	return &contractspb.GetContractResponse{
		Contract: toPBContract(c),
		Entities: out,
	}, nil
}

func (s *ContractService) DeleteContract(ctx context.Context, req *contractspb.DeleteContractRequest) (*contractspb.DeleteContractResponse, error) {
	id, err := parseContractID(req.GetContractId())
	if err != nil {
		return nil, err
	}
	if err := s.contracts.Delete(ctx, id); err != nil {
		return nil, common.GRPCStatus(err)
	}
	s.processor.Summarize.Invalidate(id)
	s.logger.Info("contract deleted", "contract_id", id)
	return &contractspb.DeleteContractResponse{Deleted: true}, nil
}

func (s *ContractService) ExportContractReport(ctx context.Context, req *contractspb.ExportContractReportRequest) (*contractspb.ExportContractReportResponse, error) {
	id, err := parseContractID(req.GetContractId())
	if err != nil {
		return nil, err
	}
	xlsx, err := s.exporter.ExportContractXLSX(ctx, id)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "contract_id", id, "err", err)
		return nil, common.GRPCStatus(err)
	}
	return &contractspb.ExportContractReportResponse{Xlsx: xlsx}, nil
}

func parseContractID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "contract_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "contract_id must be a UUID")
	}
	return id, nil
}

func toPBContract(c *entity.Contract) *contractspb.Contract {
	pb := &contractspb.Contract{
		Id:           c.ID.String(),
		Filename:     c.Filename,
		FileExt:      c.FileExt,
		Size:         int64(c.Size),
		Language:     c.Language,
		Status:       string(c.Status),
		ErrorKind:    c.ErrorKind,
		ErrorMessage: c.ErrorMessage,
		Degraded:     c.Degraded,
		UploadedAt:   c.UploadedAt.UTC().Format(time.RFC3339),
	}
	if c.ProcessedAt != nil {
		pb.ProcessedAt = c.ProcessedAt.UTC().Format(time.RFC3339)
	}
	return pb
}
