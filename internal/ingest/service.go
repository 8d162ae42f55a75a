package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ebolowa/contract-insight/internal/common"
	"github.com/ebolowa/contract-insight/internal/entity"
	"github.com/ebolowa/contract-insight/internal/repository"
)

type Service struct {
	Contracts repository.ContractRepository
	Logger    *slog.Logger
}

func NewService(contracts repository.ContractRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{Contracts: contracts, Logger: logger}
}

// Submit validates the upload and creates a PENDING contract. Rejections
// (bad extension, empty payload) happen before any row exists.
func (s *Service) Submit(ctx context.Context, data []byte, filename string) (SubmitResult, error) {
	ext := ExtOf(filename)
	if ext == "" || !AllowedExt(ext) {
		return SubmitResult{}, fmt.Errorf("extension %q: %w", ext, common.ErrUnsupportedFormat)
	}
	if len(data) == 0 {
		return SubmitResult{}, fmt.Errorf("zero-byte upload %q: %w", filename, common.ErrEmptyDocument)
	}

	sum := sha256.Sum256(data)
	row, err := s.Contracts.Create(ctx, repository.CreateContractParams{
		Filename:    filepath.Base(filename),
		FileExt:     ext,
		Size:        len(data),
		ContentHash: sum[:],
	})
	if err != nil {
		return SubmitResult{}, err
	}

	s.Logger.Info("contract accepted",
		"contract_id", row.ID, "filename", row.Filename, "ext", ext, "size", len(data))
	return SubmitResult{Contract: row, HashHex: hex.EncodeToString(sum[:])}, nil
}

// ReadDocument loads a local file into a Document, for the one-shot CLI.
func ReadDocument(path string) (entity.Document, error) {
	ext := ExtOf(path)
	if ext == "" || !AllowedExt(ext) {
		return entity.Document{}, fmt.Errorf("extension %q: %w", ext, common.ErrUnsupportedFormat)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return entity.Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		return entity.Document{}, fmt.Errorf("empty file %s: %w", path, common.ErrEmptyDocument)
	}
	return entity.Document{
		Bytes:    data,
		Filename: filepath.Base(path),
		Ext:      ext,
		Size:     len(data),
	}, nil
}
