// Package export produces XLSX contract reports for download.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/ebolowa/contract-insight/internal/entity"
	"github.com/ebolowa/contract-insight/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// a single contract's report.
type Service struct {
	contracts repository.ContractRepository
	entities  repository.EntityRepository
	summaries repository.SummaryRepository
	logger    *slog.Logger
}

func NewService(contracts repository.ContractRepository, entities repository.EntityRepository, summaries repository.SummaryRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{contracts: contracts, entities: entities, summaries: summaries, logger: logger}
}

// ExportContractXLSX returns a workbook with one sheet of extracted entities
// and one of generated summaries for the contract.
func (s *Service) ExportContractXLSX(ctx context.Context, contractID uuid.UUID) ([]byte, error) {
	start := time.Now()

	c, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("load contract: %w", err)
	}
	ents, err := s.entities.ListByContract(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("query entities: %w", err)
	}
	sums, err := s.summaries.ListByContract(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("query summaries: %w", err)
	}

	buf, err := BuildWorkbook(c, ents, sums)
	if err != nil {
		return nil, err
	}

	s.logger.Info("export.xlsx.ok",
		"contract_id", contractID.String(),
		"entities", len(ents),
		"summaries", len(sums),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf, nil
}

// BuildWorkbook renders the report from already-loaded records. Split out so
// the layout can be tested without a database.
func BuildWorkbook(c *entity.Contract, ents []entity.Entity, sums []entity.Summary) ([]byte, error) {
	f := excelize.NewFile()

	const entitySheet = "Entities"
	const summarySheet = "Summaries"

	// excelize starts with "Sheet1"; rename it to our first sheet
	if err := f.SetSheetName("Sheet1", entitySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}
	if idx, _ := f.GetSheetIndex(entitySheet); idx >= 0 {
		f.SetActiveSheet(idx)
	}

	write := func(sheet string, col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	entityHeaders := []string{"Type", "Value", "Confidence", "Section"}
	for i, h := range entityHeaders {
		write(entitySheet, i+1, 1, h)
	}
	row := 2
	for _, e := range ents {
		write(entitySheet, 1, row, string(e.Type))
		write(entitySheet, 2, row, truncate(e.Value, 140))
		write(entitySheet, 3, row, fmt.Sprintf("%.2f", e.Confidence))
		write(entitySheet, 4, row, e.Section)
		row++
	}

	summaryHeaders := []string{"Tier", "Words", "Confidence", "Approved", "Created", "Model", "Content"}
	for i, h := range summaryHeaders {
		write(summarySheet, i+1, 1, h)
	}
	row = 2
	for _, sum := range sums {
		write(summarySheet, 1, row, string(sum.Tier))
		write(summarySheet, 2, row, sum.WordCount)
		write(summarySheet, 3, row, fmt.Sprintf("%.2f", sum.Confidence))
		write(summarySheet, 4, row, sum.Approved)
		write(summarySheet, 5, row, sum.CreatedAt.UTC().Format("2006-01-02 15:04"))
		write(summarySheet, 6, row, sum.ModelName)
		write(summarySheet, 7, row, sum.Content)
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(entitySheet, "A", "A", 12)  // type
	_ = f.SetColWidth(entitySheet, "B", "B", 48)  // value
	_ = f.SetColWidth(entitySheet, "C", "C", 12)  // confidence
	_ = f.SetColWidth(entitySheet, "D", "D", 22)  // section
	_ = f.SetColWidth(summarySheet, "A", "F", 14) // metadata
	_ = f.SetColWidth(summarySheet, "G", "G", 90) // content

	// lightweight provenance in workbook properties
	_ = f.SetDocProps(&excelize.DocProperties{
		Title:       fmt.Sprintf("Contract report - %s", c.Filename),
		Description: fmt.Sprintf("status=%s language=%s", c.Status, c.Language),
	})

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
