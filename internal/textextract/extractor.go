package textextract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/internal/common"
	"github.com/ebolowa/contract-insight/internal/entity"
)

// TextExtractor converts an uploaded binary document into normalized plain
// text. Implementations have no side effects and do not persist.
type TextExtractor interface {
	Extract(ctx context.Context, doc entity.Document) (entity.ExtractedText, error)
}

type Config struct {
	MaxPages int // 0 = no limit
}

type Extractor struct {
	cfg    Config
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{cfg: cfg, logger: logger}
}

// Extract picks a strategy based on the declared extension. All failures are
// terminal for the contract: no partial text is ever returned as success.
func (e *Extractor) Extract(ctx context.Context, doc entity.Document) (entity.ExtractedText, error) {
	start := time.Now()
	format := constants.MapExtToFormat(doc.Ext)
	e.logger.Debug("starting text extraction", "filename", doc.Filename, "ext", doc.Ext, "size", doc.Size)

	if format == "" {
		e.logger.Error("unsupported document extension", "extension", doc.Ext)
		return entity.ExtractedText{}, fmt.Errorf("extension %q: %w", doc.Ext, common.ErrUnsupportedFormat)
	}
	if len(doc.Bytes) == 0 {
		return entity.ExtractedText{}, fmt.Errorf("%s: %w", doc.Filename, common.ErrEmptyDocument)
	}

	var (
		raw   string
		pages int
		err   error
	)
	switch format {
	case constants.PDF:
		raw, pages, err = e.extractPDF(ctx, doc.Bytes)
	case constants.DOCX:
		raw, err = e.extractDOCX(doc.Bytes)
		pages = 1
	}
	if err != nil {
		e.logger.Error("text extraction failed", "filename", doc.Filename, "format", format, "error", err)
		return entity.ExtractedText{}, err
	}

	text := Normalize(raw)
	if text == "" {
		e.logger.Warn("document yielded no extractable text", "filename", doc.Filename, "format", format)
		return entity.ExtractedText{}, fmt.Errorf("%s: %w", doc.Filename, common.ErrEmptyDocument)
	}

	e.logger.Debug("text extraction finished",
		"filename", doc.Filename,
		"format", format,
		"pages", pages,
		"bytes", len(text),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return entity.ExtractedText{Text: text, Format: format, Pages: pages}, nil
}
