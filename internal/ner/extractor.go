package ner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/internal/entity"
	"github.com/ebolowa/contract-insight/internal/llm"
)

// Config holds thresholds and behavior flags for entity extraction.
type Config struct {
	MinConfidence float32 // entities below this floor are dropped; default 0.5
	MaxConcurrent int     // parallel section taggings; default 3
}

// Extractor runs language-specific tagging over contract text and merges the
// result with the deterministic pattern rules. Extraction is best-effort: a
// missing or failing model degrades to fewer (or zero) entities with a
// warning, never a pipeline abort.
type Extractor struct {
	registry *Registry
	cfg      Config
	logger   *slog.Logger
}

func NewExtractor(registry *Registry, cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.5
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 3
	}
	return &Extractor{registry: registry, cfg: cfg, logger: logger}
}

// Extract returns the ordered entity set for (text, lang). Ordering is
// deterministic for identical input: model entities in section order, then
// pattern hits in offset order. Duplicates from overlapping spans are kept.
func (x *Extractor) Extract(ctx context.Context, text string, lang constants.Language) (entity.ExtractionSet, error) {
	start := time.Now()
	set := entity.ExtractionSet{}

	handle, dedicated := x.registry.HandleFor(lang)
	if !dedicated && handle != nil {
		msg := fmt.Sprintf("no dedicated model for language %q, using default %q", lang, handle.Language)
		x.logger.Warn("ner.model_fallback", "requested_lang", lang, "using", handle.Language)
		set.Warnings = append(set.Warnings, msg)
	}

	sections := IdentifySections(text)

	if handle == nil || handle.Tagger == nil {
		x.logger.Warn("ner.unavailable", "lang", lang)
		set.Degraded = true
		set.Warnings = append(set.Warnings, "entity model unavailable, extraction skipped")
	} else {
		modelEntities, warnings := x.tagSections(ctx, handle, lang, sections)
		set.Entities = append(set.Entities, modelEntities...)
		if len(warnings) > 0 {
			set.Degraded = true
			set.Warnings = append(set.Warnings, warnings...)
		}
	}

	// deterministic pattern pass on the full text
	for _, hit := range matchPatterns(text) {
		if hit.confidence < x.cfg.MinConfidence {
			continue
		}
		set.Entities = append(set.Entities, entity.Entity{
			Type:       hit.typ,
			Value:      hit.value,
			Confidence: hit.confidence,
			Section:    SectionOf(sections, hit.value),
		})
	}

	for i := range set.Entities {
		set.Entities[i].Position = i
	}

	x.logger.Info("ner.extract.done",
		"lang", lang,
		"sections", len(sections),
		"entities", len(set.Entities),
		"degraded", set.Degraded,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return set, nil
}

// tagSections fans the section texts out to the tagging model and reassembles
// results in section order. A failed section records a warning and yields no
// entities; other sections are unaffected.
func (x *Extractor) tagSections(ctx context.Context, handle *ModelHandle, lang constants.Language, sections []Section) ([]entity.Entity, []string) {
	results := make([][]entity.Entity, len(sections))
	errs := make([]error, len(sections))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(x.cfg.MaxConcurrent)
	for i, sec := range sections {
		g.Go(func() error {
			tagged, _, err := handle.Tagger.TagEntities(gctx, llm.TagRequest{
				Text:     sec.Text,
				Language: string(lang),
				Section:  sec.Name,
			})
			if err != nil {
				errs[i] = err
				return nil // best-effort: do not cancel sibling sections
			}
			results[i] = x.normalize(tagged, sec.Name)
			return nil
		})
	}
	_ = g.Wait()

	var entities []entity.Entity
	var warnings []string
	for i := range sections {
		if errs[i] != nil {
			x.logger.Warn("ner.section_failed", "section", sections[i].Name, "error", errs[i])
			warnings = append(warnings, fmt.Sprintf("section %q tagging failed: %v", sections[i].Name, errs[i]))
			continue
		}
		entities = append(entities, results[i]...)
	}
	return entities, warnings
}

// normalize canonicalizes model labels, clamps confidences into [0,1], and
// applies the configured confidence floor.
func (x *Extractor) normalize(tagged []llm.TaggedEntity, section string) []entity.Entity {
	out := make([]entity.Entity, 0, len(tagged))
	for _, t := range tagged {
		typ, known := constants.CanonicalizeEntityType(t.Type)
		if !known {
			x.logger.Debug("ner.unknown_label", "label", t.Type, "value", t.Value)
		}
		conf := t.Confidence
		if conf < 0 {
			conf = 0
		}
		if conf > 1 {
			conf = 1
		}
		if conf < x.cfg.MinConfidence {
			continue
		}
		out = append(out, entity.Entity{
			Type:       typ,
			Value:      t.Value,
			Confidence: conf,
			Section:    section,
		})
	}
	return out
}
