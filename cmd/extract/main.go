// One-shot local extraction: file in, text plus entities out. Useful for
// checking a document before submitting it to the daemon.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ebolowa/contract-insight/internal/common"
	"github.com/ebolowa/contract-insight/internal/ingest"
	"github.com/ebolowa/contract-insight/internal/langdetect"
	"github.com/ebolowa/contract-insight/internal/llm/openai"
	"github.com/ebolowa/contract-insight/internal/ner"
	"github.com/ebolowa/contract-insight/internal/textextract"
)

func main() {
	var (
		path     = flag.String("file", "", "path to a contract (pdf/doc/docx)")
		withNER  = flag.Bool("entities", false, "also tag entities (needs an API key)")
		maxPages = flag.Int("max-pages", 0, "page limit for PDF extraction, 0 = no limit")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: extract -file contract.pdf [-entities]")
		os.Exit(2)
	}

	doc, err := ingest.ReadDocument(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	extractor := textextract.NewExtractor(textextract.Config{MaxPages: *maxPages}, logger)
	res, err := extractor.Extract(ctx, doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "extract: %v\n", err)
		os.Exit(1)
	}

	detector := langdetect.NewDetector(langdetect.Config{}, logger)
	lang, certain := detector.Detect(res.Text)

	fmt.Printf("file:     %s\n", doc.Filename)
	fmt.Printf("format:   %s (%d pages)\n", res.Format, res.Pages)
	fmt.Printf("language: %s (certain=%t)\n", lang, certain)
	fmt.Printf("text:     %d bytes\n\n", len(res.Text))
	fmt.Println(res.Text)

	if !*withNER {
		return
	}

	cfg := common.LoadConfig()
	tagger := openai.NewClient(openai.Config{
		APIKey:  cfg.NER.APIKey,
		BaseURL: cfg.NER.BaseURL,
		Model:   cfg.NER.Model,
		Timeout: cfg.NER.RequestTimeout,
	}, logger)
	registry := ner.NewRegistry(&ner.ModelHandle{
		Language:  lang,
		ModelName: cfg.NER.Model,
		Tagger:    tagger,
	})
	extractorNER := ner.NewExtractor(registry, ner.Config{MinConfidence: cfg.NER.MinConfidence}, logger)

	set, err := extractorNER.Extract(ctx, res.Text, lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "entities: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nentities (%d, degraded=%t):\n", len(set.Entities), set.Degraded)
	for _, e := range set.Entities {
		section := e.Section
		if section == "" {
			section = "-"
		}
		fmt.Printf("  %-8s %.2f  [%s]  %s\n", string(e.Type), e.Confidence, section, e.Value)
	}
	for _, w := range set.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
}
