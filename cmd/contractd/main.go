package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/internal/async"
	"github.com/ebolowa/contract-insight/internal/common"
	"github.com/ebolowa/contract-insight/internal/export"
	"github.com/ebolowa/contract-insight/internal/ingest"
	"github.com/ebolowa/contract-insight/internal/job"
	"github.com/ebolowa/contract-insight/internal/langdetect"
	"github.com/ebolowa/contract-insight/internal/llm"
	"github.com/ebolowa/contract-insight/internal/llm/gemini"
	"github.com/ebolowa/contract-insight/internal/llm/openai"
	"github.com/ebolowa/contract-insight/internal/ner"
	"github.com/ebolowa/contract-insight/internal/pipeline"
	repo "github.com/ebolowa/contract-insight/internal/repository"
	svc "github.com/ebolowa/contract-insight/internal/server"
	"github.com/ebolowa/contract-insight/internal/summarize"
	"github.com/ebolowa/contract-insight/internal/textextract"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		Driver:           cfg.Database.Driver,
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	contractsRepo := repo.NewContractRepository(entc, logger)
	entitiesRepo := repo.NewEntityRepository(entc, logger)
	summariesRepo := repo.NewSummaryRepository(entc, logger)
	feedbackRepo := repo.NewFeedbackRepository(entc, logger)

	// model providers warm up once and stay read-only
	tagger, err := buildTagger(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to build entity tagger", "error", err)
		os.Exit(1)
	}
	generator, err := buildGenerator(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to build summary generator", "error", err)
		os.Exit(1)
	}

	registry := ner.NewRegistry(&ner.ModelHandle{
		Language:  constants.Language(cfg.Extract.DefaultLanguage),
		ModelName: cfg.NER.Model,
		Tagger:    tagger,
	})
	nerExtractor := ner.NewExtractor(registry, ner.Config{
		MinConfidence: cfg.NER.MinConfidence,
	}, logger)

	textExtractor := textextract.NewExtractor(textextract.Config{
		MaxPages: cfg.Extract.MaxPages,
	}, logger)
	detector := langdetect.NewDetector(langdetect.Config{
		SampleBytes: cfg.Extract.DetectSampleBytes,
		Default:     constants.Language(cfg.Extract.DefaultLanguage),
	}, logger)

	summarizer := summarize.NewGenerator(generator, summarize.Config{}, logger)

	extractStage := pipeline.NewExtractStage(contractsRepo, entitiesRepo, textExtractor, detector, nerExtractor, logger)
	summarizeStage := pipeline.NewSummarizeStage(contractsRepo, summariesRepo, summarizer, pipeline.SummarizeConfig{
		Timeout:   cfg.Summary.Timeout,
		CacheSize: cfg.Summary.CacheSize,
	}, logger)
	processor := pipeline.NewProcessor(logger, extractStage, summarizeStage, contractsRepo)

	queue := async.NewSummaryQueue(processor, logger,
		async.WithWorkers(cfg.Summary.Workers),
		async.WithQueueSize(512),
		async.WithJobTimeout(cfg.Summary.Timeout+time.Minute),
	)

	janitor, err := job.NewJanitor(contractsRepo, cfg.Jobs.StaleCheckSpec, cfg.Jobs.StaleAfter, logger)
	if err != nil {
		logger.Error("failed to schedule janitor", "error", err)
		os.Exit(1)
	}
	janitor.Start()

	ingestor := ingest.NewService(contractsRepo, logger)
	exporter := export.NewService(contractsRepo, entitiesRepo, summariesRepo, logger)

	contractService := svc.NewContractService(ingestor, processor, contractsRepo, entitiesRepo, exporter, logger)
	summaryService := svc.NewSummaryService(processor, queue, summariesRepo, feedbackRepo, logger)
	grpcServer, healthServer := svc.NewGRPCServer(contractService, summaryService)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	logger.Info("contractd listening", "addr", cfg.Server.GRPCAddr, "db_driver", cfg.Database.Driver)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	healthServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	janitor.Stop(shutdownCtx)
	grpcServer.GracefulStop()
}

func buildTagger(ctx context.Context, cfg *common.Config, logger *slog.Logger) (llm.EntityTagger, error) {
	switch cfg.NER.Provider {
	case "", "openai":
		return openai.NewClient(openai.Config{
			APIKey:      cfg.NER.APIKey,
			BaseURL:     cfg.NER.BaseURL,
			Model:       cfg.NER.Model,
			Temperature: 0,
			Timeout:     cfg.NER.RequestTimeout,
		}, logger), nil
	case "gemini":
		return gemini.NewClient(ctx, gemini.Config{
			APIKey: cfg.NER.APIKey,
			Model:  cfg.NER.Model,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown NER provider %q", cfg.NER.Provider)
	}
}

func buildGenerator(ctx context.Context, cfg *common.Config, logger *slog.Logger) (llm.Generator, error) {
	switch cfg.Summary.Provider {
	case "", "openai":
		return openai.NewClient(openai.Config{
			APIKey:      cfg.Summary.APIKey,
			BaseURL:     cfg.Summary.BaseURL,
			Model:       cfg.Summary.Model,
			Temperature: cfg.Summary.Temperature,
			Timeout:     cfg.Summary.Timeout,
		}, logger), nil
	case "gemini":
		return gemini.NewClient(ctx, gemini.Config{
			APIKey: cfg.Summary.APIKey,
			Model:  cfg.Summary.Model,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown summary provider %q", cfg.Summary.Provider)
	}
}
