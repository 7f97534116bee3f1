package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/blobstore"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/common"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/flags"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/grading"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/ocr"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/pipeline"
	repo "github.com/InsightEd01/script-sense-grade-ai-sub001/internal/repository"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/segmentation"
)

// runscript drives a single script through the pipeline in the foreground,
// useful for debugging stage behavior without the daemon.
func main() {
	_ = godotenv.Load()

	var scriptArg string
	flag.StringVar(&scriptArg, "script", "", "answer script id (UUID)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	scriptID, err := uuid.Parse(scriptArg)
	if err != nil {
		logger.Error("-script must be a UUID", "value", scriptArg)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	blobs, err := blobstore.NewFSStore(cfg.Storage.RootDir, logger)
	if err != nil {
		logger.Error("opening blob store", "root", cfg.Storage.RootDir, "error", err)
		os.Exit(1)
	}

	var segmenter segmentation.Segmenter = segmentation.NewBasicSegmenter()
	if cfg.Grading.UseMLSegmentation {
		segmenter = segmentation.NewMLSegmenter(
			cfg.Grading.APIKey, cfg.Grading.Model, cfg.Grading.MaxTokens, segmenter, logger)
	}

	orch := pipeline.NewOrchestrator(
		repo.NewAnswerScriptRepository(entc, logger),
		repo.NewAnswerRepository(entc, logger),
		repo.NewQuestionRepository(entc, logger),
		blobs,
		ocr.NewTesseractExtractor(cfg.OCR.Languages, cfg.OCR.TessdataDir, logger),
		segmenter,
		grading.NewAnthropicGrader(cfg.Grading.APIKey, cfg.Grading.Model, cfg.Grading.MaxTokens, logger),
		flags.NewEngine(),
		logger,
		pipeline.WithRetry(cfg.Pipeline.MaxAttempts, cfg.Pipeline.RetryBaseDelay),
	)

	if err := orch.Process(ctx, scriptID); err != nil {
		logger.Error("processing failed", "script_id", scriptID, "error", err)
		os.Exit(1)
	}
	logger.Info("processing finished", "script_id", scriptID)
}
