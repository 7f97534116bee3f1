package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/InsightEd01/script-sense-grade-ai-sub001/gen/proto/scriptsense/v1"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/async"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/blobstore"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/common"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/export"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/flags"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/grading"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/identify"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/ocr"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/override"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/pipeline"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/reaper"
	repo "github.com/InsightEd01/script-sense-grade-ai-sub001/internal/repository"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/segmentation"
	svc "github.com/InsightEd01/script-sense-grade-ai-sub001/internal/server"
)

func main() {
	_ = godotenv.Load()

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

	if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	scriptsRepo := repo.NewAnswerScriptRepository(entc, logger)
	answersRepo := repo.NewAnswerRepository(entc, logger)
	questionsRepo := repo.NewQuestionRepository(entc, logger)
	examsRepo := repo.NewExaminationRepository(entc, logger)
	rosterRepo := repo.NewRosterRepository(entc, logger)

	blobs, err := blobstore.NewFSStore(cfg.Storage.RootDir, logger)
	if err != nil {
		logger.Error("failed to open blob store", "root", cfg.Storage.RootDir, "error", err)
		os.Exit(1)
	}

	extractor := ocr.NewTesseractExtractor(cfg.OCR.Languages, cfg.OCR.TessdataDir, logger)

	var segmenter segmentation.Segmenter = segmentation.NewBasicSegmenter()
	if cfg.Grading.UseMLSegmentation {
		segmenter = segmentation.NewMLSegmenter(
			cfg.Grading.APIKey, cfg.Grading.Model, cfg.Grading.MaxTokens, segmenter, logger)
	}

	grader := grading.NewAnthropicGrader(
		cfg.Grading.APIKey, cfg.Grading.Model, cfg.Grading.MaxTokens, logger)

	orch := pipeline.NewOrchestrator(
		scriptsRepo, answersRepo, questionsRepo,
		blobs, extractor, segmenter, grader, flags.NewEngine(),
		logger,
		pipeline.WithRetry(cfg.Pipeline.MaxAttempts, cfg.Pipeline.RetryBaseDelay),
	)

	queue := async.NewScriptQueue(orch, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithProcessTimeout(cfg.Pipeline.ProcessTimeout),
	)

	resolver := identify.NewResolver(rosterRepo, identify.NewZXingDecoder(), logger)
	intake := pipeline.NewIntake(scriptsRepo, examsRepo, rosterRepo, resolver, blobs, queue, logger)

	audit, err := override.OpenAuditStore(cfg.Audit.DBPath)
	if err != nil {
		logger.Error("failed to open audit store", "path", cfg.Audit.DBPath, "error", err)
		os.Exit(1)
	}
	defer audit.Close()
	ledger := override.NewLedger(answersRepo, scriptsRepo, audit, logger)

	sweeper := reaper.New(scriptsRepo, queue, cfg.Pipeline.StuckAfter, logger)
	if err := sweeper.Start(cfg.Pipeline.ReaperSchedule); err != nil {
		logger.Error("failed to start reaper", "schedule", cfg.Pipeline.ReaperSchedule, "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(svc.PrincipalInterceptor(logger)),
	)

	scriptService := svc.NewScriptSenseService(intake, ledger, scriptsRepo, answersRepo, logger)
	v1.RegisterScriptSenseServiceServer(grpcServer, scriptService)

	exportService := export.NewService(scriptsRepo, answersRepo, questionsRepo, examsRepo, rosterRepo, logger)
	v1.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportService, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("gradepiped listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	sweeper.Stop()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
