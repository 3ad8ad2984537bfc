package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	documentspb "github.com/joseph-ayodele/docuextract/gen/proto/documents/v1"
	"github.com/joseph-ayodele/docuextract/internal/blob"
	"github.com/joseph-ayodele/docuextract/internal/common"
	"github.com/joseph-ayodele/docuextract/internal/normalize"
	"github.com/joseph-ayodele/docuextract/internal/ocr"
	"github.com/joseph-ayodele/docuextract/internal/ocr/gemini"
	"github.com/joseph-ayodele/docuextract/internal/ocr/openai"
	"github.com/joseph-ayodele/docuextract/internal/ocr/vertex"
	"github.com/joseph-ayodele/docuextract/internal/pipeline"
	"github.com/joseph-ayodele/docuextract/internal/queue"
	"github.com/joseph-ayodele/docuextract/internal/repository"
	"github.com/joseph-ayodele/docuextract/internal/server"
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

	entc, pool, err := repository.Open(ctx, repository.Config{
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
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	if err := repository.Migrate(ctx, entc); err != nil {
		logger.Error("failed to apply schema", "error", err)
		os.Exit(1)
	}

	blobs, err := newBlobStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init blob store", "error", err)
		os.Exit(1)
	}

	client, closeClient, err := newOCRClient(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init OCR client", "error", err)
		os.Exit(1)
	}
	defer closeClient()

	deny := normalize.DefaultDenyList()
	if cfg.OCR.DenyListPath != "" {
		deny, err = normalize.LoadDenyList(cfg.OCR.DenyListPath)
		if err != nil {
			logger.Error("failed to load deny list", "path", cfg.OCR.DenyListPath, "error", err)
			os.Exit(1)
		}
	}
	normalizer := normalize.New(deny, logger)

	docRepo := repository.NewDocumentRepository(entc, logger)
	processor := pipeline.NewProcessor(logger, docRepo, blobs, client, normalizer)

	workQueue := queue.NewWorkerQueue(processor, logger,
		queue.WithWorkers(cfg.Worker.Workers),
		queue.WithQueueSize(cfg.Worker.QueueSize),
		queue.WithProcessTimeout(cfg.Worker.ProcessTimeout),
		queue.WithMaxAttempts(cfg.Worker.MaxAttempts),
		queue.WithRetryBaseDelay(cfg.Worker.RetryBaseDelay),
	)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	documentService := server.NewDocumentService(docRepo, blobs, workQueue, logger)
	documentspb.RegisterDocumentsServiceServer(grpcServer, documentService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("docuextract listening",
		"addr", cfg.Server.GRPCAddr,
		"ocr_provider", cfg.OCR.Provider,
		"storage_driver", cfg.Storage.Driver,
		"workers", cfg.Worker.Workers,
	)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	workQueue.Shutdown(context.Background())
}

func newBlobStore(ctx context.Context, cfg *common.Config, logger *slog.Logger) (blob.Store, error) {
	switch cfg.Storage.Driver {
	case "s3":
		return blob.NewS3Store(ctx, cfg.Storage.Bucket, cfg.Storage.KeyPrefix, logger)
	default:
		return blob.NewFSStore(cfg.Storage.Dir, logger)
	}
}

func newOCRClient(ctx context.Context, cfg *common.Config, logger *slog.Logger) (ocr.Client, func(), error) {
	noop := func() {}
	switch cfg.OCR.Provider {
	case "openai":
		c, err := openai.NewClient(openai.Config{
			APIKey:  cfg.OCR.APIKey,
			Model:   cfg.OCR.Model,
			BaseURL: cfg.OCR.BaseURL,
			Timeout: cfg.OCR.Timeout,
		}, logger)
		return c, noop, err
	case "vertex":
		c, err := vertex.NewClient(ctx, vertex.Config{
			ProjectID: cfg.OCR.GCPProjectID,
			Region:    cfg.OCR.GCPRegion,
			Model:     cfg.OCR.Model,
			Timeout:   cfg.OCR.Timeout,
		}, logger)
		if err != nil {
			return nil, noop, err
		}
		return c, func() { _ = c.Close() }, nil
	default:
		c, err := gemini.NewClient(gemini.Config{
			APIKey:  cfg.OCR.APIKey,
			Model:   cfg.OCR.Model,
			BaseURL: cfg.OCR.BaseURL,
			Timeout: cfg.OCR.Timeout,
		}, logger)
		return c, noop, err
	}
}
