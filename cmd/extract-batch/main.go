// extract-batch runs the extraction pipeline over a directory of documents
// without the gRPC server: ingest every supported file, process each one, and
// write an xlsx of extracted data per completed document.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/joseph-ayodele/docuextract/internal/blob"
	"github.com/joseph-ayodele/docuextract/internal/common"
	"github.com/joseph-ayodele/docuextract/internal/entity"
	"github.com/joseph-ayodele/docuextract/internal/export"
	"github.com/joseph-ayodele/docuextract/internal/ingest"
	"github.com/joseph-ayodele/docuextract/internal/normalize"
	"github.com/joseph-ayodele/docuextract/internal/ocr"
	"github.com/joseph-ayodele/docuextract/internal/ocr/gemini"
	"github.com/joseph-ayodele/docuextract/internal/ocr/openai"
	"github.com/joseph-ayodele/docuextract/internal/ocr/vertex"
	"github.com/joseph-ayodele/docuextract/internal/pipeline"
	"github.com/joseph-ayodele/docuextract/internal/queue"
	"github.com/joseph-ayodele/docuextract/internal/repository"
)

func main() {
	var (
		inmem    = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir      = flag.String("dir", "", "directory of documents to process (required)")
		out      = flag.String("out", "", "output directory for xlsx files (defaults to --dir)")
		parallel = flag.Int("parallel", 4, "max documents processed concurrently")
	)
	flag.Parse()

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "Error: --dir is required")
		os.Exit(1)
	}
	if *out == "" {
		*out = *dir
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	dbCfg := repository.Config{Driver: cfg.Database.Driver, DSN: cfg.Database.DSN, DialTimeout: 3 * time.Second}
	if *inmem {
		dbCfg = repository.Config{Driver: "sqlite", DSN: "file:extract-batch?mode=memory&cache=shared&_pragma=foreign_keys(1)"}
	}
	entc, pool, err := repository.Open(ctx, dbCfg, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)
	if err := repository.Migrate(ctx, entc); err != nil {
		logger.Error("failed to apply schema", "error", err)
		os.Exit(1)
	}

	blobDir, err := os.MkdirTemp("", "docuextract-batch-*")
	if err != nil {
		logger.Error("failed to create blob dir", "error", err)
		os.Exit(1)
	}
	defer os.RemoveAll(blobDir)
	blobs, err := blob.NewFSStore(blobDir, logger)
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
		if deny, err = normalize.LoadDenyList(cfg.OCR.DenyListPath); err != nil {
			logger.Error("failed to load deny list", "path", cfg.OCR.DenyListPath, "error", err)
			os.Exit(1)
		}
	}

	docRepo := repository.NewDocumentRepository(entc, logger)
	processor := pipeline.NewProcessor(logger, docRepo, blobs, client, normalize.New(deny, logger))

	entries, err := os.ReadDir(*dir)
	if err != nil {
		logger.Error("failed to read directory", "dir", *dir, "error", err)
		os.Exit(1)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*parallel)

	var processed, skipped, failed int
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		name := entry.Name()
		path := filepath.Join(*dir, name)

		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("failed to read file", "path", path, "error", err)
			failed++
			continue
		}
		contentType := mime.TypeByExtension(filepath.Ext(name))
		info, err := ingest.ValidateUpload(name, contentType, data)
		if err != nil {
			logger.Warn("skipping file", "path", path, "reason", err)
			skipped++
			continue
		}

		doc, err := docRepo.Create(ctx, &entity.Document{
			Name:             ingest.DeriveName(name),
			OriginalFilename: name,
			ContentType:      info.ContentType,
			FileSize:         len(data),
			PageCount:        info.PageCount,
		})
		if err != nil {
			logger.Error("failed to create document", "path", path, "error", err)
			failed++
			continue
		}
		if err := blobs.Put(ctx, doc.ID, info.ContentType, data); err != nil {
			logger.Error("failed to store content", "document_id", doc.ID, "error", err)
			failed++
			continue
		}

		processed++
		g.Go(func() error {
			processDocument(gctx, processor, doc.ID, cfg.Worker, logger)
			exportDocument(gctx, docRepo, doc.ID, *out, logger)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("batch processing failed", "error", err)
		os.Exit(1)
	}
	logger.Info("batch complete", "processed", processed, "skipped", skipped, "failed", failed)
}

// processDocument runs the worker retry protocol inline: retryable failures
// back off with the same doubling delays the server queue uses.
func processDocument(ctx context.Context, proc *pipeline.Processor, id uuid.UUID, wcfg common.WorkerConfig, logger *slog.Logger) {
	for attempt := 1; ; attempt++ {
		err := proc.Process(ctx, queue.Job{DocumentID: id, Attempt: attempt}, wcfg.MaxAttempts)
		if err == nil {
			return
		}
		if !ocr.IsRetryable(err) || attempt >= wcfg.MaxAttempts {
			logger.Error("document processing failed", "document_id", id, "attempt", attempt, "error", err)
			return
		}
		delay := wcfg.RetryBaseDelay << (attempt - 1)
		logger.Warn("retrying document", "document_id", id, "attempt", attempt, "retry_in", delay)
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

func exportDocument(ctx context.Context, docRepo repository.DocumentRepository, id uuid.UUID, outDir string, logger *slog.Logger) {
	doc, err := docRepo.GetDocument(ctx, id)
	if err != nil {
		logger.Error("failed to load document for export", "document_id", id, "error", err)
		return
	}
	if !doc.Completed() {
		logger.Warn("skipping export of unfinished document", "document_id", id, "status", doc.Status)
		return
	}
	fields, err := docRepo.ListFields(ctx, id)
	if err != nil {
		logger.Error("failed to list fields for export", "document_id", id, "error", err)
		return
	}
	content, err := export.BuildWorkbook(fields)
	if err != nil {
		logger.Error("failed to build workbook", "document_id", id, "error", err)
		return
	}
	path := filepath.Join(outDir, export.DownloadFilename(doc, time.Now()))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		logger.Error("failed to write workbook", "path", path, "error", err)
		return
	}
	logger.Info("exported document", "document_id", id, "path", path, "fields", len(fields))
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
