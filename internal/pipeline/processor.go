// Package pipeline orchestrates one document processing attempt end to end:
// claim the document, fetch its bytes, run OCR, normalize and classify the
// response, persist the extracted fields, and settle the lifecycle status.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docuextract/constants"
	"github.com/joseph-ayodele/docuextract/internal/blob"
	"github.com/joseph-ayodele/docuextract/internal/classify"
	"github.com/joseph-ayodele/docuextract/internal/entity"
	"github.com/joseph-ayodele/docuextract/internal/normalize"
	"github.com/joseph-ayodele/docuextract/internal/ocr"
	"github.com/joseph-ayodele/docuextract/internal/queue"
)

// DocumentStore is the slice of persistence the processor needs. The claim is
// compare-and-swap guarded so a duplicate delivery cannot double-process a
// document (see ClaimProcessing).
type DocumentStore interface {
	GetDocument(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	// ClaimProcessing transitions pending/failed/completed -> processing.
	// Returns false without error when the document is already processing.
	ClaimProcessing(ctx context.Context, id uuid.UUID) (bool, error)
	MarkCompleted(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, errorMessage string) error
	// ReplaceFields atomically swaps the document's extracted-field set.
	ReplaceFields(ctx context.Context, id uuid.UUID, fields []entity.ExtractedField) error
}

type Processor struct {
	logger     *slog.Logger
	docs       DocumentStore
	blobs      blob.Store
	client     ocr.Client
	normalizer *normalize.Normalizer
}

func NewProcessor(logger *slog.Logger, docs DocumentStore, blobs blob.Store, client ocr.Client, normalizer *normalize.Normalizer) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:     logger,
		docs:       docs,
		blobs:      blobs,
		client:     client,
		normalizer: normalizer,
	}
}

// Process runs a single attempt for the job's document. The document ends in
// completed or failed unless a retryable OCR error occurred with attempts
// remaining, in which case it stays in processing and the error is returned
// to the queue for backoff bookkeeping.
func (p *Processor) Process(ctx context.Context, job queue.Job, maxAttempts int) (err error) {
	docID := job.DocumentID
	start := time.Now()

	// Anything unexpected below must still settle the document in failed.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during processing: %v", r)
			p.logger.Error("worker.process.panic", "document_id", docID, "attempt", job.Attempt, "panic", r)
			p.markFailed(ctx, docID, err)
		}
	}()

	doc, err := p.docs.GetDocument(ctx, docID)
	if err != nil {
		p.logger.Error("worker.load.failed", "document_id", docID, "error", err)
		return fmt.Errorf("load document: %w", err)
	}

	if job.Attempt <= 1 {
		claimed, err := p.docs.ClaimProcessing(ctx, docID)
		if err != nil {
			return fmt.Errorf("claim document: %w", err)
		}
		if !claimed {
			p.logger.Warn("worker.claim.lost", "document_id", docID, "status", doc.Status)
			return nil
		}
	} else if doc.Status != constants.StatusProcessing {
		// A retry found the document moved on (deleted job, manual change).
		p.logger.Warn("worker.retry.stale", "document_id", docID, "status", doc.Status, "attempt", job.Attempt)
		return nil
	}

	p.logger.Info("worker.process.start",
		"document_id", docID,
		"attempt", job.Attempt,
		"max_attempts", maxAttempts,
		"content_type", doc.ContentType,
	)

	content, err := p.blobs.Get(ctx, docID)
	if err != nil {
		err = fmt.Errorf("fetch document content: %w", err)
		p.markFailed(ctx, docID, err)
		return err
	}

	raw, err := p.client.Extract(ctx, content, doc.ContentType)
	if err != nil {
		if ocr.IsRetryable(err) && job.Attempt < maxAttempts {
			// Leave the document in processing; the queue re-enqueues us.
			p.logger.Warn("worker.ocr.retryable",
				"document_id", docID, "attempt", job.Attempt, "error", err)
			return err
		}
		p.markFailed(ctx, docID, err)
		return err
	}

	fields := p.buildFields(docID, p.normalizer.Normalize(raw))
	if err := p.docs.ReplaceFields(ctx, docID, fields); err != nil {
		err = fmt.Errorf("store extracted fields: %w", err)
		p.markFailed(ctx, docID, err)
		return err
	}

	if err := p.docs.MarkCompleted(ctx, docID); err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}

	if len(fields) == 0 {
		// Valid outcome, not an error: the UI shows "no data extracted".
		p.logger.Info("worker.process.empty", "document_id", docID, "attempt", job.Attempt)
	}
	p.logger.Info("worker.process.done",
		"document_id", docID,
		"attempt", job.Attempt,
		"fields", len(fields),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Processor) buildFields(docID uuid.UUID, pairs []normalize.Field) []entity.ExtractedField {
	fields := make([]entity.ExtractedField, 0, len(pairs))
	for i, pair := range pairs {
		fields = append(fields, entity.ExtractedField{
			DocumentID: docID,
			Key:        pair.Key,
			Value:      pair.Value,
			DataType:   classify.Classify(pair.Value),
			Position:   i,
		})
	}
	return fields
}

// markFailed records the error verbatim as the document's terminal state.
// The write uses a detached context so a timed-out attempt can still settle.
// A failure to persist the failure is only logged; the original error wins.
func (p *Processor) markFailed(ctx context.Context, docID uuid.UUID, cause error) {
	ctx = context.WithoutCancel(ctx)
	if err := p.docs.MarkFailed(ctx, docID, cause.Error()); err != nil {
		p.logger.Error("worker.mark_failed.failed", "document_id", docID, "error", err, "cause", cause)
	}
}
