package queue

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one processing request for a document. Attempt starts at 1 and is
// bumped on each backoff re-enqueue.
type Job struct {
	DocumentID  uuid.UUID
	Attempt     int
	Force       bool // enqueue even for a terminal document (manual reprocess)
	SubmittedAt time.Time
}

// Queue accepts jobs and guarantees at most one active worker per document id
// at a time: retries are only scheduled after the failing attempt returns.
type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
