package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/joseph-ayodele/docuextract/internal/ocr"
)

// Processor runs one end-to-end processing attempt. attempt and maxAttempts
// let it decide whether a retryable failure should leave the document in
// processing (more attempts coming) or mark it failed (attempts exhausted).
type Processor interface {
	Process(ctx context.Context, job Job, maxAttempts int) error
}

// WorkerQueue is a channel-backed in-process queue consumed by a pool of
// workers. Retryable failures are re-enqueued with exponential backoff
// (delay doubling per attempt) up to maxAttempts.
type WorkerQueue struct {
	proc        Processor
	logger      *slog.Logger
	workers     int
	timeout     time.Duration
	maxAttempts int
	baseDelay   time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
	timers sync.WaitGroup
}

type Option func(*WorkerQueue)

func WithWorkers(n int) Option {
	return func(q *WorkerQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *WorkerQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *WorkerQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

// WithMaxAttempts bounds how many times a job runs before a retryable
// failure becomes terminal.
func WithMaxAttempts(n int) Option {
	return func(q *WorkerQueue) {
		if n > 0 {
			q.maxAttempts = n
		}
	}
}

// WithRetryBaseDelay sets the first backoff delay; attempt n waits
// base << (n-1).
func WithRetryBaseDelay(d time.Duration) Option {
	return func(q *WorkerQueue) {
		if d > 0 {
			q.baseDelay = d
		}
	}
}

func NewWorkerQueue(proc Processor, logger *slog.Logger, opts ...Option) *WorkerQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &WorkerQueue{
		proc:        proc,
		logger:      logger,
		workers:     4,
		timeout:     3 * time.Minute,
		maxAttempts: 8,
		baseDelay:   2 * time.Second,
		ch:          make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *WorkerQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					q.run(workerID, job)
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *WorkerQueue) run(workerID int, job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	err := q.proc.Process(ctx, job, q.maxAttempts)
	cancel()

	if err == nil {
		q.logger.Info("processed document",
			"worker_id", workerID, "document_id", job.DocumentID, "attempt", job.Attempt)
		return
	}

	if ocr.IsRetryable(err) && job.Attempt < q.maxAttempts {
		delay := q.baseDelay << (job.Attempt - 1)
		q.logger.Warn("processing failed, scheduling retry",
			"worker_id", workerID,
			"document_id", job.DocumentID,
			"attempt", job.Attempt,
			"max_attempts", q.maxAttempts,
			"retry_in", delay,
			"error", err,
		)
		q.scheduleRetry(job, delay)
		return
	}

	q.logger.Error("processing failed",
		"worker_id", workerID,
		"document_id", job.DocumentID,
		"attempt", job.Attempt,
		"error", err,
	)
}

// scheduleRetry re-enqueues the job after the backoff delay. Retries for the
// same document are strictly ordered after the attempt that produced them
// because the timer only starts once Process has returned.
func (q *WorkerQueue) scheduleRetry(job Job, delay time.Duration) {
	next := job
	next.Attempt++
	q.timers.Add(1)
	time.AfterFunc(delay, func() {
		defer q.timers.Done()
		if err := q.Enqueue(context.Background(), next); err != nil {
			q.logger.Warn("retry enqueue dropped", "document_id", next.DocumentID, "attempt", next.Attempt, "error", err)
		}
	})
}

func (q *WorkerQueue) Enqueue(_ context.Context, job Job) error {
	if job.Attempt < 1 {
		job.Attempt = 1
	}
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "document_id", job.DocumentID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued document for processing",
			"document_id", job.DocumentID, "attempt", job.Attempt, "force", job.Force)
	default:
		q.logger.Warn("queue full, applying backpressure", "document_id", job.DocumentID)
		q.ch <- job
	}
	return nil
}

// Shutdown drains the queue: waits for pending retry timers, closes the
// channel, and waits for workers until ctx expires.
func (q *WorkerQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	timersDone := make(chan struct{})
	go func() { defer close(timersDone); q.timers.Wait() }()
	select {
	case <-ctx.Done():
	case <-timersDone:
	}

	close(q.ch)

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
