package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docuextract/internal/ocr"
)

// fakeProcessor records every attempt it sees and replays scripted results.
type fakeProcessor struct {
	mu       sync.Mutex
	attempts []int
	results  []error // result for call i; last entry repeats
	done     chan struct{}
	doneAt   int // close done after this many calls
}

func (f *fakeProcessor) Process(_ context.Context, job Job, _ int) error {
	f.mu.Lock()
	f.attempts = append(f.attempts, job.Attempt)
	n := len(f.attempts)
	idx := n - 1
	if idx >= len(f.results) {
		idx = len(f.results) - 1
	}
	err := f.results[idx]
	if f.done != nil && n == f.doneAt {
		close(f.done)
	}
	f.mu.Unlock()
	return err
}

func (f *fakeProcessor) seen() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]int, len(f.attempts))
	copy(out, f.attempts)
	return out
}

func waitFor(t *testing.T, ch <-chan struct{}, d time.Duration) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(d):
		t.Fatal("timed out waiting for processing")
	}
}

func TestWorkerQueueProcessesJob(t *testing.T) {
	proc := &fakeProcessor{results: []error{nil}, done: make(chan struct{}), doneAt: 1}
	q := NewWorkerQueue(proc, nil, WithWorkers(1))
	defer q.Shutdown(context.Background())

	if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	waitFor(t, proc.done, 2*time.Second)

	if got := proc.seen(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("attempts = %v, want [1]", got)
	}
}

func TestWorkerQueueRetriesUpToMaxAttempts(t *testing.T) {
	const maxAttempts = 4
	proc := &fakeProcessor{
		results: []error{ocr.Retryable("test", errors.New("transient"))},
		done:    make(chan struct{}),
		doneAt:  maxAttempts,
	}
	q := NewWorkerQueue(proc, nil,
		WithWorkers(1),
		WithMaxAttempts(maxAttempts),
		WithRetryBaseDelay(time.Millisecond),
	)
	defer q.Shutdown(context.Background())

	if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	waitFor(t, proc.done, 5*time.Second)

	// Attempt maxAttempts fails retryably but must not be re-enqueued.
	time.Sleep(50 * time.Millisecond)
	got := proc.seen()
	if len(got) != maxAttempts {
		t.Fatalf("attempt count = %d, want %d (%v)", len(got), maxAttempts, got)
	}
	for i, a := range got {
		if a != i+1 {
			t.Fatalf("attempts = %v, want strictly increasing from 1", got)
		}
	}
}

func TestWorkerQueueRecoversAfterRetry(t *testing.T) {
	proc := &fakeProcessor{
		results: []error{ocr.Retryable("test", errors.New("transient")), nil},
		done:    make(chan struct{}),
		doneAt:  2,
	}
	q := NewWorkerQueue(proc, nil,
		WithWorkers(1),
		WithMaxAttempts(8),
		WithRetryBaseDelay(time.Millisecond),
	)
	defer q.Shutdown(context.Background())

	if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	waitFor(t, proc.done, 2*time.Second)

	time.Sleep(50 * time.Millisecond)
	if got := proc.seen(); len(got) != 2 {
		t.Fatalf("attempt count = %d, want 2 (%v)", len(got), got)
	}
}

func TestWorkerQueuePermanentErrorNotRetried(t *testing.T) {
	proc := &fakeProcessor{
		results: []error{ocr.Permanent("test", errors.New("bad input"))},
		done:    make(chan struct{}),
		doneAt:  1,
	}
	q := NewWorkerQueue(proc, nil, WithWorkers(1), WithRetryBaseDelay(time.Millisecond))
	defer q.Shutdown(context.Background())

	if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	waitFor(t, proc.done, 2*time.Second)

	time.Sleep(50 * time.Millisecond)
	if got := proc.seen(); len(got) != 1 {
		t.Fatalf("attempt count = %d, want 1 (%v)", len(got), got)
	}
}

func TestWorkerQueueShutdownDrains(t *testing.T) {
	proc := &fakeProcessor{results: []error{nil}, done: make(chan struct{}), doneAt: 5}
	q := NewWorkerQueue(proc, nil, WithWorkers(2))

	for i := 0; i < 5; i++ {
		if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}
	q.Shutdown(context.Background())

	if got := proc.seen(); len(got) != 5 {
		t.Fatalf("processed %d jobs before shutdown completed, want 5", len(got))
	}
}

func TestWorkerQueueEnqueueAfterShutdown(t *testing.T) {
	proc := &fakeProcessor{results: []error{nil}}
	q := NewWorkerQueue(proc, nil, WithWorkers(1))
	q.Shutdown(context.Background())

	// Must not panic on the closed channel.
	if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}); err != nil {
		t.Fatalf("Enqueue after shutdown: %v", err)
	}
	if got := proc.seen(); len(got) != 0 {
		t.Fatalf("job processed after shutdown: %v", got)
	}
}

func TestWorkerQueueNormalizesAttempt(t *testing.T) {
	proc := &fakeProcessor{results: []error{nil}, done: make(chan struct{}), doneAt: 1}
	q := NewWorkerQueue(proc, nil, WithWorkers(1))
	defer q.Shutdown(context.Background())

	if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New(), Attempt: 0}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	waitFor(t, proc.done, 2*time.Second)

	if got := proc.seen(); got[0] != 1 {
		t.Fatalf("attempt = %d, want 1", got[0])
	}
}
