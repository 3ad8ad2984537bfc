package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docuextract/constants"
	"github.com/joseph-ayodele/docuextract/internal/entity"
	"github.com/joseph-ayodele/docuextract/internal/normalize"
	"github.com/joseph-ayodele/docuextract/internal/ocr"
	"github.com/joseph-ayodele/docuextract/internal/queue"
)

type fakeStore struct {
	mu       sync.Mutex
	doc      *entity.Document
	fields   []entity.ExtractedField
	claimErr error
	getErr   error
	replErr  error

	claims    int
	completed int
	failed    int
	failedMsg string
	replaces  int
}

func (s *fakeStore) GetDocument(_ context.Context, _ uuid.UUID) (*entity.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	copied := *s.doc
	return &copied, nil
}

func (s *fakeStore) ClaimProcessing(_ context.Context, _ uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.claimErr != nil {
		return false, s.claimErr
	}
	s.claims++
	if s.doc.Status == constants.StatusProcessing {
		return false, nil
	}
	s.doc.Status = constants.StatusProcessing
	return true, nil
}

func (s *fakeStore) MarkCompleted(_ context.Context, _ uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completed++
	s.doc.Status = constants.StatusCompleted
	return nil
}

func (s *fakeStore) MarkFailed(_ context.Context, _ uuid.UUID, msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed++
	s.failedMsg = msg
	s.doc.Status = constants.StatusFailed
	return nil
}

func (s *fakeStore) ReplaceFields(_ context.Context, _ uuid.UUID, fields []entity.ExtractedField) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.replErr != nil {
		return s.replErr
	}
	s.replaces++
	s.fields = fields
	return nil
}

type fakeBlobs struct {
	data []byte
	err  error
}

func (b *fakeBlobs) Put(context.Context, uuid.UUID, string, []byte) error { return nil }
func (b *fakeBlobs) Get(context.Context, uuid.UUID) ([]byte, error)       { return b.data, b.err }
func (b *fakeBlobs) Delete(context.Context, uuid.UUID) error              { return nil }

type fakeOCR struct {
	response string
	err      error
	calls    int
}

func (c *fakeOCR) Extract(context.Context, []byte, string) (string, error) {
	c.calls++
	return c.response, c.err
}

func newTestDoc(status constants.DocumentStatus) *entity.Document {
	return &entity.Document{
		ID:          uuid.New(),
		Name:        "invoice",
		ContentType: constants.ContentTypePDF,
		Status:      status,
	}
}

func newTestProcessor(store *fakeStore, blobs *fakeBlobs, client *fakeOCR) *Processor {
	return NewProcessor(nil, store, blobs, client, normalize.New(normalize.DefaultDenyList(), nil))
}

func TestProcessHappyPath(t *testing.T) {
	store := &fakeStore{doc: newTestDoc(constants.StatusPending)}
	client := &fakeOCR{response: `{"Invoice No": "INV-001", "Total": "1250.00", "Date": "01/15/2024"}`}
	p := newTestProcessor(store, &fakeBlobs{data: []byte("pdf")}, client)

	err := p.Process(context.Background(), queue.Job{DocumentID: store.doc.ID, Attempt: 1}, 8)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if store.doc.Status != constants.StatusCompleted {
		t.Fatalf("status = %v, want completed", store.doc.Status)
	}
	if len(store.fields) != 3 {
		t.Fatalf("fields = %v, want 3", store.fields)
	}
	want := []struct {
		key      string
		value    string
		dataType constants.FieldType
	}{
		{"Invoice No", "INV-001", constants.TypeText},
		{"Total", "1250.00", constants.TypeNumber},
		{"Date", "01/15/2024", constants.TypeDate},
	}
	for i, w := range want {
		f := store.fields[i]
		if f.Key != w.key || f.Value != w.value || f.DataType != w.dataType || f.Position != i {
			t.Errorf("field[%d] = %+v, want %+v at position %d", i, f, w, i)
		}
	}
}

func TestProcessEmptyExtractionCompletes(t *testing.T) {
	store := &fakeStore{doc: newTestDoc(constants.StatusPending)}
	client := &fakeOCR{response: "no json here"}
	p := newTestProcessor(store, &fakeBlobs{data: []byte("img")}, client)

	if err := p.Process(context.Background(), queue.Job{DocumentID: store.doc.ID, Attempt: 1}, 8); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if store.doc.Status != constants.StatusCompleted {
		t.Fatalf("status = %v, want completed", store.doc.Status)
	}
	if store.replaces != 1 || len(store.fields) != 0 {
		t.Fatalf("replaces = %d fields = %v, want one replace with zero fields", store.replaces, store.fields)
	}
}

func TestProcessPermanentErrorFailsImmediately(t *testing.T) {
	store := &fakeStore{doc: newTestDoc(constants.StatusPending)}
	client := &fakeOCR{err: ocr.Permanent("test", errors.New("bad request"))}
	p := newTestProcessor(store, &fakeBlobs{data: []byte("img")}, client)

	err := p.Process(context.Background(), queue.Job{DocumentID: store.doc.ID, Attempt: 1}, 8)
	if err == nil {
		t.Fatal("Process succeeded, want error")
	}
	if store.doc.Status != constants.StatusFailed {
		t.Fatalf("status = %v, want failed", store.doc.Status)
	}
	if store.failedMsg == "" {
		t.Fatal("failure message not recorded")
	}
}

func TestProcessRetryableKeepsProcessing(t *testing.T) {
	store := &fakeStore{doc: newTestDoc(constants.StatusPending)}
	client := &fakeOCR{err: ocr.Retryable("test", errors.New("timeout"))}
	p := newTestProcessor(store, &fakeBlobs{data: []byte("img")}, client)

	err := p.Process(context.Background(), queue.Job{DocumentID: store.doc.ID, Attempt: 1}, 8)
	if err == nil {
		t.Fatal("Process succeeded, want retryable error")
	}
	if !ocr.IsRetryable(err) {
		t.Fatalf("error lost retryability: %v", err)
	}
	if store.doc.Status != constants.StatusProcessing {
		t.Fatalf("status = %v, want processing (awaiting retry)", store.doc.Status)
	}
	if store.failed != 0 {
		t.Fatal("document marked failed with attempts remaining")
	}
}

func TestProcessRetryableExhaustionFails(t *testing.T) {
	store := &fakeStore{doc: newTestDoc(constants.StatusProcessing)}
	client := &fakeOCR{err: ocr.Retryable("test", errors.New("timeout"))}
	p := newTestProcessor(store, &fakeBlobs{data: []byte("img")}, client)

	err := p.Process(context.Background(), queue.Job{DocumentID: store.doc.ID, Attempt: 8}, 8)
	if err == nil {
		t.Fatal("Process succeeded, want error")
	}
	if store.doc.Status != constants.StatusFailed {
		t.Fatalf("status = %v, want failed after exhaustion", store.doc.Status)
	}
}

func TestProcessClaimLostSkips(t *testing.T) {
	store := &fakeStore{doc: newTestDoc(constants.StatusProcessing)}
	client := &fakeOCR{response: `{"K": "v"}`}
	p := newTestProcessor(store, &fakeBlobs{data: []byte("img")}, client)

	if err := p.Process(context.Background(), queue.Job{DocumentID: store.doc.ID, Attempt: 1}, 8); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if client.calls != 0 {
		t.Fatal("OCR called despite lost claim")
	}
	if store.completed != 0 && store.failed != 0 {
		t.Fatal("document settled despite lost claim")
	}
}

func TestProcessStaleRetrySkips(t *testing.T) {
	// A retry attempt arrives after the document left processing.
	store := &fakeStore{doc: newTestDoc(constants.StatusCompleted)}
	client := &fakeOCR{response: `{"K": "v"}`}
	p := newTestProcessor(store, &fakeBlobs{data: []byte("img")}, client)

	if err := p.Process(context.Background(), queue.Job{DocumentID: store.doc.ID, Attempt: 3}, 8); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if client.calls != 0 {
		t.Fatal("OCR called for a stale retry")
	}
	if store.claims != 0 {
		t.Fatal("retry attempt must not re-claim")
	}
}

func TestProcessBlobFetchFailureFails(t *testing.T) {
	store := &fakeStore{doc: newTestDoc(constants.StatusPending)}
	p := newTestProcessor(store, &fakeBlobs{err: errors.New("disk gone")}, &fakeOCR{})

	if err := p.Process(context.Background(), queue.Job{DocumentID: store.doc.ID, Attempt: 1}, 8); err == nil {
		t.Fatal("Process succeeded, want error")
	}
	if store.doc.Status != constants.StatusFailed {
		t.Fatalf("status = %v, want failed", store.doc.Status)
	}
}

func TestProcessReplacesPreviousFields(t *testing.T) {
	store := &fakeStore{doc: newTestDoc(constants.StatusCompleted)}
	store.fields = []entity.ExtractedField{{Key: "Old", Value: "stale"}}
	client := &fakeOCR{response: `{"New": "fresh"}`}
	p := newTestProcessor(store, &fakeBlobs{data: []byte("img")}, client)

	if err := p.Process(context.Background(), queue.Job{DocumentID: store.doc.ID, Attempt: 1, Force: true}, 8); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(store.fields) != 1 || store.fields[0].Key != "New" {
		t.Fatalf("fields = %v, want only the fresh extraction", store.fields)
	}
	if store.doc.Status != constants.StatusCompleted {
		t.Fatalf("status = %v, want completed", store.doc.Status)
	}
}
