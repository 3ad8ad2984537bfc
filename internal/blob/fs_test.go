package blob

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestFSStoreRoundTrip(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	ctx := context.Background()
	id := uuid.New()
	data := []byte("%PDF-1.4 fake content")

	if err := store.Put(ctx, id, "application/pdf", data); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("Get = %q, want %q", got, data)
	}

	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after delete = %v, want ErrNotFound", err)
	}
}

func TestFSStoreGetMissing(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	if _, err := store.Get(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get = %v, want ErrNotFound", err)
	}
}

func TestFSStoreDeleteMissingIsNoop(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	if err := store.Delete(context.Background(), uuid.New()); err != nil {
		t.Fatalf("Delete of missing blob: %v", err)
	}
}

func TestFSStoreOverwrite(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	ctx := context.Background()
	id := uuid.New()
	if err := store.Put(ctx, id, "image/png", []byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := store.Put(ctx, id, "image/png", []byte("second")); err != nil {
		t.Fatal(err)
	}
	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Fatalf("Get = %q, want %q", got, "second")
	}
}
