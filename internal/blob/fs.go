package blob

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FSStore keeps blobs as flat files under a root directory, one file per
// document id. Content type is tracked in the documents table, not here.
type FSStore struct {
	dir    string
	logger *slog.Logger
}

func NewFSStore(dir string, logger *slog.Logger) (*FSStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &FSStore{dir: dir, logger: logger}, nil
}

func (s *FSStore) path(id uuid.UUID) string {
	return filepath.Join(s.dir, id.String())
}

func (s *FSStore) Put(_ context.Context, documentID uuid.UUID, _ string, data []byte) error {
	path := s.path(documentID)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.logger.Error("blob.fs.put_failed", "document_id", documentID, "path", path, "error", err)
		return fmt.Errorf("write blob: %w", err)
	}
	s.logger.Debug("blob.fs.put", "document_id", documentID, "bytes", len(data))
	return nil
}

func (s *FSStore) Get(_ context.Context, documentID uuid.UUID) ([]byte, error) {
	data, err := os.ReadFile(s.path(documentID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read blob: %w", err)
	}
	return data, nil
}

func (s *FSStore) Delete(_ context.Context, documentID uuid.UUID) error {
	if err := os.Remove(s.path(documentID)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("delete blob: %w", err)
	}
	return nil
}
