// Package blob stores the original uploaded bytes of a document, keyed by
// document id. The extraction pipeline only ever reads; upload and delete
// happen on the serving path.
package blob

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no blob exists for the given document id.
var ErrNotFound = errors.New("blob not found")

// Store is the opaque blob store the pipeline consumes.
type Store interface {
	Put(ctx context.Context, documentID uuid.UUID, contentType string, data []byte) error
	Get(ctx context.Context, documentID uuid.UUID) ([]byte, error)
	Delete(ctx context.Context, documentID uuid.UUID) error
}
