package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docuextract/constants"
)

// ExtractedField is one typed key/value record produced by a successful
// extraction pass. Fields are ordered by Position, which reflects the
// top-to-bottom order of the OCR response.
type ExtractedField struct {
	ID         uuid.UUID           `json:"id"`
	DocumentID uuid.UUID           `json:"document_id"`
	Key        string              `json:"key"`
	Value      string              `json:"value"`
	DataType   constants.FieldType `json:"data_type"`
	Position   int                 `json:"position"`
	CreatedAt  time.Time           `json:"created_at"`
}
