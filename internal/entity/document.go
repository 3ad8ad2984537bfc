package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docuextract/constants"
)

// Document represents an uploaded document for data transfer between layers.
type Document struct {
	ID               uuid.UUID                `json:"id"`
	Name             string                   `json:"name"`
	OriginalFilename string                   `json:"original_filename"`
	ContentType      string                   `json:"content_type"`
	FileSize         int                      `json:"file_size"`
	Status           constants.DocumentStatus `json:"status"`
	ErrorMessage     *string                  `json:"error_message,omitempty"`
	ProcessedAt      *time.Time               `json:"processed_at,omitempty"`
	PageCount        *int                     `json:"page_count,omitempty"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

// Completed reports terminal success.
func (d *Document) Completed() bool { return d.Status == constants.StatusCompleted }

// Failed reports terminal failure.
func (d *Document) Failed() bool { return d.Status == constants.StatusFailed }

// Processing reports an in-flight extraction.
func (d *Document) Processing() bool { return d.Status == constants.StatusProcessing }
