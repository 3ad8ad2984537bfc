package server

import (
	"time"

	documentspb "github.com/joseph-ayodele/docuextract/gen/proto/documents/v1"
	"github.com/joseph-ayodele/docuextract/internal/entity"
)

func toPBDocument(d *entity.Document) *documentspb.Document {
	pb := &documentspb.Document{
		Id:               d.ID.String(),
		Name:             d.Name,
		OriginalFilename: d.OriginalFilename,
		ContentType:      d.ContentType,
		FileSize:         int64(d.FileSize),
		Status:           string(d.Status),
		CreatedAt:        d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        d.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if d.ErrorMessage != nil {
		pb.ErrorMessage = *d.ErrorMessage
	}
	if d.ProcessedAt != nil {
		pb.ProcessedAt = d.ProcessedAt.UTC().Format(time.RFC3339)
	}
	if d.PageCount != nil {
		pb.PageCount = int32(*d.PageCount)
	}
	return pb
}

func toPBField(f entity.ExtractedField) *documentspb.ExtractedField {
	return &documentspb.ExtractedField{
		Id:         f.ID.String(),
		DocumentId: f.DocumentID.String(),
		Key:        f.Key,
		Value:      f.Value,
		DataType:   string(f.DataType),
		Position:   int32(f.Position),
	}
}
