package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docuextract/constants"
	"github.com/joseph-ayodele/docuextract/gen/ent"
	entdoc "github.com/joseph-ayodele/docuextract/gen/ent/document"
	entfield "github.com/joseph-ayodele/docuextract/gen/ent/extractedfield"
	"github.com/joseph-ayodele/docuextract/internal/common"
	"github.com/joseph-ayodele/docuextract/internal/entity"
)

// DocumentRepository owns persistence for documents and their extracted
// fields. The lifecycle mutators are the only entry points the worker uses.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) (*entity.Document, error)
	List(ctx context.Context) ([]*entity.Document, error)
	GetDocument(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	ListFields(ctx context.Context, documentID uuid.UUID) ([]entity.ExtractedField, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*entity.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ClaimProcessing(ctx context.Context, id uuid.UUID) (bool, error)
	MarkCompleted(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, errorMessage string) error
	ReplaceFields(ctx context.Context, id uuid.UUID, fields []entity.ExtractedField) error
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) Create(ctx context.Context, doc *entity.Document) (*entity.Document, error) {
	row, err := r.ent.Document.Create().
		SetName(doc.Name).
		SetOriginalFilename(doc.OriginalFilename).
		SetContentType(doc.ContentType).
		SetFileSize(doc.FileSize).
		SetNillablePageCount(doc.PageCount).
		Save(ctx)
	if err != nil {
		r.logger.Error("document create failed", "name", doc.Name, "error", err)
		return nil, err
	}
	r.logger.Info("document created", "document_id", row.ID, "name", row.Name, "content_type", row.ContentType)
	return toDocument(row), nil
}

func (r *documentRepo) List(ctx context.Context) ([]*entity.Document, error) {
	rows, err := r.ent.Document.Query().
		Order(ent.Desc(entdoc.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("document list failed", "error", err)
		return nil, err
	}
	out := make([]*entity.Document, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDocument(row))
	}
	return out, nil
}

func (r *documentRepo) GetDocument(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return toDocument(row), nil
}

func (r *documentRepo) ListFields(ctx context.Context, documentID uuid.UUID) ([]entity.ExtractedField, error) {
	rows, err := r.ent.ExtractedField.Query().
		Where(entfield.DocumentID(documentID)).
		Order(ent.Asc(entfield.FieldPosition)).
		All(ctx)
	if err != nil {
		r.logger.Error("field list failed", "document_id", documentID, "error", err)
		return nil, err
	}
	out := make([]entity.ExtractedField, 0, len(rows))
	for _, row := range rows {
		out = append(out, toField(row))
	}
	return out, nil
}

func (r *documentRepo) UpdateName(ctx context.Context, id uuid.UUID, name string) (*entity.Document, error) {
	row, err := r.ent.Document.UpdateOneID(id).
		SetName(name).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("document rename failed", "document_id", id, "error", err)
		return nil, err
	}
	return toDocument(row), nil
}

func (r *documentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// fields cascade with the document
	if err := r.ent.Document.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("document %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("document delete failed", "document_id", id, "error", err)
		return err
	}
	r.logger.Info("document deleted", "document_id", id)
	return nil
}

// ClaimProcessing is the compare-and-swap guard on the claim transition:
// the update only applies while the status still matches a claimable
// pre-state, so duplicate deliveries cannot double-process a document.
func (r *documentRepo) ClaimProcessing(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.ent.Document.Update().
		Where(
			entdoc.ID(id),
			entdoc.StatusIn(
				string(constants.StatusPending),
				string(constants.StatusFailed),
				string(constants.StatusCompleted),
			),
		).
		SetStatus(string(constants.StatusProcessing)).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		r.logger.Error("document claim failed", "document_id", id, "error", err)
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	r.logger.Info("document claimed for processing", "document_id", id)
	return true, nil
}

func (r *documentRepo) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.Document.UpdateOneID(id).
		SetStatus(string(constants.StatusCompleted)).
		SetProcessedAt(time.Now().UTC()).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		r.logger.Error("document mark completed failed", "document_id", id, "error", err)
		return err
	}
	r.logger.Info("document completed", "document_id", id)
	return nil
}

func (r *documentRepo) MarkFailed(ctx context.Context, id uuid.UUID, errorMessage string) error {
	_, err := r.ent.Document.UpdateOneID(id).
		SetStatus(string(constants.StatusFailed)).
		SetErrorMessage(errorMessage).
		SetProcessedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to record document failure", "document_id", id, "error", err)
		return err
	}
	r.logger.Warn("document failed", "document_id", id, "error_message", errorMessage)
	return nil
}

// ReplaceFields swaps the full extracted-field set in one transaction so a
// re-run never leaves duplicates behind.
func (r *documentRepo) ReplaceFields(ctx context.Context, id uuid.UUID, fields []entity.ExtractedField) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return err
	}
	rollback := func(err error) error {
		if rerr := tx.Rollback(); rerr != nil {
			r.logger.Error("field replace rollback failed", "document_id", id, "error", rerr)
		}
		return err
	}

	if _, err := tx.ExtractedField.Delete().
		Where(entfield.DocumentID(id)).
		Exec(ctx); err != nil {
		return rollback(err)
	}

	if len(fields) > 0 {
		builders := make([]*ent.ExtractedFieldCreate, len(fields))
		for i, f := range fields {
			builders[i] = tx.ExtractedField.Create().
				SetDocumentID(id).
				SetKey(f.Key).
				SetValue(f.Value).
				SetDataType(string(f.DataType)).
				SetPosition(f.Position)
		}
		if _, err := tx.ExtractedField.CreateBulk(builders...).Save(ctx); err != nil {
			return rollback(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	r.logger.Info("extracted fields replaced", "document_id", id, "count", len(fields))
	return nil
}

func toDocument(row *ent.Document) *entity.Document {
	return &entity.Document{
		ID:               row.ID,
		Name:             row.Name,
		OriginalFilename: row.OriginalFilename,
		ContentType:      row.ContentType,
		FileSize:         row.FileSize,
		Status:           constants.DocumentStatus(row.Status),
		ErrorMessage:     row.ErrorMessage,
		ProcessedAt:      row.ProcessedAt,
		PageCount:        row.PageCount,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func toField(row *ent.ExtractedField) entity.ExtractedField {
	return entity.ExtractedField{
		ID:         row.ID,
		DocumentID: row.DocumentID,
		Key:        row.Key,
		Value:      row.Value,
		DataType:   constants.FieldType(row.DataType),
		Position:   row.Position,
		CreatedAt:  row.CreatedAt,
	}
}
