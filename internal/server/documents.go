// Package server exposes the document lifecycle over gRPC.
package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docuextract/constants"
	documentspb "github.com/joseph-ayodele/docuextract/gen/proto/documents/v1"
	"github.com/joseph-ayodele/docuextract/internal/blob"
	"github.com/joseph-ayodele/docuextract/internal/common"
	"github.com/joseph-ayodele/docuextract/internal/entity"
	"github.com/joseph-ayodele/docuextract/internal/export"
	"github.com/joseph-ayodele/docuextract/internal/ingest"
	"github.com/joseph-ayodele/docuextract/internal/queue"
	"github.com/joseph-ayodele/docuextract/internal/repository"
)

type DocumentService struct {
	documentspb.UnimplementedDocumentsServiceServer
	docRepo repository.DocumentRepository
	blobs   blob.Store
	queue   queue.Queue
	logger  *slog.Logger
}

func NewDocumentService(docRepo repository.DocumentRepository, blobs blob.Store, q queue.Queue, logger *slog.Logger) *DocumentService {
	return &DocumentService{
		docRepo: docRepo,
		blobs:   blobs,
		queue:   q,
		logger:  logger,
	}
}

// UploadDocument validates and stores the upload, creates the document in
// pending, and enqueues the first extraction attempt. The response returns
// immediately; extraction happens in the background.
func (s *DocumentService) UploadDocument(ctx context.Context, req *documentspb.UploadDocumentRequest) (*documentspb.UploadDocumentResponse, error) {
	filename := strings.TrimSpace(req.GetFilename())
	info, err := ingest.ValidateUpload(filename, req.GetContentType(), req.GetContent())
	if err != nil {
		s.logger.Warn("upload rejected", "filename", filename, "error", err)
		return nil, common.InvalidArgumentError(err.Error())
	}

	name := strings.TrimSpace(req.GetName())
	if name == "" {
		name = ingest.DeriveName(filename)
	}

	doc, err := s.docRepo.Create(ctx, &entity.Document{
		Name:             name,
		OriginalFilename: filename,
		ContentType:      info.ContentType,
		FileSize:         len(req.GetContent()),
		PageCount:        info.PageCount,
	})
	if err != nil {
		return nil, common.InternalErrorf("create document: %v", err)
	}

	if err := s.blobs.Put(ctx, doc.ID, info.ContentType, req.GetContent()); err != nil {
		s.logger.Error("blob store failed, removing document", "document_id", doc.ID, "error", err)
		if derr := s.docRepo.Delete(ctx, doc.ID); derr != nil {
			s.logger.Error("orphaned document cleanup failed", "document_id", doc.ID, "error", derr)
		}
		return nil, common.InternalErrorf("store document content: %v", err)
	}

	if err := s.queue.Enqueue(ctx, queue.Job{DocumentID: doc.ID}); err != nil {
		s.logger.Error("enqueue failed", "document_id", doc.ID, "error", err)
	}

	return &documentspb.UploadDocumentResponse{Document: toPBDocument(doc)}, nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, _ *documentspb.ListDocumentsRequest) (*documentspb.ListDocumentsResponse, error) {
	docs, err := s.docRepo.List(ctx)
	if err != nil {
		return nil, common.InternalErrorf("list documents: %v", err)
	}
	out := make([]*documentspb.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, toPBDocument(d))
	}
	return &documentspb.ListDocumentsResponse{Documents: out}, nil
}

func (s *DocumentService) GetDocument(ctx context.Context, req *documentspb.GetDocumentRequest) (*documentspb.GetDocumentResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	doc, err := s.docRepo.GetDocument(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(err, "get document")
	}
	fields, err := s.docRepo.ListFields(ctx, id)
	if err != nil {
		return nil, common.InternalErrorf("list fields: %v", err)
	}
	out := make([]*documentspb.ExtractedField, 0, len(fields))
	for _, f := range fields {
		out = append(out, toPBField(f))
	}
	return &documentspb.GetDocumentResponse{Document: toPBDocument(doc), Fields: out}, nil
}

func (s *DocumentService) UpdateDocument(ctx context.Context, req *documentspb.UpdateDocumentRequest) (*documentspb.UpdateDocumentResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	doc, err := s.docRepo.UpdateName(ctx, id, name)
	if err != nil {
		return nil, s.mapRepoError(err, "update document")
	}
	return &documentspb.UpdateDocumentResponse{Document: toPBDocument(doc)}, nil
}

// DeleteDocument removes the row and its stored content. A missing blob is
// not an error; the document row is the source of truth.
func (s *DocumentService) DeleteDocument(ctx context.Context, req *documentspb.DeleteDocumentRequest) (*documentspb.DeleteDocumentResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	if err := s.docRepo.Delete(ctx, id); err != nil {
		return nil, s.mapRepoError(err, "delete document")
	}
	if err := s.blobs.Delete(ctx, id); err != nil && !errors.Is(err, blob.ErrNotFound) {
		s.logger.Error("blob delete failed", "document_id", id, "error", err)
	}
	return &documentspb.DeleteDocumentResponse{}, nil
}

// ReprocessDocument re-runs extraction for a document that is not currently
// processing. Existing fields are replaced when the new run succeeds.
func (s *DocumentService) ReprocessDocument(ctx context.Context, req *documentspb.ReprocessDocumentRequest) (*documentspb.ReprocessDocumentResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	doc, err := s.docRepo.GetDocument(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(err, "get document")
	}
	if doc.Processing() {
		return nil, common.InvalidArgumentError("document is already processing")
	}
	if err := s.queue.Enqueue(ctx, queue.Job{DocumentID: id, Force: true}); err != nil {
		return nil, common.InternalErrorf("enqueue reprocess: %v", err)
	}
	s.logger.Info("reprocess requested", "document_id", id, "status", doc.Status)
	return &documentspb.ReprocessDocumentResponse{Document: toPBDocument(doc)}, nil
}

// ExportDocument renders the extracted fields of a completed document as an
// Excel workbook.
func (s *DocumentService) ExportDocument(ctx context.Context, req *documentspb.ExportDocumentRequest) (*documentspb.ExportDocumentResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	doc, err := s.docRepo.GetDocument(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(err, "get document")
	}
	if doc.Status != constants.StatusCompleted {
		return nil, common.InvalidArgumentErrorf("document is %s, only completed documents can be exported", doc.Status)
	}
	fields, err := s.docRepo.ListFields(ctx, id)
	if err != nil {
		return nil, common.InternalErrorf("list fields: %v", err)
	}
	content, err := export.BuildWorkbook(fields)
	if err != nil {
		return nil, common.InternalErrorf("build workbook: %v", err)
	}
	return &documentspb.ExportDocumentResponse{
		Filename: export.DownloadFilename(doc, time.Now()),
		Content:  content,
	}, nil
}

func parseID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentError("id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("id must be a UUID")
	}
	return id, nil
}

func (s *DocumentService) mapRepoError(err error, op string) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.NotFoundError("document not found")
	}
	s.logger.Error(op+" failed", "error", err)
	return common.InternalErrorf("%s: %v", op, err)
}
