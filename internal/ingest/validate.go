// Package ingest validates uploads before a document row is created: content
// type allow-list, size cap, and a structural check on PDFs so corrupt files
// fail at upload instead of deep inside the pipeline.
package ingest

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/joseph-ayodele/docuextract/constants"
)

// UploadInfo is what validation learns about an accepted upload.
type UploadInfo struct {
	ContentType string // normalized
	PageCount   *int   // PDFs only
}

// ValidateUpload checks filename, content type, and size, and probes PDF
// structure. Returns a descriptive error suitable for surfacing to the
// uploader.
func ValidateUpload(filename, contentType string, data []byte) (UploadInfo, error) {
	if strings.TrimSpace(filename) == "" {
		return UploadInfo{}, fmt.Errorf("filename is required")
	}
	ct := constants.NormalizeContentType(contentType)
	if !constants.IsAllowedContentType(ct) {
		return UploadInfo{}, fmt.Errorf("%s: invalid file type %q, only JPG, PNG and PDF files are allowed", filename, contentType)
	}
	if len(data) == 0 {
		return UploadInfo{}, fmt.Errorf("%s: file is empty", filename)
	}
	if len(data) > constants.MaxUploadBytes {
		return UploadInfo{}, fmt.Errorf("%s: file too large, maximum size is %dMB", filename, constants.MaxUploadBytes>>20)
	}

	info := UploadInfo{ContentType: ct}
	if constants.IsPDF(ct) {
		pages, err := pdfPageCount(data)
		if err != nil {
			return UploadInfo{}, fmt.Errorf("%s: unreadable PDF: %w", filename, err)
		}
		info.PageCount = &pages
	}
	return info, nil
}

func pdfPageCount(data []byte) (int, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return api.PageCount(bytes.NewReader(data), conf)
}

// DeriveName produces the document display name from its original filename:
// the stem without extension.
func DeriveName(filename string) string {
	base := filepath.Base(filename)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if strings.TrimSpace(name) == "" {
		return base
	}
	return name
}
