package constants

import "strings"

// MaxUploadBytes caps uploaded document size.
const MaxUploadBytes = 10 << 20 // 10MB

// Canonical content types accepted for upload and OCR.
const (
	ContentTypeJPEG = "image/jpeg"
	ContentTypePNG  = "image/png"
	ContentTypePDF  = "application/pdf"
)

// AllowedContentTypes holds the content types documents may be uploaded with.
var AllowedContentTypes = map[string]struct{}{
	ContentTypeJPEG: {},
	ContentTypePNG:  {},
	ContentTypePDF:  {},
}

// NormalizeContentType lowercases a content type and folds common aliases
// (image/jpg) onto their canonical form.
func NormalizeContentType(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct == "image/jpg" {
		ct = ContentTypeJPEG
	}
	return ct
}

// IsAllowedContentType reports whether the (normalized) content type is accepted.
func IsAllowedContentType(ct string) bool {
	_, ok := AllowedContentTypes[NormalizeContentType(ct)]
	return ok
}

// IsPDF reports whether the (normalized) content type is a PDF.
func IsPDF(ct string) bool {
	return NormalizeContentType(ct) == ContentTypePDF
}
