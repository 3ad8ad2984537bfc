package ingest

import (
	"strings"
	"testing"

	"github.com/joseph-ayodele/docuextract/constants"
)

func TestValidateUploadImages(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		wantCT      string
	}{
		{"jpeg", "image/jpeg", constants.ContentTypeJPEG},
		{"jpg folded to jpeg", "image/jpg", constants.ContentTypeJPEG},
		{"png", "image/png", constants.ContentTypePNG},
		{"charset param stripped", "image/png; charset=utf-8", constants.ContentTypePNG},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := ValidateUpload("scan.img", tt.contentType, []byte("binary data"))
			if err != nil {
				t.Fatalf("ValidateUpload: %v", err)
			}
			if info.ContentType != tt.wantCT {
				t.Fatalf("ContentType = %q, want %q", info.ContentType, tt.wantCT)
			}
			if info.PageCount != nil {
				t.Fatal("PageCount set for a non-PDF upload")
			}
		})
	}
}

func TestValidateUploadRejections(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		data        []byte
		wantSubstr  string
	}{
		{"missing filename", "", "image/png", []byte("x"), "filename is required"},
		{"disallowed type", "doc.txt", "text/plain", []byte("x"), "invalid file type"},
		{"unknown type", "doc.bin", "", []byte("x"), "invalid file type"},
		{"empty data", "scan.png", "image/png", nil, "file is empty"},
		{"oversize", "scan.png", "image/png", make([]byte, constants.MaxUploadBytes+1), "file too large"},
		{"garbage pdf", "doc.pdf", "application/pdf", []byte("not a real pdf"), "unreadable PDF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateUpload(tt.filename, tt.contentType, tt.data)
			if err == nil {
				t.Fatal("ValidateUpload succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantSubstr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantSubstr)
			}
		})
	}
}

func TestDeriveName(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"invoice_march.pdf", "invoice_march"},
		{"scan.PNG", "scan"},
		{"archive.tar.gz", "archive.tar"},
		{"noext", "noext"},
		{"/tmp/uploads/receipt.jpg", "receipt"},
		{".hidden", ".hidden"},
	}
	for _, tt := range tests {
		if got := DeriveName(tt.filename); got != tt.want {
			t.Errorf("DeriveName(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}
