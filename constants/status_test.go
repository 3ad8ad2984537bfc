package constants

import "testing"

func TestTerminal(t *testing.T) {
	tests := []struct {
		status DocumentStatus
		want   bool
	}{
		{StatusPending, false},
		{StatusProcessing, false},
		{StatusCompleted, true},
		{StatusFailed, true},
	}
	for _, tt := range tests {
		if got := tt.status.Terminal(); got != tt.want {
			t.Errorf("%s.Terminal() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestNormalizeContentType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"image/jpeg", "image/jpeg"},
		{"image/jpg", "image/jpeg"},
		{"IMAGE/PNG", "image/png"},
		{" application/pdf ", "application/pdf"},
		{"application/pdf; charset=binary", "application/pdf"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeContentType(tt.in); got != tt.want {
			t.Errorf("NormalizeContentType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsAllowedContentType(t *testing.T) {
	allowed := []string{"image/jpeg", "image/jpg", "image/png", "application/pdf", "Image/PNG"}
	for _, ct := range allowed {
		if !IsAllowedContentType(ct) {
			t.Errorf("IsAllowedContentType(%q) = false, want true", ct)
		}
	}
	denied := []string{"text/plain", "image/gif", "application/zip", ""}
	for _, ct := range denied {
		if IsAllowedContentType(ct) {
			t.Errorf("IsAllowedContentType(%q) = true, want false", ct)
		}
	}
}
