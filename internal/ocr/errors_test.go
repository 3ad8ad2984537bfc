package ocr

import (
	"errors"
	"fmt"
	"testing"
)

func TestFromStatusClassification(t *testing.T) {
	tests := []struct {
		status    int
		retryable bool
	}{
		{500, true},
		{502, true},
		{503, true},
		{429, true},
		{400, false},
		{401, false},
		{403, false},
		{404, false},
		{422, false},
	}
	for _, tt := range tests {
		pe := FromStatus("gemini", tt.status, errors.New("boom"))
		if pe.Retryable != tt.retryable {
			t.Errorf("FromStatus(%d).Retryable = %v, want %v", tt.status, pe.Retryable, tt.retryable)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"retryable provider error", Retryable("gemini", errors.New("timeout")), true},
		{"permanent provider error", Permanent("gemini", errors.New("bad request")), false},
		{"unsupported content type", Unsupported("openai", "application/pdf"), false},
		{"wrapped retryable", fmt.Errorf("extract: %w", Retryable("vertex", errors.New("503"))), true},
		{"plain error", errors.New("something else"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Fatalf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProviderErrorMessage(t *testing.T) {
	withStatus := FromStatus("gemini", 500, errors.New("server error"))
	if got, want := withStatus.Error(), "gemini: status 500: server error"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	noStatus := Retryable("gemini", errors.New("connection refused"))
	if got, want := noStatus.Error(), "gemini: connection refused"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestProviderErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	pe := Permanent("openai", cause)
	if !errors.Is(pe, cause) {
		t.Fatal("errors.Is did not reach the wrapped cause")
	}
}
