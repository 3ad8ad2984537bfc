package ocr

import (
	"errors"
	"fmt"
)

// ProviderError classifies an OCR provider failure. Retryable errors
// (network, timeout, 5xx, rate limiting) trigger backoff and re-attempt;
// permanent ones (unsupported content type, auth, malformed request) fail the
// document immediately.
type ProviderError struct {
	Provider   string
	StatusCode int // 0 when no HTTP response was received
	Retryable  bool
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Retryable wraps a transport-level failure (no usable HTTP status).
func Retryable(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Retryable: true, Err: err}
}

// Permanent wraps a failure that no amount of retrying will fix.
func Permanent(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Retryable: false, Err: err}
}

// FromStatus wraps a non-2xx HTTP response, classifying 5xx and 429 as retryable.
func FromStatus(provider string, statusCode int, err error) *ProviderError {
	return &ProviderError{
		Provider:   provider,
		StatusCode: statusCode,
		Retryable:  statusCode >= 500 || statusCode == 429,
		Err:        err,
	}
}

// Unsupported reports a content type the provider cannot process.
func Unsupported(provider, contentType string) *ProviderError {
	return Permanent(provider, fmt.Errorf("unsupported content type %q", contentType))
}

// IsRetryable reports whether the worker should back off and re-attempt.
// Unknown errors are treated as permanent: an unexpected failure fails the
// document rather than looping.
func IsRetryable(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Retryable
	}
	return false
}
