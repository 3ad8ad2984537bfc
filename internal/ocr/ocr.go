// Package ocr defines the capability the extraction pipeline depends on:
// hand a remote provider the document bytes, get back whatever text it
// produced. Providers do no JSON validation; that belongs to the normalizer.
package ocr

import "context"

// Client is implemented once per provider. Extract returns the raw provider
// text (possibly markdown-fenced, possibly malformed) or a *ProviderError
// classifying the failure as retryable or permanent.
type Client interface {
	Extract(ctx context.Context, content []byte, contentType string) (string, error)
}
