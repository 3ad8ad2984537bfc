// Package gemini implements the OCR client against the Google Generative
// Language API (API-key authenticated REST endpoint).
package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/joseph-ayodele/docuextract/constants"
	"github.com/joseph-ayodele/docuextract/internal/ocr"
)

const providerName = "gemini"

type Config struct {
	APIKey          string
	Model           string        // default "gemini-2.0-flash-exp"
	BaseURL         string        // default "https://generativelanguage.googleapis.com"
	Timeout         time.Duration // default 60s
	Temperature     float32       // default 0.1
	MaxOutputTokens int           // default 8192
}

type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash-exp"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.1
	}
	if cfg.MaxOutputTokens == 0 {
		cfg.MaxOutputTokens = 8192
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}, nil
}

// generateContentResponse is the subset of the API response we consume.
type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Extract sends the document inline (base64) together with the extraction
// prompt and returns the model text verbatim.
func (c *Client) Extract(ctx context.Context, content []byte, contentType string) (string, error) {
	mimeType := constants.NormalizeContentType(contentType)
	if !constants.IsAllowedContentType(mimeType) {
		return "", ocr.Unsupported(providerName, contentType)
	}

	start := time.Now()
	body := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]any{
					{"text": extractionPrompt},
					{"inline_data": map[string]any{
						"mime_type": mimeType,
						"data":      base64.StdEncoding.EncodeToString(content),
					}},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature":     c.cfg.Temperature,
			"maxOutputTokens": c.cfg.MaxOutputTokens,
		},
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model, c.cfg.APIKey)

	raw, status, err := ocr.PostJSON(ctx, c.http, url, body, nil, c.log)
	if err != nil {
		if status == 0 {
			// transport failure or timeout
			return "", ocr.Retryable(providerName, err)
		}
		return "", ocr.FromStatus(providerName, status, err)
	}

	var resp generateContentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		// An unreadable 2xx body is a provider hiccup worth retrying.
		return "", ocr.Retryable(providerName, fmt.Errorf("decode response: %w", err))
	}

	var b strings.Builder
	if len(resp.Candidates) > 0 {
		for _, part := range resp.Candidates[0].Content.Parts {
			b.WriteString(part.Text)
		}
	}
	text := b.String()

	c.log.Info("ocr.gemini.extract",
		"model", c.cfg.Model,
		"mime_type", mimeType,
		"request_bytes", len(content),
		"response_chars", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}
