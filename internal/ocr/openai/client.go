// Package openai implements the OCR client against the OpenAI
// chat/completions endpoint using vision input. Image-only: PDFs are
// rejected up front rather than silently mis-encoded.
package openai

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

const providerName = "openai"

type Config struct {
	APIKey      string
	Model       string        // default "gpt-4o-mini"
	BaseURL     string        // default "https://api.openai.com/v1"
	Timeout     time.Duration // default 45s
	Temperature float32
}

type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
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

func (c *Client) Extract(ctx context.Context, content []byte, contentType string) (string, error) {
	mimeType := constants.NormalizeContentType(contentType)
	switch mimeType {
	case constants.ContentTypeJPEG, constants.ContentTypePNG:
	default:
		// includes application/pdf: this provider only takes images
		return "", ocr.Unsupported(providerName, contentType)
	}

	start := time.Now()
	dataURL := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(content)

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "text", "text": extractionPrompt},
					{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
				},
			},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}

	raw, status, err := ocr.PostJSON(ctx, c.http, endpoint, body, headers, c.log)
	if err != nil {
		if status == 0 {
			return "", ocr.Retryable(providerName, err)
		}
		return "", ocr.FromStatus(providerName, status, err)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", ocr.Retryable(providerName, fmt.Errorf("decode response: %w", err))
	}
	if len(cc.Choices) == 0 {
		return "", ocr.Retryable(providerName, fmt.Errorf("no choices in response"))
	}
	text := cc.Choices[0].Message.Content

	c.log.Info("ocr.openai.extract",
		"model", c.cfg.Model,
		"mime_type", mimeType,
		"request_bytes", len(content),
		"response_chars", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}
