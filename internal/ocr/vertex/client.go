// Package vertex implements the OCR client on Vertex AI Gemini via the genai
// SDK, for deployments that authenticate with GCP credentials instead of an
// API key.
package vertex

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/googleapi"

	"github.com/joseph-ayodele/docuextract/constants"
	"github.com/joseph-ayodele/docuextract/internal/ocr"
)

const providerName = "vertex"

const systemPrompt = "You are a document data extractor. You read a scanned document and return its transactional content as a single JSON object. Exclude company branding, company contact details, disclaimers, and legal boilerplate. Return ONLY valid JSON with descriptive keys and clean string values."

const userPrompt = `Extract the relevant data from the attached document: customer information, reference numbers, dates, service details, quantities, amounts and totals, and any handwritten content. Return ONLY a JSON object.`

type Config struct {
	ProjectID string
	Region    string // default "us-central1"
	Model     string // default "gemini-1.5-pro"
	Timeout   time.Duration
}

type Client struct {
	model  *genai.GenerativeModel
	base   *genai.Client
	cfg    Config
	logger *slog.Logger
}

func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("vertex: project id is required")
	}
	if cfg.Region == "" {
		cfg.Region = "us-central1"
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-1.5-pro"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	base, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Region)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	model := base.GenerativeModel(cfg.Model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	model.GenerationConfig = genai.GenerationConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0.1),
	}

	return &Client{model: model, base: base, cfg: cfg, logger: logger}, nil
}

func (c *Client) Close() error {
	return c.base.Close()
}

func (c *Client) Extract(ctx context.Context, content []byte, contentType string) (string, error) {
	mimeType := constants.NormalizeContentType(contentType)
	if !constants.IsAllowedContentType(mimeType) {
		return "", ocr.Unsupported(providerName, contentType)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: content},
		genai.Text(userPrompt),
	)
	if err != nil {
		return "", classify(err)
	}

	var b strings.Builder
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	text := b.String()

	c.logger.Info("ocr.vertex.extract",
		"model", c.cfg.Model,
		"mime_type", mimeType,
		"request_bytes", len(content),
		"response_chars", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

// classify maps SDK errors onto the retryable/permanent taxonomy. Anything
// without a usable status is assumed to be a transient transport problem.
func classify(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return ocr.FromStatus(providerName, gerr.Code, err)
	}
	return ocr.Retryable(providerName, err)
}
