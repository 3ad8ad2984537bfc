package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/joseph-ayodele/docuextract/internal/ocr"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(Config{APIKey: "test-key", BaseURL: baseURL}, nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func candidateResponse(text string) string {
	resp := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{
				"parts": []map[string]any{{"text": text}},
			}},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestExtractSuccess(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(candidateResponse(`{"Invoice No": "INV-001"}`)))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	text, err := c.Extract(context.Background(), []byte("fake image"), "image/png")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if text != `{"Invoice No": "INV-001"}` {
		t.Fatalf("text = %q", text)
	}
	if want := "/v1beta/models/gemini-2.0-flash-exp:generateContent"; gotPath != want {
		t.Errorf("path = %q, want %q", gotPath, want)
	}
	if gotKey != "test-key" {
		t.Errorf("key = %q, want test-key", gotKey)
	}
	// The request must carry both the prompt and the inline document.
	contents, _ := gotBody["contents"].([]any)
	if len(contents) != 1 {
		t.Fatalf("contents = %v", gotBody["contents"])
	}
	parts, _ := contents[0].(map[string]any)["parts"].([]any)
	if len(parts) != 2 {
		t.Fatalf("parts = %v", parts)
	}
	inline, _ := parts[1].(map[string]any)["inline_data"].(map[string]any)
	if inline["mime_type"] != "image/png" {
		t.Errorf("mime_type = %v, want image/png", inline["mime_type"])
	}
	if inline["data"] == "" {
		t.Error("inline data is empty")
	}
}

func TestExtractJoinsParts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{
					"parts": []map[string]any{{"text": `{"a":`}, {"text": ` "b"}`}},
				}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	text, err := newTestClient(t, srv.URL).Extract(context.Background(), []byte("x"), "image/jpeg")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if text != `{"a": "b"}` {
		t.Fatalf("text = %q", text)
	}
}

func TestExtractServerErrorIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "internal", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).Extract(context.Background(), []byte("x"), "image/png")
	if err == nil {
		t.Fatal("Extract succeeded, want error")
	}
	if !ocr.IsRetryable(err) {
		t.Fatalf("500 must be retryable, got %v", err)
	}
}

func TestExtractRateLimitIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).Extract(context.Background(), []byte("x"), "image/png")
	if !ocr.IsRetryable(err) {
		t.Fatalf("429 must be retryable, got %v", err)
	}
}

func TestExtractBadRequestIsPermanent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad key", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).Extract(context.Background(), []byte("x"), "image/png")
	if err == nil {
		t.Fatal("Extract succeeded, want error")
	}
	if ocr.IsRetryable(err) {
		t.Fatalf("400 must be permanent, got %v", err)
	}
}

func TestExtractTransportFailureIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	_, err := newTestClient(t, srv.URL).Extract(context.Background(), []byte("x"), "image/png")
	if !ocr.IsRetryable(err) {
		t.Fatalf("connection failure must be retryable, got %v", err)
	}
}

func TestExtractUnsupportedContentType(t *testing.T) {
	c := newTestClient(t, "http://unused.invalid")
	_, err := c.Extract(context.Background(), []byte("x"), "text/plain")
	if err == nil {
		t.Fatal("Extract succeeded, want error")
	}
	if ocr.IsRetryable(err) {
		t.Fatal("unsupported content type must be permanent")
	}
	if !strings.Contains(err.Error(), "unsupported content type") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExtractMalformedBodyIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).Extract(context.Background(), []byte("x"), "image/png")
	if !ocr.IsRetryable(err) {
		t.Fatalf("unreadable 2xx body must be retryable, got %v", err)
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient(Config{}, nil); err == nil {
		t.Fatal("NewClient without key succeeded, want error")
	}
}
