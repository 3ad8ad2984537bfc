package common

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/docs")
	t.Setenv("OCR_API_KEY", "k")

	cfg := LoadConfig()
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Database.Driver = %q, want postgres", cfg.Database.Driver)
	}
	if cfg.Server.GRPCAddr != ":8080" {
		t.Errorf("Server.GRPCAddr = %q, want :8080", cfg.Server.GRPCAddr)
	}
	if cfg.Storage.Driver != "fs" {
		t.Errorf("Storage.Driver = %q, want fs", cfg.Storage.Driver)
	}
	if cfg.OCR.Provider != "gemini" {
		t.Errorf("OCR.Provider = %q, want gemini", cfg.OCR.Provider)
	}
	if cfg.Worker.MaxAttempts != 8 {
		t.Errorf("Worker.MaxAttempts = %d, want 8", cfg.Worker.MaxAttempts)
	}
	if cfg.Worker.RetryBaseDelay != 2*time.Second {
		t.Errorf("Worker.RetryBaseDelay = %v, want 2s", cfg.Worker.RetryBaseDelay)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/docs")
	t.Setenv("OCR_PROVIDER", "vertex")
	t.Setenv("GCP_PROJECT_ID", "my-project")
	t.Setenv("WORKER_MAX_ATTEMPTS", "3")
	t.Setenv("WORKER_RETRY_BASE_DELAY", "500ms")

	cfg := LoadConfig()
	if cfg.OCR.Provider != "vertex" {
		t.Errorf("OCR.Provider = %q, want vertex", cfg.OCR.Provider)
	}
	if cfg.Worker.MaxAttempts != 3 {
		t.Errorf("Worker.MaxAttempts = %d, want 3", cfg.Worker.MaxAttempts)
	}
	if cfg.Worker.RetryBaseDelay != 500*time.Millisecond {
		t.Errorf("Worker.RetryBaseDelay = %v, want 500ms", cfg.Worker.RetryBaseDelay)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Config)
	}{
		{"missing DSN", func(c *Config) { c.Database.DSN = "" }},
		{"missing addr", func(c *Config) { c.Server.GRPCAddr = "" }},
		{"missing api key", func(c *Config) { c.OCR.APIKey = "" }},
		{"unknown provider", func(c *Config) { c.OCR.Provider = "tesseract" }},
		{"vertex without project", func(c *Config) { c.OCR.Provider = "vertex"; c.OCR.GCPProjectID = "" }},
		{"s3 without bucket", func(c *Config) { c.Storage.Driver = "s3"; c.Storage.Bucket = "" }},
		{"zero attempts", func(c *Config) { c.Worker.MaxAttempts = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Database: DatabaseConfig{DSN: "postgres://x"},
				Server:   ServerConfig{GRPCAddr: ":8080"},
				Storage:  StorageConfig{Driver: "fs"},
				OCR:      OCRConfig{Provider: "gemini", APIKey: "k"},
				Worker:   WorkerConfig{MaxAttempts: 8},
			}
			tt.mut(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate succeeded, want error")
			}
		})
	}
}
