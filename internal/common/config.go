package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Storage  StorageConfig
	OCR      OCRConfig
	Worker   WorkerConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver           string // "postgres" or "sqlite"
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// StorageConfig selects and configures the document blob store.
type StorageConfig struct {
	Driver    string // "fs" or "s3"
	Dir       string // fs: root directory for blobs
	Bucket    string // s3: bucket name
	KeyPrefix string // s3: optional key prefix
}

// OCRConfig holds OCR provider configuration. Provider-specific settings are
// shared between providers where they mean the same thing (API key, model).
type OCRConfig struct {
	Provider     string // "gemini", "openai" or "vertex"
	APIKey       string
	Model        string
	BaseURL      string
	Timeout      time.Duration
	GCPProjectID string // vertex only
	GCPRegion    string // vertex only
	DenyListPath string // optional deny-list JSON file
}

// WorkerConfig holds processing queue and retry configuration.
type WorkerConfig struct {
	Workers        int
	QueueSize      int
	ProcessTimeout time.Duration
	MaxAttempts    int
	RetryBaseDelay time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:           getEnv("DB_DRIVER", "postgres"),
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Storage: StorageConfig{
			Driver:    getEnv("STORAGE_DRIVER", "fs"),
			Dir:       getEnv("STORAGE_DIR", "./storage"),
			Bucket:    getEnv("STORAGE_S3_BUCKET", ""),
			KeyPrefix: getEnv("STORAGE_S3_PREFIX", "documents/"),
		},
		OCR: OCRConfig{
			Provider:     getEnv("OCR_PROVIDER", "gemini"),
			APIKey:       getEnv("OCR_API_KEY", os.Getenv("GEMINI_API_KEY")),
			Model:        getEnv("OCR_MODEL", ""),
			BaseURL:      getEnv("OCR_BASE_URL", ""),
			Timeout:      getEnvAsDuration("OCR_TIMEOUT", 60*time.Second),
			GCPProjectID: getEnv("GCP_PROJECT_ID", ""),
			GCPRegion:    getEnv("VERTEX_AI_REGION", "us-central1"),
			DenyListPath: getEnv("DENYLIST_PATH", ""),
		},
		Worker: WorkerConfig{
			Workers:        getEnvAsInt("WORKER_COUNT", 4),
			QueueSize:      getEnvAsInt("WORKER_QUEUE_SIZE", 256),
			ProcessTimeout: getEnvAsDuration("WORKER_PROCESS_TIMEOUT", 3*time.Minute),
			MaxAttempts:    getEnvAsInt("WORKER_MAX_ATTEMPTS", 8),
			RetryBaseDelay: getEnvAsDuration("WORKER_RETRY_BASE_DELAY", 2*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	switch c.OCR.Provider {
	case "gemini", "openai":
		if c.OCR.APIKey == "" {
			return NewAppError("CONFIG_ERROR", "OCR_API_KEY is required for provider "+c.OCR.Provider, ErrInvalidInput)
		}
	case "vertex":
		if c.OCR.GCPProjectID == "" {
			return NewAppError("CONFIG_ERROR", "GCP_PROJECT_ID is required for provider vertex", ErrInvalidInput)
		}
	default:
		return NewAppError("CONFIG_ERROR", "unknown OCR_PROVIDER "+c.OCR.Provider, ErrInvalidInput)
	}
	if c.Storage.Driver == "s3" && c.Storage.Bucket == "" {
		return NewAppError("CONFIG_ERROR", "STORAGE_S3_BUCKET is required when STORAGE_DRIVER=s3", ErrInvalidInput)
	}
	if c.Worker.MaxAttempts < 1 {
		return NewAppError("CONFIG_ERROR", "WORKER_MAX_ATTEMPTS must be >= 1", ErrInvalidInput)
	}
	return nil
}
