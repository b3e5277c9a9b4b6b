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
	OCR      OCRConfig
	Pipeline PipelineConfig
	Storage  StorageConfig
	Detect   DetectConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
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
	APIKey   string // pre-shared credential checked by the auth interceptor
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Languages   []string
	DPI         int
	MaxPages    int
	Slots       int64 // concurrent OCR-backend slots shared process-wide
	Pdftotext   string
	Pdftoppm    string
	TessdataDir string
	FallbackCmd string // secondary engine binary; empty disables failover
}

// PipelineConfig bounds the scheduler.
type PipelineConfig struct {
	Workers    int
	QueueDepth int
	DocTimeout time.Duration
	MaxRetries int
}

// StorageConfig selects and configures the object-store backend.
type StorageConfig struct {
	Backend         string // "fs" | "s3"
	Dir             string // fs root
	Bucket          string
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// DetectConfig configures the entity-recognition backend for free-text PII.
type DetectConfig struct {
	NERBaseURL string // empty disables model-based name/address detection
	NERTimeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
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
			APIKey:   getEnv("API_KEY", ""),
		},
		OCR: OCRConfig{
			Languages:   []string{getEnv("OCR_LANG", "eng")},
			DPI:         getEnvAsInt("OCR_DPI", 300),
			MaxPages:    getEnvAsInt("OCR_MAX_PAGES", 0),
			Slots:       int64(getEnvAsInt("OCR_SLOTS", 4)),
			Pdftotext:   getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:    getEnv("PDFTOPPM_BIN", "pdftoppm"),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
			FallbackCmd: getEnv("OCR_FALLBACK_BIN", ""),
		},
		Pipeline: PipelineConfig{
			Workers:    getEnvAsInt("PIPELINE_WORKERS", 16),
			QueueDepth: getEnvAsInt("PIPELINE_QUEUE_DEPTH", 512),
			DocTimeout: getEnvAsDuration("PIPELINE_DOC_TIMEOUT", 3*time.Minute),
			MaxRetries: getEnvAsInt("PIPELINE_MAX_RETRIES", 2),
		},
		Storage: StorageConfig{
			Backend:         getEnv("STORAGE_BACKEND", "fs"),
			Dir:             getEnv("STORAGE_DIR", "./data"),
			Bucket:          getEnv("S3_BUCKET", ""),
			Endpoint:        getEnv("S3_ENDPOINT", ""),
			Region:          getEnv("S3_REGION", "auto"),
			AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		},
		Detect: DetectConfig{
			NERBaseURL: getEnv("NER_URL", ""),
			NERTimeout: getEnvAsDuration("NER_TIMEOUT", 30*time.Second),
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
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Pipeline.Workers <= 0 {
		return NewAppError("CONFIG_ERROR", "PIPELINE_WORKERS must be positive", ErrInvalidInput)
	}
	if c.Pipeline.QueueDepth <= 0 {
		return NewAppError("CONFIG_ERROR", "PIPELINE_QUEUE_DEPTH must be positive", ErrInvalidInput)
	}
	if c.Storage.Backend == "s3" && c.Storage.Bucket == "" {
		return NewAppError("CONFIG_ERROR", "S3_BUCKET is required for s3 storage", ErrInvalidInput)
	}
	return nil
}
