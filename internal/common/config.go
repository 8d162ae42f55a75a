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
	Extract  ExtractConfig
	NER      NERConfig
	Summary  SummaryConfig
	Jobs     JobsConfig
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

// ExtractConfig holds text-extraction configuration
type ExtractConfig struct {
	MaxPages          int // 0 = no limit
	DetectSampleBytes int // language detection runs on this prefix
	DefaultLanguage   string
}

// NERConfig holds entity-extraction configuration
type NERConfig struct {
	Provider       string // "openai" or "gemini"
	Model          string
	APIKey         string
	BaseURL        string
	MinConfidence  float32 // entities below this floor are dropped
	RequestTimeout time.Duration
}

// SummaryConfig holds summary-generation configuration
type SummaryConfig struct {
	Provider    string // "openai" or "gemini"
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration // wall-clock budget per generation
	CacheSize   int           // extracted-text LRU entries
	Workers     int           // async queue workers
}

// JobsConfig holds background-job configuration
type JobsConfig struct {
	StaleCheckSpec string // cron spec
	StaleAfter     time.Duration
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
		Extract: ExtractConfig{
			MaxPages:          getEnvAsInt("EXTRACT_MAX_PAGES", 0),
			DetectSampleBytes: getEnvAsInt("LANG_DETECT_SAMPLE_BYTES", 4096),
			DefaultLanguage:   getEnv("DEFAULT_LANGUAGE", "en"),
		},
		NER: NERConfig{
			Provider:       getEnv("NER_PROVIDER", "openai"),
			Model:          getEnv("NER_MODEL", "gpt-4o-mini"),
			APIKey:         getEnv("NER_API_KEY", os.Getenv("OPENAI_API_KEY")),
			BaseURL:        getEnv("NER_BASE_URL", ""),
			MinConfidence:  getEnvAsFloat32("NER_MIN_CONFIDENCE", 0.5),
			RequestTimeout: getEnvAsDuration("NER_TIMEOUT", 45*time.Second),
		},
		Summary: SummaryConfig{
			Provider:    getEnv("SUMMARY_PROVIDER", "openai"),
			Model:       getEnv("SUMMARY_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("SUMMARY_API_KEY", os.Getenv("OPENAI_API_KEY")),
			BaseURL:     getEnv("SUMMARY_BASE_URL", ""),
			Temperature: getEnvAsFloat32("SUMMARY_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("SUMMARY_TIMEOUT", 2*time.Minute),
			CacheSize:   getEnvAsInt("SUMMARY_TEXT_CACHE", 256),
			Workers:     getEnvAsInt("SUMMARY_WORKERS", 4),
		},
		Jobs: JobsConfig{
			StaleCheckSpec: getEnv("JOBS_STALE_CRON", "@every 5m"),
			StaleAfter:     getEnvAsDuration("JOBS_STALE_AFTER", 30*time.Minute),
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

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
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
	if c.NER.MinConfidence < 0 || c.NER.MinConfidence > 1 {
		return NewAppError("CONFIG_ERROR", "NER_MIN_CONFIDENCE must be within [0,1]", ErrInvalidInput)
	}
	if c.Summary.Timeout <= 0 {
		return NewAppError("CONFIG_ERROR", "SUMMARY_TIMEOUT must be positive", ErrInvalidInput)
	}
	return nil
}
