package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/nilayfuladi/plant-identifier/internal/errors"
)

type Config struct {
	Host             string
	Port             string
	RequestTimeout   time.Duration
	FetchTimeout     time.Duration
	InferenceTimeout time.Duration
	MaxUploadSize    int64

	// Gemini inference service
	GoogleAPIKey string
	GeminiModel  string

	// Optional Azure blob image source
	AzureStorageAccount string
	AzureStorageKey     string
}

func (c *Config) ServerAddress() string {
	host := strings.TrimSpace(c.Host)
	port := strings.TrimSpace(c.Port)
	return net.JoinHostPort(host, port)
}

// BlobSourceEnabled reports whether the Azure image source is configured.
func (c *Config) BlobSourceEnabled() bool {
	return c.AzureStorageAccount != "" && c.AzureStorageKey != ""
}

func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Host:                getEnvOrDefault("HOST", "0.0.0.0"),
		Port:                getEnvOrDefault("PORT", "8080"),
		RequestTimeout:      parseDurationOrDefault("REQUEST_TIMEOUT", 30*time.Second),
		FetchTimeout:        parseDurationOrDefault("FETCH_TIMEOUT", 15*time.Second),
		InferenceTimeout:    parseDurationOrDefault("INFERENCE_TIMEOUT", 20*time.Second),
		MaxUploadSize:       parseIntOrDefault("MAX_UPLOAD_SIZE", 10*1024*1024), // 10MB
		GoogleAPIKey:        strings.TrimSpace(os.Getenv("GOOGLE_API_KEY")),
		GeminiModel:         getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		AzureStorageAccount: strings.TrimSpace(os.Getenv("AZURE_STORAGE_ACCOUNT")),
		AzureStorageKey:     strings.TrimSpace(os.Getenv("AZURE_STORAGE_KEY")),
	}

	if cfg.GoogleAPIKey == "" {
		return nil, apperrors.NewConfigurationError("GOOGLE_API_KEY is not set; provide a Gemini API key", nil)
	}

	// Validate port is numeric and in range
	p, err := strconv.Atoi(strings.TrimSpace(cfg.Port))
	if err != nil || p < 1 || p > 65535 {
		return nil, fmt.Errorf("invalid PORT: %q", cfg.Port)
	}
	if cfg.MaxUploadSize <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_SIZE must be > 0 (got %d)", cfg.MaxUploadSize)
	}
	if cfg.RequestTimeout <= 0 || cfg.FetchTimeout <= 0 || cfg.InferenceTimeout <= 0 {
		return nil, fmt.Errorf("timeouts must be > 0 (got request=%s, fetch=%s, inference=%s)",
			cfg.RequestTimeout, cfg.FetchTimeout, cfg.InferenceTimeout)
	}
	if cfg.AzureStorageAccount != "" && cfg.AzureStorageKey == "" {
		return nil, apperrors.NewConfigurationError("AZURE_STORAGE_ACCOUNT is set without AZURE_STORAGE_KEY", nil)
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && duration > 0 {
			return duration
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
