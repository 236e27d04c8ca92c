package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration loaded from environment variables.
// This provides a centralized way to manage all configuration settings.
type Config struct {
	// SASURL is the full container SAS URL (base address plus signed query
	// string). Sourced from BASE_SAS_URL; the --sas-url flag overrides it.
	SASURL string

	// OutputDir is the directory downloads are written into.
	// Default: ./downloads
	OutputDir string

	// ConnectTimeout bounds connection establishment for each request.
	// Default: 10s
	ConnectTimeout time.Duration

	// RequestTimeout bounds a whole request, response body included.
	// Default: 120s
	RequestTimeout time.Duration

	// ChunkSize is the copy-buffer size for streamed downloads.
	ChunkSize int

	// LogLevel controls the verbosity of logging (debug, info, warn, error).
	// Default: "warn"
	LogLevel string
}

const (
	defaultOutputDir      = "downloads"
	defaultConnectTimeout = 10 * time.Second
	defaultRequestTimeout = 120 * time.Second
	defaultChunkSize      = 256 * 1024
	defaultLogLevel       = "warn"
)

// Load creates a Config instance by reading environment variables.
// Missing values are replaced with sensible defaults. A .env file in the
// working directory supplies values for variables that are not already set;
// variables already present in the environment always win, and a missing
// .env file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		SASURL:         os.Getenv("BASE_SAS_URL"),
		OutputDir:      defaultOutputDir,
		ConnectTimeout: defaultConnectTimeout,
		RequestTimeout: defaultRequestTimeout,
		ChunkSize:      defaultChunkSize,
		LogLevel:       defaultLogLevel,
	}

	// Load OUTPUT_DIR
	if dir := os.Getenv("OUTPUT_DIR"); dir != "" {
		cfg.OutputDir = dir
	}

	// Load CONNECT_TIMEOUT_SECONDS
	if secs := os.Getenv("CONNECT_TIMEOUT_SECONDS"); secs != "" {
		if n, err := strconv.Atoi(secs); err == nil && n > 0 {
			cfg.ConnectTimeout = time.Duration(n) * time.Second
		}
	}

	// Load REQUEST_TIMEOUT_SECONDS
	if secs := os.Getenv("REQUEST_TIMEOUT_SECONDS"); secs != "" {
		if n, err := strconv.Atoi(secs); err == nil && n > 0 {
			cfg.RequestTimeout = time.Duration(n) * time.Second
		}
	}

	// Load LOG_LEVEL
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	return cfg
}

// Validate performs basic validation on the configuration.
// Returns an error if any invalid settings are detected.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output directory cannot be empty")
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("invalid chunk size: %d", c.ChunkSize)
	}
	if c.ConnectTimeout <= 0 || c.RequestTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	return nil
}
