package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	DocgenAPIKey string

	// Download link base for external clients.
	PublicURL string

	// File lifecycle
	ActiveDir     string
	ArchiveDir    string
	ArchiveAfter  time.Duration
	SweepInterval time.Duration

	// Conversion
	TemplatePath    string
	MarkdownEnabled bool

	// Request limits
	MaxBodyBytes int64
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		DocgenAPIKey: os.Getenv("DOCGEN_API_KEY"),

		PublicURL: envOr("PUBLIC_URL", "http://localhost:8090"),

		ActiveDir:     envOr("ACTIVE_DIR", "./docx_files"),
		ArchiveDir:    envOr("ARCHIVE_DIR", "./archive"),
		ArchiveAfter:  envDuration("ARCHIVE_AFTER", 24*time.Hour),
		SweepInterval: envDuration("SWEEP_INTERVAL", 5*time.Minute),

		TemplatePath:    envOr("TEMPLATE_PATH", ""),
		MarkdownEnabled: envBool("MARKDOWN_ENABLED", true),

		MaxBodyBytes: envInt64("MAX_BODY_BYTES", 2097152), // 2MB
	}

	if cfg.ArchiveAfter <= 0 {
		cfg.ArchiveAfter = 24 * time.Hour
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = 5 * time.Minute
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 2097152
	}

	return cfg
}

func (c Config) Validate() error {
	if c.DocgenAPIKey == "" {
		return fmt.Errorf("DOCGEN_API_KEY is required")
	}
	if c.ActiveDir == "" {
		return fmt.Errorf("ACTIVE_DIR must not be empty")
	}
	if c.ArchiveDir == "" {
		return fmt.Errorf("ARCHIVE_DIR must not be empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
