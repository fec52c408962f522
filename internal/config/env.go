// Package config loads application configuration from the process
// environment, with optional .env file support for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultHFAPIURL = "https://api-inference.huggingface.co/models/facebook/bart-large-cnn"

// Config holds all runtime settings for the voicebrief server.
type Config struct {
	Addr string

	// SessionSecret signs session cookies. Required, no fallback.
	SessionSecret string
	SessionTTL    time.Duration

	// DatabaseURL selects the postgres repository when set; otherwise
	// the sqlite repository at SQLitePath is used.
	DatabaseURL string
	SQLitePath  string

	UploadDir      string
	AllowedExts    []string
	UploadMaxBytes int64
	UploadBackend  string // "local" or "minio"

	VoskModelPath string

	SummarizerProvider string
	SummarizerConfig   string // optional yaml settings file
	HFAPIURL           string
	HFAPIKey           string
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error; variables may be set system-wide.
func LoadEnv() error {
	envPaths := []string{".env", ".env.local"}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// Load reads configuration from the environment and validates required
// settings. It implements fail-fast: the server refuses to start without
// a session secret or a speech model path.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:               getEnvOrDefault("ADDR", ":8080"),
		SessionSecret:      strings.TrimSpace(os.Getenv("SESSION_SECRET")),
		SessionTTL:         24 * time.Hour,
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		SQLitePath:         getEnvOrDefault("SQLITE_PATH", "data/voicebrief.db"),
		UploadDir:          getEnvOrDefault("UPLOAD_DIR", "data/uploads"),
		AllowedExts:        []string{"wav"},
		UploadMaxBytes:     64 << 20,
		UploadBackend:      getEnvOrDefault("UPLOAD_BACKEND", "local"),
		VoskModelPath:      strings.TrimSpace(os.Getenv("VOSK_MODEL_PATH")),
		SummarizerProvider: getEnvOrDefault("SUMMARIZER_PROVIDER", "huggingface"),
		SummarizerConfig:   os.Getenv("SUMMARIZER_CONFIG"),
		HFAPIURL:           getEnvOrDefault("HF_API_URL", defaultHFAPIURL),
		HFAPIKey:           strings.TrimSpace(os.Getenv("HF_API_KEY")),
	}

	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable must be set")
	}
	if len(cfg.SessionSecret) < 16 {
		return nil, fmt.Errorf("SESSION_SECRET must be at least 16 bytes")
	}
	if cfg.VoskModelPath == "" {
		return nil, fmt.Errorf("VOSK_MODEL_PATH environment variable must be set")
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL %q: %w", v, err)
		}
		cfg.SessionTTL = ttl
	}

	if v := os.Getenv("UPLOAD_ALLOWED_EXTS"); v != "" {
		cfg.AllowedExts = splitExts(v)
	}

	if v := os.Getenv("UPLOAD_MAX_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid UPLOAD_MAX_BYTES %q", v)
		}
		cfg.UploadMaxBytes = n
	}

	return cfg, nil
}

func splitExts(v string) []string {
	parts := strings.Split(v, ",")
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(p, ".")))
		if p != "" {
			exts = append(exts, p)
		}
	}
	return exts
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
