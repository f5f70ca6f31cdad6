package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultMaxPayloadBytes matches the 6 MiB synchronous invocation payload
// ceiling. The decoder counts decoded payload bytes against this, not the
// base64 wire form.
const DefaultMaxPayloadBytes = 6 * 1024 * 1024

// Config stores all configuration for the application. Loaded once at
// process start and never mutated afterwards.
type Config struct {
	Port        string
	DatabaseURL string

	MaxPayloadBytes   int64
	DefaultAlgorithm  string
	AllowedAlgorithms []string // empty means every registered algorithm

	// Client wrapper settings.
	Endpoint       string
	APIKey         string
	RequestTimeout time.Duration
	MaxAttempts    int
	BackoffBase    time.Duration
	BackoffJitter  time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (useful for local development without Docker)
	godotenv.Load()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080" // Default port
	}

	maxPayload, err := envInt64("MAX_PAYLOAD_BYTES", DefaultMaxPayloadBytes)
	if err != nil {
		return nil, err
	}

	defaultAlgo := os.Getenv("HASH_DEFAULT_ALGORITHM")
	if defaultAlgo == "" {
		defaultAlgo = "sha256"
	}

	var allowed []string
	if raw := os.Getenv("HASH_ALLOWED_ALGORITHMS"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				allowed = append(allowed, name)
			}
		}
	}

	timeoutMS, err := envInt64("REQUEST_TIMEOUT_MS", 10000)
	if err != nil {
		return nil, err
	}
	maxAttempts, err := envInt64("MAX_RETRY_ATTEMPTS", 3)
	if err != nil {
		return nil, err
	}
	backoffBaseMS, err := envInt64("BACKOFF_BASE_MS", 250)
	if err != nil {
		return nil, err
	}
	backoffJitterMS, err := envInt64("BACKOFF_JITTER_MS", 100)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:              port,
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		MaxPayloadBytes:   maxPayload,
		DefaultAlgorithm:  defaultAlgo,
		AllowedAlgorithms: allowed,
		Endpoint:          os.Getenv("PDFHASH_ENDPOINT"),
		APIKey:            os.Getenv("PDFHASH_API_KEY"),
		RequestTimeout:    time.Duration(timeoutMS) * time.Millisecond,
		MaxAttempts:       int(maxAttempts),
		BackoffBase:       time.Duration(backoffBaseMS) * time.Millisecond,
		BackoffJitter:     time.Duration(backoffJitterMS) * time.Millisecond,
	}, nil
}

// AlgorithmAllowed reports whether the allowlist admits the given algorithm.
// An empty allowlist admits everything; registry membership is checked
// separately at the validation boundary.
func (c *Config) AlgorithmAllowed(name string) bool {
	if len(c.AllowedAlgorithms) == 0 {
		return true
	}
	for _, allowed := range c.AllowedAlgorithms {
		if allowed == name {
			return true
		}
	}
	return false
}

func envInt64(key string, fallback int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}
