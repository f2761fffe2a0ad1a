package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Transport values accepted in MCP_TRANSPORT.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	Transport       string
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Upstream Hong Kong Observatory API configuration.
	HKOBaseURL string
	HKOTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	hkoTimeout, err := parseDuration("HKO_TIMEOUT", "15s")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Transport:       envOrDefault("MCP_TRANSPORT", TransportStdio),
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		HKOBaseURL:      envOrDefault("HKO_BASE_URL", "https://data.weather.gov.hk/weatherAPI/opendata"),
		HKOTimeout:      hkoTimeout,
	}

	if cfg.Transport != TransportStdio && cfg.Transport != TransportHTTP {
		return nil, fmt.Errorf("invalid MCP_TRANSPORT %q: must be %q or %q", cfg.Transport, TransportStdio, TransportHTTP)
	}
	if cfg.HKOBaseURL == "" {
		return nil, errors.New("HKO_BASE_URL is required")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	s := envOrDefault(key, fallback)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, s)
	}
	return d, nil
}
