package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config contains all runtime settings for the therapy chat service.
type Config struct {
	BindAddr         string
	ShutdownTimeout  time.Duration
	MetricsNamespace string

	AllowAnyOrigin bool

	ProviderBaseURL     string
	ProviderAPIKey      string
	ProviderModel       string
	ProviderMaxTokens   int
	ProviderTemperature float64

	RetryMaxAttempts int
	RetryBaseDelay   time.Duration
	RetryJitterMax   time.Duration
	RetryDeadline    time.Duration

	HistoryWindow int

	// DegradedReply, when non-empty, is returned in place of the assistant
	// response if the primary completion fails. Empty means the failure is
	// surfaced to the caller instead.
	DegradedReply string

	SessionInactivityTimeout time.Duration

	DatabaseURL string
}

// DefaultDegradedReply is the stock apology used when degraded replies are
// enabled without custom wording.
const DefaultDegradedReply = "Sorry, something went wrong while processing your message. Please try again in a few moments."

// Load reads environment variables and applies safe defaults.
func Load() (Config, error) {
	cfg := Config{
		BindAddr:                 envOrDefault("APP_BIND_ADDR", ":8080"),
		MetricsNamespace:         envOrDefault("APP_METRICS_NAMESPACE", "amala"),
		AllowAnyOrigin:           false,
		ProviderBaseURL:          envOrDefault("PROVIDER_BASE_URL", "https://api.anthropic.com"),
		ProviderAPIKey:           trimmedEnv("PROVIDER_API_KEY"),
		ProviderModel:            envOrDefault("PROVIDER_MODEL", "claude-sonnet-4-20250514"),
		ProviderMaxTokens:        1024,
		ProviderTemperature:      0.7,
		RetryMaxAttempts:         3,
		RetryBaseDelay:           500 * time.Millisecond,
		RetryJitterMax:           200 * time.Millisecond,
		RetryDeadline:            10 * time.Second,
		HistoryWindow:            5,
		SessionInactivityTimeout: 30 * time.Minute,
		DatabaseURL:              trimmedEnv("DATABASE_URL"),
		ShutdownTimeout:          15 * time.Second,
	}

	var err error
	cfg.ShutdownTimeout, err = durationFromEnv("APP_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	if err != nil {
		return Config{}, err
	}
	cfg.SessionInactivityTimeout, err = durationFromEnv("APP_SESSION_INACTIVITY_TIMEOUT", cfg.SessionInactivityTimeout)
	if err != nil {
		return Config{}, err
	}
	cfg.ProviderMaxTokens, err = intFromEnv("PROVIDER_MAX_TOKENS", cfg.ProviderMaxTokens)
	if err != nil {
		return Config{}, err
	}
	cfg.ProviderTemperature, err = floatFromEnv("PROVIDER_TEMPERATURE", cfg.ProviderTemperature)
	if err != nil {
		return Config{}, err
	}
	cfg.RetryMaxAttempts, err = intFromEnv("PROVIDER_RETRY_MAX_ATTEMPTS", cfg.RetryMaxAttempts)
	if err != nil {
		return Config{}, err
	}
	cfg.RetryBaseDelay, err = durationFromEnv("PROVIDER_RETRY_BASE_DELAY", cfg.RetryBaseDelay)
	if err != nil {
		return Config{}, err
	}
	cfg.RetryJitterMax, err = durationFromEnv("PROVIDER_RETRY_JITTER_MAX", cfg.RetryJitterMax)
	if err != nil {
		return Config{}, err
	}
	cfg.RetryDeadline, err = durationFromEnv("PROVIDER_RETRY_DEADLINE", cfg.RetryDeadline)
	if err != nil {
		return Config{}, err
	}
	cfg.HistoryWindow, err = intFromEnv("CHAT_HISTORY_WINDOW", cfg.HistoryWindow)
	if err != nil {
		return Config{}, err
	}
	cfg.AllowAnyOrigin, err = boolFromEnv("APP_ALLOW_ANY_ORIGIN", cfg.AllowAnyOrigin)
	if err != nil {
		return Config{}, err
	}

	degraded, err := boolFromEnv("CHAT_DEGRADED_REPLY_ENABLED", false)
	if err != nil {
		return Config{}, err
	}
	if degraded {
		cfg.DegradedReply = envOrDefault("CHAT_DEGRADED_REPLY", DefaultDegradedReply)
	}

	if cfg.ProviderMaxTokens <= 0 {
		return Config{}, fmt.Errorf("PROVIDER_MAX_TOKENS must be positive")
	}
	if cfg.ProviderTemperature < 0 || cfg.ProviderTemperature > 1 {
		return Config{}, fmt.Errorf("PROVIDER_TEMPERATURE must be in [0, 1]")
	}
	if cfg.RetryMaxAttempts <= 0 {
		return Config{}, fmt.Errorf("PROVIDER_RETRY_MAX_ATTEMPTS must be positive")
	}
	if cfg.RetryDeadline <= 0 {
		return Config{}, fmt.Errorf("PROVIDER_RETRY_DEADLINE must be positive")
	}
	if cfg.HistoryWindow <= 0 {
		return Config{}, fmt.Errorf("CHAT_HISTORY_WINDOW must be positive")
	}
	if cfg.SessionInactivityTimeout < 5*time.Second {
		return Config{}, fmt.Errorf("APP_SESSION_INACTIVITY_TIMEOUT must be at least 5s")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func trimmedEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := trimmedEnv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s parse error: %w", key, err)
	}
	return d, nil
}

func intFromEnv(key string, fallback int) (int, error) {
	v := trimmedEnv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s parse error: %w", key, err)
	}
	return n, nil
}

func floatFromEnv(key string, fallback float64) (float64, error) {
	v := trimmedEnv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s parse error: %w", key, err)
	}
	return f, nil
}

func boolFromEnv(key string, fallback bool) (bool, error) {
	v := strings.ToLower(trimmedEnv(key))
	if v == "" {
		return fallback, nil
	}
	switch v {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("%s parse error: expected bool", key)
	}
}
