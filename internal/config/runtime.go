// Package config provides centralized configuration for EzyTask runtime values.
package config

import (
	"os"
	"time"

	"github.com/ezytask/ezytask/internal/logging"
)

// Environment variable names.
const (
	EnvDatabase = "EZYTASK_DATABASE"
	EnvAPIKey   = "EZYTASK_API_KEY"
	// EnvAPIKeyFallback is honored so a key shared with other Gemini
	// tooling does not need to be duplicated.
	EnvAPIKeyFallback = "GEMINI_API_KEY"
	EnvAIModel        = "EZYTASK_AI_MODEL"
	EnvAIBaseURL      = "EZYTASK_AI_BASE_URL"
)

// RuntimeConfig holds runtime configuration values.
type RuntimeConfig struct {
	// Storage configuration
	Storage StorageConfig

	// AI advisory configuration
	AI AIConfig
}

// StorageConfig holds storage-related configuration.
type StorageConfig struct {
	// Path is the database directory. Empty means the XDG default;
	// ":memory:" selects in-memory mode.
	Path string
}

// AIConfig holds AI advisory service configuration.
type AIConfig struct {
	// APIKey authenticates against the generation endpoint. Empty
	// disables the advisory service; core behavior is unaffected.
	APIKey string

	// Model is the generation model identifier.
	// Default: gemini-3-flash-preview
	Model string

	// BaseURL is the generation endpoint base.
	BaseURL string

	// Timeout is the per-request timeout.
	// Default: 30s
	Timeout time.Duration
}

// Default returns the default runtime configuration.
func Default() *RuntimeConfig {
	return &RuntimeConfig{
		Storage: StorageConfig{},
		AI: AIConfig{
			Model:   "gemini-3-flash-preview",
			BaseURL: "https://generativelanguage.googleapis.com/v1beta",
			Timeout: 30 * time.Second,
		},
	}
}

// Load returns the runtime configuration with environment overrides applied.
func Load() *RuntimeConfig {
	cfg := Default()

	if path := envOverride(EnvDatabase); path != "" {
		cfg.Storage.Path = path
	}
	if key := envOverride(EnvAPIKey); key != "" {
		cfg.AI.APIKey = key
	} else if key := envOverride(EnvAPIKeyFallback); key != "" {
		cfg.AI.APIKey = key
	}
	if m := envOverride(EnvAIModel); m != "" {
		cfg.AI.Model = m
	}
	if u := envOverride(EnvAIBaseURL); u != "" {
		cfg.AI.BaseURL = u
	}

	return cfg
}

// envOverride reads one environment variable and debug-logs the
// override. Values under secret-looking names are masked so API keys
// never reach the log output.
func envOverride(name string) string {
	value := os.Getenv(name)
	if value == "" {
		return ""
	}

	logged := value
	if logging.IsSensitiveField(name) {
		logged = logging.MaskValue(value)
	}
	logging.DebugLog("env override applied", "name", name, "value", logged)
	return value
}
