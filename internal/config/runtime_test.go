package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/ezytask/ezytask/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "gemini-3-flash-preview", cfg.AI.Model)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.Empty(t, cfg.AI.APIKey)
	assert.Empty(t, cfg.Storage.Path)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvDatabase, "/tmp/ezytask-test")
	t.Setenv(EnvAPIKey, "primary-key")
	t.Setenv(EnvAIModel, "gemini-custom")

	cfg := Load()
	assert.Equal(t, "/tmp/ezytask-test", cfg.Storage.Path)
	assert.Equal(t, "primary-key", cfg.AI.APIKey)
	assert.Equal(t, "gemini-custom", cfg.AI.Model)
}

func TestLoadAPIKeyFallback(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvAPIKeyFallback, "shared-key")

	cfg := Load()
	assert.Equal(t, "shared-key", cfg.AI.APIKey)
}

func TestLoadMasksAPIKeyInDebugLog(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(logging.Config{Level: slog.LevelDebug, Output: &buf})
	t.Cleanup(func() { logging.Init(logging.DefaultConfig()) })

	t.Setenv(EnvAPIKey, "AIzaSySecretValue")
	t.Setenv(EnvAIModel, "gemini-custom")

	cfg := Load()
	assert.Equal(t, "AIzaSySecretValue", cfg.AI.APIKey)

	out := buf.String()
	assert.NotContains(t, out, "AIzaSySecretValue")
	assert.Contains(t, out, "********")
	// Non-secret overrides stay readable.
	assert.Contains(t, out, "gemini-custom")
}
