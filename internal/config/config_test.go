package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	cfg, err := LoadConfig("", "")
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, "test-key", cfg.Anthropic.APIKey)
	assert.Equal(t, "claude-sonnet-4-20250514", cfg.Anthropic.Model)
	assert.Equal(t, 2048, cfg.Anthropic.MaxTokens)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig("", "")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: "4000"
anthropic:
  model: claude-3-5-haiku-20241022
  max_tokens: 1024
cors:
  allow_origins:
    - https://querydoc.example.com
`
	require.NoError(t, os.WriteFile(configPath, []byte(yaml), 0o600))

	cfg, err := LoadConfig(configPath, "")
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, "claude-3-5-haiku-20241022", cfg.Anthropic.Model)
	assert.Equal(t, 1024, cfg.Anthropic.MaxTokens)
	assert.Equal(t, []string{"https://querydoc.example.com"}, cfg.CORS.AllowOrigins)
}

func TestLoadConfigEnvFile(t *testing.T) {
	// godotenv does not override variables already present, so make sure
	// the key is absent (t.Setenv registers the restore).
	t.Setenv("ANTHROPIC_API_KEY", "")
	os.Unsetenv("ANTHROPIC_API_KEY")

	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("ANTHROPIC_API_KEY=from-env-file\n"), 0o600))

	cfg, err := LoadConfig("", envPath)
	require.NoError(t, err)

	assert.Equal(t, "from-env-file", cfg.Anthropic.APIKey)
}

func TestValidateRequiresAPIKey(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
}

func TestLoadConfigMissingFilesTolerated(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	cfg, err := LoadConfig("does/not/exist.yaml", "does/not/exist.env")
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.Anthropic.APIKey)
}
