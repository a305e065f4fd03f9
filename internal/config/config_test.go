package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("API_KEY", "")
	t.Setenv("GENAI_API_KEY", "")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "gemini-2.5-flash", cfg.GenAI.Model)
	assert.Empty(t, cfg.GenAI.APIKey)
	assert.Equal(t, 2*time.Minute, cfg.Client.Timeout)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.False(t, cfg.Export.Upload)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("server:\n  address: \":9090\"\nstore:\n  driver: mongo\n  scope: kiosk-1\nclient:\n  timeout: 30s\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	t.Setenv("GENAI_API_KEY", "")
	t.Setenv("API_KEY", "secret-key")
	t.Setenv("EXPORT_DIR", "/tmp/exports")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "mongo", cfg.Store.Driver)
	assert.Equal(t, "kiosk-1", cfg.Store.Scope)
	assert.Equal(t, 30*time.Second, cfg.Client.Timeout)
	assert.Equal(t, "secret-key", cfg.GenAI.APIKey)
	assert.Equal(t, "/tmp/exports", cfg.Export.Dir)
}
