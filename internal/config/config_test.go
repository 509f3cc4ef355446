package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	t.Setenv(EnvAPIURL, "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	t.Setenv(EnvAPIURL, "")

	content := "api_url: https://api.binharry.fr\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.binharry.fr", cfg.APIURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Unset fields keep their defaults
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)

	content := "api_url: https://api.binharry.fr\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(content), 0o644))

	t.Setenv(EnvAPIURL, "http://127.0.0.1:9999")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.APIURL)
}

func TestLoadInvalidYAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	t.Setenv(EnvAPIURL, "")

	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("api_url: [unclosed"), 0o644))

	cfg, err := Load()
	assert.Error(t, err)
	// Falls back to a usable default rather than a half-parsed config
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
}

func TestSaveRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	t.Setenv(EnvAPIURL, "")

	cfg := Config{APIURL: "https://staging.binharry.fr", LogLevel: "info", LogFormat: "json"}
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
