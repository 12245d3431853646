package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legcowatch/agenda-mcp/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	want := config.Default()
	assert.Equal(t, &want, cfg)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout())
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, `
[log]
level = " DEBUG "

[server]
endpoint_path = "agenda"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "/agenda", cfg.Server.EndpointPath)
	assert.True(t, cfg.Server.Stdio)
	assert.Equal(t, "agenda-mcp/dev", cfg.Fetch.UserAgent)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"level", "[log]\nlevel = \"loud\"\n"},
		{"format", "[log]\nformat = \"xml\"\n"},
		{"endpoint", "[server]\nendpoint_path = \"\"\n"},
		{"timeout", "[fetch]\ntimeout_seconds = -1\n"},
		{"unknown key", "[fetch]\nretries = 3\n"},
		{"syntax", "[log\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSampleMatchesDefaults(t *testing.T) {
	var cfg config.Config
	require.NoError(t, toml.Unmarshal([]byte(config.Sample()), &cfg))
	assert.Equal(t, config.Default(), cfg)
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, config.CreateSample(path))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/mcp", cfg.Server.EndpointPath)
}
