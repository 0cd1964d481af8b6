package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load("")

	assert.Equal(t, defaultEndpoint, cfg.Gateway.Endpoint)
	assert.Equal(t, 10*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, "", cfg.Gateway.AccessToken)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "railquery.yaml")

	require.NoError(t, os.WriteFile(path, []byte(`
gateway:
  endpoint: https://example.com/ldbsv
  access_token: file-token
  timeout: 30s
`), 0o644))

	cfg := Load(path)

	assert.Equal(t, "https://example.com/ldbsv", cfg.Gateway.Endpoint)
	assert.Equal(t, "file-token", cfg.Gateway.AccessToken)
	assert.Equal(t, 30*time.Second, cfg.Gateway.Timeout)
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Equal(t, defaultEndpoint, cfg.Gateway.Endpoint)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "railquery.yaml")

	require.NoError(t, os.WriteFile(path, []byte(`
gateway:
  access_token: file-token
`), 0o644))

	t.Setenv("RAILQUERY_ACCESS_TOKEN", "env-token")
	t.Setenv("RAILQUERY_GATEWAY_TIMEOUT", "2s")

	cfg := Load(path)

	assert.Equal(t, "env-token", cfg.Gateway.AccessToken)
	assert.Equal(t, 2*time.Second, cfg.Gateway.Timeout)
}
