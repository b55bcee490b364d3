package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8090", cfg.Server.ListenAddr)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Empty(t, cfg.Twitter.BearerToken)
}

func TestLoadHCLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pulse.hcl")
	content := `
server {
  listen_addr = ":9000"
  log_level   = "debug"
}

twitter {
  bearer_token = "file-token"
  rate_limit   = 0.5
}

sentiment {
  lexicon_path = "/etc/pulse/lexicon.txt"
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.ListenAddr)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "file-token", cfg.Twitter.BearerToken)
	assert.Equal(t, 0.5, cfg.Twitter.RateLimit)
	assert.Equal(t, "/etc/pulse/lexicon.txt", cfg.Sentiment.LexiconPath)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pulse.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
twitter {
  bearer_token = "file-token"
}
`), 0o600))

	t.Setenv("BEARER_TOKEN", "env-token")
	t.Setenv("LISTEN_ADDR", ":7777")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Twitter.BearerToken)
	assert.Equal(t, ":7777", cfg.Server.ListenAddr)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	assert.Error(t, err)
}
