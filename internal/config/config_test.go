package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, DefaultPollInterval, cfg.PollInterval)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "api_url: https://api.example.org\npoll_interval: 10s\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.org", cfg.APIURL)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat, "unset keys keep their defaults")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: [unclosed"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: https://file.example.org\n"), 0600))

	t.Setenv(EnvAPIURL, "https://env.example.org")
	t.Setenv(EnvPollInterval, "5s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.org", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
}

func TestEnvBadDurationIgnored(t *testing.T) {
	t.Setenv(EnvPollInterval, "soon")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPollInterval, cfg.PollInterval)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.APIURL = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.PollInterval = 200 * time.Millisecond
	assert.Error(t, cfg.Validate(), "sub-second polling hammers the backend")
}
