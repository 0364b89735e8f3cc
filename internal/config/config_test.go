package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves the test into an empty directory so no stray config.yaml or
// .env is picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdir(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://pinestore.cc", cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, OutputText, cfg.Output)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t)
	t.Setenv("PINESTORE_API_URL", "http://localhost:8080")
	t.Setenv("PINESTORE_TIMEOUT", "5s")
	t.Setenv("PINESTORE_OUTPUT", "json")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, OutputJSON, cfg.Output)
}

func TestLoadConfigFile(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "pinestore.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: https://staging.pinestore.cc\nlog_level: debug\noutput: yaml\n"), 0o600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://staging.pinestore.cc", cfg.APIURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, OutputYAML, cfg.Output)
}

func TestLoadDiscoversConfigYAML(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("timeout: 2s\n"), 0o600))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PINESTORE_LOG_FORMAT=json\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("PINESTORE_LOG_FORMAT") })

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadFlagsWin(t *testing.T) {
	chdir(t)
	t.Setenv("PINESTORE_OUTPUT", "json")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("output", "", "")
	fs.String("api-url", "", "")
	require.NoError(t, fs.Parse([]string{"--output", "yaml"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, OutputYAML, cfg.Output)
	// Unchanged flags fall through to defaults.
	assert.Equal(t, "https://pinestore.cc", cfg.APIURL)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := chdir(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	good := Config{APIURL: "https://pinestore.cc", Output: OutputText}
	require.NoError(t, good.Validate())

	tests := []struct {
		name string
		mut  func(*Config)
	}{
		{"relative url", func(c *Config) { c.APIURL = "/api" }},
		{"ftp url", func(c *Config) { c.APIURL = "ftp://pinestore.cc" }},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }},
		{"bad output", func(c *Config) { c.Output = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := good
			tt.mut(&c)
			assert.Error(t, c.Validate())
		})
	}
}
