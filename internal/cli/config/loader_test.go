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

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, "auto", cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, DefaultPort, cfg.GetServe().Port)
}

func TestLoadConfig_File(t *testing.T) {
	ResetConfig()

	path := filepath.Join(t.TempDir(), "fleetdash.yaml")
	content := `base_url: http://fleet-api:8080
timeout: 30
serve:
  port: 9000
  host: 0.0.0.0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "http://fleet-api:8080", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, 9000, cfg.GetServe().Port)
	assert.Equal(t, "0.0.0.0", cfg.GetServe().Host)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	ResetConfig()

	path := filepath.Join(t.TempDir(), "fleetdash.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: http://from-file:5000\n"), 0644))

	t.Setenv("FLEETDASH_BASE_URL", "http://from-env:5000")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:5000", cfg.BaseURL)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	ResetConfig()

	t.Setenv("FLEETDASH_BASE_URL", "http://from-env:5000")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("base-url", "", "")
	flags.Bool("verbose", false, "")
	require.NoError(t, flags.Parse([]string{"--base-url", "http://from-flag:5000", "--verbose"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, "http://from-flag:5000", cfg.BaseURL)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_UnchangedFlagsIgnored(t *testing.T) {
	ResetConfig()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("base-url", "http://flag-default:1234", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	// Flag defaults must not override config defaults.
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
}

func TestTimeout_Invalid(t *testing.T) {
	cfg := &Config{TimeoutSeconds: -5}
	assert.Equal(t, 10*time.Second, cfg.Timeout())
}

func TestGetServe_DoesNotMutateConfig(t *testing.T) {
	cfg := &Config{Serve: &ServeConfig{Host: "0.0.0.0"}}

	got := cfg.GetServe()
	assert.Equal(t, DefaultPort, got.Port)
	assert.Equal(t, "0.0.0.0", got.Host)

	// Defaulting must not leak back into the stored config.
	assert.Equal(t, 0, cfg.Serve.Port)

	got.Port = 9999
	assert.Equal(t, 0, cfg.Serve.Port)
}

func TestGetServe_NilServe(t *testing.T) {
	cfg := &Config{}

	got := cfg.GetServe()
	assert.Equal(t, DefaultPort, got.Port)
	assert.Nil(t, cfg.Serve)
}
