package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulstox/ecopack/internal/carbon"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		EnvRemoteEndpoint, EnvRemoteAPIKey, EnvRemoteTimeout,
		EnvRegion, EnvLogLevel, EnvFactorsFile, EnvDataFile,
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	assert.Empty(t, cfg.Remote.Endpoint)
	assert.Empty(t, cfg.Remote.APIKey)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.DataFile)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvRemoteEndpoint, "https://factors.example.com/v1/calculate")
	t.Setenv(EnvRemoteAPIKey, "secret")
	t.Setenv(EnvRemoteTimeout, "3s")
	t.Setenv(EnvRegion, "eu-west")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvDataFile, "/tmp/actions.jsonl")

	cfg := Load()

	assert.Equal(t, "https://factors.example.com/v1/calculate", cfg.Remote.Endpoint)
	assert.Equal(t, "secret", cfg.Remote.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, "eu-west", cfg.Region)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/actions.jsonl", cfg.DataFile)
}

func TestLoadIgnoresBadTimeout(t *testing.T) {
	t.Setenv(EnvRemoteTimeout, "not a duration")
	cfg := Load()
	assert.Zero(t, cfg.Remote.Timeout)
}

func TestLoadFactorOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "factors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
categories:
  transport:
    default: 0.18
    factors:
      - match: petrol car
        kg_per_unit: 0.165
      - match: tram
        kg_per_unit: 0.029
  food:
    factors:
      - match: tofu
        kg_per_unit: 2.0
`), 0o600))

	ov, err := LoadFactorOverrides(path)
	require.NoError(t, err)
	require.NotNil(t, ov)

	transport := ov.Categories["transport"]
	require.NotNil(t, transport.Default)
	assert.InDelta(t, 0.18, *transport.Default, 1e-9)
	require.Len(t, transport.Factors, 2)
	assert.Equal(t, "petrol car", transport.Factors[0].Match)
	assert.InDelta(t, 0.165, transport.Factors[0].KgPer, 1e-9)

	// The overrides apply on top of the built-in tables.
	fs := carbon.NewFactorSet(ov)
	factor, _ := fs.Resolve(carbon.CategoryTransport, "petrol car")
	assert.InDelta(t, 0.165, factor, 1e-9)
	factor, _ = fs.Resolve(carbon.CategoryFood, "tofu stir fry")
	assert.InDelta(t, 2.0, factor, 1e-9)
}

func TestLoadFactorOverridesEmptyPath(t *testing.T) {
	ov, err := LoadFactorOverrides("")
	require.NoError(t, err)
	assert.Nil(t, ov)
}

func TestLoadFactorOverridesBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "factors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: ["), 0o600))

	_, err := LoadFactorOverrides(path)
	assert.Error(t, err)
}

func TestLoadFactorOverridesMissingFile(t *testing.T) {
	_, err := LoadFactorOverrides(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
