// Package config loads EcoPack settings from the environment, an optional
// .env file, and an optional YAML factor override file. The remote factor
// service is toggled purely by the presence of its endpoint and API key;
// their absence is the documented local-only mode, not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rahulstox/ecopack/internal/carbon"
)

// Environment variable names.
const (
	EnvRemoteEndpoint = "ECOPACK_REMOTE_ENDPOINT"
	EnvRemoteAPIKey   = "ECOPACK_REMOTE_API_KEY"
	EnvRemoteTimeout  = "ECOPACK_REMOTE_TIMEOUT"
	EnvRegion         = "ECOPACK_REGION"
	EnvLogLevel       = "ECOPACK_LOG_LEVEL"
	EnvFactorsFile    = "ECOPACK_FACTORS_FILE"
	EnvDataFile       = "ECOPACK_DATA_FILE"
)

// Config is the resolved process configuration.
type Config struct {
	Remote      carbon.RemoteConfig
	Region      string
	LogLevel    string
	FactorsFile string
	DataFile    string
}

// Load resolves configuration from a .env file (if present in the working
// directory) and the process environment. Environment variables win over
// .env entries, which is godotenv's default behavior.
func Load() Config {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	cfg := Config{
		Remote: carbon.RemoteConfig{
			Endpoint: os.Getenv(EnvRemoteEndpoint),
			APIKey:   os.Getenv(EnvRemoteAPIKey),
		},
		Region:      os.Getenv(EnvRegion),
		LogLevel:    os.Getenv(EnvLogLevel),
		FactorsFile: os.Getenv(EnvFactorsFile),
		DataFile:    os.Getenv(EnvDataFile),
	}

	if raw := os.Getenv(EnvRemoteTimeout); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.Remote.Timeout = d
		}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.DataFile == "" {
		cfg.DataFile = defaultDataFile()
	}
	return cfg
}

// LoadFactorOverrides parses the optional YAML factor override file. An
// empty path yields nil overrides, meaning built-in tables only.
func LoadFactorOverrides(path string) (*carbon.Overrides, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read factor overrides: %w", err)
	}

	var ov carbon.Overrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("parse factor overrides: %w", err)
	}
	return &ov, nil
}

// defaultDataFile places the action log under the user config directory,
// falling back to the working directory when none is available.
func defaultDataFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".ecopack/actions.jsonl"
	}
	return filepath.Join(dir, "ecopack", "actions.jsonl")
}
