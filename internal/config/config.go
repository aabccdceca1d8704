package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sabhahq/sabha/internal/errors"
)

// Default values used when neither the config file nor the environment
// provides an override.
const (
	DefaultAPIURL       = "http://localhost:8000"
	DefaultPollInterval = 30 * time.Second
)

// Environment variables recognized by the CLI. They take precedence over
// the config file.
const (
	EnvAPIURL       = "SABHA_API_URL"
	EnvPollInterval = "SABHA_POLL_INTERVAL"
	EnvLogLevel     = "SABHA_LOG_LEVEL"
	EnvLogFormat    = "SABHA_LOG_FORMAT"
)

// Config holds the CLI configuration
type Config struct {
	// APIURL is the base URL of the association backend
	APIURL string `yaml:"api_url"`

	// PollInterval is how often the notification feed is refreshed
	PollInterval time.Duration `yaml:"poll_interval"`

	// LogLevel is the minimum log level (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogFormat is the log output format (text, json)
	LogFormat string `yaml:"log_format"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		APIURL:       DefaultAPIURL,
		PollInterval: DefaultPollInterval,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Load reads configuration from the given file path, falling back to
// defaults when the file is absent, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.NewFileUnmarshalError(path, "YAML", err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, errors.Wrap(errors.ErrCodeConfigRead, "failed to read config file", err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadDefault loads configuration from the default path
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		// No resolvable home directory; run on defaults and env alone.
		cfg := Default()
		applyEnv(&cfg)
		return cfg, cfg.Validate()
	}
	return Load(path)
}

// Validate checks the configuration for obvious mistakes
func (c Config) Validate() error {
	if c.APIURL == "" {
		return errors.NewConfigInvalidError("api_url must not be empty")
	}
	if c.PollInterval < time.Second {
		return errors.NewConfigInvalidError("poll_interval must be at least 1s")
	}
	return nil
}

// DefaultPath returns the default config file location (~/.sabha/config.yaml)
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".sabha", "config.yaml"), nil
}

// SessionPath returns the default session file location (~/.sabha/session.json)
func SessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".sabha", "session.json"), nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv(EnvPollInterval); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.PollInterval = d
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}
}
