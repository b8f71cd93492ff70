package airwave

import (
	"errors"
	"log/slog"
	"os"
	"time"
)

const defaultTimeout = 60 * time.Second

// Config defines the *single*, authoritative client configuration.
type Config struct {
	// Key and Secret are the app credentials used for Basic auth.
	Key    string
	Secret string

	// BaseURL overrides the production API endpoint, mainly for tests and
	// on-premise deployments. Empty means the default.
	BaseURL string

	// Timeout bounds each request end to end. Zero means the default.
	Timeout time.Duration
}

// Validate checks the fields every client needs.
func (c Config) Validate() error {
	if c.Key == "" {
		return errors.New("config: app key is required")
	}
	if c.Secret == "" {
		return errors.New("config: app secret is required")
	}
	return nil
}

func (c Config) timeoutOrDefault() time.Duration {
	if c.Timeout <= 0 {
		return defaultTimeout
	}
	return c.Timeout
}

// UpdateConfigWithEnvOverrides applies environment variables and final validation.
func UpdateConfigWithEnvOverrides(cfg *Config, logger *slog.Logger) (*Config, error) {
	logger.Debug("Applying environment variable overrides...")

	if val := os.Getenv("AIRWAVE_KEY"); val != "" {
		logger.Debug("Overriding config value", "key", "AIRWAVE_KEY", "source", "env")
		cfg.Key = val
	}
	if val := os.Getenv("AIRWAVE_SECRET"); val != "" {
		logger.Debug("Overriding config value", "key", "AIRWAVE_SECRET", "source", "env")
		cfg.Secret = val
	}
	if val := os.Getenv("AIRWAVE_BASE_URL"); val != "" {
		logger.Debug("Overriding config value", "key", "AIRWAVE_BASE_URL", "source", "env")
		cfg.BaseURL = val
	}
	if val := os.Getenv("AIRWAVE_TIMEOUT"); val != "" {
		if timeout, err := time.ParseDuration(val); err == nil && timeout > 0 {
			logger.Debug("Overriding config value", "key", "AIRWAVE_TIMEOUT", "source", "env")
			cfg.Timeout = timeout
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
