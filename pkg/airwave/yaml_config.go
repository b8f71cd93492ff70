package airwave

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// YamlConfig is the structure that mirrors the raw config.yaml file.
type YamlConfig struct {
	Key     string `yaml:"key"`
	Secret  string `yaml:"secret"`
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

// LoadYamlConfig reads and parses a YAML config file.
func LoadYamlConfig(path string) (*YamlConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	var cfg YamlConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return &cfg, nil
}

// NewConfigFromYaml converts the YamlConfig into a clean, base Config struct.
func NewConfigFromYaml(baseCfg *YamlConfig, logger *slog.Logger) (*Config, error) {
	logger.Debug("Mapping YAML config to base config struct")

	cfg := &Config{
		Key:     baseCfg.Key,
		Secret:  baseCfg.Secret,
		BaseURL: baseCfg.BaseURL,
	}

	if baseCfg.Timeout != "" {
		timeout, err := time.ParseDuration(baseCfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", baseCfg.Timeout, err)
		}
		cfg.Timeout = timeout
	}

	logger.Debug("YAML config mapping complete",
		"base_url", cfg.BaseURL,
		"timeout", cfg.Timeout,
	)

	return cfg, nil
}
