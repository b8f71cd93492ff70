package airwave_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airwave-io/go-airwave/pkg/airwave"
)

func TestConfigValidate(t *testing.T) {
	t.Run("Key and secret required", func(t *testing.T) {
		assert.Error(t, airwave.Config{}.Validate())
		assert.Error(t, airwave.Config{Key: "k"}.Validate())
		assert.Error(t, airwave.Config{Secret: "s"}.Validate())
		assert.NoError(t, airwave.Config{Key: "k", Secret: "s"}.Validate())
	})
}

func TestNewConfigFromYaml(t *testing.T) {
	logger := newTestLogger()

	t.Run("Success - maps all fields correctly", func(t *testing.T) {
		yamlCfg := &airwave.YamlConfig{
			Key:     "yaml-key",
			Secret:  "yaml-secret",
			BaseURL: "https://staging.airwave.io/",
			Timeout: "30s",
		}

		cfg, err := airwave.NewConfigFromYaml(yamlCfg, logger)

		require.NoError(t, err)
		assert.Equal(t, "yaml-key", cfg.Key)
		assert.Equal(t, "yaml-secret", cfg.Secret)
		assert.Equal(t, "https://staging.airwave.io/", cfg.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
	})

	t.Run("Success - handles missing optional fields gracefully", func(t *testing.T) {
		cfg, err := airwave.NewConfigFromYaml(&airwave.YamlConfig{Key: "k", Secret: "s"}, logger)

		require.NoError(t, err)
		assert.Empty(t, cfg.BaseURL)
		assert.Zero(t, cfg.Timeout)
	})

	t.Run("Failure - malformed timeout", func(t *testing.T) {
		_, err := airwave.NewConfigFromYaml(&airwave.YamlConfig{Key: "k", Secret: "s", Timeout: "soon"}, logger)
		require.Error(t, err)
	})
}

func TestLoadYamlConfig(t *testing.T) {
	t.Run("Reads a config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "key: file-key\nsecret: file-secret\nbase_url: https://eu.airwave.io/\ntimeout: 45s\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := airwave.LoadYamlConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "file-key", cfg.Key)
		assert.Equal(t, "file-secret", cfg.Secret)
		assert.Equal(t, "https://eu.airwave.io/", cfg.BaseURL)
		assert.Equal(t, "45s", cfg.Timeout)
	})

	t.Run("Missing file fails", func(t *testing.T) {
		_, err := airwave.LoadYamlConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}

func TestUpdateConfigWithEnvOverrides(t *testing.T) {
	logger := newTestLogger()

	t.Run("Env values override file values", func(t *testing.T) {
		t.Setenv("AIRWAVE_KEY", "env-key")
		t.Setenv("AIRWAVE_SECRET", "env-secret")
		t.Setenv("AIRWAVE_BASE_URL", "https://env.airwave.io/")
		t.Setenv("AIRWAVE_TIMEOUT", "90s")

		cfg, err := airwave.UpdateConfigWithEnvOverrides(&airwave.Config{Key: "file-key", Secret: "file-secret"}, logger)

		require.NoError(t, err)
		assert.Equal(t, "env-key", cfg.Key)
		assert.Equal(t, "env-secret", cfg.Secret)
		assert.Equal(t, "https://env.airwave.io/", cfg.BaseURL)
		assert.Equal(t, 90*time.Second, cfg.Timeout)
	})

	t.Run("Invalid timeout is ignored", func(t *testing.T) {
		t.Setenv("AIRWAVE_TIMEOUT", "whenever")

		cfg, err := airwave.UpdateConfigWithEnvOverrides(&airwave.Config{Key: "k", Secret: "s"}, logger)

		require.NoError(t, err)
		assert.Zero(t, cfg.Timeout)
	})

	t.Run("Final validation catches missing credentials", func(t *testing.T) {
		_, err := airwave.UpdateConfigWithEnvOverrides(&airwave.Config{}, logger)
		require.Error(t, err)
	})
}
