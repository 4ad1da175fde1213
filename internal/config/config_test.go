package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Missing file uses defaults", func(t *testing.T) {
		// When: loading a config file that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "config.yml"))

		// Then: defaults are used
		require.NoError(t, err)
		assert.Equal(t, &Config{LogLevel: "warn", AIName: "AI"}, conf)
	})

	t.Run("File values", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nai-name: Robot\nno-color: true\nseed: 42\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: every field comes from the file
		require.NoError(t, err)
		assert.Equal(t, &Config{LogLevel: "debug", AIName: "Robot", NoColor: true, Seed: 42}, conf)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		// Given: env vars without a config file
		t.Setenv("TTT_AI_NAME", "HAL")
		t.Setenv("TTT_SEED", "7")

		// When: loading
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: env values win over defaults
		require.NoError(t, err)
		assert.Equal(t, "HAL", conf.AIName)
		assert.Equal(t, int64(7), conf.Seed)
		assert.Equal(t, "warn", conf.LogLevel)
	})

	t.Run("Broken file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("seed: [not a number\n"), 0o600))

		_, err := Load(path)
		require.Error(t, err)

		assert.Panics(t, func() { MustLoad(path) })
	})
}
