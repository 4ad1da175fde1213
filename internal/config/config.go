package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"warn"`
	AIName   string `yaml:"ai-name" env:"TTT_AI_NAME" env-default:"AI"`
	NoColor  bool   `yaml:"no-color" env:"TTT_NO_COLOR" env-default:"false"`
	// Seed for the bot's random source, 0 picks one from the clock.
	Seed int64 `yaml:"seed" env:"TTT_SEED" env-default:"0"`
}

// Load reads the YAML file at path when it exists, then the environment.
// A missing file is not an error, defaults and env vars are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}

// MustLoad - load configuration or panic.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
