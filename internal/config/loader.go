package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// PathEnv names the variable that points at the YAML file.
	PathEnv = "CONFIG_PATH"
	// DefaultPath is tried when PathEnv is unset.
	DefaultPath = "./config.yaml"
)

// Load reads configuration with priority ENV > YAML > env-default tags, then
// validates it. A missing default file is not an error; a missing file named
// by CONFIG_PATH is.
func Load() (*Config, error) {
	path, explicit := os.Getenv(PathEnv), true
	if path == "" {
		path, explicit = DefaultPath, false
	}
	return load(path, explicit)
}

func load(path string, explicit bool) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// WriteUsage lists every environment variable the configuration reads,
// with its default.
func WriteUsage(w io.Writer) {
	var cfg Config
	header := "Environment variables (override " + PathEnv + " YAML):"
	cleanenv.FUsage(w, &cfg, &header)()
}
