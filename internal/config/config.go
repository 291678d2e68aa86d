// Package config loads lauvinko.yaml. Every field is optional; missing ones
// keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/lauvinko/lauvinko/internal/logging"
)

// DefaultPath is the file the commands read when --config is not given.
const DefaultPath = "lauvinko.yaml"

// Config is the whole configuration file.
type Config struct {
	Dictionary string          `yaml:"dictionary" validate:"required"`
	Server     ServerConfig    `yaml:"server"`
	Log        logging.Config  `yaml:"log"`
	DiffCheck  DiffCheckConfig `yaml:"diffcheck"`
	Store      StoreConfig     `yaml:"store"`
}

// ServerConfig configures cmd/server.
type ServerConfig struct {
	Addr           string   `yaml:"addr" validate:"required,hostname_port"`
	AllowedOrigins []string `yaml:"allowed_origins" validate:"dive,required"`
}

// DiffCheckConfig configures the differential harness.
type DiffCheckConfig struct {
	Samples         int     `yaml:"samples" validate:"gte=1"`
	Seed            uint64  `yaml:"seed"`
	Workers         int     `yaml:"workers" validate:"gte=1,lte=256"`
	MaxMismatchRate float64 `yaml:"max_mismatch_rate" validate:"gte=0,lte=1"`
}

// StoreConfig configures the SQLite paradigm export.
type StoreConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Dictionary: "data/dictionary.json",
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
		Log: logging.Config{Level: "info"},
		DiffCheck: DiffCheckConfig{
			Samples:         3000,
			Seed:            1,
			Workers:         4,
			MaxMismatchRate: 0.5,
		},
		Store: StoreConfig{Path: "paradigms.db"},
	}
}

var validate = validator.New()

// Load reads path over the defaults and validates the result. A missing
// file at DefaultPath is not an error; a missing file anywhere else is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist) && path == DefaultPath:
	case err != nil:
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
