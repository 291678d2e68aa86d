// Package logging builds the zap loggers used by the commands.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lauvinko/lauvinko/lv"
)

// Config selects the level and encoder.
type Config struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	// Development switches to the console encoder with stack traces on
	// warnings.
	Development bool `yaml:"development"`
}

// New builds a logger for cfg.
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Tracer logs every stage of an evolution at debug level.
func Tracer(logger *zap.Logger, input string) lv.Tracer {
	return func(stage, form string) {
		logger.Debug("evolution stage",
			zap.String("input", input),
			zap.String("stage", stage),
			zap.String("form", form))
	}
}
