// Package logging builds zap loggers from aquamib configuration.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/aquamib/internal/config"
)

// New builds a logger for CLI commands. Output goes to cfg.File when set,
// otherwise to stderr. verbose forces debug level.
func New(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	output := "stderr"
	if cfg.File != "" {
		output = cfg.File
	}
	return build(cfg, verbose, output)
}

// NewForTUI builds a logger that never writes to the terminal, since the
// full-screen UI owns it. Without a configured file it returns a no-op logger.
func NewForTUI(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}
	return build(cfg, verbose, cfg.File)
}

func build(cfg config.LoggingConfig, verbose bool, output string) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	var zc zap.Config
	if cfg.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.DisableStacktrace = true
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{output}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named("aquamib"), nil
}
