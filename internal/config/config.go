// Package config loads aquamib settings from a YAML file with environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/aquamib/internal/quality"
)

// Environment variables consulted by Load and DefaultPath.
const (
	EnvConfigPath = "AQUAMIB_CONFIG"
	EnvLanguage   = "AQUAMIB_LANG"
	EnvLogLevel   = "AQUAMIB_LOG_LEVEL"
	EnvLogFile    = "AQUAMIB_LOG_FILE"
)

// Config holds all aquamib configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig controls user-facing wording.
type DisplayConfig struct {
	Language string `yaml:"language"` // es, en
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
	File   string `yaml:"file"`   // empty: stderr for CLI commands, disabled for the TUI
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{Language: string(quality.LangES)},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// DefaultPath returns the config path from AQUAMIB_CONFIG, falling back to
// $XDG_CONFIG_HOME/aquamib/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "aquamib", "config.yaml"), nil
}

// Load reads configuration from path. A missing file yields defaults.
// Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvLanguage); v != "" {
		c.Display.Language = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logging.File = v
	}
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := quality.ParseLang(c.Display.Language); err != nil {
		return fmt.Errorf("display.language: %w", err)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format: unsupported format %q (want json or console)", c.Logging.Format)
	}
	return nil
}

// Lang returns the parsed display language, defaulting to Spanish.
func (c *Config) Lang() quality.Lang {
	lang, err := quality.ParseLang(c.Display.Language)
	if err != nil {
		return quality.LangES
	}
	return lang
}
