package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/aquamib/internal/quality"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, quality.LangES, cfg.Lang())
}

func TestLoad_ParsesFile(t *testing.T) {
	path := writeConfig(t, `
display:
  language: en
logging:
  level: debug
  format: json
  file: /tmp/aquamib.log
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, quality.LangEN, cfg.Lang())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/tmp/aquamib.log", cfg.Logging.File)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "display:\n  language: en\n"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvLanguage, "en")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFile, "/var/log/aquamib.log")

	cfg, err := Load(writeConfig(t, "display:\n  language: es\n"))
	require.NoError(t, err)
	assert.Equal(t, quality.LangEN, cfg.Lang())
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/var/log/aquamib.log", cfg.Logging.File)

	// Overrides apply without a file too.
	cfg, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "display: [unclosed"},
		{"bad language", "display:\n  language: fr\n"},
		{"bad level", "logging:\n  level: loud\n"},
		{"bad format", "logging:\n  format: xml\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/aquamib.yaml")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/aquamib.yaml", p)

	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	p, err = DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "aquamib", "config.yaml"), p)
}
