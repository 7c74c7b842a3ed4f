package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/aquamib/internal/catalog"
	"github.com/abhisek/aquamib/internal/quality"
)

// execute runs the root command with args against an isolated config.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeLang(t, "", args...)
}

func executeLang(t *testing.T, lang string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("AQUAMIB_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("AQUAMIB_LANG", lang)
	t.Setenv("AQUAMIB_LOG_LEVEL", "error")
	t.Setenv("AQUAMIB_LOG_FILE", "")

	// Flag values persist on the package-level commands between runs.
	require.NoError(t, classifyCmd.Flags().Set("json", "false"))
	require.NoError(t, taxaListCmd.Flags().Set("query", ""))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "aquamib (devel)\n", out)
}

func TestTaxaList(t *testing.T) {
	out, err := execute(t, "taxa", "list")
	require.NoError(t, err)
	for _, id := range []string{"hyalellidae", "baetidae", "physidae", "tipulidae", "planariidae", "oligochaeta", "elmidae"} {
		assert.Contains(t, out, id)
	}
	assert.Contains(t, out, "7 taxa")
}

func TestTaxaListQuery(t *testing.T) {
	out, err := execute(t, "taxa", "list", "--query", "EPHEMER")
	require.NoError(t, err)
	assert.Contains(t, out, "baetidae")
	assert.NotContains(t, out, "elmidae")
	assert.Contains(t, out, "1 taxa")
}

func TestTaxaShow(t *testing.T) {
	out, err := execute(t, "taxa", "show", "oligochaeta")
	require.NoError(t, err)
	assert.Contains(t, out, "Oligochaeta (Annelida)")
	assert.Contains(t, out, "#FCBAD3")
}

func TestTaxaShowUnknown(t *testing.T) {
	_, err := execute(t, "taxa", "show", "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrNotFound))
}

func TestClassifyText(t *testing.T) {
	out, err := execute(t, "classify", "hyalellidae", "baetidae", "physidae")
	require.NoError(t, err)
	assert.Contains(t, out, "Moderada")
	assert.Contains(t, out, "4.3")
	assert.Contains(t, out, "Indicador Positivo")
}

func TestClassifyJSON(t *testing.T) {
	out, err := execute(t, "classify", "--json", "oligochaeta", "oligochaeta")
	require.NoError(t, err)

	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, quality.QualityExcellent, r.Quality)
	assert.Equal(t, "Excelente", r.Label)
	assert.Equal(t, 1.0, r.AvgTolerance)
	assert.Equal(t, 1, r.BMWPScore)
	assert.Equal(t, 1, r.FamilyCount, "repeated IDs count once")
	assert.False(t, r.HasEPT)
	assert.Equal(t, []string{"oligochaeta"}, r.Taxa)
}

func TestClassifyEnglish(t *testing.T) {
	out, err := executeLang(t, "en", "classify", "oligochaeta")
	require.NoError(t, err)
	assert.Contains(t, out, "Excellent")
	assert.Contains(t, out, "Biodiversity:")
}

func TestClassifyErrors(t *testing.T) {
	_, err := execute(t, "classify")
	assert.True(t, errors.Is(err, quality.ErrEmptySelection))

	_, err = execute(t, "classify", "baetidae", "nope")
	assert.True(t, errors.Is(err, catalog.ErrNotFound))
}
