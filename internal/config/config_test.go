package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("reversi", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reversi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "")
	cfg, err := Load(flagSet(t, "--config", path))
	require.NoError(t, err)

	assert.Equal(t, "off", cfg.Theme)
	assert.Equal(t, "black", cfg.Turn)
	assert.False(t, cfg.Hints)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.Position)
	assert.Equal(t, DefaultHistoryFile(), cfg.HistoryFile)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, "theme: gray\nhints: true\nturn: white\n")

	cfg, err := Load(flagSet(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "gray", cfg.Theme)
	assert.True(t, cfg.Hints)
	assert.Equal(t, "white", cfg.Turn)

	t.Setenv("REVERSI_THEME", "brown")
	t.Setenv("REVERSI_HISTORY_FILE", "/tmp/reversi-history")
	cfg, err = Load(flagSet(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "brown", cfg.Theme)
	assert.Equal(t, "/tmp/reversi-history", cfg.HistoryFile)

	cfg, err = Load(flagSet(t, "--config", path, "--theme", "GREEN"))
	require.NoError(t, err)
	assert.Equal(t, "green", cfg.Theme)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "")

	_, err := Load(flagSet(t, "--config", path, "--theme", "purple"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Theme must be one of [off green gray brown]")

	_, err = Load(flagSet(t, "--config", path, "--turn", "red"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Turn must be one of [black white]")

	_, err = Load(flagSet(t, "--config", path, "--position", "BW/.."))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Position must be exactly 71 characters")
}

func TestLoadMissingExplicitConfig(t *testing.T) {
	_, err := Load(flagSet(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}
