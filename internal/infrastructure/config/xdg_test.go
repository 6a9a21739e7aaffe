package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fastbrowser/internal/infrastructure/config"
)

func TestGetConfigDir_EnvOverride(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "custom")
	t.Setenv(config.EnvConfigDir, dir)

	got, err := config.GetConfigDir()

	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestGetConfigDir_XDGConfigHome(t *testing.T) {
	base := t.TempDir()
	t.Setenv(config.EnvConfigDir, "")
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", base)

	got, err := config.GetConfigDir()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "fastbrowser"), got)
}

func TestEnsureConfigDir_Creates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	t.Setenv(config.EnvConfigDir, dir)

	got, err := config.EnsureConfigDir()

	require.NoError(t, err)
	assert.Equal(t, dir, got)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGetXDGDirs_ManDir(t *testing.T) {
	base := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_DATA_HOME", base)

	dirs, err := config.GetXDGDirs()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "man", "man1"), dirs.ManDir)
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")
	cwd, err := os.Getwd()
	require.NoError(t, err)

	dirs, err := config.GetXDGDirs()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, ".dev", "fastbrowser"), dirs.ConfigHome)
}
