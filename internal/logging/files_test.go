package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var linePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} - [A-Z]+ - .+$`)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestNewWithFiles_SplitsInfoAndErrorLogs(t *testing.T) {
	dir := t.TempDir()

	logger, cleanup, err := NewWithFiles(
		Config{Level: zerolog.InfoLevel, Format: "console"},
		FileConfig{Enabled: true, LogDir: dir},
	)
	require.NoError(t, err)

	logger.Debug().Msg("not written")
	logger.Info().Msg("Settings loaded")
	logger.Warn().Msg("slow disk")
	logger.Error().Str("url", "https://a.example").Msg("Error adding to history")
	cleanup()

	info := readLines(t, filepath.Join(dir, InfoLogName))
	require.Len(t, info, 3)
	for _, line := range info {
		assert.Regexp(t, linePattern, line)
	}
	assert.Contains(t, info[0], " - INFO - Settings loaded")
	assert.Contains(t, info[1], " - WARNING - slow disk")
	assert.Contains(t, info[2], " - ERROR - Error adding to history")

	errs := readLines(t, filepath.Join(dir, ErrorLogName))
	require.Len(t, errs, 1)
	assert.Regexp(t, linePattern, errs[0])
	assert.Contains(t, errs[0], "url=https://a.example")
}

func TestNewWithFiles_AppendsAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{Level: zerolog.InfoLevel}

	for i := 0; i < 2; i++ {
		logger, cleanup, err := NewWithFiles(cfg, FileConfig{Enabled: true, LogDir: dir})
		require.NoError(t, err)
		logger.Info().Msg("started")
		cleanup()
	}

	assert.Len(t, readLines(t, filepath.Join(dir, InfoLogName)), 2)
}

func TestNewWithFiles_DisabledIsNop(t *testing.T) {
	logger, cleanup, err := NewWithFiles(DefaultConfig(), FileConfig{})
	require.NoError(t, err)
	defer cleanup()
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestNewWithFiles_UnusableDirWithoutStderrIsNop(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	logger, cleanup, err := NewWithFiles(DefaultConfig(), FileConfig{Enabled: true, LogDir: filepath.Join(blocker, "logs")})
	require.Error(t, err)
	defer cleanup()
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestNewWithFiles_UnusableDirFallsBackToStderr(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	var stderr bytes.Buffer

	logger, cleanup, err := NewWithFiles(
		Config{Level: zerolog.InfoLevel, Format: "json"},
		FileConfig{Enabled: true, LogDir: filepath.Join(blocker, "logs"), Stderr: &stderr, StderrLevel: zerolog.WarnLevel},
	)
	require.Error(t, err)
	defer cleanup()

	logger.Info().Msg("quiet")
	logger.Warn().Msg("loud")
	assert.NotContains(t, stderr.String(), "quiet")
	assert.Contains(t, stderr.String(), `"message":"loud"`)
}

func TestNewWithFiles_StderrUsesFormatAndLevel(t *testing.T) {
	dir := t.TempDir()
	var stderr bytes.Buffer

	logger, cleanup, err := NewWithFiles(
		Config{Level: zerolog.InfoLevel, Format: "json"},
		FileConfig{Enabled: true, LogDir: dir, Stderr: &stderr, StderrLevel: zerolog.WarnLevel},
	)
	require.NoError(t, err)

	logger.Info().Msg("file only")
	logger.Warn().Msg("both")
	cleanup()

	lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	require.Len(t, lines, 1)
	var event map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &event))
	assert.Equal(t, "warn", event["level"])
	assert.Equal(t, "both", event["message"])

	assert.Len(t, readLines(t, filepath.Join(dir, InfoLogName)), 2)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")
	cfg := ConfigFromEnv()
	assert.Equal(t, zerolog.DebugLevel, cfg.Level)
	assert.Equal(t, "json", cfg.Format)

	t.Setenv(EnvLogFormat, "xml")
	assert.Equal(t, "console", ConfigFromEnv().Format)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("WARNING"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("bogus"))
}
