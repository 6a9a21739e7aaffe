package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Log file names inside the application config directory.
const (
	InfoLogName  = "browser.log"
	ErrorLogName = "error.log"
)

// LineTimeFormat is the timestamp layout of log file lines.
const LineTimeFormat = "2006-01-02 15:04:05"

// FileConfig controls the on-disk log outputs.
type FileConfig struct {
	Enabled bool
	LogDir  string
	// Stderr, when non-nil, also receives events at StderrLevel and above,
	// rendered in cfg.Format. Leave it nil while a full-screen UI owns the terminal.
	Stderr      io.Writer
	StderrLevel zerolog.Level
	Rotation    RotationConfig
}

// fallback is the logger used when files are disabled or cannot be opened.
func (fc FileConfig) fallback(cfg Config) zerolog.Logger {
	if fc.Stderr == nil {
		return zerolog.Nop()
	}
	return newWithWriter(cfg, fc.Stderr).Level(max(cfg.Level, fc.StderrLevel))
}

// NewWithFiles creates a logger that writes every event at or above cfg.Level
// to browser.log and every error to error.log, both as lines of the form
// "<timestamp> - <LEVEL> - <message>". The returned cleanup closes the files
// and must be called once on shutdown.
func NewWithFiles(cfg Config, fc FileConfig) (zerolog.Logger, func(), error) {
	if !fc.Enabled {
		return fc.fallback(cfg), func() {}, nil
	}

	if err := os.MkdirAll(fc.LogDir, 0o755); err != nil {
		return fc.fallback(cfg), func() {}, fmt.Errorf("create log dir: %w", err)
	}

	infoFile, err := NewLogRotator(fc.LogDir, InfoLogName, fc.Rotation)
	if err != nil {
		return fc.fallback(cfg), func() {}, err
	}
	errorFile, err := NewLogRotator(fc.LogDir, ErrorLogName, fc.Rotation)
	if err != nil {
		_ = infoFile.Close()
		return fc.fallback(cfg), func() {}, err
	}

	writers := []io.Writer{
		zerolog.LevelWriterAdapter{Writer: lineWriter(infoFile)},
		&zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: lineWriter(errorFile)},
			Level:  zerolog.ErrorLevel,
		},
	}
	if fc.Stderr != nil {
		writers = append(writers, &zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: formatWriter(cfg, fc.Stderr)},
			Level:  fc.StderrLevel,
		})
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()

	cleanup := func() {
		if err := infoFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: close %s: %v\n", InfoLogName, err)
		}
		if err := errorFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: close %s: %v\n", ErrorLogName, err)
		}
	}

	return logger, cleanup, nil
}

// lineWriter renders events as "<timestamp> - <LEVEL> - <message> key=value...".
func lineWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: LineTimeFormat,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
		FormatLevel: func(i any) string {
			return "- " + levelName(i) + " -"
		},
	}
}

func levelName(i any) string {
	s, ok := i.(string)
	if !ok || s == "" {
		return "INFO"
	}
	switch s {
	case zerolog.LevelWarnValue:
		return "WARNING"
	case zerolog.LevelFatalValue, zerolog.LevelPanicValue:
		return "CRITICAL"
	}
	return strings.ToUpper(s)
}
