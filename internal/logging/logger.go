// Package logging provides leveled diagnostics on stderr. Standard output is
// reserved for key=value results, so nothing here ever writes to it.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// EnvLevel names the environment variable that sets the initial log level.
const EnvLevel = "RELVER_LOG_LEVEL"

var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Prefix:          "relver",
		Level:           log.WarnLevel,
	})
	l.SetStyles(styles())
	return l
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.DebugLevel] = lipgloss.NewStyle().SetString("DEBUG").Foreground(lipgloss.Color("#7F6DFF"))
	s.Levels[log.InfoLevel] = lipgloss.NewStyle().SetString("INFO").Foreground(lipgloss.Color("#42E7FF"))
	s.Levels[log.WarnLevel] = lipgloss.NewStyle().SetString("WARN").Foreground(lipgloss.Color("#FFE763"))
	s.Levels[log.ErrorLevel] = lipgloss.NewStyle().SetString("ERROR").Foreground(lipgloss.Color("#FF4473"))
	return s
}

// SetOutput redirects diagnostics, keeping the current level.
func SetOutput(w io.Writer) {
	level := logger.GetLevel()
	logger = newLogger(w)
	logger.SetLevel(level)
}

// SetLevel sets the minimum level by name (debug, info, warn, error).
// Unknown names leave the level unchanged.
func SetLevel(level string) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn", "warning":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	}
}

// SetLevelFromEnv applies RELVER_LOG_LEVEL if it is set. A nil lookup uses
// os.LookupEnv.
func SetLevelFromEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if lvl, ok := lookup(EnvLevel); ok {
		SetLevel(lvl)
	}
}

// Debug logs a message with key/value pairs at debug level.
func Debug(msg string, keyvals ...any) {
	logger.Debug(msg, keyvals...)
}

// Info logs a message with key/value pairs at info level.
func Info(msg string, keyvals ...any) {
	logger.Info(msg, keyvals...)
}

// Warn logs a message with key/value pairs at warn level.
func Warn(msg string, keyvals ...any) {
	logger.Warn(msg, keyvals...)
}
