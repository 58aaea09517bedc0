// Package log configures the process-wide slog logger.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/holocron-dev/holocron/internal/config"
)

// Configure builds a logger from the application config, installs it as the
// slog default, and returns it.
func Configure(cfg config.AppConfig) *slog.Logger {
	logger := New(os.Stdout, cfg.LogFormat(), cfg.LogLevel())
	slog.SetDefault(logger)
	return logger
}

// New builds a logger writing to w with the given format and level.
func New(w io.Writer, format config.LogFormat, level string) *slog.Logger {
	lvl := ParseLevel(level)
	if format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	}
	return slog.New(NewConsoleHandler(w, lvl))
}

// ParseLevel maps a level name to a slog.Level. Unrecognized names fall back
// to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
