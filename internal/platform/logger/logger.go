package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/phonestore-api/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits applied when logging to a file.
const (
	maxLogFileSizeMB = 50
	maxLogBackups    = 5
	maxLogAgeDays    = 28
)

// ParseLevel maps a configured level name to a slog.Level (case-insensitive).
// The second result is false when the name is not recognised; LevelInfo is
// returned in that case.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured JSON logger with the
// appropriate log level and sets it as the default logger for the application.
//
// Output goes to stdout unless cfg.LogFile is set, in which case the file is
// rotated by size.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		out = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    maxLogFileSizeMB,
			MaxBackups: maxLogBackups,
			MaxAge:     maxLogAgeDays,
			Compress:   true,
		}
	}
	return New(out, cfg.LogLevel), nil
}

// New builds a JSON logger writing to out and installs it as the slog default.
func New(out io.Writer, levelName string) *slog.Logger {
	level, ok := ParseLevel(levelName)
	if !ok {
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", levelName,
			"default_level", "info")
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)

	// Allows using the slog package functions directly (slog.Info, slog.Error, etc.)
	slog.SetDefault(logger)

	return logger
}
