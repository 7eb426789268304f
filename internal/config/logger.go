package config

import (
	"log/slog"
	"os"
)

// NewLogger builds the process logger at the configured level.
func (c LoggerConfig) NewLogger() *slog.Logger {
	var level slog.Level

	switch c.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}
