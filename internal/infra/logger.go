package infra

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger builds the application logger from config.
// The sink is always stderr: stdout carries the MCP protocol stream and
// must never receive log output.
func NewLogger(cfg *Config) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
