package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/flashdeck-backend/internal/config"
)

// serviceName is attached to every record so logs from the server and the
// maintenance commands can be told apart downstream.
const serviceName = "flashdeck-backend"

// NewLogger builds the process logger on stderr and installs it as the slog
// default. JSON is for production; text adds source locations for local runs.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(cfg, os.Stderr)
	slog.SetDefault(logger)
	return logger
}

func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	text := strings.EqualFold(cfg.Format, "text")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if text {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("service", serviceName))
}

// parseLevel accepts debug, info, warn or error in any case. Anything else is info.
func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
