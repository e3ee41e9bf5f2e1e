// Package logger configures the process-wide slog logger and adapts it to
// hertz's hlog interface so framework logs share the same sink.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Options selects level, format and source annotation for the default logger.
type Options struct {
	Level     string // debug, info, warn, error
	Format    string // json or text
	AddSource bool
}

// Setup installs the default slog logger according to opts.
func Setup(opts Options) error {
	var level slog.Level
	switch strings.ToLower(opts.Level) {
	case "debug":
		level = slog.LevelDebug
	case "", "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("logger: unknown level %q", opts.Level)
	}

	hopts := &slog.HandlerOptions{Level: level, AddSource: opts.AddSource}
	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, hopts)
	case "", "text":
		handler = slog.NewTextHandler(os.Stdout, hopts)
	default:
		return fmt.Errorf("logger: unknown format %q", opts.Format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// HertzAdapter routes hertz framework logs through slog.
type HertzAdapter struct {
	logger *slog.Logger
}

// NewHertzAdapter wraps an slog logger for use with hlog.SetLogger.
func NewHertzAdapter(logger *slog.Logger) *HertzAdapter {
	return &HertzAdapter{logger: logger}
}

func (h *HertzAdapter) log(level slog.Level, v ...interface{}) {
	h.logger.Log(context.Background(), level, fmt.Sprint(v...))
}

func (h *HertzAdapter) logf(level slog.Level, format string, v ...interface{}) {
	h.logger.Log(context.Background(), level, fmt.Sprintf(format, v...))
}
