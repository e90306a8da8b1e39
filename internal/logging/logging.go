// Package logging builds the slog logger used for plugin diagnostics.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Options controls logger construction.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // json (default) or text
	// File, when set, sends logs to a size-rotated file instead of Stderr.
	File       string
	MaxSizeMB  int
	MaxBackups int
	// Discard drops all output when no File is set.
	Discard bool
}

// New returns a logger for opts and a close function for its sink.
func New(opts Options) (*slog.Logger, func() error, error) {
	writer, closeFn, err := resolveWriter(opts)
	if err != nil {
		return nil, nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}
	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", FormatJSON:
		handler = slog.NewJSONHandler(writer, handlerOpts)
	case FormatText:
		handler = slog.NewTextHandler(writer, handlerOpts)
	default:
		_ = closeFn()
		return nil, nil, fmt.Errorf("logging: unknown format %q", opts.Format)
	}
	return slog.New(handler), closeFn, nil
}

// ParseLevel maps a level name to a slog level; unknown names mean info.
func ParseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func resolveWriter(opts Options) (io.Writer, func() error, error) {
	path := strings.TrimSpace(opts.File)
	if path == "" {
		if opts.Discard {
			return io.Discard, func() error { return nil }, nil
		}
		return os.Stderr, func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: create log dir: %w", err)
	}
	rot := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    orDefault(opts.MaxSizeMB, 5),
		MaxBackups: orDefault(opts.MaxBackups, 3),
		Compress:   false,
	}
	return rot, rot.Close, nil
}

func orDefault(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
