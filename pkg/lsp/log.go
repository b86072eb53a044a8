package lsp

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
)

// logLevel is adjustable at runtime via the logLevel setting without
// swapping the handler.
var logLevel = &atomicLeveler{}

type atomicLeveler struct {
	level atomic.Int32
}

// Level implements slog.Leveler.
func (a *atomicLeveler) Level() slog.Level {
	return slog.Level(a.level.Load())
}

var _ slog.Leveler = (*atomicLeveler)(nil)

// SetLogLevel adjusts the server-wide log level. An empty name keeps the
// current level.
func SetLogLevel(name string) error {
	switch strings.ToLower(name) {
	case "":
	case "debug":
		logLevel.level.Store(int32(slog.LevelDebug))
	case "info":
		logLevel.level.Store(int32(slog.LevelInfo))
	case "warn", "warning":
		logLevel.level.Store(int32(slog.LevelWarn))
	case "err", "error":
		logLevel.level.Store(int32(slog.LevelError))
	default:
		return fmt.Errorf("unknown log level %q", name)
	}
	return nil
}

// NewLogHandler builds the server's slog handler, wired to the adjustable
// level.
func NewLogHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
}
