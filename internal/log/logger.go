package log

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
)

// CountingHandler wraps an slog.Handler and counts warning-and-above
// records that pass through it. The catalog build and the anomaly lint
// report problems as log records rather than errors; wrapping their logger
// with a CountingHandler lets the CLI tell the user how many diagnostics a
// run produced without collecting them twice.
//
// Counters are atomic, so a handler shared across goroutines stays
// accurate, and derived handlers from WithAttrs/WithGroup share the same
// counters.
type CountingHandler struct {
	handler  slog.Handler
	warnings *atomic.Int64
}

// NewCountingHandler creates a CountingHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewCountingHandler(handler slog.Handler) *CountingHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &CountingHandler{handler: handler, warnings: &atomic.Int64{}}
}

// Warnings returns how many records at warn level or above were handled.
func (h *CountingHandler) Warnings() int {
	return int(h.warnings.Load())
}

// Enabled reports whether the underlying handler handles the given level.
func (h *CountingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle counts the record if it is warn level or above, then delegates.
func (h *CountingHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		h.warnings.Add(1)
	}
	return h.handler.Handle(ctx, r)
}

// WithAttrs returns a derived handler sharing this handler's counters.
func (h *CountingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CountingHandler{handler: h.handler.WithAttrs(attrs), warnings: h.warnings}
}

// WithGroup returns a derived handler sharing this handler's counters.
func (h *CountingHandler) WithGroup(name string) slog.Handler {
	return &CountingHandler{handler: h.handler.WithGroup(name), warnings: h.warnings}
}

// NewLogger creates a text slog.Logger writing to w, wrapped in a
// CountingHandler. Verbose enables debug-level output; otherwise only
// warnings and errors are logged. The handler is returned alongside the
// logger so callers can read the counts after a run.
func NewLogger(w io.Writer, verbose bool) (*slog.Logger, *CountingHandler) {
	handler := NewCountingHandler(slog.NewTextHandler(w, handlerOptions(verbose)))
	return slog.New(handler), handler
}

// NewJSONLogger is NewLogger with JSON output, for log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) (*slog.Logger, *CountingHandler) {
	handler := NewCountingHandler(slog.NewJSONHandler(w, handlerOptions(verbose)))
	return slog.New(handler), handler
}

// handlerOptions maps the verbose toggle onto a log level.
func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
