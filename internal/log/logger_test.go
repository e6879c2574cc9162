package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestCountingHandler(t *testing.T) {
	t.Parallel()

	t.Run("counts warnings and errors", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger, handler := NewLogger(&buf, false)

		logger.Warn("first")
		logger.Error("second")
		logger.Info("not counted")

		if got := handler.Warnings(); got != 2 {
			t.Errorf("expected 2 warnings, got %d", got)
		}
	})

	t.Run("derived handlers share counters", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger, handler := NewLogger(&buf, false)

		logger.With("site", "Example").Warn("attribute logger")
		logger.WithGroup("load").Warn("group logger")

		if got := handler.Warnings(); got != 2 {
			t.Errorf("expected shared counter of 2, got %d", got)
		}
	})

	t.Run("verbose enables debug output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger, _ := NewLogger(&buf, true)

		logger.Debug("visible")
		if !strings.Contains(buf.String(), "visible") {
			t.Error("expected debug output in verbose mode")
		}
	})

	t.Run("non-verbose suppresses info", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger, _ := NewLogger(&buf, false)

		logger.Info("hidden")
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})

	t.Run("JSON logger emits JSON", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger, handler := NewJSONLogger(&buf, false)

		logger.Warn("problem", "site", "Example")

		if got := handler.Warnings(); got != 1 {
			t.Errorf("expected 1 warning, got %d", got)
		}
		if !strings.Contains(buf.String(), `"site":"Example"`) {
			t.Errorf("expected JSON output, got %q", buf.String())
		}
	})

	t.Run("nil inner handler falls back to default", func(t *testing.T) {
		t.Parallel()
		handler := NewCountingHandler(nil)
		if handler == nil {
			t.Fatal("expected a handler")
		}
		// Must not panic when queried.
		_ = handler.Enabled(context.Background(), slog.LevelError)
	})
}
