package spec

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNopLogger(t *testing.T) {
	l := NopLogger{}
	// None of these should panic.
	l.Debug("test message", "key", "value")
	l.Info("test message", "key", "value")
	l.Warn("test message", "key", "value")
	l.Error("test message", "key", "value")

	_, ok := l.With("key", "value").(NopLogger)
	assert.True(t, ok, "With should return NopLogger")
}

func TestSlogAdapter(t *testing.T) {
	t.Run("NewSlogAdapter with nil uses default", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		assert.NotNil(t, adapter.logger)
	})

	t.Run("levels and attributes", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		adapter := NewSlogAdapter(slog.New(handler))

		adapter.Debug("debug message", "model", "Pet")
		adapter.Warn("warn message")

		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "debug message")
		assert.Contains(t, out, "model=Pet")
		assert.Contains(t, out, "level=WARN")
	})

	t.Run("With prepends attributes", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
		adapter := NewSlogAdapter(slog.New(handler)).With("source", "petstore.json")

		adapter.Info("loaded")
		assert.Contains(t, buf.String(), "source=petstore.json")
	})
}

func newTestLogrus(buf *bytes.Buffer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(buf)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	return l
}

func TestLogrusAdapter(t *testing.T) {
	t.Run("NewLogrusAdapter with nil uses standard logger", func(t *testing.T) {
		adapter := NewLogrusAdapter(nil)
		assert.Equal(t, logrus.StandardLogger(), adapter.entry.Logger)
	})

	t.Run("attributes become fields", func(t *testing.T) {
		var buf bytes.Buffer
		adapter := NewLogrusAdapter(newTestLogrus(&buf))

		adapter.Debug("resolved", "model", "Tag", "properties", 2)
		out := buf.String()
		assert.Contains(t, out, "level=debug")
		assert.Contains(t, out, "msg=resolved")
		assert.Contains(t, out, "model=Tag")
		assert.Contains(t, out, "properties=2")
	})

	t.Run("With keeps fields", func(t *testing.T) {
		var buf bytes.Buffer
		adapter := NewLogrusAdapter(newTestLogrus(&buf)).With("operation", "addPet")

		adapter.Error("failed")
		out := buf.String()
		assert.Contains(t, out, "level=error")
		assert.Contains(t, out, "operation=addPet")
	})

	t.Run("dangling attribute", func(t *testing.T) {
		var buf bytes.Buffer
		adapter := NewLogrusAdapter(newTestLogrus(&buf))

		adapter.Info("odd", "lonely")
		assert.True(t, strings.Contains(buf.String(), "!BADKEY=lonely"), buf.String())
	})
}
