package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"ERROR":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}

	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestWithCorrelationID_UsesContextValue(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf)

	ctx := context.WithValue(context.Background(), CorrelatedIDKey, "abc-123")
	logger.WithCorrelationID(ctx).Info("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "abc-123", record["correlation_id"])
	assert.Equal(t, "hello", record["msg"])
}

func TestGetLoggerInstanceFromContext(t *testing.T) {
	base := NewLoggerWithWriter(&bytes.Buffer{})

	t.Run("returns injected logger", func(t *testing.T) {
		injected := base.WithComponent("injected")
		ctx := context.WithValue(context.Background(), LoggerKeyForContext, injected)

		assert.Same(t, injected, GetLoggerInstanceFromContext(ctx, base))
	})

	t.Run("falls back when context has no logger", func(t *testing.T) {
		got := GetLoggerInstanceFromContext(context.Background(), base)
		assert.NotNil(t, got)
		assert.NotSame(t, base, got)
	})

	t.Run("nil context returns fallback", func(t *testing.T) {
		assert.Same(t, base, GetLoggerInstanceFromContext(nil, base))
	})
}
