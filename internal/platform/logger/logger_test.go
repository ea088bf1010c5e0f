package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phrazzld/phonestore-api/internal/config"
	"github.com/phrazzld/phonestore-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"Warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tc := range tests {
		level, ok := logger.ParseLevel(tc.input)
		assert.Equal(t, tc.want, level, "level for %q", tc.input)
		assert.Equal(t, tc.ok, ok, "ok for %q", tc.input)
	}
}

func TestNew_WritesJSONAtConfiguredLevel(t *testing.T) {
	restoreDefault(t)

	var buf bytes.Buffer
	l := logger.New(&buf, "warn")

	l.Info("hidden")
	l.Warn("shown", "product_id", 42)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, float64(42), entry["product_id"])

	assert.Same(t, l, slog.Default(), "New should install the logger as default")
}

func TestSetup_LogFile(t *testing.T) {
	restoreDefault(t)

	path := filepath.Join(t.TempDir(), "server.log")
	l, err := logger.Setup(config.ServerConfig{LogLevel: "info", LogFile: path})
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Info("written to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestFromContext(t *testing.T) {
	restoreDefault(t)

	var buf bytes.Buffer
	scoped := slog.New(slog.NewJSONHandler(&buf, nil)).With("trace_id", "abc")
	fallback := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	ctx := logger.WithLogger(context.Background(), scoped)

	assert.Same(t, scoped, logger.FromContext(ctx))
	assert.Same(t, scoped, logger.FromContextOrDefault(ctx, fallback))
	assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
	assert.Same(t, slog.Default(), logger.FromContext(context.Background()))
	assert.Same(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))
}

func TestForComponent(t *testing.T) {
	restoreDefault(t)

	t.Run("request logger keeps its attrs and gains the component", func(t *testing.T) {
		var buf bytes.Buffer
		scoped := slog.New(slog.NewJSONHandler(&buf, nil)).With("trace_id", "abc")
		fallback := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)).With("component", "catalog_store")
		ctx := logger.WithLogger(context.Background(), scoped)

		logger.ForComponent(ctx, fallback, "catalog_store").Info("query")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "abc", entry["trace_id"])
		assert.Equal(t, "catalog_store", entry["component"])
	})

	t.Run("no request logger returns fallback", func(t *testing.T) {
		fallback := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
		assert.Same(t, fallback, logger.ForComponent(context.Background(), fallback, "catalog_store"))
	})

	t.Run("nil fallback tags the default logger", func(t *testing.T) {
		var buf bytes.Buffer
		slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))

		logger.ForComponent(context.Background(), nil, "catalog_service").Info("aggregated")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "catalog_service", entry["component"])
	})
}

func TestSetupTestLogger(t *testing.T) {
	buf, l := logger.SetupTestLogger(t)

	l.Debug("captured", "key", "value")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "value", entries[0]["key"])
	logger.AssertLogContains(t, buf, "captured")
	logger.AssertLogNotContains(t, buf, "missing")
}
