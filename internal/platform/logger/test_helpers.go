package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// TestLogBuffer is a thread-safe buffer for capturing log output in tests.
type TestLogBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

// Write implements io.Writer for TestLogBuffer.
func (b *TestLogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String returns the buffer contents as a string.
func (b *TestLogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Reset clears the buffer contents.
func (b *TestLogBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

// GetLogEntries parses the buffer contents as JSON log entries.
// Each line is assumed to be a separate JSON log entry.
func (b *TestLogBuffer) GetLogEntries() ([]map[string]interface{}, error) {
	lines := strings.Split(b.String(), "\n")
	entries := make([]map[string]interface{}, 0, len(lines))

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// SetupTestLogger creates a debug-level JSON logger writing to a buffer and
// installs it as the slog default. The previous default is restored when the
// test ends.
func SetupTestLogger(t *testing.T) (*TestLogBuffer, *slog.Logger) {
	t.Helper()

	logBuf := &TestLogBuffer{}
	originalLogger := slog.Default()

	logger := slog.New(slog.NewJSONHandler(logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	t.Cleanup(func() {
		slog.SetDefault(originalLogger)
	})

	return logBuf, logger
}

// AssertLogContains fails the test if the captured output does not contain content.
func AssertLogContains(t *testing.T, logBuf *TestLogBuffer, content string) {
	t.Helper()

	if !strings.Contains(logBuf.String(), content) {
		t.Errorf("expected log output to contain %q, got:\n%s", content, logBuf.String())
	}
}

// AssertLogNotContains fails the test if the captured output contains content.
func AssertLogNotContains(t *testing.T, logBuf *TestLogBuffer, content string) {
	t.Helper()

	if strings.Contains(logBuf.String(), content) {
		t.Errorf("expected log output not to contain %q, got:\n%s", content, logBuf.String())
	}
}
