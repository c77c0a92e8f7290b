package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/colorfield/internal/ports"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	raw := strings.TrimSpace(buf.String())
	require.NotEmpty(t, raw, "expected log output")

	var out []map[string]interface{}
	for _, line := range strings.Split(raw, "\n") {
		payload := make(map[string]interface{})
		require.NoError(t, json.Unmarshal([]byte(line), &payload), "line %q", line)
		out = append(out, payload)
	}
	return out
}

func TestLoggerIncludesCorrelationIDAndLayer(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{
		Writer:    &buf,
		Level:     "debug",
		Format:    "json",
		Component: "validation",
	})
	require.NoError(t, err)

	ctx := ports.WithCorrelationID(context.Background(), "abc123")
	logger.Debug(ctx, "validation started", "run", 3)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "widget", lines[0]["layer"])
	assert.Equal(t, "validation", lines[0]["component"])
	assert.Equal(t, "abc123", lines[0]["correlation_id"])
	assert.EqualValues(t, 3, lines[0]["run"])
	assert.Equal(t, "validation started", lines[0]["msg"])
}

func TestLoggerWithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Format: "json", Layer: "cli"})
	require.NoError(t, err)

	child := logger.With("component", "swatches")
	child.Warn(context.Background(), "persist custom colors failed", "driver", "sqlite")

	lines := decodeLines(t, &buf)
	assert.Equal(t, "swatches", lines[0]["component"])
	assert.Equal(t, "sqlite", lines[0]["driver"])
	assert.Equal(t, "cli", lines[0]["layer"])
	assert.NotContains(t, lines[0], "correlation_id")
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Format: "json", Level: "warn"})
	require.NoError(t, err)

	logger.Info(context.Background(), "quiet")
	assert.Zero(t, buf.Len())

	logger.Error(context.Background(), "loud")
	assert.NotZero(t, buf.Len())
}

func TestNewRejectsUnknownSettings(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	assert.Error(t, err)

	_, err = New(Options{Format: "xml"})
	assert.Error(t, err)
}

func TestNoOpLogger(t *testing.T) {
	noOp := NewNoOpLogger()
	assert.NotPanics(t, func() { noOp.Info(context.Background(), "hello world") })
	assert.Same(t, noOp, noOp.With("key", "value"))
}

func TestBootstrapReplaysIntoConfiguredLogger(t *testing.T) {
	boot := NewBootstrap(10)
	boot.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	held := boot.Logger().With("component", "bootstrap")

	ctx := ports.WithCorrelationID(context.Background(), "buffered")
	held.Debug(ctx, "loading configuration", "path", "colorfield.yaml")
	held.With("driver", "json").Error(ctx, "open failed")

	var output bytes.Buffer
	sink, err := New(Options{Writer: &output, Format: "json", Level: "debug"})
	require.NoError(t, err)

	assert.Equal(t, 2, boot.Replay(sink))

	lines := decodeLines(t, &output)
	require.Len(t, lines, 2)
	assert.Equal(t, "loading configuration", lines[0]["msg"])
	assert.Equal(t, "debug", lines[0]["level"])
	assert.Equal(t, "bootstrap", lines[0]["phase"])
	assert.Equal(t, "2026-01-02T03:04:05Z", lines[0]["logged_at"])
	assert.Equal(t, "colorfield.yaml", lines[0]["path"])
	assert.Equal(t, "open failed", lines[1]["msg"])
	assert.Equal(t, "json", lines[1]["driver"])
	assert.Equal(t, "bootstrap", lines[1]["component"])
	assert.Equal(t, "buffered", lines[1]["correlation_id"])

	output.Reset()
	assert.Zero(t, boot.Replay(sink), "replay empties the buffer")
	assert.Zero(t, output.Len())
}

func TestBootstrapReportsDroppedEntries(t *testing.T) {
	boot := NewBootstrap(2)
	held := boot.Logger()
	for _, msg := range []string{"one", "two", "three"} {
		held.Info(context.Background(), msg)
	}

	var output bytes.Buffer
	sink, err := New(Options{Writer: &output, Format: "json"})
	require.NoError(t, err)
	assert.Equal(t, 2, boot.Replay(sink))

	lines := decodeLines(t, &output)
	require.Len(t, lines, 3)
	assert.Equal(t, "two", lines[0]["msg"])
	assert.Equal(t, "three", lines[1]["msg"])
	assert.Equal(t, "bootstrap log entries dropped", lines[2]["msg"])
	assert.EqualValues(t, 1, lines[2]["count"])
}

func TestBootstrapReplayWithoutSink(t *testing.T) {
	boot := NewBootstrap(0)
	boot.Logger().Warn(context.Background(), "kept")
	assert.Zero(t, boot.Replay(nil))

	var nilBoot *Bootstrap
	assert.Zero(t, nilBoot.Replay(NewNoOpLogger()))
}
