package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestCommandFailedRecordsCommandAndError(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := New(Options{Writer: buf})

	status := log.CommandFailed("colorfield swatches add", errors.New(`"bogus" is not a color`))
	require.Equal(t, 1, status)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "command failed", entry["message"])
	require.Equal(t, "colorfield swatches add", entry["command"])
	require.Equal(t, `"bogus" is not a color`, entry["error"])
	require.Equal(t, "error", entry["level"])
	require.Contains(t, entry, "time")
}

func TestCommandFailedWithoutErrorWritesNothing(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	require.Zero(t, New(Options{Writer: buf}).CommandFailed("colorfield", nil))
	require.Zero(t, buf.Len())
}

func TestHumanReadableOutput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	New(Options{Writer: buf, HumanReadable: true}).CommandFailed("colorfield validate", errors.New("1 of 2 values rejected"))

	out := buf.String()
	require.Contains(t, out, "command failed")
	require.Contains(t, out, "colorfield validate")
	require.Contains(t, out, "1 of 2 values rejected")
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.Zero(t, log.CommandFailed("colorfield", errors.New("ignored")))
}
