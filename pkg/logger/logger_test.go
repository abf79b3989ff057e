package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(&buf, "warn")
	require.NoError(t, err)

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	l.Warn("Create: slot %s taken", "10:00")
	l.Error("Create: failed: %v", assert.AnError)

	out := buf.String()
	assert.NotContains(t, out, "debug 1")
	assert.NotContains(t, out, "info 2")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "Create: slot 10:00 taken")
	assert.Contains(t, out, "level=ERROR")
}

func TestLogger_NoArgsKeepsPercent(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(&buf, "debug")
	require.NoError(t, err)

	l.Info("100% done")
	assert.Contains(t, buf.String(), "100% done")
}

func TestLogger_Fatal(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithWriter(&buf, "info")
	require.NoError(t, err)

	code := -1
	l.exit = func(c int) { code = c }
	l.Fatal("boom: %s", "db")

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "boom: db")
}

func TestParseLevel(t *testing.T) {
	for _, level := range []string{"debug", "INFO", "", "warn", "warning", "error"} {
		_, err := ParseLevel(level)
		assert.NoError(t, err, level)
	}

	_, err := ParseLevel("verbose")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	l, err := New(path, "info")
	require.NoError(t, err)
	l.Info("Starting %s", "scheduling")
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Starting scheduling")
}
