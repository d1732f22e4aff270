package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DEBUG, ParseLevel("debug"))
	assert.Equal(t, WARN, ParseLevel("warning"))
	assert.Equal(t, ERROR, ParseLevel("ERROR"))
	assert.Equal(t, INFO, ParseLevel(""))
	assert.Equal(t, INFO, ParseLevel("nonsense"))
}

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })
	return &buf
}

func TestLogEmitsJSONWithRedaction(t *testing.T) {
	buf := captureOutput(t)

	Info("registration created", "id", 7, "email", "jane@example.com")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "registration created", entry["msg"])
	assert.Equal(t, "ja***@example.com", entry["email"])
	// Numeric fields stay numbers in the JSON, not quoted strings
	assert.Equal(t, float64(7), entry["id"])
	assert.Contains(t, buf.String(), `"id":7`)
}

func TestLogRedactsNonStringContactField(t *testing.T) {
	buf := captureOutput(t)

	Info("order created", "phone", 66812345678, "amount", 29900.0)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "*********78", entry["phone"])
	assert.Equal(t, float64(29900), entry["amount"])
}

func TestLogLevelFiltering(t *testing.T) {
	buf := captureOutput(t)
	SetLevel(WARN)
	t.Cleanup(func() { SetLevel(INFO) })

	Info("dropped")
	Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestLogDropsTrailingKey(t *testing.T) {
	buf := captureOutput(t)

	Info("msg", "orphan")

	var entry map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, ok := entry["orphan"]
	assert.False(t, ok)
}
