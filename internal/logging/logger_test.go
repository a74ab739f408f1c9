package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := NewWithWriter(&buf, false, true)

	l.Info("resolved %d secrets", 2)
	l.Warn("keyring unavailable")
	l.Error("source %q failed", "aws")
	l.Debug("not shown")

	out := buf.String()
	assert.Contains(t, out, "✓ resolved 2 secrets")
	assert.Contains(t, out, "⚠ keyring unavailable")
	assert.Contains(t, out, `✗ source "aws" failed`)
	assert.NotContains(t, out, "not shown")
}

func TestLoggerDebugEnabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := NewWithWriter(&buf, true, true)
	l.Debug("visible now")
	assert.Contains(t, buf.String(), "[DEBUG] visible now")
}

func TestRedact(t *testing.T) {
	t.Parallel()

	got := Redact("connecting with password hunter2 to db", []string{"hunter2", "ab"})
	assert.Equal(t, "connecting with password [REDACTED] to db", got)
	assert.NotContains(t, got, "hunter2")
}
