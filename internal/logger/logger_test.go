package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error", "WARN", " info "} {
		assert.True(t, ValidLevel(level), level)
	}
	for _, level := range []string{"", "verbose", "fatal"} {
		assert.False(t, ValidLevel(level), level)
	}
}

func TestShouldLog(t *testing.T) {
	assert.True(t, shouldLog("warn", "ERROR"))
	assert.True(t, shouldLog("warn", "warn"))
	assert.False(t, shouldLog("warn", "INFO"))
	assert.True(t, shouldLog("trace", "TRACE"))
}

func TestMultiLogger(t *testing.T) {
	a := &bytes.Buffer{}
	b := &bytes.Buffer{}

	ml := NewMultiLogger(NewConsoleLogger(a, "debug"), nil, NewConsoleLogger(b, "error"))
	ml.LogDebug("details")
	ml.LogError("failure")

	assert.Contains(t, a.String(), "[DEBUG] details")
	assert.Contains(t, a.String(), "[ERROR] failure")
	assert.NotContains(t, b.String(), "details")
	assert.Equal(t, 1, strings.Count(b.String(), "\n"))
}

func TestNoOpLogger(t *testing.T) {
	var l Logger = NewNoOpLogger()
	l.LogTrace("x")
	l.LogDebug("x")
	l.LogInfo("x")
	l.LogWarn("x")
	l.LogError("x")
}
