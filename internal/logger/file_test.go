package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "pgrep.log")

	fl, err := NewFileLogger(DefaultFileConfig(logPath), "debug")
	require.NoError(t, err)
	assert.NotEmpty(t, fl.RunID())

	fl.LogDebug("resolved config")
	fl.LogTrace("hidden")
	require.NoError(t, fl.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "[DEBUG] run="+fl.RunID()+" resolved config")
	assert.NotContains(t, content, "hidden")
}

func TestNewFileLogger_EmptyPath(t *testing.T) {
	_, err := NewFileLogger(FileConfig{}, "info")
	assert.Error(t, err)
}

func TestFileLogger_AppendsAcrossRuns(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "pgrep.log")

	first, err := NewFileLogger(DefaultFileConfig(logPath), "info")
	require.NoError(t, err)
	first.LogInfo("first run")
	require.NoError(t, first.Close())

	second, err := NewFileLogger(DefaultFileConfig(logPath), "info")
	require.NoError(t, err)
	second.LogError("second run")
	require.NoError(t, second.Close())

	assert.NotEqual(t, first.RunID(), second.RunID())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "run="+first.RunID()+" first run")
	assert.Contains(t, lines[1], "[ERROR] run="+second.RunID()+" second run")
}

type memWriteCloser struct {
	strings.Builder
	closed bool
}

func (m *memWriteCloser) Close() error {
	m.closed = true
	return nil
}

func TestFileLogger_CloseIsIdempotent(t *testing.T) {
	out := &memWriteCloser{}
	fl := newFileLogger(out, "run-1", "info")

	fl.LogInfo("before close")
	require.NoError(t, fl.Close())
	require.NoError(t, fl.Close())
	fl.LogInfo("after close")

	assert.True(t, out.closed)
	assert.Contains(t, out.String(), "run=run-1 before close")
	assert.NotContains(t, out.String(), "after close")
}

func TestFileLogger_UsesLockFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "pgrep.log")

	fl, err := NewFileLogger(DefaultFileConfig(logPath), "info")
	require.NoError(t, err)
	fl.LogInfo("locked write")
	require.NoError(t, fl.Close())

	_, err = os.Stat(logPath + ".lock")
	assert.NoError(t, err, "expected lock file next to the log")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "locked write")
}
