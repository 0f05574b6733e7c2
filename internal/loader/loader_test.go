package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("Random stuff\nnothing\r\nae"), 0644))

	text, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Random stuff\nnothing\r\nae", text)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	text, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestLoad_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileNotFound))
	assert.False(t, errors.Is(err, ErrPermissionDenied))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, path, loadErr.Path)
	assert.True(t, loadErr.Classified())
}

func TestLoad_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read files regardless of mode")
	}

	path := filepath.Join(t.TempDir(), "secret.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0000))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPermissionDenied))
	assert.False(t, errors.Is(err, ErrFileNotFound))
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(dir)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrFileNotFound))
	assert.False(t, errors.Is(err, ErrPermissionDenied))

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.False(t, loadErr.Classified())
	assert.Contains(t, loadErr.Error(), "is a directory")
}
