// Package loader reads a search source into memory and classifies failures.
package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

var (
	// ErrFileNotFound is returned when the source path does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrPermissionDenied is returned when the source cannot be opened for reading.
	ErrPermissionDenied = errors.New("permission denied")
)

// LoadError describes a failure to read a source file.
// Kind is ErrFileNotFound, ErrPermissionDenied or nil for unclassified I/O errors.
type LoadError struct {
	Path string
	Kind error
	Err  error
}

// Error implements the error interface for LoadError.
func (e *LoadError) Error() string {
	switch e.Kind {
	case ErrFileNotFound:
		return fmt.Sprintf("file %s not found", e.Path)
	case ErrPermissionDenied:
		return fmt.Sprintf("missing permissions to open file %s", e.Path)
	default:
		return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
	}
}

// Unwrap returns the underlying OS error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is matches the classification sentinel.
func (e *LoadError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

// Classified reports whether the failure is not-found or permission-denied.
func (e *LoadError) Classified() bool {
	return e.Kind != nil
}

// Load returns the entire contents of path as text.
// The file handle is closed before Load returns, on every path.
func Load(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", classify(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", classify(path, err)
	}
	if info.IsDir() {
		return "", &LoadError{Path: path, Err: errors.New("is a directory")}
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", classify(path, err)
	}
	return string(data), nil
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &LoadError{Path: path, Kind: ErrFileNotFound, Err: err}
	case errors.Is(err, fs.ErrPermission):
		return &LoadError{Path: path, Kind: ErrPermissionDenied, Err: err}
	default:
		return &LoadError{Path: path, Err: err}
	}
}
