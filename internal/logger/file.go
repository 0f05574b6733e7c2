package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/proudmuslim-dev/pgrep/internal/filelock"
)

// FileConfig controls where the file logger writes and how it rotates.
type FileConfig struct {
	LogFile    string // Log file path
	MaxSize    int    // Max size in megabytes
	MaxBackups int    // Max number of backups
	MaxAge     int    // Max age in days
	Compress   bool   // Compress backups
}

// DefaultFileConfig returns rotation settings for the given log path.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		LogFile:    path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	}
}

// FileLogger appends log lines to a rotating file. Every line carries the run
// ID of the invocation that wrote it, so interleaved runs can be told apart.
// Writes hold an advisory lock on "<file>.lock" since several pgrep processes
// may share one log.
type FileLogger struct {
	out      io.WriteCloser
	lock     *filelock.FileLock
	runID    string
	logLevel string
	mu       sync.Mutex
}

// NewFileLogger opens a rotating log at cfg.LogFile, creating its directory if needed.
func NewFileLogger(cfg FileConfig, logLevel string) (*FileLogger, error) {
	if cfg.LogFile == "" {
		return nil, errors.New("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	out := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	fl := newFileLogger(out, uuid.New().String(), logLevel)
	fl.lock = filelock.ForFile(cfg.LogFile)
	return fl, nil
}

func newFileLogger(out io.WriteCloser, runID, logLevel string) *FileLogger {
	return &FileLogger{
		out:      out,
		runID:    runID,
		logLevel: normalizeLogLevel(logLevel),
	}
}

// RunID returns the identifier stamped on this logger's lines.
func (fl *FileLogger) RunID() string {
	return fl.runID
}

// LogTrace logs a trace-level message (most verbose).
func (fl *FileLogger) LogTrace(message string) {
	fl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

func (fl *FileLogger) logWithLevel(level string, message string) {
	if !shouldLog(fl.logLevel, level) {
		return
	}

	formatted := fmt.Sprintf("%s [%s] run=%s %s\n", time.Now().Format(time.RFC3339), level, fl.runID, message)

	fl.mu.Lock()
	defer fl.mu.Unlock()
	if fl.out == nil {
		return
	}
	if fl.lock == nil {
		fl.out.Write([]byte(formatted))
		return
	}
	// Logging must never fail a search, so a lock error drops the line.
	fl.lock.WithLock(func() error {
		_, err := fl.out.Write([]byte(formatted))
		return err
	})
}

// Close closes the underlying file. Further messages are dropped.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.out == nil {
		return nil
	}
	err := fl.out.Close()
	fl.out = nil
	if err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}
