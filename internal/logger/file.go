package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/harrison/uniqyou/internal/models"
)

// FileLogOptions controls rotation of the file log.
type FileLogOptions struct {
	MaxSizeMB  int  // Rotate after this many megabytes
	MaxBackups int  // Rotated files to keep
	MaxAgeDays int  // Days to keep rotated files
	Compress   bool // Gzip rotated files
}

// DefaultFileLogOptions returns the rotation settings used when none are configured.
func DefaultFileLogOptions() FileLogOptions {
	return FileLogOptions{
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// FileLogger writes level-filtered log lines to logDir/uniqyou.log,
// rotating the file with lumberjack.
type FileLogger struct {
	logDir   string
	logFile  string
	writer   *lumberjack.Logger
	logLevel string
	mu       sync.Mutex
}

// NewFileLogger creates a FileLogger in logDir with default rotation settings.
func NewFileLogger(logDir, logLevel string) (*FileLogger, error) {
	return NewFileLoggerWithOptions(logDir, logLevel, DefaultFileLogOptions())
}

// NewFileLoggerWithOptions creates a FileLogger with explicit rotation settings.
// The log directory is created if it doesn't exist.
func NewFileLoggerWithOptions(logDir, logLevel string, opts FileLogOptions) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile := filepath.Join(logDir, "uniqyou.log")
	fl := &FileLogger{
		logDir:  logDir,
		logFile: logFile,
		writer: &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		},
		logLevel: normalizeLogLevel(logLevel),
	}

	fl.write(fmt.Sprintf("=== uniqyou session started at %s ===\n", time.Now().Format(time.RFC3339)))
	return fl, nil
}

// Path returns the active log file path.
func (fl *FileLogger) Path() string {
	return fl.logFile
}

func (fl *FileLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(fl.logLevel)
}

// LogTrace logs a trace-level message.
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
	if !fl.shouldLog(strings.ToLower(level)) {
		return
	}
	fl.write(fmt.Sprintf("[%s] [%s] %s\n", timestamp(), level, message))
}

// LogCompletion records the scored domains of a completed screening at INFO level.
func (fl *FileLogger) LogCompletion(results []models.ScreeningResult) {
	if !fl.shouldLog("info") {
		return
	}

	ts := timestamp()
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] === SCREENING COMPLETE ===\n", ts)
	for _, r := range results {
		fmt.Fprintf(&b, "[%s] %-22s %-9s raw=%d max=%d normalized=%.1f\n",
			ts, r.Domain, r.Band, r.RawScore, r.MaxScore, r.Normalized)
	}
	fl.write(b.String())
}

func (fl *FileLogger) write(s string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	if fl.writer == nil {
		return
	}
	fl.writer.Write([]byte(s))
}

// Close flushes and closes the log file.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	if fl.writer == nil {
		return nil
	}
	err := fl.writer.Close()
	fl.writer = nil
	return err
}
