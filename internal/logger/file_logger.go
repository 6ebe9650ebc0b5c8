package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogLevel is the severity written into each file log line.
type LogLevel string

const (
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
	LogLevelDebug LogLevel = "DEBUG"
)

// FileLogger appends timestamped lines to a log file, or to stderr when the
// file cannot be opened. Stdout is never used: it carries program output and
// the stdio MCP stream.
type FileLogger struct {
	mu          sync.Mutex
	logFile     *os.File
	logger      *log.Logger
	logDir      string
	fileName    string
	useFallback bool
}

var logFileLogger = New("logger:file_logger")

var (
	globalFileLogger *FileLogger
	globalLoggerMu   sync.RWMutex
)

// InitFileLogger installs the global file logger writing to logDir/fileName.
// A directory or file that cannot be created is not an error: the logger
// falls back to stderr and a warning goes to the standard logger.
func InitFileLogger(logDir, fileName string) error {
	fl := &FileLogger{
		logDir:   logDir,
		fileName: fileName,
	}

	file, err := openLogFile(logDir, fileName)
	if err != nil {
		log.Printf("WARNING: Failed to initialize log file: %v", err)
		log.Printf("WARNING: Falling back to stderr for logging")
		fl.useFallback = true
		fl.logger = log.New(os.Stderr, "", 0)
	} else {
		fl.logFile = file
		fl.logger = log.New(file, "", 0)
	}

	logFileLogger.Printf("File logger ready: path=%q, fallback=%v", fl.Path(), fl.useFallback)

	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()
	if globalFileLogger != nil {
		globalFileLogger.Close()
	}
	globalFileLogger = fl
	return nil
}

func openLogFile(logDir, fileName string) (*os.File, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(filepath.Join(logDir, fileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// Path returns the log file path, or "" when logging to stderr.
func (fl *FileLogger) Path() string {
	if fl.useFallback {
		return ""
	}
	return filepath.Join(fl.logDir, fl.fileName)
}

// Log writes one line: [timestamp] [LEVEL] [category] message.
func (fl *FileLogger) Log(level LogLevel, category, format string, args ...any) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	timestamp := time.Now().UTC().Format(time.RFC3339)
	fl.logger.Printf("[%s] [%s] [%s] %s", timestamp, level, category, fmt.Sprintf(format, args...))

	if fl.logFile != nil {
		if err := fl.logFile.Sync(); err != nil {
			log.Printf("WARNING: Failed to sync log file: %v", err)
		}
	}
}

// Close flushes and closes the log file. Sync failures are reported but do
// not keep the file open.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.logFile == nil {
		return nil
	}
	if err := fl.logFile.Sync(); err != nil {
		log.Printf("WARNING: Failed to sync log file before close: %v", err)
	}
	err := fl.logFile.Close()
	fl.logFile = nil
	return err
}

func logGlobal(level LogLevel, category, format string, args ...any) {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()

	if globalFileLogger != nil {
		globalFileLogger.Log(level, category, format, args...)
	}
}

// LogInfo logs an informational message to the global file logger, if any.
func LogInfo(category, format string, args ...any) {
	logGlobal(LogLevelInfo, category, format, args...)
}

// LogWarn logs a warning.
func LogWarn(category, format string, args ...any) {
	logGlobal(LogLevelWarn, category, format, args...)
}

// LogError logs an error.
func LogError(category, format string, args ...any) {
	logGlobal(LogLevelError, category, format, args...)
}

// LogDebug logs a debug message.
func LogDebug(category, format string, args ...any) {
	logGlobal(LogLevelDebug, category, format, args...)
}

// CloseGlobalLogger closes and clears the global file logger.
func CloseGlobalLogger() error {
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()

	if globalFileLogger == nil {
		return nil
	}
	err := globalFileLogger.Close()
	globalFileLogger = nil
	return err
}
