// Package logging provides structured logging for headerscroll.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/cristianoliveira/headerscroll/internal/colors"
)

// Logger is the structured logging interface.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, args ...any)
	// Info logs an informational message.
	Info(msg string, args ...any)
	// Warn logs a warning message.
	Warn(msg string, args ...any)
	// Error logs an error message.
	Error(msg string, args ...any)
	// With returns a new logger with additional key-value pairs.
	With(args ...any) Logger
	// Shutdown flushes any buffered logs and releases resources.
	Shutdown() error
}

// loggerImpl is the charmbracelet/log based implementation.
type loggerImpl struct {
	clogger  *clog.Logger
	closer   io.Closer
	redactor *redactor
	path     string
}

// Init opens a rotated JSON log file under the state directory.
// If cfg.Enabled is false, it returns a no-op logger.
func Init(cfg Config) (Logger, error) {
	if !cfg.Enabled {
		return Discard(), nil
	}
	logDir, err := LogDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine log directory: %w", err)
	}
	if err := rotate(logDir, cfg.MaxFiles); err != nil {
		fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
	}
	fname := fmt.Sprintf("%s%s_PID%d_%s.log",
		filePrefix,
		time.Now().Format("20060102_150405"),
		cfg.PID,
		strings.ReplaceAll(cfg.Command, " ", "_"))
	path := filepath.Join(logDir, fname)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	l := newLogger(f, cfg, true)
	l.closer = f
	l.path = path
	return l, nil
}

// New returns a logger writing to w. JSON output is used when asJSON is set,
// the human-readable text format otherwise.
func New(w io.Writer, cfg Config, asJSON bool) Logger {
	return newLogger(w, cfg, asJSON)
}

func newLogger(w io.Writer, cfg Config, asJSON bool) *loggerImpl {
	clogger := clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           parseLevel(cfg.Level),
	})
	if asJSON {
		clogger.SetFormatter(clog.JSONFormatter)
	}
	if cfg.Command != "" {
		clogger = clogger.With("pid", cfg.PID, "command", cfg.Command)
	}
	return &loggerImpl{
		clogger:  clogger,
		redactor: newRedactor(),
	}
}

func parseLevel(level string) clog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return clog.DebugLevel
	case "warn", "warning":
		return clog.WarnLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.InfoLevel
	}
}

func (l *loggerImpl) Debug(msg string, args ...any) { l.log(clog.DebugLevel, msg, args) }
func (l *loggerImpl) Info(msg string, args ...any)  { l.log(clog.InfoLevel, msg, args) }
func (l *loggerImpl) Warn(msg string, args ...any)  { l.log(clog.WarnLevel, msg, args) }
func (l *loggerImpl) Error(msg string, args ...any) { l.log(clog.ErrorLevel, msg, args) }

func (l *loggerImpl) log(level clog.Level, msg string, args []any) {
	l.clogger.Log(level, msg, l.redactor.redact(args)...)
}

func (l *loggerImpl) With(args ...any) Logger {
	return &loggerImpl{
		clogger:  l.clogger.With(l.redactor.redact(args)...),
		closer:   l.closer,
		redactor: l.redactor,
		path:     l.path,
	}
}

func (l *loggerImpl) Shutdown() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (n noopLogger) With(...any) Logger { return n }
func (noopLogger) Shutdown() error      { return nil }

// Discard returns a logger that drops everything.
func Discard() Logger { return noopLogger{} }

var (
	globalLogger     Logger
	globalLoggerOnce sync.Once
	globalLoggerMu   sync.RWMutex
)

// InitGlobal initializes the global logger from the global configuration.
// Only the first call has an effect.
func InitGlobal() error {
	var err error
	globalLoggerOnce.Do(func() {
		var l Logger
		l, err = Init(FromGlobalConfig())
		if err != nil {
			return
		}
		SetGlobal(l)
	})
	if err != nil {
		return err
	}
	if path := CurrentLogFile(); path != "" {
		colors.SetLogger(GetGlobal())
		colors.Debug("Logging to file:", path)
	}
	return nil
}

// SetGlobal replaces the global logger. Nil restores the no-op logger.
func SetGlobal(l Logger) {
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()
	globalLogger = l
}

// GetGlobal returns the global logger, or a no-op logger if not initialized.
func GetGlobal() Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	if globalLogger == nil {
		return noopLogger{}
	}
	return globalLogger
}

// Debug logs a debug message using the global logger.
func Debug(msg string, args ...any) { GetGlobal().Debug(msg, args...) }

// Info logs an info message using the global logger.
func Info(msg string, args ...any) { GetGlobal().Info(msg, args...) }

// Warn logs a warning message using the global logger.
func Warn(msg string, args ...any) { GetGlobal().Warn(msg, args...) }

// Error logs an error message using the global logger.
func Error(msg string, args ...any) { GetGlobal().Error(msg, args...) }

// With returns the global logger with additional key-value pairs.
func With(args ...any) Logger { return GetGlobal().With(args...) }

// ShutdownGlobal shuts down the global logger.
func ShutdownGlobal() error {
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()
	if globalLogger != nil {
		return globalLogger.Shutdown()
	}
	return nil
}

// CurrentLogFile returns the path of the active log file, or "".
func CurrentLogFile() string {
	if impl, ok := GetGlobal().(*loggerImpl); ok {
		return impl.path
	}
	return ""
}
