package logging

import (
	"os"
	"path/filepath"

	"github.com/cristianoliveira/headerscroll/internal/config"
)

const filePrefix = "headerscroll_"

// Config holds logging configuration.
type Config struct {
	// Enabled determines whether file logging is active.
	Enabled bool
	// Level is the minimum log level to record.
	Level string
	// MaxFiles is the maximum number of log files to retain.
	MaxFiles int
	// Command is the name of the command being executed.
	Command string
	// PID is the process ID.
	PID int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Enabled:  false,
		Level:    "info",
		MaxFiles: 10,
		Command:  filepath.Base(os.Args[0]),
		PID:      os.Getpid(),
	}
}

// FromGlobalConfig builds a logging Config from the global configuration.
// Debug mode forces the debug level.
func FromGlobalConfig() Config {
	cfg := DefaultConfig()
	cfg.Enabled = config.GetBool(config.KeyLoggingEnabled, false)
	cfg.Level = config.Get(config.KeyLoggingLevel, "info")
	cfg.MaxFiles = config.GetInt(config.KeyLoggingMaxFiles, 10)
	if config.GetBool(config.KeyDebug, false) {
		cfg.Level = "debug"
	}
	return cfg
}

// LogDir returns {state_dir}/logs when writable, {tmp}/headerscroll/logs otherwise.
func LogDir() (string, error) {
	if stateDir := config.Get(config.KeyStateDir, ""); stateDir != "" {
		logDir := filepath.Join(stateDir, "logs")
		if err := os.MkdirAll(logDir, 0700); err == nil && canWrite(logDir) {
			return logDir, nil
		}
	}
	fallback := filepath.Join(os.TempDir(), "headerscroll", "logs")
	if err := os.MkdirAll(fallback, 0700); err != nil {
		return "", err
	}
	return fallback, nil
}

func canWrite(dir string) bool {
	f, err := os.CreateTemp(dir, ".write_test")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}
