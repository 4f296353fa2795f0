// Package colors provides colored console output that is mirrored to the
// structured logger when one is set.
package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

const checkmark = "✓"

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	debugStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Logger is the subset of the structured logger that console output mirrors to.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	mu           sync.RWMutex
	debugEnabled bool
	logger       Logger
	stdout       io.Writer = os.Stdout
	stderr       io.Writer = os.Stderr
)

func init() {
	if val := os.Getenv("HEADERSCROLL_DEBUG"); val == "true" || val == "1" {
		debugEnabled = true
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = enabled
}

// DebugEnabled reports whether debug output is on.
func DebugEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return debugEnabled
}

// SetLogger sets the structured logger that console output is mirrored to.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetOutput redirects console output. Nil writers restore the defaults.
// It returns a func that restores the previous writers.
func SetOutput(out, errOut io.Writer) (restore func()) {
	mu.Lock()
	defer mu.Unlock()
	prevOut, prevErr := stdout, stderr
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout, stderr = out, errOut
	return func() {
		mu.Lock()
		defer mu.Unlock()
		stdout, stderr = prevOut, prevErr
	}
}

func current() (Logger, io.Writer, io.Writer) {
	mu.RLock()
	defer mu.RUnlock()
	return logger, stdout, stderr
}

func write(w io.Writer, line string) {
	if _, err := fmt.Fprintln(w, line); err != nil {
		// Last resort; nothing else can report it.
		fmt.Fprintln(os.Stderr, line)
	}
}

// Error outputs an error message to stderr.
func Error(msgs ...string) {
	msg := strings.Join(msgs, " ")
	l, _, errOut := current()
	if l != nil {
		l.Error(msg)
	}
	write(errOut, errorStyle.Render("Error:")+" "+msg)
}

// Warning outputs a warning message to stderr.
func Warning(msgs ...string) {
	msg := strings.Join(msgs, " ")
	l, _, errOut := current()
	if l != nil {
		l.Warn(msg)
	}
	write(errOut, warningStyle.Render("Warning:")+" "+msg)
}

// Info outputs an informational message to stdout.
func Info(msgs ...string) {
	msg := strings.Join(msgs, " ")
	l, out, _ := current()
	if l != nil {
		l.Info(msg)
	}
	write(out, infoStyle.Render(msg))
}

// Success outputs a success message to stdout.
func Success(msgs ...string) {
	msg := strings.Join(msgs, " ")
	l, out, _ := current()
	if l != nil {
		l.Info(msg, "type", "success")
	}
	write(out, successStyle.Render(checkmark)+" "+msg)
}

// Debug outputs a debug message to stderr if debug is enabled.
func Debug(msgs ...string) {
	if !DebugEnabled() {
		return
	}
	msg := strings.Join(msgs, " ")
	l, _, errOut := current()
	if l != nil {
		l.Debug(msg)
	}
	write(errOut, debugStyle.Render("Debug:")+" "+msg)
}
