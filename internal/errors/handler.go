// Package errors reports failures to the user, on the console for CLI
// commands and in the status line for the demo.
package errors

import (
	stderrors "errors"
	"io/fs"

	"github.com/cristianoliveira/headerscroll/internal/logging"
)

// ErrorHandler receives user-facing messages.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// ColorOutput is the console sink a CLIHandler writes to.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

// CLIHandler prints messages through a ColorOutput.
type CLIHandler struct {
	colors ColorOutput
}

var _ ErrorHandler = (*CLIHandler)(nil)

// NewCLIHandler creates a CLIHandler writing to colors.
func NewCLIHandler(colors ColorOutput) *CLIHandler {
	return &CLIHandler{colors: colors}
}

func (h *CLIHandler) Error(msg string)   { h.colors.Error(msg) }
func (h *CLIHandler) Warning(msg string) { h.colors.Warning(msg) }
func (h *CLIHandler) Info(msg string)    { h.colors.Info(msg) }
func (h *CLIHandler) Success(msg string) { h.colors.Success(msg) }

// Report logs err and shows its user-facing description through h.
// A nil err is ignored.
func Report(h ErrorHandler, op string, err error) {
	if err == nil {
		return
	}
	logging.Error("command failed", "op", op, "error", err.Error())
	h.Error(Describe(err))
}

// Describe turns err into a one-line message for the user.
func Describe(err error) string {
	var pathErr *fs.PathError
	if stderrors.As(err, &pathErr) && stderrors.Is(err, fs.ErrNotExist) {
		return "file not found: " + pathErr.Path
	}
	return err.Error()
}
