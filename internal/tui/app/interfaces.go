// Package app provides TUI application adapters for command wiring.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/headerscroll/internal/config"
	"github.com/cristianoliveira/headerscroll/internal/logging"
	"github.com/cristianoliveira/headerscroll/internal/tui/state"
)

// ProgramRunner defines the interface for running a bubbletea program.
type ProgramRunner interface {
	// Run starts the bubbletea program with the given model.
	Run(model tea.Model) error
}

// DefaultProgramRunner runs the model full screen with cell motion mouse
// reporting, which delivers drag events while a button is held.
type DefaultProgramRunner struct{}

// NewDefaultProgramRunner creates a new DefaultProgramRunner.
func NewDefaultProgramRunner() *DefaultProgramRunner {
	return &DefaultProgramRunner{}
}

// Run starts a bubbletea program with the given model.
func (r *DefaultProgramRunner) Run(model tea.Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

// OptionsLoader resolves the demo options.
type OptionsLoader interface {
	Load() (state.Options, error)
}

// ConfigOptionsLoader reads the demo options from the config package.
type ConfigOptionsLoader struct{}

// NewConfigOptionsLoader creates a new ConfigOptionsLoader.
func NewConfigOptionsLoader() *ConfigOptionsLoader {
	return &ConfigOptionsLoader{}
}

// Load builds options from the current configuration.
func (l *ConfigOptionsLoader) Load() (state.Options, error) {
	return state.Options{
		HeaderHeight:   config.GetInt(config.KeyHeaderHeight, 3),
		YOffset:        config.GetInt(config.KeyYOffset, 0),
		Panes:          config.GetInt(config.KeyContentPanes, 2),
		SettleDuration: time.Duration(config.GetInt(config.KeySettleDurationMS, 200)) * time.Millisecond,
		FlingThreshold: float64(config.GetInt(config.KeyFlingThreshold, 50)),
		FrameInterval:  time.Duration(config.GetInt(config.KeyFrameIntervalMS, 16)) * time.Millisecond,
		Logger:         logging.GetGlobal(),
	}, nil
}
