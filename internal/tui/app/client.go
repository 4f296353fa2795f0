package app

import (
	"fmt"

	"github.com/cristianoliveira/headerscroll/internal/colors"
	"github.com/cristianoliveira/headerscroll/internal/logging"
	"github.com/cristianoliveira/headerscroll/internal/tui/state"
)

// Client defines dependencies needed by the demo command.
type Client interface {
	LoadOptions() (state.Options, error)
	CreateModel(opts state.Options) *state.Model
	RunProgram(model *state.Model) error
}

// DefaultClient is the adapter-based implementation used by CLI wiring.
type DefaultClient struct {
	programRunner ProgramRunner
	optionsLoader OptionsLoader
}

// NewDefaultClient creates a client. Nil arguments fall back to the
// default runner and the config-backed loader.
func NewDefaultClient(programRunner ProgramRunner, optionsLoader OptionsLoader) *DefaultClient {
	if programRunner == nil {
		programRunner = NewDefaultProgramRunner()
	}
	if optionsLoader == nil {
		optionsLoader = NewConfigOptionsLoader()
	}
	return &DefaultClient{
		programRunner: programRunner,
		optionsLoader: optionsLoader,
	}
}

// LoadOptions loads the demo options using the injected OptionsLoader.
func (d *DefaultClient) LoadOptions() (state.Options, error) {
	return d.optionsLoader.Load()
}

// CreateModel builds the demo model.
func (d *DefaultClient) CreateModel(opts state.Options) *state.Model {
	return state.NewModel(opts)
}

// RunProgram starts the bubbletea program using the configured ProgramRunner.
func (d *DefaultClient) RunProgram(model *state.Model) error {
	logging.Info("demo started")
	err := d.programRunner.Run(model)
	model.Close()
	if err != nil {
		colors.Error(fmt.Sprintf("Error running demo: %v", err))
		return err
	}
	logging.Info("demo finished")
	return nil
}
