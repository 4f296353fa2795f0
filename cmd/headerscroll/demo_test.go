package main

import (
	"errors"
	"testing"

	"github.com/cristianoliveira/headerscroll/internal/logging"
	"github.com/cristianoliveira/headerscroll/internal/tui/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDemoClient struct {
	mock.Mock
}

func (m *mockDemoClient) LoadOptions() (state.Options, error) {
	args := m.Called()
	return args.Get(0).(state.Options), args.Error(1)
}

func (m *mockDemoClient) CreateModel(opts state.Options) *state.Model {
	m.Called(opts)
	return state.NewModel(opts)
}

func (m *mockDemoClient) RunProgram(model *state.Model) error {
	return m.Called(model).Error(0)
}

func TestDemoCommandUsesLoadedOptions(t *testing.T) {
	base := state.Options{HeaderHeight: 3, Panes: 2, Logger: logging.Discard()}
	client := &mockDemoClient{}
	client.On("LoadOptions").Return(base, nil)
	client.On("CreateModel", base).Once()
	client.On("RunProgram", mock.Anything).Return(nil)

	c := NewDemoCmd(client)
	c.SetArgs(nil)
	require.NoError(t, c.Execute())
	client.AssertExpectations(t)
}

func TestDemoCommandFlagsOverrideOptions(t *testing.T) {
	base := state.Options{HeaderHeight: 3, Panes: 2, Logger: logging.Discard()}
	want := base
	want.Panes = 4
	want.HeaderHeight = 5

	client := &mockDemoClient{}
	client.On("LoadOptions").Return(base, nil)
	client.On("CreateModel", want).Once()
	client.On("RunProgram", mock.Anything).Return(nil)

	c := NewDemoCmd(client)
	c.SetArgs([]string{"--panes", "4", "--header-height", "5"})
	require.NoError(t, c.Execute())
	client.AssertExpectations(t)
}

func TestDemoCommandPropagatesErrors(t *testing.T) {
	client := &mockDemoClient{}
	client.On("LoadOptions").Return(state.Options{}, errors.New("bad config"))

	c := NewDemoCmd(client)
	c.SetArgs(nil)
	assert.EqualError(t, c.Execute(), "bad config")
	client.AssertNotCalled(t, "RunProgram", mock.Anything)
}

func TestNewDemoCmdPanicsWithoutClient(t *testing.T) {
	assert.Panics(t, func() { NewDemoCmd(nil) })
}
