package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cristianoliveira/headerscroll/cmd"
	"github.com/cristianoliveira/headerscroll/internal/colors"
	"github.com/stretchr/testify/assert"
)

func TestRunSuccess(t *testing.T) {
	code := run([]string{"version"}, func() error { return nil })
	assert.Equal(t, 0, code)
}

func TestRunReportsFailure(t *testing.T) {
	var out, errOut bytes.Buffer
	restore := colors.SetOutput(&out, &errOut)
	defer restore()

	code := run([]string{"replay"}, func() error { return errors.New("accepts 1 arg(s), received 0") })

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "accepts 1 arg(s)")
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range cmd.RootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"demo", "replay", "config", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}
