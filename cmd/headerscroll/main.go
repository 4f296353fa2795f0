package main

import (
	"os"

	"github.com/cristianoliveira/headerscroll/cmd"
	"github.com/cristianoliveira/headerscroll/internal/errors"
	"github.com/cristianoliveira/headerscroll/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], cmd.Execute))
}

// run executes the CLI and maps failures to an exit code.
func run(args []string, execute func() error) int {
	cmd.RootCmd.SetArgs(args)
	defer logging.ShutdownGlobal()

	if err := execute(); err != nil {
		errors.Report(errors.NewDefaultCLIHandler(), "main", err)
		return 1
	}
	return 0
}
