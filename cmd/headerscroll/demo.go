package main

import (
	"github.com/cristianoliveira/headerscroll/cmd"
	"github.com/cristianoliveira/headerscroll/internal/tui/app"
	"github.com/spf13/cobra"
)

// NewDemoCmd creates the demo command with explicit dependencies.
func NewDemoCmd(client app.Client) *cobra.Command {
	if client == nil {
		panic("NewDemoCmd: client dependency cannot be nil")
	}
	var panes, headerHeight int

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive terminal demo",
		Long: `Run the interactive terminal demo.

Drag a pane with the mouse to slide the header away or bring it back.
Press f to treat the next move as a fling, u or d to force the focused
pane's settle direction, o or x to open or hide the header, q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := client.LoadOptions()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("panes") {
				opts.Panes = panes
			}
			if cmd.Flags().Changed("header-height") {
				opts.HeaderHeight = headerHeight
			}
			return client.RunProgram(client.CreateModel(opts))
		},
	}
	demoCmd.Flags().IntVar(&panes, "panes", 2, "Number of content panes")
	demoCmd.Flags().IntVar(&headerHeight, "header-height", 3, "Header height in rows")

	return demoCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewDemoCmd(app.NewDefaultClient(nil, nil)))
}
