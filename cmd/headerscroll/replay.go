package main

import (
	"time"

	"github.com/cristianoliveira/headerscroll/cmd"
	"github.com/cristianoliveira/headerscroll/internal/config"
	"github.com/cristianoliveira/headerscroll/internal/format"
	"github.com/cristianoliveira/headerscroll/internal/logging"
	"github.com/cristianoliveira/headerscroll/internal/script"
	"github.com/spf13/cobra"
)

// NewReplayCmd creates the replay command.
func NewReplayCmd() *cobra.Command {
	var formatName string

	replayCmd := &cobra.Command{
		Use:   "replay <script.toml>",
		Short: "Replay a pointer script and print the callback trace",
		Long: `Replay a pointer script against a headless controller.

The script declares the header height, the content areas and an ordered list
of steps (layout, content, root, tick, animate, cancel). Every callback the
controller makes is printed, followed by the final positions.

Settle duration and fling threshold come from the script, or from the
configuration when the script does not set them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ft, err := format.ParseFormatterType(formatName)
			if err != nil {
				return err
			}
			doc, err := script.Load(args[0])
			if err != nil {
				return err
			}
			res := script.Run(doc, script.Options{
				Logger:         logging.With("command", "replay"),
				SettleDuration: time.Duration(config.GetInt(config.KeySettleDurationMS, 200)) * time.Millisecond,
				FlingThreshold: float64(config.GetInt(config.KeyFlingThreshold, 50)),
			})
			logging.Info("replay finished", "script", args[0], "entries", len(res.Entries), "header_y", res.HeaderY)
			return format.NewFormatter(ft).FormatTrace(res, cmd.OutOrStdout())
		},
	}
	replayCmd.Flags().StringVarP(&formatName, "format", "f", string(format.FormatterTypeTable), "Output format: simple, table or json")

	return replayCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewReplayCmd())
}
