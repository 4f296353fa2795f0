package main

import (
	"fmt"

	"github.com/cristianoliveira/headerscroll/cmd"
	"github.com/cristianoliveira/headerscroll/internal/config"
	"github.com/cristianoliveira/headerscroll/internal/format"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command.
func NewConfigCmd() *cobra.Command {
	var asTOML bool

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the effective configuration.

Values come from defaults, the config file and HEADERSCROLL_* environment
variables, in that order. Keys that differ from their default are marked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if asTOML {
				data, err := config.MarshalTOML()
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}
			if src := config.Source(); src != "" {
				fmt.Fprintf(out, "config file: %s\n", src)
			} else {
				fmt.Fprintln(out, "config file: none")
			}
			return format.FormatConfig(config.Entries(), out)
		},
	}
	configCmd.Flags().BoolVar(&asTOML, "toml", false, "Print the configuration as TOML")

	return configCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewConfigCmd())
}
