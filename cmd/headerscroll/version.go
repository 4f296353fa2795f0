package main

import (
	"encoding/json"
	"fmt"

	"github.com/cristianoliveira/headerscroll/cmd"
	"github.com/cristianoliveira/headerscroll/internal/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(get func() version.Info) *cobra.Command {
	if get == nil {
		panic("NewVersionCmd: version source cannot be nil")
	}
	var asJSON bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := get()
			if asJSON {
				data, err := json.Marshal(info)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			v := info.Version
			if info.Commit != "unknown" {
				v += "+" + info.Commit
			}
			fmt.Fprintf(cmd.OutOrStdout(), "headerscroll version %s (%s)\n", v, info.GoVersion)
			return nil
		},
	}
	versionCmd.Flags().BoolVar(&asJSON, "json", false, "Print version information as JSON")

	return versionCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewVersionCmd(version.Get))
}
