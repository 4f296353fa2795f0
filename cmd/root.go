/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/cristianoliveira/headerscroll/internal/colors"
	"github.com/cristianoliveira/headerscroll/internal/config"
	"github.com/cristianoliveira/headerscroll/internal/logging"
	"github.com/cristianoliveira/headerscroll/internal/version"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "headerscroll",
	Short: "Keep a collapsible header in sync with scrolling content.",
	Long: `Keep a collapsible header in sync with scrolling content.

Dragging content up slides the header away; dragging down brings it back.
On release the header settles fully open or fully closed.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initRuntime,
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// initRuntime loads configuration and starts logging before any subcommand.
func initRuntime(cmd *cobra.Command, args []string) error {
	config.Load()
	colors.SetDebug(config.GetBool(config.KeyDebug, false))
	if err := logging.InitGlobal(); err != nil {
		colors.Warning("logging disabled:", err.Error())
	}
	logging.Debug("command started", "command", cmd.Name(), "args", len(args))
	return nil
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true
}
