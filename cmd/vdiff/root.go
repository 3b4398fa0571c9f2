package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vdiff",
		Short: "vdiff - compare LLM experiment version files",
		Long: `vdiff compares version definition files from LLM experiments.

It reports which parameters actually differ between versions, extracts the
prompt content the versions share, intersects their output schemas, and
ranks them by cost and latency.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newCompareCommand())
	cmd.AddCommand(newRankCommand())
	cmd.AddCommand(newSchemaCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
