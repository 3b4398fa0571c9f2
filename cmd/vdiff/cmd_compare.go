package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/anotherai-dev/versiondiff/internal/commonality"
	"github.com/anotherai-dev/versiondiff/internal/loader"
	"github.com/anotherai-dev/versiondiff/internal/reporting"
	"github.com/anotherai-dev/versiondiff/internal/validation"
	"github.com/anotherai-dev/versiondiff/internal/wizard"
)

var (
	compareOutputFormat string
	compareInteractive  bool
	compareValidate     bool
)

func newCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <version1> <version2> [version3 ...]",
		Short: "Compare multiple version definition files",
		Long: `Compare two or more version definition files side by side.

Loads the files (YAML or JSON, optionally gzip or zstd compressed) and
reports which fields differ, which match, the prompt content all versions
share, the output schema key-paths they have in common, and cost/duration
badges where every version carries those metrics.

With --interactive, pass a directory (or nothing, for the current one) and
pick the files from a list instead.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if compareInteractive {
				return cobra.MaximumNArgs(1)(cmd, args)
			}
			return cobra.MinimumNArgs(2)(cmd, args)
		},
		RunE: compareCommandE,
	}

	cmd.Flags().StringVarP(&compareOutputFormat, "format", "f", "table", "Output format: table, json or markdown")
	cmd.Flags().BoolVarP(&compareInteractive, "interactive", "i", false, "Pick version files from a list")
	cmd.Flags().BoolVar(&compareValidate, "validate", false, "Warn when a version file fails schema validation")

	return cmd
}

func compareCommandE(cmd *cobra.Command, args []string) error {
	switch compareOutputFormat {
	case "table", "json", "markdown":
	default:
		return fmt.Errorf("unsupported format %q: must be table, json or markdown", compareOutputFormat)
	}

	files := args
	if compareInteractive {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		candidates, err := wizard.DiscoverVersionFiles(dir)
		if err != nil {
			return err
		}
		files, err = wizard.PickVersionFiles(cmd.InOrStdin(), cmd.OutOrStdout(), candidates)
		if err != nil {
			return err
		}
	}

	records, err := loader.LoadVersions(files)
	if err != nil {
		return fmt.Errorf("failed to load versions: %w", err)
	}

	if compareValidate {
		for i, r := range records {
			for _, msg := range validation.ValidateVersionDoc(map[string]any(r)) {
				slog.Warn("version failed schema validation", "file", files[i], "error", msg)
			}
		}
	}

	report := reporting.Build(files, records, commonality.NewDefault())

	out := cmd.OutOrStdout()
	switch compareOutputFormat {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal comparison report: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "markdown":
		fmt.Fprint(out, reporting.FormatMarkdown(report))
	default:
		printComparisonTable(out, report)
	}
	return nil
}
