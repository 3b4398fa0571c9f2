package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anotherai-dev/versiondiff/internal/loader"
	"github.com/anotherai-dev/versiondiff/internal/schema"
	"github.com/anotherai-dev/versiondiff/internal/validation"
)

var schemaValidateOnly bool

func newSchemaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema <version1> [version2 ...]",
		Short: "Inspect the output schemas of version files",
		Long: `Print the output schema key-paths of the given version files.

With a single file, prints every key-path its output schema declares.
With several, prints only the key-paths all of them share. With
--validate, checks each version file against the version schema instead
and exits non-zero when any file fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: schemaCommandE,
	}

	cmd.Flags().BoolVar(&schemaValidateOnly, "validate", false, "Validate the version files instead of printing key-paths")

	return cmd
}

func schemaCommandE(cmd *cobra.Command, args []string) error {
	records, err := loader.LoadVersions(args)
	if err != nil {
		return fmt.Errorf("failed to load versions: %w", err)
	}

	out := cmd.OutOrStdout()

	if schemaValidateOnly {
		failed := 0
		for i, r := range records {
			errs := validation.ValidateVersionDoc(map[string]any(r))
			if len(errs) == 0 {
				fmt.Fprintf(out, "✅ %s\n", args[i])
				continue
			}
			failed++
			fmt.Fprintf(out, "❌ %s\n", args[i])
			for _, msg := range errs {
				fmt.Fprintf(out, "   - %s\n", msg)
			}
		}
		if failed > 0 {
			return &ValidationFailedError{
				Message: fmt.Sprintf("%d of %d version files failed validation", failed, len(records)),
			}
		}
		return nil
	}

	var schemas []map[string]any
	for i, r := range records {
		s := r.OutputSchema()
		if s == nil {
			return fmt.Errorf("%s has no output_schema", args[i])
		}
		schemas = append(schemas, s)
	}

	var paths []string
	if len(schemas) == 1 {
		paths = schema.KeyPaths(schemas[0])
	} else {
		paths = schema.SharedKeyPaths(schemas)
	}

	if len(paths) == 0 {
		fmt.Fprintln(out, "no shared key-paths")
		return nil
	}
	for _, p := range paths {
		fmt.Fprintln(out, p)
	}
	return nil
}
