package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anotherai-dev/versiondiff/internal/loader"
	"github.com/anotherai-dev/versiondiff/internal/ranking"
)

var (
	rankOutputFormat string
	rankPercentiles  []float64
)

func newRankCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank <samples.json|samples.yaml>",
		Short: "Rank a population of metric samples",
		Long: `Rank the samples in a metric file against each other.

Each sample gets a best/worst badge with relative text ("3.0x cheaper",
"2.0x slower") based on the sample file's kind and polarity, followed by
interpolated percentiles over the whole population.`,
		Args: cobra.ExactArgs(1),
		RunE: rankCommandE,
	}

	cmd.Flags().StringVarP(&rankOutputFormat, "format", "f", "table", "Output format: table or json")
	cmd.Flags().Float64SliceVarP(&rankPercentiles, "percentiles", "p", ranking.DefaultPercentiles, "Percentile points to report")

	return cmd
}

// rankedSample pairs one sample with its badge.
type rankedSample struct {
	Name  string        `json:"name"`
	Value float64       `json:"value"`
	Badge ranking.Badge `json:"badge"`
}

// rankReport is the full ranking output.
type rankReport struct {
	File        string         `json:"file"`
	Kind        string         `json:"kind,omitempty"`
	Samples     []rankedSample `json:"samples"`
	Percentiles []float64      `json:"percentile_points"`
	Values      []float64      `json:"percentile_values"`
}

func rankCommandE(cmd *cobra.Command, args []string) error {
	if rankOutputFormat != "table" && rankOutputFormat != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", rankOutputFormat)
	}

	set, err := loader.LoadSamples(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}
	if len(set.Samples) == 0 {
		return fmt.Errorf("%s contains no samples", args[0])
	}

	report := buildRankReport(args[0], set)

	out := cmd.OutOrStdout()
	if rankOutputFormat == "json" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal rank report: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	printRankTable(out, report)
	return nil
}

func buildRankReport(file string, set loader.SampleSet) *rankReport {
	values := set.Values()
	kind := ranking.Kind(set.Kind)

	report := &rankReport{
		File:        file,
		Kind:        set.Kind,
		Percentiles: rankPercentiles,
		Values:      ranking.Percentiles(values, rankPercentiles),
	}
	for _, s := range set.Samples {
		report.Samples = append(report.Samples, rankedSample{
			Name:  s.Name,
			Value: s.Value,
			Badge: ranking.Rank(s.Value, values, set.HigherIsBetter, kind),
		})
	}
	return report
}
