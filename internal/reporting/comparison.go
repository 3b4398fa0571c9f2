// Package reporting assembles the side-by-side comparison of a version
// set into a renderable report: key classifications, shared prompt
// content, schema overlap, metric badges and referenced links.
package reporting

import (
	"github.com/anotherai-dev/versiondiff/internal/analyzer"
	"github.com/anotherai-dev/versiondiff/internal/commonality"
	"github.com/anotherai-dev/versiondiff/internal/ranking"
	"github.com/anotherai-dev/versiondiff/internal/schema"
	"github.com/anotherai-dev/versiondiff/internal/version"
)

// Metric fields recognized on version records.
const (
	MetricCost     = "cost_usd"
	MetricDuration = "duration_seconds"
)

// MetricRow carries one metric's per-version values and badges.
type MetricRow struct {
	Name   string          `json:"name"`
	Kind   ranking.Kind    `json:"kind,omitempty"`
	Values []float64       `json:"values"`
	Badges []ranking.Badge `json:"badges"`
}

// VersionSummary is the per-version header line of a report.
type VersionSummary struct {
	File  string `json:"file"`
	Model string `json:"model"`
	// SharedPromptWith is the lowest version index with an identical
	// prompt, or -1 when this version has no prompt to share.
	SharedPromptWith int `json:"shared_prompt_with"`
	// PromptSimilarity scores this version's prompt against the first
	// version's, 0.0-1.0.
	PromptSimilarity float64 `json:"prompt_similarity"`
}

// Comparison is the full report for a version set.
type Comparison struct {
	Versions          []VersionSummary  `json:"versions"`
	MatchingKeys      []string          `json:"matching_keys"`
	DifferingKeys     []string          `json:"differing_keys"`
	SharedPrompt      []version.Message `json:"shared_prompt,omitempty"`
	SharedSchemaPaths []string          `json:"shared_schema_paths,omitempty"`
	Metrics           []MetricRow       `json:"metrics,omitempty"`
	PromptLinks       []string          `json:"prompt_links,omitempty"`
}

// Build runs the comparison engine over the records and assembles the
// report. Files and records are parallel slices.
func Build(files []string, records []version.Record, extractor *commonality.Extractor) *Comparison {
	c := &Comparison{
		MatchingKeys:  analyzer.MatchingKeysExcluding(records, version.FieldModel),
		DifferingKeys: analyzer.DifferingKeys(records),
		SharedPrompt:  analyzer.SharedPromptContent(records, extractor),
	}

	firstPrompt := []version.Message(nil)
	if len(records) > 0 {
		firstPrompt = records[0].Prompt()
	}

	var schemas []map[string]any
	for i, r := range records {
		file := ""
		if i < len(files) {
			file = files[i]
		}
		summary := VersionSummary{
			File:             file,
			Model:            r.Model(),
			SharedPromptWith: -1,
			PromptSimilarity: analyzer.PromptSimilarity(firstPrompt, r.Prompt()),
		}
		if idx, ok := analyzer.FirstSharedIndex(records, i, analyzer.SharePrompt); ok {
			summary.SharedPromptWith = idx
		}
		c.Versions = append(c.Versions, summary)

		if s := r.OutputSchema(); s != nil {
			schemas = append(schemas, s)
		}
	}

	if len(schemas) > 0 {
		c.SharedSchemaPaths = schema.SharedKeyPaths(schemas)
	}

	c.Metrics = buildMetrics(records)
	c.PromptLinks = collectPromptLinks(records)
	return c
}

func buildMetrics(records []version.Record) []MetricRow {
	rows := []struct {
		field string
		kind  ranking.Kind
	}{
		{MetricCost, ranking.KindCost},
		{MetricDuration, ranking.KindDuration},
	}

	var out []MetricRow
	for _, row := range rows {
		values, ok := metricValues(records, row.field)
		if !ok {
			continue
		}
		badges := make([]ranking.Badge, len(values))
		for i, v := range values {
			badges[i] = ranking.Rank(v, values, false, row.kind)
		}
		out = append(out, MetricRow{Name: row.field, Kind: row.kind, Values: values, Badges: badges})
	}
	return out
}

// metricValues extracts a numeric field from every record; the metric
// only ranks when every version carries it.
func metricValues(records []version.Record, field string) ([]float64, bool) {
	if len(records) == 0 {
		return nil, false
	}
	values := make([]float64, len(records))
	for i, r := range records {
		f, ok := asFloat(r[field])
		if !ok {
			return nil, false
		}
		values[i] = f
	}
	return values, true
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func collectPromptLinks(records []version.Record) []string {
	var texts []string
	for _, r := range records {
		for _, m := range r.Prompt() {
			if t := m.Text(); t != "" {
				texts = append(texts, t)
			}
		}
	}
	return ExtractLinks(texts)
}
