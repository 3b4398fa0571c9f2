// Package loader reads version definition and metric sample files from
// disk for the CLI. It understands YAML and JSON, transparently
// decompresses gzip and zstd exports, and loads multiple files
// concurrently.
package loader

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/anotherai-dev/versiondiff/internal/version"
)

// LoadVersions reads every path concurrently, preserving input order.
func LoadVersions(paths []string) ([]version.Record, error) {
	records := make([]version.Record, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			r, err := LoadVersion(path)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}
			records[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// LoadVersion reads a single version definition file.
func LoadVersion(path string) (version.Record, error) {
	data, name, err := readMaybeCompressed(path)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	}
	if doc == nil {
		return version.Record{}, nil
	}
	return version.Record(jsonCompatible(doc).(map[string]any)), nil
}

// Sample is one metric observation attached to a named version or
// completion.
type Sample struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// SampleSet is a population of comparable metric values.
type SampleSet struct {
	Kind           string   `json:"kind,omitempty" yaml:"kind,omitempty"`
	HigherIsBetter bool     `json:"higher_is_better,omitempty" yaml:"higher_is_better,omitempty"`
	Samples        []Sample `json:"samples" yaml:"samples"`
}

// Values returns the bare numeric population.
func (s SampleSet) Values() []float64 {
	out := make([]float64, len(s.Samples))
	for i, sample := range s.Samples {
		out[i] = sample.Value
	}
	return out
}

// LoadSamples reads a metric sample file.
func LoadSamples(path string) (SampleSet, error) {
	data, name, err := readMaybeCompressed(path)
	if err != nil {
		return SampleSet{}, err
	}

	var set SampleSet
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &set)
	default:
		err = json.Unmarshal(data, &set)
	}
	if err != nil {
		return SampleSet{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return set, nil
}

// readMaybeCompressed returns the decompressed file contents and the
// file name with any compression extension stripped, so format detection
// sees the inner extension.
func readMaybeCompressed(path string) ([]byte, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		r, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, "", fmt.Errorf("opening gzip stream: %w", err)
		}
		defer r.Close() //nolint:errcheck
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, "", fmt.Errorf("decompressing gzip: %w", err)
		}
		return data, strings.TrimSuffix(path, filepath.Ext(path)), nil
	case ".zst":
		r, err := zstd.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, "", fmt.Errorf("opening zstd stream: %w", err)
		}
		defer r.Close()
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, "", fmt.Errorf("decompressing zstd: %w", err)
		}
		return data, strings.TrimSuffix(path, filepath.Ext(path)), nil
	default:
		return raw, path, nil
	}
}

// jsonCompatible rewrites yaml.v3 decoded values into the shapes the
// comparison engine expects (string-keyed maps, float64 numbers).
func jsonCompatible(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = jsonCompatible(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprintf("%v", k)] = jsonCompatible(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = jsonCompatible(item)
		}
		return out
	case int:
		return float64(val)
	case int64:
		return float64(val)
	default:
		return v
	}
}
