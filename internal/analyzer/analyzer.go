// Package analyzer classifies the configuration fields of a version set
// into matching and differing, extracts the prompt content shared across
// versions, and decides which version originates a "shared" badge. It
// holds no state of its own; everything is recomputed per invocation from
// caller-supplied records.
package analyzer

import (
	"sort"

	"github.com/anotherai-dev/versiondiff/internal/normalize"
	"github.com/anotherai-dev/versiondiff/internal/version"
)

// blacklisted identity fields are never part of any key classification.
var blacklist = map[string]struct{}{
	version.FieldID:    {},
	version.FieldAlias: {},
}

// DifferingKeys returns the fields whose values differ between any two of
// the versions, sorted. Model is always excluded here: callers render the
// model in its own column and never as a generic diff. Fewer than two
// versions have nothing to differ on.
func DifferingKeys(versions []version.Record) []string {
	if len(versions) < 2 {
		return nil
	}
	filled := fillAll(versions)

	var out []string
	for _, key := range unionKeys(filled) {
		if key == version.FieldModel {
			continue
		}
		if distinctValues(filled, key) > 1 {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// MatchingKeys returns the fields whose default-filled values are
// identical across all versions, sorted. For a single version every
// non-blacklisted field trivially matches.
func MatchingKeys(versions []version.Record) []string {
	return MatchingKeysExcluding(versions)
}

// MatchingKeysExcluding is MatchingKeys with additional excluded fields,
// used by header-only views that show the model separately.
func MatchingKeysExcluding(versions []version.Record, exclude ...string) []string {
	if len(versions) == 0 {
		return nil
	}
	excluded := make(map[string]struct{}, len(exclude))
	for _, e := range exclude {
		excluded[e] = struct{}{}
	}
	filled := fillAll(versions)

	var out []string
	for _, key := range unionKeys(filled) {
		if _, skip := excluded[key]; skip {
			continue
		}
		if len(filled) == 1 || distinctValues(filled, key) == 1 {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// ShareMode selects which aspects FirstSharedIndex compares.
type ShareMode int

const (
	SharePrompt ShareMode = iota
	ShareSchema
	SharePromptAndSchema
)

// FirstSharedIndex returns the lowest index whose prompt and/or schema
// (per mode) canonicalizes identically to the target's. A target with
// nothing to share — no prompt, no schema, per the mode — never gets an
// origin, so ok is false.
func FirstSharedIndex(versions []version.Record, target int, mode ShareMode) (int, bool) {
	if target < 0 || target >= len(versions) {
		return 0, false
	}
	t := versions[target]
	promptEmpty := len(t.Prompt()) == 0
	schemaEmpty := len(t.OutputSchema()) == 0

	switch mode {
	case SharePrompt:
		if promptEmpty {
			return 0, false
		}
	case ShareSchema:
		if schemaEmpty {
			return 0, false
		}
	case SharePromptAndSchema:
		if promptEmpty && schemaEmpty {
			return 0, false
		}
	}

	wantPrompt := normalize.Canonical(t[version.FieldPrompt])
	wantSchema := normalize.Canonical(t[version.FieldOutputSchema])

	for i, v := range versions {
		if mode == SharePrompt || mode == SharePromptAndSchema {
			if normalize.Canonical(v[version.FieldPrompt]) != wantPrompt {
				continue
			}
		}
		if mode == ShareSchema || mode == SharePromptAndSchema {
			if normalize.Canonical(v[version.FieldOutputSchema]) != wantSchema {
				continue
			}
		}
		return i, true
	}
	return 0, false
}

func fillAll(versions []version.Record) []version.Record {
	filled := make([]version.Record, len(versions))
	for i, v := range versions {
		filled[i] = version.FillDefaults(v)
	}
	return filled
}

// unionKeys collects every non-blacklisted field name present on any
// record.
func unionKeys(versions []version.Record) []string {
	seen := make(map[string]struct{})
	for _, v := range versions {
		for k := range v {
			if _, skip := blacklist[k]; skip {
				continue
			}
			seen[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// distinctValues counts distinct canonical encodings of key across the
// records; absent values encode as null and so compare against explicit
// values naturally.
func distinctValues(versions []version.Record, key string) int {
	values := make([]any, len(versions))
	for i, v := range versions {
		values[i] = v[key]
	}
	return normalize.DistinctCount(values)
}
