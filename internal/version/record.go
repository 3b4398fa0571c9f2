// Package version models one configuration variant under comparison: an
// open bag of fields plus the distinguished prompt, schema and model
// entries the analyzer treats specially.
package version

import (
	"github.com/go-viper/mapstructure/v2"
)

// Distinguished field names used by the analyzer.
const (
	FieldID           = "id"
	FieldAlias        = "alias"
	FieldModel        = "model"
	FieldPrompt       = "prompt"
	FieldOutputSchema = "output_schema"
)

// Record is an open mapping from field name to value. Values may be
// scalars, nested objects, arrays or absent; comparison logic treats the
// whole record uniformly through the canonical normalizer and never
// depends on concrete field types.
type Record map[string]any

// Clone returns a shallow copy of the record. Field values are shared;
// callers only add or replace top-level entries.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Model returns the record's model identifier, or "" when absent.
func (r Record) Model() string {
	m, _ := r[FieldModel].(string)
	return m
}

// Prompt returns the record's ordered message sequence. Absent or
// malformed prompts yield nil.
func (r Record) Prompt() []Message {
	return ParseMessages(r[FieldPrompt])
}

// OutputSchema returns the record's output schema document, or nil.
func (r Record) OutputSchema() map[string]any {
	s, _ := r[FieldOutputSchema].(map[string]any)
	return s
}

// Params are the known optional tunables of a version. Pointer fields
// distinguish "absent" from an explicit zero.
type Params struct {
	Temperature      *float64 `mapstructure:"temperature"`
	TopP             *float64 `mapstructure:"top_p"`
	ToolChoice       any      `mapstructure:"tool_choice"`
	MaxTokens        any      `mapstructure:"max_tokens"`
	Stream           *bool    `mapstructure:"stream"`
	PresencePenalty  *float64 `mapstructure:"presence_penalty"`
	FrequencyPenalty *float64 `mapstructure:"frequency_penalty"`
}

// Params decodes the record's known tunables. Unknown extension fields
// stay in the open bag and are untouched by this decoding.
func (r Record) Params() (Params, error) {
	var p Params
	if err := mapstructure.Decode(map[string]any(r), &p); err != nil {
		return Params{}, err
	}
	return p, nil
}
