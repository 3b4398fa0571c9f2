package version

// defaultParams is the fixed table of values assumed for optional tunables
// that a version omits, so "absent" and "explicit default" compare equal.
var defaultParams = map[string]any{
	"temperature":       1.0,
	"top_p":             1.0,
	"tool_choice":       "auto",
	"max_tokens":        "unlimited",
	"stream":            false,
	"presence_penalty":  0.0,
	"frequency_penalty": 0.0,
}

// FillDefaults returns a copy of the record with every absent (or
// explicitly nil) known tunable set to its default. The input is never
// mutated.
func FillDefaults(r Record) Record {
	out := r.Clone()
	for field, def := range defaultParams {
		if v, ok := out[field]; !ok || v == nil {
			out[field] = def
		}
	}
	return out
}

// DefaultFor returns the assumed default for a known tunable, if any.
func DefaultFor(field string) (any, bool) {
	v, ok := defaultParams[field]
	return v, ok
}
