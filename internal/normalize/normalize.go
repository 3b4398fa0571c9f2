// Package normalize produces canonical, order-independent encodings of
// nested values. Two values compare equal for review purposes iff their
// canonical strings are identical, which turns "is this field the same
// across N versions" into a set-cardinality check.
package normalize

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Null is the canonical encoding of an absent or nil value.
const Null = "null"

// Canonical returns the canonical string encoding of v. It is total and
// deterministic: every value maps to exactly one string, element order in
// arrays and key order in objects never affect the result, and no input
// causes a panic. Unexpected types degrade to their fmt coercion so that
// comparison never fails.
//
// Cyclic values are not expected from the producing layer and are
// undefined behavior.
func Canonical(v any) string {
	switch val := v.(type) {
	case nil:
		return Null
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return formatFloat(val)
	case float32:
		return formatFloat(float64(val))
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case json.Number:
		return val.String()
	case []any:
		return canonicalArray(val)
	case map[string]any:
		return canonicalObject(val)
	case []string:
		elems := make([]any, len(val))
		for i, s := range val {
			elems[i] = s
		}
		return canonicalArray(elems)
	case []map[string]any:
		elems := make([]any, len(val))
		for i, m := range val {
			elems[i] = m
		}
		return canonicalArray(elems)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Equal reports whether a and b have identical canonical encodings.
func Equal(a, b any) bool { return Canonical(a) == Canonical(b) }

// DistinctCount returns the number of distinct canonical encodings in
// values. A field is identical across records iff this is 1.
func DistinctCount(values []any) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[Canonical(v)] = struct{}{}
	}
	return len(seen)
}

func canonicalArray(elems []any) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = Canonical(e)
	}
	// Element order never affects equality.
	sort.Strings(parts)
	return "[" + strings.Join(parts, ",") + "]"
}

func canonicalObject(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(k)
		b.WriteString(`":`)
		b.WriteString(Canonical(m[k]))
	}
	b.WriteByte('}')
	return b.String()
}

// formatFloat renders a number in its shortest round-trip form, with
// integral floats shown without a fractional part ("1" not "1.0") so that
// JSON-decoded and literal values encode identically.
func formatFloat(f float64) string {
	if f == float64(int64(f)) && f < 1e15 && f > -1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
