package normalize

import "testing"

func TestCanonical_Scalars(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		expect string
	}{
		{"nil", nil, "null"},
		{"string", "hello", "hello"},
		{"bool_true", true, "true"},
		{"bool_false", false, "false"},
		{"int", 42, "42"},
		{"float_integral", 1.0, "1"},
		{"float_fractional", 0.5, "0.5"},
		{"negative", -3.25, "-3.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Canonical(tt.input); got != tt.expect {
				t.Errorf("Canonical(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestCanonical_ArrayOrderInsensitive(t *testing.T) {
	a := []any{"b", "a", "c"}
	b := []any{"c", "b", "a"}
	if Canonical(a) != Canonical(b) {
		t.Errorf("permuted arrays should encode identically: %q vs %q", Canonical(a), Canonical(b))
	}
	if got := Canonical(a); got != "[a,b,c]" {
		t.Errorf("Canonical = %q, want [a,b,c]", got)
	}
}

func TestCanonical_ObjectKeyOrderInsensitive(t *testing.T) {
	// Go map iteration is already unordered; encode twice to make sure
	// the sort is doing the work, and check the exact form.
	m := map[string]any{"z": 1.0, "a": "x", "m": true}
	want := `{"a":x,"m":true,"z":1}`
	for i := 0; i < 10; i++ {
		if got := Canonical(m); got != want {
			t.Fatalf("Canonical = %q, want %q", got, want)
		}
	}
}

func TestCanonical_Nested(t *testing.T) {
	v := map[string]any{
		"tools": []any{
			map[string]any{"name": "search", "enabled": true},
			map[string]any{"name": "code", "enabled": false},
		},
	}
	w := map[string]any{
		"tools": []any{
			map[string]any{"enabled": false, "name": "code"},
			map[string]any{"enabled": true, "name": "search"},
		},
	}
	if Canonical(v) != Canonical(w) {
		t.Errorf("nested reordering changed encoding:\n%s\n%s", Canonical(v), Canonical(w))
	}
}

func TestCanonical_Idempotent(t *testing.T) {
	v := map[string]any{"a": []any{1.0, 2.0}, "b": nil}
	first := Canonical(v)
	second := Canonical(v)
	if first != second {
		t.Errorf("repeated calls diverge: %q vs %q", first, second)
	}
}

func TestCanonical_UnexpectedType(t *testing.T) {
	type odd struct{ X int }
	// Must not panic; falls back to fmt coercion.
	got := Canonical(odd{X: 1})
	if got == "" {
		t.Error("unexpected type should coerce to a non-empty string")
	}
}

func TestDistinctCount(t *testing.T) {
	tests := []struct {
		name   string
		values []any
		expect int
	}{
		{"empty", nil, 0},
		{"identical", []any{1.0, 1, int64(1)}, 1},
		{"mixed", []any{"a", "b", "a"}, 2},
		{"nil_vs_absent", []any{nil, nil}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DistinctCount(tt.values); got != tt.expect {
				t.Errorf("DistinctCount(%v) = %d, want %d", tt.values, got, tt.expect)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	if !Equal([]any{"x", "y"}, []any{"y", "x"}) {
		t.Error("permuted arrays should be Equal")
	}
	if Equal("a", "b") {
		t.Error("distinct scalars should not be Equal")
	}
}
