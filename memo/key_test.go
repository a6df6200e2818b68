package memo

import (
	"errors"
	"testing"
)

// TestComposeKey_Deterministic verifies equal argument lists produce equal keys.
func TestComposeKey_Deterministic(t *testing.T) {
	k1, err := composeKey([]any{1, "two", 3.0})
	if err != nil {
		t.Fatalf("composeKey() error = %v", err)
	}
	k2, err := composeKey([]any{1, "two", 3.0})
	if err != nil {
		t.Fatalf("composeKey() error = %v", err)
	}
	if k1 != k2 {
		t.Errorf("equal args produced distinct keys: %q vs %q", k1, k2)
	}
}

// TestComposeKey_Distinct verifies differing argument lists produce distinct keys.
func TestComposeKey_Distinct(t *testing.T) {
	tests := []struct {
		name string
		a    []any
		b    []any
	}{
		{"different value", []any{1}, []any{2}},
		{"different order", []any{1, 2}, []any{2, 1}},
		{"different length", []any{1}, []any{1, 1}},
		{"different type same text", []any{1}, []any{int64(1)}},
		{"int vs string", []any{1}, []any{"1"}},
		{"positional vs named", []any{1}, []any{Named("x", 1)}},
		{"named order", []any{Named("a", 1), Named("b", 2)}, []any{Named("b", 2), Named("a", 1)}},
		{"named name", []any{Named("a", 1)}, []any{Named("b", 1)}},
		{"nil vs zero", []any{nil}, []any{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ka, err := composeKey(tt.a)
			if err != nil {
				t.Fatalf("composeKey(a) error = %v", err)
			}
			kb, err := composeKey(tt.b)
			if err != nil {
				t.Fatalf("composeKey(b) error = %v", err)
			}
			if ka == kb {
				t.Errorf("distinct args produced equal keys")
			}
		})
	}
}

// TestComposeKey_Unhashable verifies non-comparable arguments are rejected.
func TestComposeKey_Unhashable(t *testing.T) {
	tests := []struct {
		name string
		args []any
	}{
		{"slice", []any{[]int{1, 2}}},
		{"map", []any{map[string]int{"a": 1}}},
		{"func", []any{func() {}}},
		{"named slice", []any{Named("xs", []string{"a"})}},
		{"mixed", []any{1, "ok", []byte("nope")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := composeKey(tt.args)
			if !errors.Is(err, ErrUnhashableArgument) {
				t.Errorf("composeKey() error = %v, want ErrUnhashableArgument", err)
			}
		})
	}
}

// TestComposeKey_HashableValues verifies comparable arguments are accepted.
func TestComposeKey_HashableValues(t *testing.T) {
	type point struct{ X, Y int }

	args := []any{nil, true, 7, int64(7), 2.5, "s", [2]int{1, 2}, point{1, 2}, Named("p", point{3, 4})}
	if _, err := composeKey(args); err != nil {
		t.Errorf("composeKey() error = %v, want nil", err)
	}
}

// TestComposeKey_Empty verifies a zero-argument call still yields a stable key.
func TestComposeKey_Empty(t *testing.T) {
	k1, err := composeKey(nil)
	if err != nil {
		t.Fatalf("composeKey(nil) error = %v", err)
	}
	k2, err := composeKey([]any{})
	if err != nil {
		t.Fatalf("composeKey(empty) error = %v", err)
	}
	if k1 != k2 {
		t.Errorf("nil and empty argument lists produced distinct keys")
	}
}

// TestNamed verifies the NamedArg constructor.
func TestNamed(t *testing.T) {
	na := Named("limit", 10)
	if na.Name != "limit" {
		t.Errorf("Name = %q, want %q", na.Name, "limit")
	}
	if na.Value != 10 {
		t.Errorf("Value = %v, want 10", na.Value)
	}
}
