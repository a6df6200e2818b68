package memo

import "testing"

// TestStore_GetInsertRemove verifies the basic associative operations.
func TestStore_GetInsertRemove(t *testing.T) {
	s := newStore()

	if _, ok := s.get("missing"); ok {
		t.Error("get() on empty store reported a hit")
	}
	if s.len() != 0 {
		t.Errorf("len() = %d, want 0", s.len())
	}

	s.insert("k", 42)
	v, ok := s.get("k")
	if !ok {
		t.Fatal("get() after insert reported a miss")
	}
	if v != 42 {
		t.Errorf("get() = %v, want 42", v)
	}
	if !s.contains("k") {
		t.Error("contains() = false after insert")
	}
	if s.len() != 1 {
		t.Errorf("len() = %d, want 1", s.len())
	}

	s.remove("k")
	if s.contains("k") {
		t.Error("contains() = true after remove")
	}

	// remove is idempotent
	s.remove("k")
	if s.len() != 0 {
		t.Errorf("len() = %d, want 0", s.len())
	}
}

// TestStore_Overwrite verifies insert replaces an existing value.
func TestStore_Overwrite(t *testing.T) {
	s := newStore()
	s.insert("k", 1)
	s.insert("k", 2)

	v, _ := s.get("k")
	if v != 2 {
		t.Errorf("get() = %v, want 2", v)
	}
	if s.len() != 1 {
		t.Errorf("len() = %d, want 1", s.len())
	}
}
