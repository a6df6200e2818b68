package memo

// store is the key-to-result map backing one cache. It is a pure associative
// container with no eviction knowledge; ordering lives in evictionQueue.
type store struct {
	entries map[Key]any
}

func newStore() *store {
	return &store{entries: make(map[Key]any)}
}

func (s *store) get(k Key) (any, bool) {
	v, ok := s.entries[k]
	return v, ok
}

func (s *store) insert(k Key, v any) {
	s.entries[k] = v
}

func (s *store) remove(k Key) {
	delete(s.entries, k)
}

func (s *store) contains(k Key) bool {
	_, ok := s.entries[k]
	return ok
}

func (s *store) len() int {
	return len(s.entries)
}
