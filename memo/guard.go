package memo

import "sync"

// guard is the cache-wide mutual exclusion boundary. When enabled, the whole
// read-check-compute-store cycle of a call, including invocation of the
// wrapped function, runs while the lock is held. When disabled, lock and
// unlock are no-ops and concurrent use is the caller's responsibility.
type guard struct {
	mu      sync.Mutex
	enabled bool
}

func (g *guard) lock() {
	if g.enabled {
		g.mu.Lock()
	}
}

func (g *guard) unlock() {
	if g.enabled {
		g.mu.Unlock()
	}
}
