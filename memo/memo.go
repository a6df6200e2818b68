package memo

import (
	"context"
	"fmt"
)

// Func is the shape of a function the cache can wrap. Keyword-style
// arguments are passed as NamedArg values created with Named; everything
// else is positional.
type Func func(ctx context.Context, args ...any) (any, error)

// Stats reports cumulative counters for one cache.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Cache memoizes calls to a single wrapped function. Each Wrap call produces
// an independent Cache with its own store, eviction queue, and guard; caches
// are never shared between wrapped functions.
//
// Contract:
// - Concurrency: safe for concurrent use only when built with ThreadSafe.
//   In thread-safe mode all calls are strictly serialized, including
//   invocation of the wrapped function, so at most one invocation runs at a
//   time across the whole cache.
// - Errors: errors from the wrapped function propagate unchanged and are
//   never cached. The only errors the cache itself raises from Call are
//   key-composition failures (ErrUnhashableArgument).
type Cache struct {
	fn       Func
	capacity int // 0 means unbounded; eviction never runs
	policy   Policy
	hooks    Hooks
	guard    guard

	store *store
	queue *evictionQueue
	stats Stats
}

// Option configures a Cache at Wrap time.
type Option func(*Cache) error

// WithCapacity bounds the number of cached entries. n must be positive;
// without this option the cache is unbounded.
func WithCapacity(n int) Option {
	return func(c *Cache) error {
		if n <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidCapacity, n)
		}
		c.capacity = n
		return nil
	}
}

// WithPolicy selects the eviction policy. The default is LRU.
func WithPolicy(p Policy) Option {
	return func(c *Cache) error {
		if p != LRU && p != FIFO {
			return fmt.Errorf("%w: %v", ErrUnsupportedPolicy, p)
		}
		c.policy = p
		return nil
	}
}

// WithPolicyName selects the eviction policy by name ("LRU" or "FIFO").
func WithPolicyName(name string) Option {
	return func(c *Cache) error {
		p, err := ParsePolicy(name)
		if err != nil {
			return err
		}
		c.policy = p
		return nil
	}
}

// ThreadSafe serializes all calls under a single cache-wide lock, held
// across invocation of the wrapped function. This guarantees at most one
// concurrent invocation for the whole cache, not just per key, trading
// parallel throughput for race-free behavior.
func ThreadSafe() Option {
	return func(c *Cache) error {
		c.guard.enabled = true
		return nil
	}
}

// WithHooks attaches event callbacks to the cache.
func WithHooks(h Hooks) Option {
	return func(c *Cache) error {
		c.hooks = h
		return nil
	}
}

// Wrap builds a memoizing cache around fn.
//
// Configuration is validated here, not lazily on the first call: a nil
// function, an unsupported policy, or a non-positive capacity fail
// immediately and no cache is constructed. Defaults are an unbounded,
// LRU-ordered, non-thread-safe cache.
func Wrap(fn Func, opts ...Option) (*Cache, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	c := &Cache{
		fn:     fn,
		policy: LRU,
		store:  newStore(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	c.queue = newEvictionQueue(c.policy)
	return c, nil
}

// Call invokes the wrapped function, returning a cached result when the
// same arguments have been seen before.
//
// The sequence per call: acquire the guard (thread-safe mode), compose the
// key, probe the store. On a hit the policy reorders the queue (LRU) and the
// cached value is returned without invoking the function. On a miss the
// policy's victim is evicted if the cache is at capacity, the function runs
// with the original arguments, and on success the result is stored. An error
// from the function propagates unchanged and nothing is stored, so a later
// call with the same arguments invokes the function again.
func (c *Cache) Call(ctx context.Context, args ...any) (any, error) {
	c.guard.lock()
	defer c.guard.unlock()

	key, err := composeKey(args)
	if err != nil {
		return nil, err
	}

	if value, ok := c.store.get(key); ok {
		c.queue.onHit(key)
		c.stats.Hits++
		c.hooks.hit(ctx, key)
		return value, nil
	}

	c.stats.Misses++
	c.hooks.miss(ctx, key)

	if c.capacity > 0 && c.store.len() >= c.capacity {
		if victim, ok := c.queue.victim(); ok {
			c.store.remove(victim)
			c.stats.Evictions++
			c.hooks.evict(ctx, victim)
		}
	}

	result, err := c.fn(ctx, args...)
	if err != nil {
		return result, err
	}

	c.store.insert(key, result)
	c.queue.onInsert(key)
	return result, nil
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.guard.lock()
	defer c.guard.unlock()
	return c.store.len()
}

// Contains reports whether a result for the given arguments is cached. The
// probe is read-only: it never reorders the eviction queue and does not
// count as an access.
func (c *Cache) Contains(args ...any) (bool, error) {
	key, err := composeKey(args)
	if err != nil {
		return false, err
	}
	c.guard.lock()
	defer c.guard.unlock()
	return c.store.contains(key), nil
}

// Stats returns a snapshot of the cache's cumulative counters.
func (c *Cache) Stats() Stats {
	c.guard.lock()
	defer c.guard.unlock()
	return c.stats
}

// Policy returns the eviction policy the cache was built with.
func (c *Cache) Policy() Policy {
	return c.policy
}

// Capacity returns the configured capacity, or 0 for an unbounded cache.
func (c *Cache) Capacity() int {
	return c.capacity
}
