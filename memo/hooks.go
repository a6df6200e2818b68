package memo

import "context"

// Hooks carries optional callbacks invoked on cache events. All fields are
// optional; a nil callback is skipped.
//
// Contract:
// - Callbacks run inside the call path, and inside the guard when the cache
//   is thread-safe. They must be cheap and must not call back into the cache.
// - Errors: callbacks have no error return; they must not panic.
type Hooks struct {
	// OnHit is invoked when a key is found in the cache.
	OnHit func(ctx context.Context, key Key)

	// OnMiss is invoked when a key is not found, before the wrapped
	// function runs.
	OnMiss func(ctx context.Context, key Key)

	// OnEvict is invoked when a key is evicted to make room for a new
	// entry. key is the evicted key, not the incoming one.
	OnEvict func(ctx context.Context, key Key)
}

func (h Hooks) hit(ctx context.Context, key Key) {
	if h.OnHit != nil {
		h.OnHit(ctx, key)
	}
}

func (h Hooks) miss(ctx context.Context, key Key) {
	if h.OnMiss != nil {
		h.OnMiss(ctx, key)
	}
}

func (h Hooks) evict(ctx context.Context, key Key) {
	if h.OnEvict != nil {
		h.OnEvict(ctx, key)
	}
}
