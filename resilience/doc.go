// Package resilience provides retry with backoff for fallible operations.
//
// The retry invoker is an independent collaborator of the memoization cache:
// it may wrap a memoized function, and each attempt is an ordinary call from
// the cache's perspective. Failed calls are never cached, so a retried
// operation re-invokes the underlying function until it succeeds, after
// which the successful result is served from the cache.
//
//	retry := resilience.NewRetry(resilience.RetryConfig{
//	    MaxAttempts:  3,
//	    InitialDelay: 100 * time.Millisecond,
//	})
//
//	result, err := retry.ExecuteValue(ctx, func(ctx context.Context) (any, error) {
//	    return cached.Call(ctx, query)
//	})
package resilience
