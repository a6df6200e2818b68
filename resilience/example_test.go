package resilience_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonwraymond/memoize/memo"
	"github.com/jonwraymond/memoize/resilience"
)

func ExampleRetry_ExecuteValue() {
	attempts := 0
	op := func(ctx context.Context) (any, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("transient")
		}
		return "done", nil
	}

	retry := resilience.NewRetry(resilience.RetryConfig{
		MaxAttempts:  5,
		InitialDelay: time.Millisecond,
		Jitter:       false,
	})

	result, _ := retry.ExecuteValue(context.Background(), op)
	fmt.Println("result:", result)
	fmt.Println("attempts:", attempts)
	// Output:
	// result: done
	// attempts: 3
}

// Retrying around a memoized function: failed calls are never cached, so
// each attempt re-invokes the function. Once an attempt succeeds, the result
// is cached and later calls skip the function entirely.
func ExampleRetry_ExecuteValue_memoized() {
	invocations := 0
	flaky := func(ctx context.Context, args ...any) (any, error) {
		invocations++
		if invocations < 2 {
			return nil, errors.New("cold start")
		}
		return fmt.Sprintf("value-for-%v", args[0]), nil
	}

	cached, _ := memo.Wrap(flaky)
	retry := resilience.NewRetry(resilience.RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Jitter:       false,
	})

	ctx := context.Background()
	result, _ := retry.ExecuteValue(ctx, func(ctx context.Context) (any, error) {
		return cached.Call(ctx, "q1")
	})
	fmt.Println("result:", result)
	fmt.Println("invocations after retry:", invocations)

	// Cached now: no further invocation.
	_, _ = cached.Call(ctx, "q1")
	fmt.Println("invocations after hit:", invocations)
	// Output:
	// result: value-for-q1
	// invocations after retry: 2
	// invocations after hit: 2
}
