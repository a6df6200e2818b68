package memo

import (
	"context"
	"testing"
)

func echoFunc(ctx context.Context, args ...any) (any, error) {
	if len(args) == 0 {
		return nil, nil
	}
	return args[0], nil
}

// BenchmarkCall_Hit measures a cached call.
func BenchmarkCall_Hit(b *testing.B) {
	c, _ := Wrap(echoFunc)
	ctx := context.Background()

	// Pre-warm
	_, _ = c.Call(ctx, "key")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Call(ctx, "key")
	}
}

// BenchmarkCall_Miss measures an uncached call against a bounded cache, so
// eviction runs on every iteration.
func BenchmarkCall_Miss(b *testing.B) {
	c, _ := Wrap(echoFunc, WithCapacity(64))
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Call(ctx, i)
	}
}

// BenchmarkCall_Hit_FIFO measures a cached call when hits skip reordering.
func BenchmarkCall_Hit_FIFO(b *testing.B) {
	c, _ := Wrap(echoFunc, WithPolicy(FIFO))
	ctx := context.Background()

	_, _ = c.Call(ctx, "key")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Call(ctx, "key")
	}
}

// BenchmarkCall_ThreadSafe_Hit measures guard overhead on the hit path.
func BenchmarkCall_ThreadSafe_Hit(b *testing.B) {
	c, _ := Wrap(echoFunc, ThreadSafe())
	ctx := context.Background()

	_, _ = c.Call(ctx, "key")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Call(ctx, "key")
	}
}

// BenchmarkCall_ThreadSafe_Parallel measures contention on the cache-wide lock.
func BenchmarkCall_ThreadSafe_Parallel(b *testing.B) {
	c, _ := Wrap(echoFunc, WithCapacity(128), ThreadSafe())
	ctx := context.Background()

	// Pre-populate a working set
	for i := 0; i < 100; i++ {
		_, _ = c.Call(ctx, i)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _ = c.Call(ctx, i%100)
			i++
		}
	})
}

// BenchmarkComposeKey measures key derivation.
func BenchmarkComposeKey(b *testing.B) {
	args := []any{"query", 42, true, Named("limit", 10)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = composeKey(args)
	}
}
