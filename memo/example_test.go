package memo_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonwraymond/memoize/memo"
)

func ExampleWrap() {
	calls := 0
	square := func(ctx context.Context, args ...any) (any, error) {
		calls++
		n := args[0].(int)
		return n * n, nil
	}

	cached, _ := memo.Wrap(square)
	ctx := context.Background()

	v1, _ := cached.Call(ctx, 7)
	v2, _ := cached.Call(ctx, 7)

	fmt.Println("results:", v1, v2)
	fmt.Println("invocations:", calls)
	// Output:
	// results: 49 49
	// invocations: 1
}

func ExampleWithCapacity() {
	fn := func(ctx context.Context, args ...any) (any, error) {
		return args[0], nil
	}

	// FIFO with room for two entries: the oldest insertion goes first,
	// even when it was just accessed.
	cached, _ := memo.Wrap(fn, memo.WithCapacity(2), memo.WithPolicy(memo.FIFO))
	ctx := context.Background()

	_, _ = cached.Call(ctx, "A")
	_, _ = cached.Call(ctx, "B")
	_, _ = cached.Call(ctx, "A") // hit, but FIFO ignores accesses
	_, _ = cached.Call(ctx, "C") // evicts A

	hasA, _ := cached.Contains("A")
	hasB, _ := cached.Contains("B")
	fmt.Println("A cached:", hasA)
	fmt.Println("B cached:", hasB)
	// Output:
	// A cached: false
	// B cached: true
}

func ExampleNamed() {
	fn := func(ctx context.Context, args ...any) (any, error) {
		return "rendered", nil
	}

	cached, _ := memo.Wrap(fn)
	ctx := context.Background()

	// Named arguments are part of the key in the order they are supplied.
	_, _ = cached.Call(ctx, "report", memo.Named("width", 80), memo.Named("color", true))
	_, _ = cached.Call(ctx, "report", memo.Named("color", true), memo.Named("width", 80))

	fmt.Println("entries:", cached.Len())
	// Output:
	// entries: 2
}

func ExampleCache_Stats() {
	fn := func(ctx context.Context, args ...any) (any, error) {
		return args[0], nil
	}

	cached, _ := memo.Wrap(fn, memo.WithCapacity(1))
	ctx := context.Background()

	_, _ = cached.Call(ctx, 1) // miss
	_, _ = cached.Call(ctx, 1) // hit
	_, _ = cached.Call(ctx, 2) // miss, evicts 1

	stats := cached.Stats()
	fmt.Printf("hits=%d misses=%d evictions=%d\n", stats.Hits, stats.Misses, stats.Evictions)
	// Output:
	// hits=1 misses=2 evictions=1
}

func ExampleParsePolicy() {
	p, _ := memo.ParsePolicy("FIFO")
	fmt.Println("parsed:", p)

	_, err := memo.ParsePolicy("RANDOM")
	fmt.Println("unsupported:", errors.Is(err, memo.ErrUnsupportedPolicy))
	// Output:
	// parsed: FIFO
	// unsupported: true
}
