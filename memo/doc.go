// Package memo provides memoization for function calls.
//
// It wraps a function so that repeated calls with equal arguments return the
// previously computed result without re-invoking the function. Memory use is
// bounded by an optional capacity with a pluggable eviction policy (LRU or
// FIFO), and an optional cache-wide lock makes a wrapped function safe for
// concurrent callers.
package memo
