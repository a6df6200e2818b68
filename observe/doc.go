// Package observe provides observability primitives for memoized call caches.
//
// It is a pure instrumentation library: no caching logic, no I/O beyond
// exporter setup. Consumers wire the observer into a cache through
// memo.Hooks and the call middleware.
package observe
