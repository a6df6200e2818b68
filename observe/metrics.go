package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Metrics records cache activity.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must return quickly; recording is best-effort.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordCall records one call through the cache with its duration and
	// error status (hit or miss alike).
	RecordCall(ctx context.Context, meta CacheMeta, duration time.Duration, err error)

	// RecordHit records a cache hit.
	RecordHit(ctx context.Context, meta CacheMeta)

	// RecordMiss records a cache miss.
	RecordMiss(ctx context.Context, meta CacheMeta)

	// RecordEviction records an eviction.
	RecordEviction(ctx context.Context, meta CacheMeta)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter        metric.Meter
	callCount    metric.Int64Counter
	errorCount   metric.Int64Counter
	hitCount     metric.Int64Counter
	missCount    metric.Int64Counter
	evictCount   metric.Int64Counter
	durationHist metric.Float64Histogram
}

// newMetrics creates a new Metrics instance with the given meter.
func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	callCount, err := meter.Int64Counter(
		"cache.calls.total",
		metric.WithDescription("Total number of calls through the cache"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"cache.calls.errors",
		metric.WithDescription("Total number of calls whose wrapped function failed"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	hitCount, err := meter.Int64Counter(
		"cache.hits",
		metric.WithDescription("Total number of cache hits"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		return nil, err
	}

	missCount, err := meter.Int64Counter(
		"cache.misses",
		metric.WithDescription("Total number of cache misses"),
		metric.WithUnit("{miss}"),
	)
	if err != nil {
		return nil, err
	}

	evictCount, err := meter.Int64Counter(
		"cache.evictions",
		metric.WithDescription("Total number of evicted entries"),
		metric.WithUnit("{eviction}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"cache.call.duration_ms",
		metric.WithDescription("Call duration in milliseconds, hits and misses alike"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:        meter,
		callCount:    callCount,
		errorCount:   errorCount,
		hitCount:     hitCount,
		missCount:    missCount,
		evictCount:   evictCount,
		durationHist: durationHist,
	}, nil
}

// RecordCall records metrics for one call through the cache.
func (m *metricsImpl) RecordCall(ctx context.Context, meta CacheMeta, duration time.Duration, err error) {
	opt := metric.WithAttributes(meta.attributes()...)

	m.callCount.Add(ctx, 1, opt)
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}
	m.durationHist.Record(ctx, float64(duration.Milliseconds()), opt)
}

func (m *metricsImpl) RecordHit(ctx context.Context, meta CacheMeta) {
	m.hitCount.Add(ctx, 1, metric.WithAttributes(meta.attributes()...))
}

func (m *metricsImpl) RecordMiss(ctx context.Context, meta CacheMeta) {
	m.missCount.Add(ctx, 1, metric.WithAttributes(meta.attributes()...))
}

func (m *metricsImpl) RecordEviction(ctx context.Context, meta CacheMeta) {
	m.evictCount.Add(ctx, 1, metric.WithAttributes(meta.attributes()...))
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (m *noopMetrics) RecordCall(ctx context.Context, meta CacheMeta, duration time.Duration, err error) {
}
func (m *noopMetrics) RecordHit(ctx context.Context, meta CacheMeta)      {}
func (m *noopMetrics) RecordMiss(ctx context.Context, meta CacheMeta)     {}
func (m *noopMetrics) RecordEviction(ctx context.Context, meta CacheMeta) {}

// Ensure implementations satisfy Metrics
var (
	_ Metrics = (*metricsImpl)(nil)
	_ Metrics = (*noopMetrics)(nil)
)
