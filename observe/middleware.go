package observe

import (
	"context"
	"time"

	"github.com/jonwraymond/memoize/memo"
)

// Middleware attaches observability (tracing, metrics, logging) to a
// memoized cache.
//
// Contract:
//   - Concurrency: WrapCall returns a thread-safe function iff the underlying
//     cache is thread-safe; the middleware adds no synchronization of its own.
//   - Errors: errors from the wrapped call are recorded and propagated
//     unchanged.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given observability components.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
// This is a convenience function for common use cases.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return &Middleware{
		tracer:  newTracer(obs.Tracer()),
		metrics: metrics,
		logger:  obs.Logger(),
	}, nil
}

// NoopMiddleware returns a Middleware that records nothing.
func NoopMiddleware() *Middleware {
	return &Middleware{
		tracer:  newNoopTracer(),
		metrics: &noopMetrics{},
		logger:  &noopLogger{},
	}
}

// Hooks returns memo.Hooks that feed hit, miss, and eviction events into
// metrics and debug logs. Pass the result to memo.Wrap via memo.WithHooks.
// The callbacks run inside the cache's call path, so they only increment
// counters and emit debug-level logs.
func (m *Middleware) Hooks(meta CacheMeta) memo.Hooks {
	cacheLogger := m.logger.WithCache(meta)
	return memo.Hooks{
		OnHit: func(ctx context.Context, key memo.Key) {
			m.metrics.RecordHit(ctx, meta)
			cacheLogger.Debug(ctx, "cache hit", Field{Key: "key", Value: string(key)})
		},
		OnMiss: func(ctx context.Context, key memo.Key) {
			m.metrics.RecordMiss(ctx, meta)
			cacheLogger.Debug(ctx, "cache miss", Field{Key: "key", Value: string(key)})
		},
		OnEvict: func(ctx context.Context, key memo.Key) {
			m.metrics.RecordEviction(ctx, meta)
			cacheLogger.Debug(ctx, "cache eviction", Field{Key: "key", Value: string(key)})
		},
	}
}

// WrapCall wraps calls through the cache with a span, a duration metric, and
// logging. Hits and misses are both recorded; the per-event split comes from
// Hooks.
func (m *Middleware) WrapCall(meta CacheMeta, cache *memo.Cache) memo.Func {
	cacheLogger := m.logger.WithCache(meta)
	return func(ctx context.Context, args ...any) (any, error) {
		ctx, span := m.tracer.StartSpan(ctx, meta)
		start := time.Now()

		result, err := cache.Call(ctx, args...)

		duration := time.Since(start)
		m.tracer.EndSpan(span, err)
		m.metrics.RecordCall(ctx, meta, duration, err)

		fields := []Field{
			{Key: "duration_ms", Value: float64(duration.Milliseconds())},
		}
		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			cacheLogger.Error(ctx, "memoized call failed", fields...)
		} else {
			cacheLogger.Debug(ctx, "memoized call completed", fields...)
		}

		return result, err
	}
}

// Instrument builds a memoized cache around fn with telemetry attached: hit,
// miss, and eviction hooks plus per-call spans and metrics. It returns the
// instrumented call function and the underlying cache for introspection.
func Instrument(obs Observer, meta CacheMeta, fn memo.Func, opts ...memo.Option) (memo.Func, *memo.Cache, error) {
	if obs == nil {
		return nil, nil, ErrNilObserver
	}
	if meta.Name == "" {
		return nil, nil, ErrMissingCacheName
	}

	mw, err := MiddlewareFromObserver(obs)
	if err != nil {
		return nil, nil, err
	}

	opts = append(opts, memo.WithHooks(mw.Hooks(meta)))
	cache, err := memo.Wrap(fn, opts...)
	if err != nil {
		return nil, nil, err
	}

	return mw.WrapCall(meta, cache), cache, nil
}
