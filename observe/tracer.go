package observe

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// CacheMeta contains metadata about a memoized cache for telemetry purposes.
type CacheMeta struct {
	Name     string // Cache name (required)
	Policy   string // Eviction policy name, "LRU" or "FIFO" (optional)
	Capacity int    // Configured capacity, 0 for unbounded (optional)
}

// SpanName returns the deterministic span name for calls through this cache.
// Format: cache.call.<name>
func (m CacheMeta) SpanName() string {
	return "cache.call." + m.Name
}

// attributes returns the common telemetry attributes for this cache.
func (m CacheMeta) attributes() []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("cache.name", m.Name),
	}
	if m.Policy != "" {
		attrs = append(attrs, attribute.String("cache.policy", m.Policy))
	}
	if m.Capacity > 0 {
		attrs = append(attrs, attribute.Int("cache.capacity", m.Capacity))
	}
	return attrs
}

// Tracer wraps OpenTelemetry tracing with cache-specific span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for a call through the cache.
	StartSpan(ctx context.Context, meta CacheMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording any error.
	EndSpan(span trace.Span, err error)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// newTracer creates a new Tracer wrapping the given OpenTelemetry tracer.
func newTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartSpan starts a new span with cache metadata as attributes.
func (t *tracerImpl) StartSpan(ctx context.Context, meta CacheMeta) (context.Context, trace.Span) {
	attrs := append(meta.attributes(),
		attribute.Bool("cache.error", false), // Updated in EndSpan if error
	)

	ctx, span := t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)

	return ctx, span
}

// EndSpan ends the span and records the error status if present.
func (t *tracerImpl) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("cache.error", true))
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// noopTracer is a tracer that does nothing.
type noopTracer struct {
	noop trace.Tracer
}

// newNoopTracer creates a no-op tracer.
func newNoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartSpan(ctx context.Context, meta CacheMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndSpan(span trace.Span, err error) {
	span.End()
}

// capacityLabel renders a capacity for logging: "unbounded" when zero.
func capacityLabel(capacity int) string {
	if capacity <= 0 {
		return "unbounded"
	}
	return strconv.Itoa(capacity)
}
