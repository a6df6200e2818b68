// Package exporters provides factory functions for creating OpenTelemetry exporters.
package exporters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Sentinel errors for exporter construction.
var (
	// ErrEndpointNotConfigured indicates a required endpoint environment
	// variable is not set.
	ErrEndpointNotConfigured = errors.New("exporters: endpoint not configured")

	// ErrUnknownExporter indicates an unrecognized exporter name.
	ErrUnknownExporter = errors.New("exporters: unknown exporter")
)

// endpointFromEnv returns the first non-empty value among the given
// environment variables.
func endpointFromEnv(vars ...string) string {
	for _, v := range vars {
		if endpoint := os.Getenv(v); endpoint != "" {
			return endpoint
		}
	}
	return ""
}

// NewTracingExporter creates a trace span exporter based on the exporter name.
// Supported exporters: stdout, otlp, jaeger, none
func NewTracingExporter(ctx context.Context, name string) (sdktrace.SpanExporter, error) {
	switch name {
	case "stdout":
		return stdouttrace.New(stdouttrace.WithWriter(os.Stdout))

	case "otlp":
		if endpointFromEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT") == "" {
			return nil, fmt.Errorf("%w: set OTEL_EXPORTER_OTLP_ENDPOINT or OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", ErrEndpointNotConfigured)
		}
		return otlptracegrpc.New(ctx)

	case "jaeger":
		// Jaeger accepts OTLP natively; only the endpoint variable differs.
		if endpointFromEnv("OTEL_EXPORTER_JAEGER_ENDPOINT") == "" {
			return nil, fmt.Errorf("%w: set OTEL_EXPORTER_JAEGER_ENDPOINT", ErrEndpointNotConfigured)
		}
		return otlptracegrpc.New(ctx)

	case "none", "":
		// No-op exporter that discards everything
		return stdouttrace.New(stdouttrace.WithWriter(io.Discard))

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExporter, name)
	}
}

// NewMetricsReader creates a metrics reader based on the exporter name.
// Supported exporters: stdout, otlp, prometheus, none
func NewMetricsReader(ctx context.Context, name string) (sdkmetric.Reader, error) {
	switch name {
	case "stdout":
		exp, err := stdoutmetric.New(stdoutmetric.WithWriter(os.Stdout))
		if err != nil {
			return nil, fmt.Errorf("failed to create stdout metrics exporter: %w", err)
		}
		return sdkmetric.NewPeriodicReader(exp), nil

	case "otlp":
		if endpointFromEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_METRICS_ENDPOINT") == "" {
			return nil, fmt.Errorf("%w: set OTEL_EXPORTER_OTLP_ENDPOINT or OTEL_EXPORTER_OTLP_METRICS_ENDPOINT", ErrEndpointNotConfigured)
		}
		exp, err := otlpmetricgrpc.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP metrics exporter: %w", err)
		}
		return sdkmetric.NewPeriodicReader(exp), nil

	case "prometheus":
		exp, err := prometheus.New()
		if err != nil {
			return nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
		}
		return exp, nil

	case "none", "":
		exp, err := stdoutmetric.New(stdoutmetric.WithWriter(io.Discard))
		if err != nil {
			return nil, err
		}
		return sdkmetric.NewPeriodicReader(exp), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExporter, name)
	}
}
