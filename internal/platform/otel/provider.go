// Package otel installs the process tracer provider.
package otel

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	// EnvEndpoint is the OTLP/HTTP collector URL. Empty disables export.
	EnvEndpoint = "TRAININGKEN_OTEL_ENDPOINT"
	// EnvEnabled set to "false" disables export even with an endpoint.
	EnvEnabled = "TRAININGKEN_OTEL_ENABLED"
)

// Endpoint returns the configured collector URL, or "" when export is off.
func Endpoint() string {
	if strings.EqualFold(strings.TrimSpace(os.Getenv(EnvEnabled)), "false") {
		return ""
	}
	return strings.TrimSpace(os.Getenv(EnvEndpoint))
}

// Setup registers W3C trace-context propagation so store requests carry the
// incoming trace, then installs a batching OTLP exporter when Endpoint is
// set. The returned func flushes pending spans; without an exporter it does
// nothing.
func Setup(ctx context.Context, serviceName string) (func(context.Context) error, error) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	endpoint := Endpoint()
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}
	tp, err := newProvider(ctx, serviceName, endpoint)
	if err != nil {
		return func(context.Context) error { return nil }, err
	}
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

func newProvider(ctx context.Context, serviceName, endpoint string) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return nil, fmt.Errorf("trace resource: %w", err)
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	), nil
}
