// Package observability sets up OpenTelemetry tracing for the HTTP API.
package observability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
	"go.uber.org/zap"
)

// ServiceName labels every span
const ServiceName = "wordheist"

// Tracing modes accepted in OTEL_TRACING
const (
	ModeOff    = ""
	ModeStdout = "stdout"
	// ModeOTLP exports over HTTP; the endpoint comes from OTEL_EXPORTER_OTLP_ENDPOINT
	ModeOTLP = "otlp"
)

// Shutdown flushes and stops the tracer provider
type Shutdown func(ctx context.Context) error

// Enabled reports whether mode turns tracing on
func Enabled(mode string) bool {
	return normalize(mode) != ModeOff
}

// Setup installs a global tracer provider for mode. ModeOff installs nothing.
func Setup(ctx context.Context, mode string, logger *zap.Logger) (Shutdown, error) {
	mode = normalize(mode)
	if mode == ModeOff {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := newExporter(ctx, mode)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(ServiceName),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("Tracing initialized", zap.String("mode", mode))
	return tp.Shutdown, nil
}

func newExporter(ctx context.Context, mode string) (sdktrace.SpanExporter, error) {
	switch mode {
	case ModeStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ModeOTLP:
		return otlptracehttp.New(ctx)
	default:
		return nil, fmt.Errorf("unknown tracing mode %q", mode)
	}
}

func normalize(mode string) string {
	return strings.ToLower(strings.TrimSpace(mode))
}
