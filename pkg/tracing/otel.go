package tracing

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "logtriage"

// Tracer returns the tool's tracer. Without InitOTLP it is a no-op.
func Tracer() trace.Tracer {
	return otel.Tracer(serviceName)
}

// InitOTLP installs an OTLP HTTP span exporter when
// OTEL_EXPORTER_OTLP_ENDPOINT is set. Returns a shutdown function that
// must be called before process exit to flush pending spans.
func InitOTLP(ctx context.Context) func() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return func() {}
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		slog.Warn("OTLP exporter disabled", "err", err)
		return func() {}
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		)),
	)
	otel.SetTracerProvider(tp)
	slog.Info("OTLP tracing enabled")

	return func() {
		_ = tp.Shutdown(context.Background())
	}
}
