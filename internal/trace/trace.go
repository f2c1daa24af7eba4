// Package trace exports machine runs as OpenTelemetry spans. Export is
// opt-in: with no OTLP endpoint configured every call is a no-op.
package trace

import (
	"context"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"turingsim/internal/machine"
)

// Exporter exports run spans to an OTLP endpoint.
type Exporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
	enabled  bool
}

// NewExporter creates an OTLP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is
// set. Returns nil if the endpoint is not configured (disabled); a nil
// Exporter is safe to use.
func NewExporter(ctx context.Context) (*Exporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "turingsim"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &Exporter{
		provider: provider,
		tracer:   provider.Tracer("turingsim/machine"),
		enabled:  true,
	}, nil
}

// RecordRun emits one span covering a completed machine run. The span's
// times are reconstructed from the result's duration so the exported
// span matches the run that actually happened.
func (e *Exporter) RecordRun(ctx context.Context, name string, result *machine.RunResult) {
	if e == nil || !e.enabled || result == nil {
		return
	}

	end := time.Now()
	_, span := e.tracer.Start(ctx, "machine.run",
		oteltrace.WithTimestamp(end.Add(-result.Duration)),
	)
	span.SetAttributes(
		attribute.String("turing.machine", name),
		attribute.Int("turing.steps", result.Steps),
		attribute.String("turing.halt", result.Halt.String()),
		attribute.Int("turing.output_len", len(result.Output)),
	)
	span.End(oteltrace.WithTimestamp(end))
}

// RecordError emits a span for a run that died on the fatal
// missing-transition path.
func (e *Exporter) RecordError(ctx context.Context, name string, runErr error) {
	if e == nil || !e.enabled || runErr == nil {
		return
	}

	_, span := e.tracer.Start(ctx, "machine.run")
	span.SetAttributes(
		attribute.String("turing.machine", name),
		attribute.String("turing.error", runErr.Error()),
	)
	span.End()
}

// Shutdown flushes and closes the exporter.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
