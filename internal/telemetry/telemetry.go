// Package telemetry provides OpenTelemetry tracing for pyramid searches.
package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "pyramid"
	serviceVersion = "0.1.0"

	honeycombTracesURL = "https://api.honeycomb.io/v1/traces"
)

// Honeycomb holds the credentials used to export traces to Honeycomb.
type Honeycomb struct {
	APIKey  string
	Dataset string
}

// Enabled returns true if an API key is configured.
func (h Honeycomb) Enabled() bool {
	return h.APIKey != ""
}

// Headers returns the Honeycomb request headers. The dataset defaults to the
// service name.
func (h Honeycomb) Headers() map[string]string {
	dataset := h.Dataset
	if dataset == "" {
		dataset = serviceName
	}
	return map[string]string{
		"x-honeycomb-team":    h.APIKey,
		"x-honeycomb-dataset": dataset,
	}
}

// ExporterOptions points the OTLP exporter at Honeycomb. Without an API key
// it returns nil and the exporter reads the OTEL_EXPORTER_OTLP_* variables.
func (h Honeycomb) ExporterOptions() []otlptracehttp.Option {
	if !h.Enabled() {
		return nil
	}
	return []otlptracehttp.Option{
		otlptracehttp.WithEndpointURL(honeycombTracesURL),
		otlptracehttp.WithHeaders(h.Headers()),
	}
}

// Setup installs a global tracer provider that batches spans to Honeycomb,
// or to the endpoint named by the OTEL_* variables when h is disabled.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, h Honeycomb) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx, h.ExporterOptions()...)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// newResource describes this process. Host, OS and runtime come from the SDK
// detectors; the resource is not merged with resource.Default() so no schema
// URL conflict can arise.
func newResource(ctx context.Context) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		),
		resource.WithHost(),
		resource.WithOSType(),
		resource.WithProcessRuntimeName(),
		resource.WithProcessRuntimeVersion(),
		resource.WithTelemetrySDK(),
	)
	if errors.Is(err, resource.ErrPartialResource) {
		// A detector failed; keep what the others found.
		return res, nil
	}
	return res, err
}

// Tracer returns the tracer for one component, such as "pathfinder".
func Tracer(component string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + component)
}

// NoopTracer returns a tracer that records nothing.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(serviceName + "/noop")
}
