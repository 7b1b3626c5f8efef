// Package telemetry exports raymaze traces to Honeycomb over OTLP/HTTP.
package telemetry

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-logr/stdr"
	"github.com/google/uuid"
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
	serviceName    = "raymaze"
	serviceVersion = "0.1.0"

	honeycombEndpoint = "https://api.honeycomb.io"
	defaultDataset    = "raymaze"
)

// InstanceID identifies this process in exported traces.
var InstanceID = uuid.NewString()

// HoneycombEnv returns the OTEL_* variables that point the exporter at
// Honeycomb. Headers are only set when apiKey is non-empty; an empty
// dataset falls back to "raymaze".
func HoneycombEnv(apiKey, dataset string) map[string]string {
	env := map[string]string{"OTEL_EXPORTER_OTLP_ENDPOINT": honeycombEndpoint}
	if apiKey == "" {
		return env
	}
	if dataset == "" {
		dataset = defaultDataset
	}
	env["OTEL_EXPORTER_OTLP_HEADERS"] = fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset)
	return env
}

// Setup installs a batching OTLP/HTTP tracer provider as the global one.
// The exporter reads OTEL_EXPORTER_OTLP_ENDPOINT and OTEL_EXPORTER_OTLP_HEADERS;
// see HoneycombEnv. Extra attributes, such as the maze dimensions, are added
// to the resource. Exporter errors go to the standard logger.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, extra ...attribute.KeyValue) (shutdown func(context.Context) error, err error) {
	otel.SetLogger(stdr.New(log.Default()))

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx, extra...)
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

// newResource describes this process. It is not merged with
// resource.Default() to avoid schema URL conflicts.
func newResource(ctx context.Context, extra ...attribute.KeyValue) (*resource.Resource, error) {
	attrs := append([]attribute.KeyValue{
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
		attribute.String("service.instance.id", InstanceID),
		attribute.String("host.name", hostname()),
	}, extra...)

	return resource.New(ctx,
		resource.WithAttributes(attrs...),
		resource.WithTelemetrySDK(),
		resource.WithOSType(),
		resource.WithProcessRuntimeName(),
		resource.WithProcessRuntimeVersion(),
	)
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("raymaze/" + name)
}

// NoopTracer returns a tracer whose spans are never recorded.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("raymaze/noop")
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
