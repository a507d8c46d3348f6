// Package tracing sets up OpenTelemetry spans for season loads.
package tracing

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/preston-bernstein/triple-crown/internal/logging"
)

// InstrumentationName names the tracer used across the module.
const InstrumentationName = "github.com/preston-bernstein/triple-crown"

// Config controls span export.
type Config struct {
	Enabled      bool
	ServiceName  string
	Version      string
	OtlpEndpoint string
	OtlpInsecure bool
	// Output receives pretty-printed spans when no OTLP endpoint is set. Defaults to stderr.
	Output io.Writer
}

var exporterFactory = buildExporter

// Setup returns a tracer provider and its shutdown function. When tracing is
// disabled the provider is a no-op and nothing is registered globally.
func Setup(ctx context.Context, cfg Config, logger *slog.Logger) (trace.TracerProvider, func(context.Context) error, error) {
	if !cfg.Enabled {
		return noop.NewTracerProvider(), func(context.Context) error { return nil }, nil
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "triple-crown"
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(strings.TrimSpace(cfg.Version)),
		),
	)
	if err != nil {
		logging.Warn(logger, "otel resource init failed (continuing)", "error", err)
	}

	exporter, err := exporterFactory(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	logging.Info(logger, "otel tracing initialized", "service", serviceName, "endpoint", cfg.OtlpEndpoint)
	return tp, tp.Shutdown, nil
}

func buildExporter(ctx context.Context, cfg Config) (sdktrace.SpanExporter, error) {
	if cfg.OtlpEndpoint != "" {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.OtlpEndpoint)}
		if cfg.OtlpInsecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	return stdouttrace.New(stdouttrace.WithWriter(out), stdouttrace.WithPrettyPrint())
}

// Tracer returns the module tracer from tp, falling back to the global provider.
func Tracer(tp trace.TracerProvider) trace.Tracer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer(InstrumentationName)
}
