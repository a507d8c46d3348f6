package tracing

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestSetupDisabledIsNoop(t *testing.T) {
	tp, shutdown, err := Setup(context.Background(), Config{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, span := Tracer(tp).Start(context.Background(), "noop")
	if span.SpanContext().IsValid() {
		t.Fatal("expected no-op span when tracing is disabled")
	}
	span.End()
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected shutdown error: %v", err)
	}
}

func TestSetupStdoutExporterWritesSpans(t *testing.T) {
	var buf bytes.Buffer
	tp, shutdown, err := Setup(context.Background(), Config{Enabled: true, ServiceName: "triple-crown", Output: &buf}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, span := Tracer(tp).Start(context.Background(), "seasons.load")
	span.End()
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected shutdown error: %v", err)
	}
	if !strings.Contains(buf.String(), "seasons.load") {
		t.Fatalf("expected span name in output, got %q", buf.String())
	}
}

func TestSetupExporterError(t *testing.T) {
	orig := exporterFactory
	defer func() { exporterFactory = orig }()
	exporterFactory = func(context.Context, Config) (sdktrace.SpanExporter, error) {
		return nil, errors.New("no exporter")
	}
	if _, _, err := Setup(context.Background(), Config{Enabled: true}, nil); err == nil {
		t.Fatal("expected exporter error")
	}
}
