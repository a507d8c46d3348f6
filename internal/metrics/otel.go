package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
	writeTextfile     = prometheus.WriteToTextfile
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	TextfilePath string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus gatherer, and a shutdown function. The shutdown
// function writes the gatherer to TextfilePath (when set) before flushing OTLP, since a
// one-shot run has no scrape endpoint.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, prometheus.Gatherer, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "triple-crown"
	}

	promReader, gatherer, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		var textErr error
		if cfg.TextfilePath != "" {
			textErr = writeTextfile(cfg.TextfilePath, gatherer)
		}
		return errors.Join(textErr, provider.Shutdown(c))
	}

	return rec, gatherer, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx            context.Context
	meter          metric.Meter
	fetchAttempts  metric.Int64Counter
	fetchErrors    metric.Int64Counter
	fetchLatencyMs metric.Float64Histogram
	loads          metric.Int64Counter
	loadErrors     metric.Int64Counter
	loadLatencyMs  metric.Float64Histogram
	seasonsLoaded  metric.Int64Counter
	seasonsSkipped metric.Int64Counter
	tripleCrowns   metric.Int64Counter
}

func prometheusComponents() (sdkmetric.Reader, prometheus.Gatherer, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, reg, nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("triple-crown")
	ctx := context.Background()

	fetchAttempts, err := meter.Int64Counter("season_fetch_attempts_total")
	if err != nil {
		return nil, err
	}
	fetchErrors, err := meter.Int64Counter("season_fetch_errors_total")
	if err != nil {
		return nil, err
	}
	fetchLatency, err := meter.Float64Histogram("season_fetch_duration_ms")
	if err != nil {
		return nil, err
	}
	loads, err := meter.Int64Counter("season_loads_total")
	if err != nil {
		return nil, err
	}
	loadErrors, err := meter.Int64Counter("season_load_errors_total")
	if err != nil {
		return nil, err
	}
	loadLatency, err := meter.Float64Histogram("season_load_duration_ms")
	if err != nil {
		return nil, err
	}
	seasonsLoaded, err := meter.Int64Counter("seasons_loaded_total")
	if err != nil {
		return nil, err
	}
	seasonsSkipped, err := meter.Int64Counter("seasons_skipped_total")
	if err != nil {
		return nil, err
	}
	tripleCrowns, err := meter.Int64Counter("triple_crowns_total")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:            ctx,
		meter:          meter,
		fetchAttempts:  fetchAttempts,
		fetchErrors:    fetchErrors,
		fetchLatencyMs: fetchLatency,
		loads:          loads,
		loadErrors:     loadErrors,
		loadLatencyMs:  loadLatency,
		seasonsLoaded:  seasonsLoaded,
		seasonsSkipped: seasonsSkipped,
		tripleCrowns:   tripleCrowns,
	}, nil
}

func (o *otelInstruments) recordFetch(provider, kind string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrProvider, provider),
		attribute.String(AttrKind, kind),
	}
	o.recordCounter(o.fetchAttempts, 1, attrs...)
	o.recordHistogram(o.fetchLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.fetchErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordLoad(out LoadOutcome) {
	if o == nil {
		return
	}
	outcome := "ok"
	if out.Err != nil {
		outcome = "error"
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrMode, out.Mode),
		attribute.String(AttrOutcome, outcome),
	}
	o.recordCounter(o.loads, 1, attrs...)
	o.recordHistogram(o.loadLatencyMs, float64(out.Duration.Milliseconds()), attrs...)
	if out.Err != nil {
		o.recordCounter(o.loadErrors, 1, attrs...)
	}
	modeAttr := attribute.String(AttrMode, out.Mode)
	o.recordCounter(o.seasonsLoaded, int64(out.Seasons), modeAttr)
	o.recordCounter(o.seasonsSkipped, int64(out.Skipped), modeAttr)
	for division, n := range out.Triples {
		o.recordCounter(o.tripleCrowns, int64(n), attribute.String(AttrDivision, division))
	}
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
