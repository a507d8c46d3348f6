package providers

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/preston-bernstein/triple-crown/internal/domain/seasons"
	"github.com/preston-bernstein/triple-crown/internal/logging"
	"github.com/preston-bernstein/triple-crown/internal/metrics"
	"github.com/preston-bernstein/triple-crown/internal/tracing"
)

// instrumentedProvider records metrics, spans and debug logs for every fetch.
type instrumentedProvider struct {
	inner    SeasonProvider
	name     string
	logger   *slog.Logger
	recorder *metrics.Recorder
	tracer   trace.Tracer
	now      func() time.Time
}

// NewInstrumentedProvider wraps inner so each attempt is timed and counted.
// Wrap it inside the retrying provider to see individual attempts.
func NewInstrumentedProvider(inner SeasonProvider, name string, logger *slog.Logger, recorder *metrics.Recorder, tp trace.TracerProvider) SeasonProvider {
	return &instrumentedProvider{
		inner:    inner,
		name:     name,
		logger:   logger,
		recorder: recorder,
		tracer:   tracing.Tracer(tp),
		now:      time.Now,
	}
}

func (p *instrumentedProvider) Name() string { return p.name }

func (p *instrumentedProvider) Location(name string) string { return p.inner.Location(name) }

func (p *instrumentedProvider) FetchManifest(ctx context.Context) (seasons.Manifest, error) {
	ctx, done := p.begin(ctx, metrics.KindManifest, seasons.ManifestFile)
	m, err := p.inner.FetchManifest(ctx)
	done(err, slog.Int(logging.FieldCount, len(m.Files)))
	return m, err
}

func (p *instrumentedProvider) FetchSeason(ctx context.Context, name string) (seasons.Record, error) {
	ctx, done := p.begin(ctx, metrics.KindSeason, name)
	rec, err := p.inner.FetchSeason(ctx, name)
	done(err, slog.Int(logging.FieldStartYear, rec.Season.StartYear))
	return rec, err
}

func (p *instrumentedProvider) begin(ctx context.Context, kind, target string) (context.Context, func(error, slog.Attr)) {
	start := p.now()
	location := p.inner.Location(target)
	ctx, span := p.tracer.Start(ctx, "provider.fetch_"+kind, trace.WithAttributes(
		attribute.String(metrics.AttrProvider, p.name),
		attribute.String(logging.FieldPath, location),
	))

	return ctx, func(err error, extra slog.Attr) {
		duration := p.now().Sub(start)
		p.recorder.RecordFetch(p.name, kind, duration, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()

		level := slog.LevelDebug
		msg := "provider fetch complete"
		if err != nil {
			msg = "provider fetch error"
			extra = slog.Any("error", err)
		}
		logWithProvider(ctx, p.logger, level, p.name, msg,
			slog.String(logging.FieldPath, location),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
			extra,
		)
	}
}
