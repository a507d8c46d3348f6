package runner

import (
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/preston-bernstein/triple-crown/internal/config"
	"github.com/preston-bernstein/triple-crown/internal/logging"
	"github.com/preston-bernstein/triple-crown/internal/metrics"
	"github.com/preston-bernstein/triple-crown/internal/providers"
	"github.com/preston-bernstein/triple-crown/internal/providers/fixture"
	"github.com/preston-bernstein/triple-crown/internal/providers/httpdata"
	"github.com/preston-bernstein/triple-crown/internal/snapshots"
)

// providerFactory assembles the season provider with shared wrappers (instrumentation + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
	tracer  trace.TracerProvider
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder, tp trace.TracerProvider) providerFactory {
	return providerFactory{logger: logger, metrics: recorder, tracer: tp}
}

// build wraps base, or the configured source when base is nil. Every retry
// attempt passes through the instrumentation, so each one is counted.
func (f providerFactory) build(cfg config.Config, base providers.SeasonProvider) providers.SeasonProvider {
	if base == nil {
		base = selectProvider(cfg, f.logger)
	}
	name := providerName(cfg.Source.Kind, base)
	instrumented := providers.NewInstrumentedProvider(base, name, f.logger, f.metrics, f.tracer)
	return providers.NewRetryingProvider(instrumented, f.logger, name, cfg.Load.Retries, cfg.Load.Backoff)
}

func selectProvider(cfg config.Config, logger *slog.Logger) providers.SeasonProvider {
	switch cfg.Source.Kind {
	case "fs", "":
		return snapshots.NewFSStore(cfg.Source.DataDir)
	case "http":
		return httpdata.NewClient(httpdata.Config{
			BaseURL: cfg.Source.BaseURL,
			Timeout: cfg.Load.FetchTimeout,
		})
	case "fixture":
		return fixture.New()
	default:
		logging.Warn(logger, "unknown season source, falling back to fs", slog.String(logging.FieldProvider, cfg.Source.Kind))
		return snapshots.NewFSStore(cfg.Source.DataDir)
	}
}

// providerName returns the name a provider reports, falling back to the configured source kind.
func providerName(raw string, provider providers.SeasonProvider) string {
	fallback := strings.ToLower(strings.TrimSpace(raw))
	if fallback == "" {
		fallback = "provider"
	}
	if provider == nil {
		return fallback
	}
	return strings.ToLower(providers.NameOf(provider, fallback))
}
