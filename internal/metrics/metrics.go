package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type loadStats struct {
	loads   int
	failed  int
	seasons int
	skipped int
	triples map[string]int
}

// Recorder captures lightweight, in-memory metrics about fetches and loads,
// mirroring them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	loads loadStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		loads: loadStats{triples: make(map[string]int)},
		otel:  otel,
	}
}

// RecordFetch counts one manifest or season fetch attempt and stores the last observed latency.
func (r *Recorder) RecordFetch(provider, kind string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetch(provider, kind, duration, err)
	}
}

// LoadOutcome summarizes one aggregator run.
type LoadOutcome struct {
	Mode     string
	Duration time.Duration
	Seasons  int
	Skipped  int
	// Triples counts Triple Crowns per division name.
	Triples map[string]int
	Err     error
}

// RecordLoad tracks a finished load, successful or not.
func (r *Recorder) RecordLoad(out LoadOutcome) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.loads.loads++
	if out.Err != nil {
		r.loads.failed++
	}
	r.loads.seasons += out.Seasons
	r.loads.skipped += out.Skipped
	for division, n := range out.Triples {
		r.loads.triples[division] += n
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLoad(out)
	}
}

// ProviderCalls returns the total fetch attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed fetches recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// LastCallLatency returns the last recorded latency for a provider fetch.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// LoadTotals is a copy of the accumulated load counters.
type LoadTotals struct {
	Loads   int
	Failed  int
	Seasons int
	Skipped int
	Triples map[string]int
}

// Loads returns the accumulated load counters.
func (r *Recorder) Loads() LoadTotals {
	if r == nil {
		return LoadTotals{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	triples := make(map[string]int, len(r.loads.triples))
	for k, v := range r.loads.triples {
		triples[k] = v
	}
	return LoadTotals{
		Loads:   r.loads.loads,
		Failed:  r.loads.failed,
		Seasons: r.loads.seasons,
		Skipped: r.loads.skipped,
		Triples: triples,
	}
}
