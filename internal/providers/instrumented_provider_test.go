package providers

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/preston-bernstein/triple-crown/internal/metrics"
)

func TestInstrumentedProviderRecordsAttempts(t *testing.T) {
	rec := metrics.NewRecorder()
	fp := &flakeyProvider{failures: 1}
	p := NewInstrumentedProvider(fp, "mem", nil, rec, nil)

	if _, err := p.FetchSeason(context.Background(), "2024.json"); err == nil {
		t.Fatal("expected first attempt to fail")
	}
	if _, err := p.FetchManifest(context.Background()); err != nil {
		t.Fatalf("expected manifest fetch to succeed, got %v", err)
	}

	snap := rec.Snapshot("mem")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected fetch stats %+v", snap)
	}
	if p.Location("x.json") != "mem/x.json" {
		t.Fatalf("expected location passthrough")
	}
}

func TestInstrumentedProviderInsideRetryCountsEachAttempt(t *testing.T) {
	rec := metrics.NewRecorder()
	fp := &flakeyProvider{failures: 2}
	p := noWait(NewRetryingProvider(NewInstrumentedProvider(fp, "mem", nil, rec, nil), nil, "mem", 3, 0))

	if _, err := p.FetchSeason(context.Background(), "2024.json"); err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if got := rec.ProviderCalls("mem"); got != 3 {
		t.Fatalf("expected 3 recorded attempts, got %d", got)
	}
}

func TestInstrumentedProviderLogsStartYearKey(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := NewInstrumentedProvider(&flakeyProvider{}, "mem", logger, nil, nil)

	if _, err := p.FetchSeason(context.Background(), "2024.json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "start_year=2024") {
		t.Fatalf("expected start_year field, got %s", out)
	}
	if strings.Contains(out, " season=") {
		t.Fatalf("expected season key to stay reserved for labels, got %s", out)
	}
}
