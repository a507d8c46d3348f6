package testutil

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/preston-bernstein/triple-crown/internal/domain/seasons"
)

func TestNewBufferLoggerCapturesOutput(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello")
	if buf.Len() == 0 {
		t.Fatal("expected log output")
	}
}

func TestStepClockAdvances(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := StepClock(start, time.Second)
	if got := clock(); !got.Equal(start) {
		t.Fatalf("expected start, got %s", got)
	}
	if got := clock(); !got.Equal(start.Add(time.Second)) {
		t.Fatalf("expected one step, got %s", got)
	}
}

func TestStaticProvider(t *testing.T) {
	boom := errors.New("boom")
	p := &StaticProvider{
		Files:   []string{"a.json", "b.json"},
		Records: map[string]seasons.Record{"a.json": SampleRecord(2020, "2019-20", Sweep("Acme"), seasons.Division{})},
		Errors:  map[string]error{"b.json": boom},
	}
	if m, err := p.FetchManifest(context.Background()); err != nil || len(m.Files) != 2 {
		t.Fatalf("unexpected manifest %+v err=%v", m, err)
	}
	if _, err := p.FetchSeason(context.Background(), "a.json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.FetchSeason(context.Background(), "b.json"); !errors.Is(err, boom) {
		t.Fatalf("expected injected error, got %v", err)
	}
	if _, err := p.FetchSeason(context.Background(), "c.json"); !errors.Is(err, ErrMissing) {
		t.Fatalf("expected missing error, got %v", err)
	}
	if p.Calls("a.json") != 1 || p.Calls(seasons.ManifestFile) != 1 {
		t.Fatal("expected calls to be counted")
	}
}

func TestWriteSeasonDir(t *testing.T) {
	dir := WriteSeasonDir(t, map[string]string{"2024.json": ScenarioJSON})
	data, err := os.ReadFile(filepath.Join(dir, "2024.json"))
	if err != nil || string(data) != ScenarioJSON {
		t.Fatalf("expected scenario file, err=%v", err)
	}
}

func TestNewSeasonServer(t *testing.T) {
	srv := NewSeasonServer(t, map[string]string{"index.json": `{"files":[]}`}, "2024.json")

	resp, err := http.Get(srv.URL + "/seasons/index.json")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != `{"files":[]}` {
		t.Fatalf("unexpected response %d %s", resp.StatusCode, body)
	}

	resp, err = http.Get(srv.URL + "/seasons/2024.json")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected failing file to return 500, got %d", resp.StatusCode)
	}
}
