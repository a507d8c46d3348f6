package testutil

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/preston-bernstein/triple-crown/internal/domain/seasons"
)

// ErrMissing is returned by StaticProvider for names it does not hold.
var ErrMissing = errors.New("missing season file")

// StaticProvider serves a manifest and records from memory. Delays lets a test
// control completion order; Errors injects per-name failures.
type StaticProvider struct {
	Files       []string
	Records     map[string]seasons.Record
	Errors      map[string]error
	Delays      map[string]time.Duration
	ManifestErr error

	mu    sync.Mutex
	calls map[string]int
}

func (p *StaticProvider) Name() string { return "static" }

func (p *StaticProvider) Location(name string) string { return "static/" + name }

func (p *StaticProvider) FetchManifest(ctx context.Context) (seasons.Manifest, error) {
	p.count(seasons.ManifestFile)
	if p.ManifestErr != nil {
		return seasons.Manifest{}, p.ManifestErr
	}
	return seasons.Manifest{Files: append([]string(nil), p.Files...)}, nil
}

func (p *StaticProvider) FetchSeason(ctx context.Context, name string) (seasons.Record, error) {
	p.count(name)
	if d := p.Delays[name]; d > 0 {
		select {
		case <-ctx.Done():
			return seasons.Record{}, ctx.Err()
		case <-time.After(d):
		}
	}
	if err := p.Errors[name]; err != nil {
		return seasons.Record{}, err
	}
	rec, ok := p.Records[name]
	if !ok {
		return seasons.Record{}, ErrMissing
	}
	return rec, nil
}

// Calls returns how many times name (or the manifest file) was fetched.
func (p *StaticProvider) Calls(name string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[name]
}

func (p *StaticProvider) count(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.calls == nil {
		p.calls = make(map[string]int)
	}
	p.calls[name]++
}
