package fixture

import (
	"context"
	"fmt"
	"sort"

	"github.com/preston-bernstein/triple-crown/internal/domain/seasons"
	"github.com/preston-bernstein/triple-crown/internal/providers"
)

const providerName = "fixture"

// Provider serves seasons from memory; useful for local runs and tests.
type Provider struct {
	files   []string
	records map[string]seasons.Record
	failing map[string]error
}

// New creates a fixture provider with a small, deterministic season history.
func New() *Provider {
	records := defaultRecords()
	files := make([]string, 0, len(records))
	for name := range records {
		files = append(files, name)
	}
	sort.Strings(files)
	return NewWith(files, records)
}

// NewWith creates a fixture provider listing files in the given order.
// Names listed without a record fail with providers.ErrNotFound.
func NewWith(files []string, records map[string]seasons.Record) *Provider {
	return &Provider{
		files:   append([]string(nil), files...),
		records: records,
		failing: make(map[string]error),
	}
}

// Fail makes every fetch of name return err.
func (p *Provider) Fail(name string, err error) *Provider {
	p.failing[name] = err
	return p
}

func (p *Provider) Name() string { return providerName }

func (p *Provider) Location(name string) string { return providerName + ":" + name }

// FetchManifest lists the configured files.
func (p *Provider) FetchManifest(ctx context.Context) (seasons.Manifest, error) {
	if err := ctx.Err(); err != nil {
		return seasons.Manifest{}, err
	}
	if err, ok := p.failing[seasons.ManifestFile]; ok {
		return seasons.Manifest{}, err
	}
	return seasons.Manifest{Files: append([]string(nil), p.files...)}, nil
}

// FetchSeason returns a copy of the named record.
func (p *Provider) FetchSeason(ctx context.Context, name string) (seasons.Record, error) {
	if err := ctx.Err(); err != nil {
		return seasons.Record{}, err
	}
	if err, ok := p.failing[name]; ok {
		return seasons.Record{}, err
	}
	rec, ok := p.records[name]
	if !ok {
		return seasons.Record{}, fmt.Errorf("%s: %w", p.Location(name), providers.ErrNotFound)
	}
	return rec, nil
}

func intPtr(v int) *int { return &v }

func defaultRecords() map[string]seasons.Record {
	return map[string]seasons.Record{
		"2022.json": {
			Season: seasons.Info{StartYear: 2022, EndYear: intPtr(2023), Label: "2022-23"},
			Winners: seasons.Winners{
				Boys: seasons.Division{
					Boatrace: seasons.Name("Riverside College"),
					Buffalo:  seasons.SchoolRecord("Northfield"),
					SAChamps: seasons.Name("Riverside College"),
				},
				Girls: seasons.Division{
					Boatrace: seasons.Name("Northfield"),
					Buffalo:  seasons.SchoolRecord("NORTHFIELD"),
					SAChamps: seasons.Name("northfield "),
				},
			},
		},
		"2023.json": {
			Season: seasons.Info{StartYear: 2023, EndYear: intPtr(2024), Label: "2023-24"},
			Winners: seasons.Winners{
				Boys: seasons.Division{
					Boatrace: seasons.Name("Acme"),
					Buffalo:  seasons.SchoolRecord("acme"),
					SAChamps: seasons.Name("ACME"),
				},
				Girls: seasons.Division{
					Boatrace: seasons.Name("Riverside College"),
					Buffalo:  seasons.Name("Hillcrest"),
				},
			},
		},
		"2024.json": {
			Season: seasons.Info{StartYear: 2024, EndYear: intPtr(2025), Label: "2024-25"},
			Winners: seasons.Winners{
				Boys: seasons.Division{
					Boatrace: seasons.Name("Hillcrest"),
				},
			},
		},
	}
}
