package providers

import (
	"context"

	"github.com/preston-bernstein/triple-crown/internal/domain/seasons"
)

// SeasonProvider reads the season manifest and individual season records.
// Names passed to FetchSeason are manifest entries, relative to the provider's data root.
type SeasonProvider interface {
	FetchManifest(ctx context.Context) (seasons.Manifest, error)
	FetchSeason(ctx context.Context, name string) (seasons.Record, error)
	// Location returns where name is read from, for error messages and logs.
	Location(name string) string
}

// Named is implemented by providers that report a stable name for logs and metrics.
type Named interface {
	Name() string
}

// NameOf returns the provider name, or fallback when the provider does not report one.
func NameOf(p SeasonProvider, fallback string) string {
	if n, ok := p.(Named); ok && n.Name() != "" {
		return n.Name()
	}
	return fallback
}
