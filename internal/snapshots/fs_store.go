package snapshots

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/preston-bernstein/triple-crown/internal/domain/seasons"
	"github.com/preston-bernstein/triple-crown/internal/providers"
)

const providerName = "fs"

// FSStore reads the manifest and season files from a data directory.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed season store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

func (s *FSStore) Name() string { return providerName }

// Location returns the file path a manifest entry is read from.
func (s *FSStore) Location(name string) string {
	if s == nil {
		return name
	}
	if name == seasons.ManifestFile {
		return ManifestPath(s.basePath)
	}
	path, err := SeasonPath(s.basePath, name)
	if err != nil {
		return name
	}
	return path
}

// FetchManifest reads {basePath}/index.json.
func (s *FSStore) FetchManifest(ctx context.Context) (seasons.Manifest, error) {
	if s == nil {
		return seasons.Manifest{}, providers.ErrProviderUnavailable
	}
	if err := ctx.Err(); err != nil {
		return seasons.Manifest{}, err
	}
	return readManifest(ManifestPath(s.basePath))
}

// FetchSeason reads {basePath}/{name} as a season record.
func (s *FSStore) FetchSeason(ctx context.Context, name string) (seasons.Record, error) {
	if s == nil {
		return seasons.Record{}, providers.ErrProviderUnavailable
	}
	if err := ctx.Err(); err != nil {
		return seasons.Record{}, err
	}
	path, err := SeasonPath(s.basePath, name)
	if err != nil {
		return seasons.Record{}, err
	}
	var rec seasons.Record
	if err := decodeFile(path, &rec); err != nil {
		return seasons.Record{}, err
	}
	return rec, nil
}

func decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, providers.ErrNotFound)
		}
		return err
	}
	defer f.Close()

	if err := providers.DecodeJSON(f, payload); err != nil {
		return &providers.DecodeError{Path: path, Err: err}
	}
	return nil
}
