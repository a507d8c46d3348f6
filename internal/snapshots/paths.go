package snapshots

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/preston-bernstein/triple-crown/internal/domain/seasons"
	"github.com/preston-bernstein/triple-crown/internal/providers"
)

// ManifestPath builds the path to the manifest inside a season data directory.
func ManifestPath(basePath string) string {
	return filepath.Join(basePath, seasons.ManifestFile)
}

// SeasonPath builds the path to a season file named in the manifest.
// Names that would resolve outside basePath are rejected as not found.
func SeasonPath(basePath, name string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash("/" + name))
	rel := strings.TrimPrefix(cleaned, string(filepath.Separator))
	if rel == "" || rel == "." {
		return "", fmt.Errorf("invalid season file name %q: %w", name, providers.ErrNotFound)
	}
	if filepath.ToSlash(filepath.Clean(filepath.FromSlash(name))) != filepath.ToSlash(rel) {
		return "", fmt.Errorf("season file %q escapes data directory: %w", name, providers.ErrNotFound)
	}
	return filepath.Join(basePath, rel), nil
}
