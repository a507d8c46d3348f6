package snapshots

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/preston-bernstein/triple-crown/internal/domain/seasons"
)

// Writer maintains the manifest for a season data directory. It never writes season records.
type Writer struct {
	basePath string
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// RebuildManifest lists every season file in the directory, newest name first,
// and writes it to index.json. The returned bool is false when the manifest was already current.
func (w *Writer) RebuildManifest() (seasons.Manifest, bool, error) {
	if w == nil {
		return seasons.Manifest{}, false, fmt.Errorf("manifest writer not configured")
	}
	files, err := w.listSeasonFiles()
	if err != nil {
		return seasons.Manifest{}, false, err
	}
	m := seasons.Manifest{Files: files}
	changed, err := writeManifest(w.basePath, m)
	if err != nil {
		return seasons.Manifest{}, false, err
	}
	return m, changed, nil
}

func (w *Writer) listSeasonFiles() ([]string, error) {
	entries, err := os.ReadDir(w.basePath)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" || name == seasons.ManifestFile || strings.HasPrefix(name, ".") {
			continue
		}
		files = append(files, name)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(files)))
	return files, nil
}
