package snapshots

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/preston-bernstein/triple-crown/internal/domain/seasons"
)

func readManifest(path string) (seasons.Manifest, error) {
	var m seasons.Manifest
	if err := decodeFile(path, &m); err != nil {
		return seasons.Manifest{}, err
	}
	return m, nil
}

// writeManifest replaces the manifest atomically. It reports false when the
// file already held the same content and was left untouched.
func writeManifest(basePath string, m seasons.Manifest) (bool, error) {
	files := m.Files
	if files == nil {
		files = []string{}
	}
	data, err := json.MarshalIndent(struct {
		Files []string `json:"files"`
	}{Files: files}, "", "  ")
	if err != nil {
		return false, err
	}
	data = append(data, '\n')

	path := ManifestPath(basePath)
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, data) {
		return false, nil
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return false, err
	}
	if err := os.Rename(tmp, path); err != nil {
		return false, err
	}
	return true, nil
}
