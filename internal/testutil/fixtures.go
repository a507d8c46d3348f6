package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/preston-bernstein/triple-crown/internal/domain/seasons"
)

// ScenarioJSON is a season file where the boys sweep under three different
// spellings and the girls leave one event empty.
const ScenarioJSON = `{
  "season": {"startYear": 2024, "label": "2023-24"},
  "winners": {
    "boys":  {"boatrace": "Acme", "buffalo": {"school": "acme"}, "sachamps": "ACME"},
    "girls": {"boatrace": "X", "buffalo": "Y", "sachamps": null}
  }
}`

// SampleRecord builds a season record with the given start year and division winners.
func SampleRecord(startYear int, label string, boys, girls seasons.Division) seasons.Record {
	return seasons.Record{
		Season:  seasons.Info{StartYear: startYear, Label: label},
		Winners: seasons.Winners{Boys: boys, Girls: girls},
	}
}

// Sweep returns a division where school won every event.
func Sweep(school string) seasons.Division {
	return seasons.Division{
		Boatrace: seasons.Name(school),
		Buffalo:  seasons.Name(school),
		SAChamps: seasons.Name(school),
	}
}

// WriteSeasonDir writes files (name -> content) into a temp dir and returns it.
func WriteSeasonDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}
