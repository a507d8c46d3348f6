package seasons

import (
	"encoding/json"
	"strings"
)

// ManifestFile is the conventional name of the manifest inside a season data directory.
const ManifestFile = "index.json"

// Manifest lists season record files in the order they were published.
type Manifest struct {
	Files []string `json:"files"`
	// Dropped counts entries of files that were not usable names.
	Dropped int `json:"-"`
}

// UnmarshalJSON reads files leniently: a missing or non-array value is an empty
// list, and non-string or blank entries are dropped. A manifest that is valid
// JSON but not an object also reads as empty.
func (m *Manifest) UnmarshalJSON(data []byte) error {
	*m = Manifest{}
	if !isObject(data) {
		return nil
	}
	var raw struct {
		Files json.RawMessage `json:"files"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw.Files, &entries); err != nil {
		return nil
	}
	for _, entry := range entries {
		var name string
		if err := json.Unmarshal(entry, &name); err != nil || strings.TrimSpace(name) == "" {
			m.Dropped++
			continue
		}
		m.Files = append(m.Files, strings.TrimSpace(name))
	}
	return nil
}
