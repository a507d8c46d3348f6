package seasons

import (
	"bytes"
	"encoding/json"
)

// WinnerKind tags which raw shape a winner value arrived in.
type WinnerKind int

const (
	WinnerAbsent WinnerKind = iota
	WinnerName
	WinnerRecord
	WinnerMalformed
)

func (k WinnerKind) String() string {
	switch k {
	case WinnerAbsent:
		return "absent"
	case WinnerName:
		return "name"
	case WinnerRecord:
		return "record"
	default:
		return "malformed"
	}
}

// Winner is one event result as recorded in a season file: nothing, a plain
// school name, or a {"school": ...} record. School holds the raw text for the
// name and record shapes; HasSchool is false for records without a string school.
type Winner struct {
	Kind      WinnerKind
	School    string
	HasSchool bool
}

// Name builds a plain-name winner.
func Name(school string) Winner {
	return Winner{Kind: WinnerName, School: school, HasSchool: true}
}

// SchoolRecord builds a record-shaped winner with a school field.
func SchoolRecord(school string) Winner {
	return Winner{Kind: WinnerRecord, School: school, HasSchool: true}
}

// UnmarshalJSON accepts any JSON value. Shapes that carry no school degrade to
// WinnerAbsent or WinnerMalformed instead of failing the season decode.
func (w *Winner) UnmarshalJSON(data []byte) error {
	*w = Winner{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			w.Kind = WinnerMalformed
			return nil
		}
		*w = Name(s)
	case '{':
		var rec map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &rec); err != nil {
			w.Kind = WinnerMalformed
			return nil
		}
		w.Kind = WinnerRecord
		raw, ok := rec["school"]
		if !ok {
			return nil
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			w.School = s
			w.HasSchool = true
		}
	default:
		w.Kind = WinnerMalformed
	}
	return nil
}

// MarshalJSON writes the value back in the shape it was read.
func (w Winner) MarshalJSON() ([]byte, error) {
	switch w.Kind {
	case WinnerName:
		return json.Marshal(w.School)
	case WinnerRecord:
		if !w.HasSchool {
			return []byte("{}"), nil
		}
		return json.Marshal(struct {
			School string `json:"school"`
		}{School: w.School})
	default:
		return []byte("null"), nil
	}
}
