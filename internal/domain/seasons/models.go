package seasons

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Event identifies one of the three races that make up the Triple Crown.
type Event string

const (
	EventBoatrace Event = "boatrace"
	EventBuffalo  Event = "buffalo"
	EventSAChamps Event = "sachamps"
)

// Events is the fixed event order used for display and champion selection.
var Events = [3]Event{EventBoatrace, EventBuffalo, EventSAChamps}

// Title returns the column heading for an event.
func (e Event) Title() string {
	switch e {
	case EventBoatrace:
		return "Boatrace"
	case EventBuffalo:
		return "Buffalo"
	case EventSAChamps:
		return "SA Champs"
	default:
		return string(e)
	}
}

// DivisionName names the boys or girls competition.
type DivisionName string

const (
	Boys  DivisionName = "boys"
	Girls DivisionName = "girls"
)

// Title returns the display form of the division name.
func (d DivisionName) Title() string {
	switch d {
	case Boys:
		return "Boys"
	case Girls:
		return "Girls"
	default:
		return string(d)
	}
}

// Info describes which season a record covers.
type Info struct {
	StartYear int    `json:"startYear"`
	EndYear   *int   `json:"endYear,omitempty"`
	Label     string `json:"label,omitempty"`
}

// DisplayLabel returns the label, falling back to the end year and then the start year.
func (i Info) DisplayLabel() string {
	if label := strings.TrimSpace(i.Label); label != "" {
		return label
	}
	if i.EndYear != nil && *i.EndYear != 0 {
		return strconv.Itoa(*i.EndYear)
	}
	return strconv.Itoa(i.StartYear)
}

// Division maps each event to its recorded winner.
type Division struct {
	Boatrace Winner `json:"boatrace"`
	Buffalo  Winner `json:"buffalo"`
	SAChamps Winner `json:"sachamps"`
}

// Winner returns the recorded winner for an event.
func (d Division) Winner(e Event) Winner {
	switch e {
	case EventBoatrace:
		return d.Boatrace
	case EventBuffalo:
		return d.Buffalo
	case EventSAChamps:
		return d.SAChamps
	default:
		return Winner{}
	}
}

// UnmarshalJSON treats anything other than an object as an empty division.
func (d *Division) UnmarshalJSON(data []byte) error {
	*d = Division{}
	if !isObject(data) {
		return nil
	}
	type plain Division
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*d = Division(p)
	return nil
}

// Winners holds both divisions of a season.
type Winners struct {
	Boys  Division `json:"boys"`
	Girls Division `json:"girls"`
}

// Division returns the division by name.
func (w Winners) Division(name DivisionName) Division {
	if name == Girls {
		return w.Girls
	}
	return w.Boys
}

// UnmarshalJSON treats anything other than an object as empty winners.
func (w *Winners) UnmarshalJSON(data []byte) error {
	*w = Winners{}
	if !isObject(data) {
		return nil
	}
	type plain Winners
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*w = Winners(p)
	return nil
}

// ErrInvalidRecord reports a season file that is not a usable season record.
var ErrInvalidRecord = errors.New("invalid season record")

// Record is one season file.
type Record struct {
	Season  Info    `json:"season"`
	Winners Winners `json:"winners"`
}

// UnmarshalJSON requires an object with a season object carrying a numeric
// startYear. Winners stay tolerant.
func (r *Record) UnmarshalJSON(data []byte) error {
	if !isObject(data) {
		return fmt.Errorf("%w: not a JSON object", ErrInvalidRecord)
	}
	var raw struct {
		Season  json.RawMessage `json:"season"`
		Winners Winners         `json:"winners"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !isObject(raw.Season) {
		return fmt.Errorf("%w: missing season object", ErrInvalidRecord)
	}
	var year struct {
		StartYear json.RawMessage `json:"startYear"`
	}
	if err := json.Unmarshal(raw.Season, &year); err != nil {
		return err
	}
	if t := bytes.TrimSpace(year.StartYear); len(t) == 0 || bytes.Equal(t, []byte("null")) {
		return fmt.Errorf("%w: missing season.startYear", ErrInvalidRecord)
	}
	var info Info
	if err := json.Unmarshal(raw.Season, &info); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	*r = Record{Season: info, Winners: raw.Winners}
	return nil
}

func isObject(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
