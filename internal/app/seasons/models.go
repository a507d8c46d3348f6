package seasons

import (
	"strings"

	"github.com/preston-bernstein/triple-crown/internal/crown"
	domainseasons "github.com/preston-bernstein/triple-crown/internal/domain/seasons"
)

// Mode selects how a failed season file affects the whole load.
type Mode string

const (
	// ModeStrict aborts the load on the first season file that fails.
	ModeStrict Mode = "strict"
	// ModeLenient skips failed season files and keeps the rest.
	ModeLenient Mode = "lenient"
)

// ParseMode maps a config value to a Mode, defaulting to strict.
func ParseMode(raw string) Mode {
	if strings.EqualFold(strings.TrimSpace(raw), string(ModeLenient)) {
		return ModeLenient
	}
	return ModeStrict
}

// Season is one season record with both divisions resolved.
type Season struct {
	Record    domainseasons.Record `json:"-"`
	Label     string               `json:"seasonLabel"`
	StartYear int                  `json:"startYear"`
	Boys      crown.DivisionResult `json:"boys"`
	Girls     crown.DivisionResult `json:"girls"`
}

// Division returns the resolved result for a division.
func (s Season) Division(name domainseasons.DivisionName) crown.DivisionResult {
	if name == domainseasons.Girls {
		return s.Girls
	}
	return s.Boys
}

// Resolve derives display and Triple Crown results for a record. The record is copied, not modified.
func Resolve(rec domainseasons.Record) Season {
	return Season{
		Record:    rec,
		Label:     rec.Season.DisplayLabel(),
		StartYear: rec.Season.StartYear,
		Boys:      crown.ResolveDivision(rec.Winners.Boys),
		Girls:     crown.ResolveDivision(rec.Winners.Girls),
	}
}

// Skip records a season file left out of a lenient load.
type Skip struct {
	File string `json:"file"`
	Path string `json:"path"`
	Err  error  `json:"-"`
}

// Result is the outcome of one load, newest season first.
type Result struct {
	LoadID  string   `json:"loadId"`
	Mode    Mode     `json:"mode"`
	Seasons []Season `json:"seasons"`
	Skipped []Skip   `json:"skipped,omitempty"`
	// Files is the number of usable manifest entries.
	Files int `json:"files"`
}

// NoSeasons reports a manifest that listed nothing.
func (r Result) NoSeasons() bool {
	return r.Files == 0
}

// AllSkipped reports a lenient load where every listed file failed.
func (r Result) AllSkipped() bool {
	return r.Files > 0 && len(r.Seasons) == 0
}

// Triples counts Triple Crowns per division across the result.
func (r Result) Triples() map[string]int {
	counts := map[string]int{}
	for _, s := range r.Seasons {
		if s.Boys.Triple {
			counts[string(domainseasons.Boys)]++
		}
		if s.Girls.Triple {
			counts[string(domainseasons.Girls)]++
		}
	}
	return counts
}
