package views

import (
	appseasons "github.com/preston-bernstein/triple-crown/internal/app/seasons"
	"github.com/preston-bernstein/triple-crown/internal/crown"
	"github.com/preston-bernstein/triple-crown/internal/domain/seasons"
)

// EventLine is one event winner inside a history entry.
type EventLine struct {
	Event  string `json:"event"`
	School string `json:"school"`
}

// DivisionLine lists one division's winners for a history entry.
type DivisionLine struct {
	Division string      `json:"division"`
	Events   []EventLine `json:"events"`
}

// HistoryEntry is one season in the history list.
type HistoryEntry struct {
	Season     string       `json:"season"`
	BadgeText  string       `json:"badgeText"`
	BadgeClass string       `json:"badgeClass"`
	Boys       DivisionLine `json:"boys"`
	Girls      DivisionLine `json:"girls"`
}

// Awarded reports whether the entry carries a Triple Crown badge.
func (h HistoryEntry) Awarded() bool {
	return h.BadgeClass == BadgeClassAward
}

// History builds history entries in the order given.
func History(list []appseasons.Season) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(list))
	for _, s := range list {
		text, class := historyBadge(s.Boys, s.Girls)
		entries = append(entries, HistoryEntry{
			Season:     s.Label,
			BadgeText:  text,
			BadgeClass: class,
			Boys:       divisionLine(seasons.Boys, s.Boys),
			Girls:      divisionLine(seasons.Girls, s.Girls),
		})
	}
	return entries
}

func historyBadge(boys, girls crown.DivisionResult) (string, string) {
	title := awardTitle(boys.Triple, girls.Triple)
	switch {
	case title == "":
		return NoAwardText, BadgeClassNone
	case boys.Triple && girls.Triple:
		return trophy + title + " - " + boys.Champion + " | " + girls.Champion, BadgeClassAward
	case boys.Triple:
		return trophy + title + " - " + boys.Champion, BadgeClassAward
	default:
		return trophy + title + " - " + girls.Champion, BadgeClassAward
	}
}

func divisionLine(name seasons.DivisionName, r crown.DivisionResult) DivisionLine {
	line := DivisionLine{Division: name.Title(), Events: make([]EventLine, 0, len(seasons.Events))}
	for _, e := range seasons.Events {
		line.Events = append(line.Events, EventLine{Event: e.Title(), School: r.Display(e)})
	}
	return line
}
