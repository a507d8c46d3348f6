package views

import (
	appseasons "github.com/preston-bernstein/triple-crown/internal/app/seasons"
	"github.com/preston-bernstein/triple-crown/internal/crown"
)

// TimelineSide is one division's half of a timeline row.
type TimelineSide struct {
	Name  string `json:"name"`
	Badge string `json:"badge"`
	Win   bool   `json:"win"`
}

// TimelineRow is one season on the timeline: boys, year, girls.
type TimelineRow struct {
	Year  string       `json:"year"`
	Boys  TimelineSide `json:"boys"`
	Girls TimelineSide `json:"girls"`
}

// Timeline builds timeline rows in the order given.
func Timeline(list []appseasons.Season) []TimelineRow {
	rows := make([]TimelineRow, 0, len(list))
	for _, s := range list {
		rows = append(rows, TimelineRow{
			Year:  s.Label,
			Boys:  timelineSide(s.Boys),
			Girls: timelineSide(s.Girls),
		})
	}
	return rows
}

func timelineSide(r crown.DivisionResult) TimelineSide {
	if !r.Triple {
		return TimelineSide{Name: NoTripleCrown, Badge: NoTripleCrown}
	}
	return TimelineSide{Name: r.Champion, Badge: TripleCrown, Win: true}
}
