// Package views projects resolved seasons into the rows each page shows.
// Triple Crown decisions always come from the resolved division results.
package views

import (
	"strings"

	appseasons "github.com/preston-bernstein/triple-crown/internal/app/seasons"
	"github.com/preston-bernstein/triple-crown/internal/crown"
	"github.com/preston-bernstein/triple-crown/internal/domain/seasons"
)

const (
	// BadgeClassAward marks a season where at least one division swept.
	BadgeClassAward = "badge"
	// BadgeClassNone marks a season with no Triple Crown.
	BadgeClassNone = "badgenowinner"
	// NoAwardText is the history badge for a season with no Triple Crown.
	NoAwardText = "— No Triple Crown awarded —"
	// NoTripleCrown is the timeline name and badge for a division without a sweep.
	NoTripleCrown = "No Triple Crown"
	// TripleCrown is the timeline badge for a division that swept.
	TripleCrown = "Triple Crown"

	trophy = "🏆 "
)

// awardTitle names the divisions that swept, or "" when neither did.
func awardTitle(boys, girls bool) string {
	switch {
	case boys && girls:
		return "Boys & Girls Triple Crown"
	case boys:
		return "Boys Triple Crown"
	case girls:
		return "Girls Triple Crown"
	default:
		return ""
	}
}

func displays(r crown.DivisionResult) [3]string {
	var out [3]string
	for i, e := range seasons.Events {
		out[i] = r.Display(e)
	}
	return out
}

// TableRow is one season in the results table.
type TableRow struct {
	Season      string    `json:"season"`
	StartYear   int       `json:"startYear"`
	Boys        [3]string `json:"boys"`
	Girls       [3]string `json:"girls"`
	BoysTriple  bool      `json:"boysTriple"`
	GirlsTriple bool      `json:"girlsTriple"`
	Badge       string    `json:"badge,omitempty"`
}

// Cells returns the six school cells, boys first.
func (r TableRow) Cells() []string {
	cells := make([]string, 0, 6)
	cells = append(cells, r.Boys[:]...)
	return append(cells, r.Girls[:]...)
}

// Table builds table rows in the order given.
func Table(list []appseasons.Season) []TableRow {
	rows := make([]TableRow, 0, len(list))
	for _, s := range list {
		row := TableRow{
			Season:      s.Label,
			StartYear:   s.StartYear,
			Boys:        displays(s.Boys),
			Girls:       displays(s.Girls),
			BoysTriple:  s.Boys.Triple,
			GirlsTriple: s.Girls.Triple,
		}
		if title := awardTitle(s.Boys.Triple, s.Girls.Triple); title != "" {
			row.Badge = trophy + title
		}
		rows = append(rows, row)
	}
	return rows
}

// FilterTable keeps rows where any school cell contains query, ignoring case.
// The season label is not searched. A blank query keeps every row.
func FilterTable(rows []TableRow, query string) []TableRow {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return rows
	}
	out := make([]TableRow, 0, len(rows))
	for _, row := range rows {
		for _, cell := range row.Cells() {
			if strings.Contains(strings.ToLower(cell), q) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}
