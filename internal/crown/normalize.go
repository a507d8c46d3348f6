// Package crown decides Triple Crown sweeps from recorded event winners.
package crown

import (
	"strings"

	"github.com/preston-bernstein/triple-crown/internal/domain/seasons"
)

// NoWinner is shown when an event has no usable winner.
const NoWinner = "—"

// DisplayValue returns the trimmed school name for a winner, or NoWinner when
// the value is absent, blank or carries no string school.
func DisplayValue(w seasons.Winner) string {
	switch w.Kind {
	case seasons.WinnerName, seasons.WinnerRecord:
		if !w.HasSchool {
			return NoWinner
		}
		if name := strings.TrimSpace(w.School); name != "" {
			return name
		}
	}
	return NoWinner
}

// ComparisonKey returns the lowercase display value, or "" when there is no winner.
func ComparisonKey(w seasons.Winner) string {
	display := DisplayValue(w)
	if display == NoWinner {
		return ""
	}
	return strings.ToLower(display)
}

// IsMalformed reports a winner whose shape could not carry a school at all,
// as opposed to one that was simply left empty.
func IsMalformed(w seasons.Winner) bool {
	switch w.Kind {
	case seasons.WinnerMalformed:
		return true
	case seasons.WinnerRecord:
		return !w.HasSchool
	default:
		return false
	}
}
