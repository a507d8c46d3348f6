package crown

import "github.com/preston-bernstein/triple-crown/internal/domain/seasons"

// IsTriple reports whether three comparison keys name the same school.
// Empty keys never form a triple.
func IsTriple(a, b, c string) bool {
	return a != "" && a == b && b == c
}

// EventResult is one event's winner in display and comparison form.
type EventResult struct {
	Event   seasons.Event `json:"event"`
	Display string        `json:"display"`
	Key     string        `json:"key"`
}

// DivisionResult is the resolved outcome of one division for a season.
type DivisionResult struct {
	Events [3]EventResult `json:"events"`
	Triple bool           `json:"isTriple"`
	// Champion is the boatrace display value when Triple is set.
	Champion string `json:"triumphSchool,omitempty"`
}

// Display returns the display value for an event.
func (r DivisionResult) Display(e seasons.Event) string {
	for _, ev := range r.Events {
		if ev.Event == e {
			return ev.Display
		}
	}
	return NoWinner
}

// ResolveDivision normalizes the three events of a division and checks for a sweep.
func ResolveDivision(d seasons.Division) DivisionResult {
	var res DivisionResult
	for i, e := range seasons.Events {
		w := d.Winner(e)
		res.Events[i] = EventResult{
			Event:   e,
			Display: DisplayValue(w),
			Key:     ComparisonKey(w),
		}
	}
	res.Triple = IsTriple(res.Events[0].Key, res.Events[1].Key, res.Events[2].Key)
	if res.Triple {
		res.Champion = res.Events[0].Display
	}
	return res
}
