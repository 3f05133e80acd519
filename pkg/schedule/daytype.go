// Package schedule implements the recurring-date selection engine used by
// reservation authoring: day-type eligibility, the ordered date set, and the
// two-month calendar window.
package schedule

import (
	"sort"
	"time"
)

// Weekdays is a set of eligible weekdays. The empty set means every day is
// eligible (the "mixed" recurrence).
type Weekdays map[time.Weekday]struct{}

// NewWeekdays builds a weekday set from the given days.
func NewWeekdays(days ...time.Weekday) Weekdays {
	set := make(Weekdays, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return set
}

// Contains reports whether the set includes the weekday.
func (w Weekdays) Contains(d time.Weekday) bool {
	_, ok := w[d]
	return ok
}

// Any reports whether every weekday is eligible.
func (w Weekdays) Any() bool {
	return len(w) == 0
}

// List returns the set contents ordered Sunday first.
func (w Weekdays) List() []time.Weekday {
	out := make([]time.Weekday, 0, len(w))
	for d := range w {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DayType is a named recurrence pattern restricting which weekdays are
// eligible for a reservation date set. A nil *DayType means no pattern has
// been chosen yet and nothing is selectable.
type DayType struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Days  Weekdays `json:"-"`
}

// MixedDayType returns the pattern under which any weekday is eligible.
func MixedDayType() DayType {
	return DayType{ID: "mixed", Label: "Variado"}
}
