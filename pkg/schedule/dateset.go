package schedule

import (
	"sort"
	"time"
)

// ISODate is the calendar-date layout used throughout the engine.
// Lexicographic order on this layout matches chronological order, so the
// set can stay sorted with plain string comparison.
const ISODate = "2006-01-02"

// FormatDate renders a time as an ISO calendar date, dropping time-of-day.
func FormatDate(t time.Time) string {
	return t.Format(ISODate)
}

// ParseDate parses an ISO calendar date.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(ISODate, date)
}

// DateSet is an ordered, deduplicated collection of ISO calendar dates,
// always kept sorted ascending.
type DateSet struct {
	dates []string
}

// NewDateSet builds a set from the given dates, deduplicating and sorting.
func NewDateSet(dates ...string) DateSet {
	var s DateSet
	for _, d := range dates {
		s.Add(d)
	}
	return s
}

// Len returns the number of dates in the set.
func (s DateSet) Len() int {
	return len(s.dates)
}

// Has reports whether the set contains the date.
func (s DateSet) Has(date string) bool {
	i := sort.SearchStrings(s.dates, date)
	return i < len(s.dates) && s.dates[i] == date
}

// Add inserts the date, keeping ascending order. Duplicates are ignored.
func (s *DateSet) Add(date string) {
	i := sort.SearchStrings(s.dates, date)
	if i < len(s.dates) && s.dates[i] == date {
		return
	}
	s.dates = append(s.dates, "")
	copy(s.dates[i+1:], s.dates[i:])
	s.dates[i] = date
}

// Remove deletes the date if present.
func (s *DateSet) Remove(date string) {
	i := sort.SearchStrings(s.dates, date)
	if i >= len(s.dates) || s.dates[i] != date {
		return
	}
	s.dates = append(s.dates[:i], s.dates[i+1:]...)
}

// Dates returns a copy of the set contents in ascending order.
func (s DateSet) Dates() []string {
	out := make([]string, len(s.dates))
	copy(out, s.dates)
	return out
}

// Union returns a new set containing the dates of both sets.
func (s DateSet) Union(other DateSet) DateSet {
	out := NewDateSet(s.dates...)
	for _, d := range other.dates {
		out.Add(d)
	}
	return out
}
