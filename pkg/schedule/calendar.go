package schedule

import "time"

// Day is one cell of a rendered month grid with its interaction flags. A
// locked day is committed and non-interactive; a chosen day is interactive
// and removable.
type Day struct {
	Date       string
	InMonth    bool
	Today      bool
	Past       bool
	Selectable bool
	Chosen     bool
	Locked     bool
}

// MonthGrid is a rendered month: full weeks from Sunday to Saturday,
// padded with the neighbouring months' days.
type MonthGrid struct {
	Year  int
	Month time.Month
	Weeks [][]Day
}

// WindowSize is the number of consecutive months rendered simultaneously.
const WindowSize = 2

// Window renders two consecutive months against a single shared selection.
// Each month is independently navigable backward and forward one month at
// a time; the selection set is global across both.
type Window struct {
	sel    *Selection
	months [WindowSize]time.Time
}

// NewWindow opens a calendar window anchored at the month containing
// anchor, with the following month beside it.
func NewWindow(sel *Selection, anchor time.Time) *Window {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	return &Window{
		sel:    sel,
		months: [WindowSize]time.Time{first, first.AddDate(0, 1, 0)},
	}
}

// Selection returns the shared selection the window renders.
func (w *Window) Selection() *Selection {
	return w.sel
}

// Next advances the month at slot by one.
func (w *Window) Next(slot int) {
	if slot < 0 || slot >= WindowSize {
		return
	}
	w.months[slot] = w.months[slot].AddDate(0, 1, 0)
}

// Prev moves the month at slot back by one.
func (w *Window) Prev(slot int) {
	if slot < 0 || slot >= WindowSize {
		return
	}
	w.months[slot] = w.months[slot].AddDate(0, -1, 0)
}

// Grid renders the month at slot with per-day selectability computed from
// the shared selection.
func (w *Window) Grid(slot int) MonthGrid {
	if slot < 0 || slot >= WindowSize {
		slot = 0
	}
	first := w.months[slot]
	grid := MonthGrid{Year: first.Year(), Month: first.Month()}

	// Walk from the Sunday on or before the 1st to the Saturday on or
	// after the last day of the month.
	cursor := first.AddDate(0, 0, -int(first.Weekday()))
	last := first.AddDate(0, 1, -1)
	for !cursor.After(last) || cursor.Weekday() != time.Sunday {
		if cursor.Weekday() == time.Sunday {
			grid.Weeks = append(grid.Weeks, make([]Day, 0, 7))
		}
		week := len(grid.Weeks) - 1
		grid.Weeks[week] = append(grid.Weeks[week], w.day(cursor, first))
		cursor = cursor.AddDate(0, 0, 1)
	}
	return grid
}

func (w *Window) day(t, first time.Time) Day {
	date := FormatDate(t)
	return Day{
		Date:       date,
		InMonth:    t.Month() == first.Month() && t.Year() == first.Year(),
		Today:      date == w.sel.today,
		Past:       date < w.sel.today,
		Selectable: w.sel.Selectable(date),
		Chosen:     w.sel.Chosen(date),
		Locked:     w.sel.Locked(date),
	}
}
