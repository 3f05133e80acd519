package schedule

// Selectable reports whether a calendar date may be toggled under the given
// day type. A date strictly before today (day granularity) is never
// selectable, a nil day type makes nothing selectable, and an empty weekday
// set makes every remaining date eligible.
func Selectable(date string, dayType *DayType, today string) bool {
	if dayType == nil {
		return false
	}
	if date < today {
		return false
	}
	if dayType.Days.Any() {
		return true
	}
	t, err := ParseDate(date)
	if err != nil {
		return false
	}
	return dayType.Days.Contains(t.Weekday())
}

// Selection owns the date set being authored for one reservation flow. It
// is ephemeral: constructed when the flow opens and discarded on submit or
// cancel. Locked dates come from an already-committed reservation and can
// never be toggled in or out.
type Selection struct {
	dayType *DayType
	today   string
	working DateSet
	locked  DateSet
}

// NewSelection opens a selection for a fresh reservation.
func NewSelection(dayType DayType, today string) *Selection {
	return &Selection{dayType: &dayType, today: today}
}

// NewExtension opens a selection that extends an existing reservation. The
// committed dates seed the locked set.
func NewExtension(dayType DayType, today string, committed []string) *Selection {
	return &Selection{
		dayType: &dayType,
		today:   today,
		locked:  NewDateSet(committed...),
	}
}

// DayType returns the recurrence pattern the selection was opened with.
func (s *Selection) DayType() DayType {
	return *s.dayType
}

// Selectable reports whether the date may be toggled in this selection.
// Locked dates are never selectable regardless of the day type.
func (s *Selection) Selectable(date string) bool {
	if s.locked.Has(date) {
		return false
	}
	return Selectable(date, s.dayType, s.today)
}

// Locked reports whether the date belongs to the committed reservation.
func (s *Selection) Locked(date string) bool {
	return s.locked.Has(date)
}

// Chosen reports whether the date is currently in the working set.
func (s *Selection) Chosen(date string) bool {
	return s.working.Has(date)
}

// Toggle inserts the date if absent and removes it if present, keeping the
// working set sorted ascending. Ineligible and locked dates are left
// untouched. It reports whether the working set changed.
func (s *Selection) Toggle(date string) bool {
	if !s.Selectable(date) {
		return false
	}
	if s.working.Has(date) {
		s.working.Remove(date)
	} else {
		s.working.Add(date)
	}
	return true
}

// Dates returns the working set in ascending order.
func (s *Selection) Dates() []string {
	return s.working.Dates()
}

// LockedDates returns the committed dates in ascending order.
func (s *Selection) LockedDates() []string {
	return s.locked.Dates()
}

// Combined returns locked and newly chosen dates together, sorted
// ascending. This is the final date list an extend flow submits.
func (s *Selection) Combined() []string {
	return s.locked.Union(s.working).Dates()
}
