package reservation

import (
	"context"
	"fmt"
	"time"

	"labcore/pkg/domain"
	"labcore/pkg/schedule"
)

// Planner owns one reservation authoring or extension flow. The selection
// it hands out is ephemeral and discarded on submit or cancel.
type Planner struct {
	backend Backend
}

// NewPlanner wraps the external availability backend.
func NewPlanner(backend Backend) *Planner {
	return &Planner{backend: backend}
}

// NewSelection opens a fresh date selection under the given day type.
func (p *Planner) NewSelection(dayType schedule.DayType, today time.Time) *schedule.Selection {
	return schedule.NewSelection(dayType, schedule.FormatDate(today))
}

// ExtendSelection opens a selection seeded with a committed reservation's
// dates as the locked set, so extending never toggles an existing date.
func (p *Planner) ExtendSelection(res domain.Reservation, dayType schedule.DayType, today time.Time) *schedule.Selection {
	return schedule.NewExtension(dayType, schedule.FormatDate(today), res.Dates)
}

// Submit forwards the finalized date set to the backend and returns the
// laboratories free on every requested date. For an extension the combined
// locked-plus-new date list is submitted.
func (p *Planner) Submit(ctx context.Context, sel *schedule.Selection, slotLabel string) ([]domain.Laboratory, error) {
	dates := sel.Combined()
	if len(dates) == 0 {
		return nil, fmt.Errorf("no dates selected")
	}
	labs, err := p.backend.AvailableLaboratories(ctx, Request{
		Dates:     dates,
		SlotLabel: slotLabel,
		DayTypeID: sel.DayType().ID,
	})
	if err != nil {
		return nil, fmt.Errorf("availability lookup: %w", err)
	}
	return labs, nil
}
