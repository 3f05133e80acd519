// Package reservation drives the reservation authoring and extension
// flows: it owns the date selection, then forwards the finalized inputs to
// the external availability backend. Conflict detection across rooms lives
// entirely behind that boundary.
package reservation

import (
	"context"

	"labcore/pkg/domain"
)

// Request carries the finalized inputs of one availability lookup.
type Request struct {
	Dates     []string `json:"dates"`
	SlotLabel string   `json:"slot_label"`
	DayTypeID string   `json:"day_type_id"`
}

// Backend is the external service that checks every date in the request
// against committed reservations. The core forwards inputs and renders the
// result; it performs no conflict detection and no retries of its own. An
// in-flight call may be abandoned by cancelling the context: nothing is
// committed locally until the call succeeds.
type Backend interface {
	AvailableLaboratories(ctx context.Context, req Request) ([]domain.Laboratory, error)
}
