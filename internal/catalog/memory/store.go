// Package memory provides the built-in laboratory seed used by tests and
// demo deployments.
package memory

import (
	"context"
	"time"

	"labcore/pkg/domain"
)

// Store serves a fixed laboratory set from memory.
type Store struct {
	labs []domain.Laboratory
}

// NewStore constructs a store over the given laboratories.
func NewStore(labs ...domain.Laboratory) *Store {
	cloned := make([]domain.Laboratory, len(labs))
	for i, lab := range labs {
		cloned[i] = lab.Clone()
	}
	return &Store{labs: cloned}
}

// Laboratories returns clones of the seeded laboratories in seed order.
func (s *Store) Laboratories(_ context.Context) ([]domain.Laboratory, error) {
	out := make([]domain.Laboratory, len(s.labs))
	for i, lab := range s.labs {
		out[i] = lab.Clone()
	}
	return out, nil
}

// SeedLaboratories returns the default demo catalog.
func SeedLaboratories() []domain.Laboratory {
	seeded := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	base := func(id string) domain.Base {
		return domain.Base{ID: id, CreatedAt: seeded, UpdatedAt: seeded}
	}
	return []domain.Laboratory{
		{
			Base:            base("lab-electronics"),
			Name:            "Electronics Laboratory",
			PermissionFlags: []string{"inventory", "reservations", "tasks"},
			Inventory: []domain.InventoryItem{
				{Base: base("inv-osc-1"), Name: "Oscilloscope", Quantity: 4, Location: "Shelf 3"},
				{Base: base("inv-psu-1"), Name: "Bench power supply", Quantity: 6, Location: "Shelf 1"},
			},
			Members: []domain.LabMember{
				{Base: base("mem-elec-manager"), Name: "Elena Ruiz", Role: domain.RoleManager, Status: domain.MemberActive},
				{Base: base("mem-elec-staff"), Name: "Marco Diaz", Role: domain.RoleStaff, Status: domain.MemberActive},
				{Base: base("mem-elec-aux"), Name: "Sofia Lara", Role: domain.RoleAssistant, Status: domain.MemberActive},
				{Base: base("mem-elec-student"), Name: "Pablo Mena", Role: domain.RoleStudent, Status: domain.MemberPending},
			},
			Schedules: []domain.ScheduleSlot{
				{Base: base("slot-elec-am"), Label: "Morning block", StartTime: "08:00", EndTime: "12:00"},
			},
		},
		{
			Base:            base("lab-chemistry"),
			Name:            "Chemistry Laboratory",
			PermissionFlags: []string{"inventory", "reservations"},
			Members: []domain.LabMember{
				{Base: base("mem-chem-staff"), Name: "Lucia Vega", Role: domain.RoleStaff, Status: domain.MemberActive},
				{Base: base("mem-chem-teacher"), Name: "Hugo Prado", Role: domain.RoleTeacher, Status: domain.MemberActive},
			},
			LostObjects: []domain.LostObject{
				{Base: base("lost-goggles"), Description: "Safety goggles", Location: "Bench 2", ReportedAt: seeded},
			},
			LoanReports: []domain.LoanReport{
				{Base: base("loan-burner"), ItemID: "inv-burner-1", MemberID: "mem-chem-teacher", Status: domain.LoanOpen},
			},
		},
	}
}
