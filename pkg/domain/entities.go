// Package domain defines the core entities, role policy tables, and rule
// evaluation primitives used by labcore.
package domain

import "time"

// EntityType identifies the type of record referenced by changes and violations.
type EntityType string

// Supported entity type identifiers used in Change and Violation records.
const (
	// EntityLaboratory identifies a laboratory resource record.
	EntityLaboratory EntityType = "laboratory"
	// EntityLabMember identifies a managed laboratory member record.
	EntityLabMember EntityType = "lab_member"
	// EntityTask identifies a task record.
	EntityTask EntityType = "task"
	// EntityReservation identifies a room reservation record.
	EntityReservation EntityType = "reservation"
	// EntityLostObject identifies a lost object record.
	EntityLostObject EntityType = "lost_object"
	// EntityLoanReport identifies an inventory loan report record.
	EntityLoanReport EntityType = "loan_report"
)

// Role is a ranked session-principal or member category. The four session
// roles govern assignment and visibility rights; teacher and student are
// managed-member categories that never hold a session.
type Role string

// Canonical roles ordered from widest to narrowest rights.
const (
	// RoleTop is the super-admin with every laboratory implicitly in scope.
	RoleTop Role = "top"
	// RoleManager administers the laboratories in its membership list.
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
	// RoleAssistant holds the narrowest session rights.
	RoleAssistant Role = "assistant"
	// RoleTeacher is a managed member category, never a session principal.
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// SessionRoles lists the four roles an authenticated actor may hold.
func SessionRoles() []Role {
	return []Role{RoleTop, RoleManager, RoleStaff, RoleAssistant}
}

// MemberStatus enumerates laboratory membership states.
type MemberStatus string

// Canonical membership statuses.
const (
	MemberActive  MemberStatus = "active"
	MemberPending MemberStatus = "pending"
)

// TaskStatus enumerates the task workflow states. The machine is strictly
// pending -> in_progress -> completed with no backward or skipping path.
type TaskStatus string

// Canonical task statuses.
const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// LoanStatus enumerates inventory loan report states.
type LoanStatus string

// Canonical loan report statuses.
const (
	LoanOpen     LoanStatus = "open"
	LoanReturned LoanStatus = "returned"
)

// AggregateID is the sentinel laboratory id tagging the read-only composite
// of every laboratory in an actor's scope.
const AggregateID = "all"

// Base contains common fields for all domain records.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Actor is the authenticated session principal. It is supplied by the
// authentication boundary at login, immutable for the session lifetime, and
// discarded at logout.
type Actor struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Role           Role     `json:"role"`
	LabMemberships []string `json:"lab_memberships"`
}

// LabMember is a managed subject inside a laboratory, distinct from an
// Actor: a member is administered, not necessarily a session principal.
type LabMember struct {
	Base
	Name   string       `json:"name"`
	Role   Role         `json:"role"`
	Status MemberStatus `json:"status"`
}

// InventoryItem models equipment or material tracked by a laboratory.
type InventoryItem struct {
	Base
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Location string `json:"location"`
}

// Reservation captures a committed room reservation: an ordered set of ISO
// calendar dates under a schedule slot and a day-type recurrence pattern.
type Reservation struct {
	Base
	RoomName  string   `json:"room_name"`
	SlotLabel string   `json:"slot_label"`
	DayTypeID string   `json:"day_type_id"`
	Dates     []string `json:"dates"`
}

// LostObject records an item reported lost inside a laboratory.
type LostObject struct {
	Base
	Description string    `json:"description"`
	Location    string    `json:"location"`
	ReportedAt  time.Time `json:"reported_at"`
}

// LoanReport tracks an inventory item on loan to a member.
type LoanReport struct {
	Base
	ItemID   string     `json:"item_id"`
	MemberID string     `json:"member_id"`
	Status   LoanStatus `json:"status"`
}

// ScheduleSlot is a named recurring time block available for reservations.
type ScheduleSlot struct {
	Base
	Label     string `json:"label"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Task is a unit of work assigned by one actor to a laboratory member.
// Only the assignee may advance its status.
type Task struct {
	Base
	Title      string     `json:"title"`
	AssigneeID string     `json:"assignee_id"`
	AssignerID string     `json:"assigner_id"`
	LabID      string     `json:"lab_id"`
	Status     TaskStatus `json:"status"`
}

// Laboratory is a seeded laboratory resource with its managed records.
// Laboratories are static in this core: no create or delete operations.
type Laboratory struct {
	Base
	Name            string          `json:"name"`
	PermissionFlags []string        `json:"permission_flags"`
	Inventory       []InventoryItem `json:"inventory"`
	Members         []LabMember     `json:"members"`
	Reservations    []Reservation   `json:"reservations"`
	LostObjects     []LostObject    `json:"lost_objects"`
	LoanReports     []LoanReport    `json:"loan_reports"`
	Schedules       []ScheduleSlot  `json:"schedules"`
}

// IsAggregate reports whether the laboratory is the "all" composite view.
func (l Laboratory) IsAggregate() bool {
	return l.ID == AggregateID
}

// Member returns the current member record with the given id.
func (l Laboratory) Member(id string) (LabMember, bool) {
	for _, m := range l.Members {
		if m.ID == id {
			return m, true
		}
	}
	return LabMember{}, false
}

// Clone returns a deep copy of the laboratory so holders of a prior
// snapshot never observe later mutations.
func (l Laboratory) Clone() Laboratory {
	out := l
	out.PermissionFlags = cloneSlice(l.PermissionFlags)
	out.Inventory = cloneSlice(l.Inventory)
	out.Members = cloneSlice(l.Members)
	out.Reservations = make([]Reservation, len(l.Reservations))
	for i, r := range l.Reservations {
		out.Reservations[i] = r.Clone()
	}
	out.LostObjects = cloneSlice(l.LostObjects)
	out.LoanReports = cloneSlice(l.LoanReports)
	out.Schedules = cloneSlice(l.Schedules)
	return out
}

// Clone returns a deep copy of the reservation.
func (r Reservation) Clone() Reservation {
	out := r
	out.Dates = cloneSlice(r.Dates)
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
