// Package core composes the access-control and task-orchestration engine:
// resource scoping, the task store, and the per-actor dashboard session.
package core

import "labcore/pkg/domain"

type (
	Role          = domain.Role
	RoleSet       = domain.RoleSet
	MemberStatus  = domain.MemberStatus
	TaskStatus    = domain.TaskStatus
	LoanStatus    = domain.LoanStatus
	EntityType    = domain.EntityType
	Base          = domain.Base
	Actor         = domain.Actor
	LabMember     = domain.LabMember
	Laboratory    = domain.Laboratory
	InventoryItem = domain.InventoryItem
	Reservation   = domain.Reservation
	LostObject    = domain.LostObject
	LoanReport    = domain.LoanReport
	ScheduleSlot  = domain.ScheduleSlot
	Task          = domain.Task
	Change        = domain.Change
	Action        = domain.Action
	Severity      = domain.Severity
	Violation     = domain.Violation
	Result        = domain.Result
	Rule          = domain.Rule
	RuleView      = domain.RuleView
	RulesEngine   = domain.RulesEngine
)

const (
	RoleTop       = domain.RoleTop
	RoleManager   = domain.RoleManager
	RoleStaff     = domain.RoleStaff
	RoleAssistant = domain.RoleAssistant
	RoleTeacher   = domain.RoleTeacher
	RoleStudent   = domain.RoleStudent
)

const (
	TaskPending    = domain.TaskPending
	TaskInProgress = domain.TaskInProgress
	TaskCompleted  = domain.TaskCompleted
)

const (
	MemberActive  = domain.MemberActive
	MemberPending = domain.MemberPending
)

const (
	LoanOpen     = domain.LoanOpen
	LoanReturned = domain.LoanReturned
)

const (
	SeverityBlock = domain.SeverityBlock
	SeverityWarn  = domain.SeverityWarn
	SeverityLog   = domain.SeverityLog
)

const (
	ActionCreate = domain.ActionCreate
	ActionUpdate = domain.ActionUpdate
)

const AggregateID = domain.AggregateID
