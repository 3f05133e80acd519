package core

import "labcore/pkg/domain"

// AssignmentAttempt captures the inputs of a pending task assignment so
// policy rules can evaluate it before anything is committed. It travels as
// the After payload of the create Change.
type AssignmentAttempt struct {
	Actor         Actor
	Assignee      LabMember
	AssigneeKnown bool
	LabID         string
	Task          Task
}

// NewDefaultRulesEngine builds a rules engine with the built-in policy set
// consolidating the role checks every call site used to duplicate inline.
func NewDefaultRulesEngine() *RulesEngine {
	engine := domain.NewRulesEngine()
	engine.Register(NewAssignmentPolicyRule())
	engine.Register(NewResolvableTargetRule())
	return engine
}
