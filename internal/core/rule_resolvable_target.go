package core

import (
	"context"

	"labcore/pkg/domain"
)

// NewResolvableTargetRule returns the rule rejecting mutations that have no
// concrete laboratory to apply to, which happens when an actor acts from
// the aggregate view with zero laboratories in scope.
func NewResolvableTargetRule() domain.Rule {
	return resolvableTargetRule{}
}

type resolvableTargetRule struct{}

func (resolvableTargetRule) Name() string { return "resolvable_target" }

func (resolvableTargetRule) Evaluate(_ context.Context, _ domain.RuleView, changes []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	for _, change := range changes {
		attempt, ok := change.After.(AssignmentAttempt)
		if !ok || change.Entity != domain.EntityTask || change.Action != domain.ActionCreate {
			continue
		}
		if attempt.LabID == "" || attempt.LabID == domain.AggregateID {
			res.Violations = append(res.Violations, domain.Violation{
				Rule:     "resolvable_target",
				Severity: domain.SeverityBlock,
				Message:  "no laboratory available for this action",
				Entity:   domain.EntityTask,
				EntityID: attempt.Task.ID,
			})
		}
	}
	return res, nil
}
