package core

import (
	"context"
	"fmt"

	"labcore/pkg/domain"
)

// NewAssignmentPolicyRule returns the rule enforcing the task-assignment
// role table: an actor may only assign tasks to members whose role appears
// in TaskAssignableRoles for the actor's role. The table fails closed, so
// an unknown actor or assignee role is always rejected.
func NewAssignmentPolicyRule() domain.Rule {
	return assignmentPolicyRule{}
}

type assignmentPolicyRule struct{}

func (assignmentPolicyRule) Name() string { return "task_assignment_policy" }

func (assignmentPolicyRule) Evaluate(_ context.Context, _ domain.RuleView, changes []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	for _, change := range changes {
		attempt, ok := change.After.(AssignmentAttempt)
		if !ok || change.Entity != domain.EntityTask || change.Action != domain.ActionCreate {
			continue
		}
		allowed := domain.TaskAssignableRoles(attempt.Actor.Role)
		if !attempt.AssigneeKnown {
			res.Violations = append(res.Violations, domain.Violation{
				Rule:     "task_assignment_policy",
				Severity: domain.SeverityBlock,
				Message:  fmt.Sprintf("no laboratory member %s in scope", attempt.Task.AssigneeID),
				Entity:   domain.EntityTask,
				EntityID: attempt.Task.ID,
			})
			continue
		}
		if !allowed.Has(attempt.Assignee.Role) {
			res.Violations = append(res.Violations, domain.Violation{
				Rule:     "task_assignment_policy",
				Severity: domain.SeverityBlock,
				Message:  fmt.Sprintf("role %s may not assign tasks to role %s", attempt.Actor.Role, attempt.Assignee.Role),
				Entity:   domain.EntityTask,
				EntityID: attempt.Task.ID,
			})
		}
	}
	return res, nil
}
