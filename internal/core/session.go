package core

import (
	"context"
	"time"
)

// ActionMessage is one entry of the session's user-facing message ticker.
type ActionMessage struct {
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// Summary holds the six dashboard counters recomputed whenever the
// selected dataset changes.
type Summary struct {
	Laboratories    int `json:"laboratories"`
	LostObjects     int `json:"lost_objects"`
	OpenLoanReports int `json:"open_loan_reports"`
	Reservations    int `json:"reservations"`
	ActiveMembers   int `json:"active_members"`
	Schedules       int `json:"schedules"`
}

// Session is the dashboard controller owned by one authenticated actor.
// It is constructed at login, holds all session-scoped state explicitly
// (no ambient singletons), and is discarded at logout.
type Session struct {
	actor      Actor
	scope      []Laboratory
	selectedID string
	tasks      *TaskStore
	messages   []ActionMessage
	logger     Logger
	metrics    MetricsRecorder
	nowFn      func() time.Time
}

// NewSession resolves the actor's laboratory scope against the catalog and
// selects the default dataset: the aggregate for a top actor, otherwise
// the first scoped laboratory, or the aggregate when scope is empty.
func NewSession(actor Actor, catalog []Laboratory, tasks *TaskStore, opts ...SessionOption) *Session {
	if tasks == nil {
		tasks = NewTaskStore(nil)
	}
	s := &Session{
		actor:   actor,
		scope:   ScopedLaboratories(actor, catalog),
		tasks:   tasks,
		logger:  noopLogger{},
		metrics: noopMetrics{},
		nowFn:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.selectedID = AggregateID
	if actor.Role != RoleTop && len(s.scope) > 0 {
		s.selectedID = s.scope[0].ID
	}
	s.logger.Info("session opened", "actor", actor.ID, "role", string(actor.Role), "scope", len(s.scope))
	return s
}

// Actor returns the session principal.
func (s *Session) Actor() Actor {
	return s.actor
}

// Scope returns the laboratories visible to the session actor.
func (s *Session) Scope() []Laboratory {
	out := make([]Laboratory, len(s.scope))
	for i, lab := range s.scope {
		out[i] = lab.Clone()
	}
	return out
}

// SelectedID returns the id of the currently selected dataset.
func (s *Session) SelectedID() string {
	return s.selectedID
}

// Select switches the working dataset to the given laboratory id or to the
// aggregate. Ids outside the session scope are ignored.
func (s *Session) Select(labID string) {
	if labID == AggregateID {
		s.selectedID = AggregateID
		return
	}
	for _, lab := range s.scope {
		if lab.ID == labID {
			s.selectedID = labID
			return
		}
	}
	s.logger.Warn("selection outside scope ignored", "actor", s.actor.ID, "lab", labID)
}

// Dataset returns the working dataset: the selected laboratory's own
// records, or the read-only aggregate of every laboratory in scope when
// the sentinel id is selected. The aggregate is rebuilt per read and is
// never a mutation target.
func (s *Session) Dataset() Laboratory {
	if s.selectedID == AggregateID {
		return Aggregate(s.scope)
	}
	for _, lab := range s.scope {
		if lab.ID == s.selectedID {
			return lab.Clone()
		}
	}
	return Aggregate(s.scope)
}

// Summary computes the dashboard counters from the current dataset.
func (s *Session) Summary() Summary {
	data := s.Dataset()
	sum := Summary{
		Laboratories: len(s.scope),
		LostObjects:  len(data.LostObjects),
		Reservations: len(data.Reservations),
		Schedules:    len(data.Schedules),
	}
	for _, report := range data.LoanReports {
		if report.Status == LoanOpen {
			sum.OpenLoanReports++
		}
	}
	for _, member := range data.Members {
		if member.Status == MemberActive {
			sum.ActiveMembers++
		}
	}
	return sum
}

// MembersByRole groups the current dataset's members by role for the
// members screen.
func (s *Session) MembersByRole() map[Role][]LabMember {
	data := s.Dataset()
	out := make(map[Role][]LabMember)
	for _, member := range data.Members {
		out[member.Role] = append(out[member.Role], member)
	}
	return out
}

// ResolveActionTarget names the single concrete laboratory a mutating
// action applies to: the selected laboratory when one is shown, otherwise
// the first laboratory in scope. The aggregate itself is never a target;
// with an empty scope there is no target and the action becomes a no-op.
func (s *Session) ResolveActionTarget() (string, bool) {
	if s.selectedID != AggregateID {
		return s.selectedID, true
	}
	if len(s.scope) > 0 {
		return s.scope[0].ID, true
	}
	return "", false
}

// AssignTask creates a task for the given member in the resolved target
// laboratory. Policy rejections surface as violations plus ticker
// messages; the task list is left unchanged.
func (s *Session) AssignTask(ctx context.Context, assigneeID, title string) (Task, Result) {
	start := s.nowFn()
	labID, _ := s.ResolveActionTarget()
	assignee, known := s.resolveMember(assigneeID)
	attempt := AssignmentAttempt{
		Actor:         s.actor,
		Assignee:      assignee,
		AssigneeKnown: known,
		LabID:         labID,
		Task:          Task{Title: title, AssigneeID: assigneeID},
	}
	task, res := s.tasks.Assign(ctx, attempt, s.resolveMember)
	success := !res.HasBlocking()
	if success {
		s.pushMessage("Task \"" + title + "\" assigned to " + assignee.Name)
		s.logger.Info("task assigned", "task", task.ID, "assignee", assigneeID, "lab", labID)
	} else {
		for _, msg := range res.Messages() {
			s.pushMessage(msg)
		}
		s.logger.Warn("task assignment rejected", "actor", s.actor.ID, "assignee", assigneeID)
	}
	s.metrics.Observe(ctx, "assign_task", success, s.nowFn().Sub(start))
	return task, res
}

// StartTask advances the task to in_progress when the session actor is its
// assignee; otherwise it silently does nothing.
func (s *Session) StartTask(ctx context.Context, taskID string) {
	start := s.nowFn()
	s.tasks.Start(s.actor, taskID)
	s.metrics.Observe(ctx, "start_task", true, s.nowFn().Sub(start))
}

// CompleteTask advances the task to completed under the same identity
// guard as StartTask.
func (s *Session) CompleteTask(ctx context.Context, taskID string) {
	start := s.nowFn()
	s.tasks.Complete(s.actor, taskID)
	s.metrics.Observe(ctx, "complete_task", true, s.nowFn().Sub(start))
}

// VisibleTasks returns the tasks the session actor may see, re-resolving
// each assignee's current member record.
func (s *Session) VisibleTasks() []Task {
	return Visible(s.actor, s.tasks.Snapshot(), s.resolveMember)
}

// Messages returns the ticker entries, oldest first.
func (s *Session) Messages() []ActionMessage {
	out := make([]ActionMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) pushMessage(text string) {
	s.messages = append(s.messages, ActionMessage{Text: text, At: s.nowFn()})
}

// resolveMember finds the current record for a member anywhere in scope.
func (s *Session) resolveMember(id string) (LabMember, bool) {
	for _, lab := range s.scope {
		if member, ok := lab.Member(id); ok {
			return member, true
		}
	}
	return LabMember{}, false
}
