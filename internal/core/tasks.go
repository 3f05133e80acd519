package core

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"labcore/pkg/domain"
)

// MemberResolver looks up the current record of a laboratory member.
// Visibility and policy decisions always re-resolve the assignee through
// one of these instead of trusting a cached role.
type MemberResolver func(id string) (LabMember, bool)

// TaskStore is the in-memory task collection shared by the sessions of one
// deployment. Mutations replace the task slice wholesale so a snapshot
// handed to a reader never changes underneath it.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  []Task
	engine *RulesEngine
	nowFn  func() time.Time
}

// NewTaskStore constructs a task store gated by the provided rules engine.
func NewTaskStore(engine *RulesEngine) *TaskStore {
	if engine == nil {
		engine = NewDefaultRulesEngine()
	}
	return &TaskStore{
		engine: engine,
		nowFn:  func() time.Time { return time.Now().UTC() },
	}
}

// SetNowFunc overrides the store clock. Intended for tests.
func (s *TaskStore) SetNowFunc(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now != nil {
		s.nowFn = now
	}
}

func newID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b[:])
}

// Assign creates a task with status pending when every registered rule
// allows it. On a blocking violation no task is created, the store is left
// unchanged, and the violations carry the user-visible messages. New tasks
// go to the front of the list so ordering stays most-recent-first.
func (s *TaskStore) Assign(ctx context.Context, attempt AssignmentAttempt, resolve MemberResolver) (Task, Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFn()
	task := Task{
		Base:       Base{ID: newID(), CreatedAt: now, UpdatedAt: now},
		Title:      attempt.Task.Title,
		AssigneeID: attempt.Assignee.ID,
		AssignerID: attempt.Actor.ID,
		LabID:      attempt.LabID,
		Status:     TaskPending,
	}
	if !attempt.AssigneeKnown {
		task.AssigneeID = attempt.Task.AssigneeID
	}
	attempt.Task = task

	view := taskView{tasks: s.tasks, resolve: resolve}
	changes := []Change{{Entity: domain.EntityTask, Action: ActionCreate, After: attempt}}
	res, err := s.engine.Evaluate(ctx, view, changes)
	if err != nil || res.HasBlocking() {
		return Task{}, res
	}

	next := make([]Task, 0, len(s.tasks)+1)
	next = append(next, task)
	next = append(next, s.tasks...)
	s.tasks = next
	return task, res
}

// Start advances a task from pending to in_progress iff the actor is the
// assignee. Anything else is a deliberate silent no-op: the owning UI
// control is only ever shown to the assignee, so this guard fires on
// wiring mistakes, not user actions.
func (s *TaskStore) Start(actor Actor, taskID string) {
	s.advance(actor, taskID, TaskPending, TaskInProgress)
}

// Complete advances a task from in_progress to completed under the same
// identity guard as Start.
func (s *TaskStore) Complete(actor Actor, taskID string) {
	s.advance(actor, taskID, TaskInProgress, TaskCompleted)
}

func (s *TaskStore) advance(actor Actor, taskID string, from, to TaskStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, task := range s.tasks {
		if task.ID != taskID {
			continue
		}
		if task.AssigneeID != actor.ID || task.Status != from {
			return
		}
		next := make([]Task, len(s.tasks))
		copy(next, s.tasks)
		task.Status = to
		task.UpdatedAt = s.nowFn()
		next[i] = task
		s.tasks = next
		return
	}
}

// Snapshot returns a copy of the full task list, most recent first.
func (s *TaskStore) Snapshot() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Find returns the task with the given id.
func (s *TaskStore) Find(taskID string) (Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, task := range s.tasks {
		if task.ID == taskID {
			return task, true
		}
	}
	return Task{}, false
}

// Visible filters tasks down to what the actor may see. The predicate is
// evaluated per task against the assignee's current member record, so a
// role change is reflected on the next call. Filtering an already-filtered
// list by the same actor yields the same list.
func Visible(actor Actor, tasks []Task, resolve MemberResolver) []Task {
	out := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if taskVisible(actor, task, resolve) {
			out = append(out, task)
		}
	}
	return out
}

func taskVisible(actor Actor, task Task, resolve MemberResolver) bool {
	switch actor.Role {
	case RoleTop:
		return true
	case RoleManager:
		role, ok := assigneeRole(task, resolve)
		return ok && (role == RoleStaff || role == RoleAssistant)
	case RoleStaff:
		if task.AssigneeID == actor.ID {
			return true
		}
		role, ok := assigneeRole(task, resolve)
		return ok && role == RoleAssistant
	case RoleAssistant:
		return task.AssigneeID == actor.ID
	default:
		return false
	}
}

func assigneeRole(task Task, resolve MemberResolver) (Role, bool) {
	if resolve == nil {
		return "", false
	}
	member, ok := resolve(task.AssigneeID)
	if !ok {
		return "", false
	}
	return member.Role, true
}

// taskView adapts a task snapshot plus member resolver to domain.RuleView.
type taskView struct {
	tasks   []Task
	resolve MemberResolver
}

func (v taskView) ListTasks() []Task {
	out := make([]Task, len(v.tasks))
	copy(out, v.tasks)
	return out
}

func (v taskView) FindTask(id string) (Task, bool) {
	for _, task := range v.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return Task{}, false
}

func (v taskView) FindMember(id string) (LabMember, bool) {
	if v.resolve == nil {
		return LabMember{}, false
	}
	return v.resolve(id)
}
