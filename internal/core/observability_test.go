package core_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"labcore/internal/core"
	"labcore/pkg/domain"
)

func TestExpvarMetricsRecorderAggregates(t *testing.T) {
	rec := core.NewExpvarMetricsRecorder("")
	if rec.Name() == "" {
		t.Fatal("expected a generated expvar name")
	}
	ctx := context.Background()

	rec.Observe(ctx, "assign_task", true, 20*time.Millisecond)
	rec.Observe(ctx, "assign_task", true, 30*time.Millisecond)
	rec.Observe(ctx, "assign_task", false, 5*time.Millisecond)
	rec.Observe(ctx, "", true, time.Second) // unnamed operations are dropped

	snap := rec.Snapshot()
	if got := snap.DurationsMS["assign_task"]; got != 55 {
		t.Fatalf("durations = %v, want 55", got)
	}
	results := snap.Results["assign_task"]
	if results["success"] != 2 || results["error"] != 1 {
		t.Fatalf("results = %v", results)
	}
	if len(snap.DurationsMS) != 1 {
		t.Fatalf("unexpected operations recorded: %v", snap.DurationsMS)
	}

	// snapshots are copies
	snap.DurationsMS["assign_task"] = 0
	if got := rec.Snapshot().DurationsMS["assign_task"]; got != 55 {
		t.Fatalf("snapshot mutation leaked into recorder: %v", got)
	}
}

func TestPrometheusMetricsRecorder(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	rec, err := core.NewPrometheusMetricsRecorder(reg)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	ctx := context.Background()
	rec.Observe(ctx, "assign_task", true, 250*time.Millisecond)
	rec.Observe(ctx, "assign_task", false, 50*time.Millisecond)
	rec.Observe(ctx, "start_task", true, 10*time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	byName := make(map[string]float64)
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			key := fam.GetName()
			for _, label := range m.GetLabel() {
				key += "/" + label.GetValue()
			}
			byName[key] = m.GetCounter().GetValue()
		}
	}
	if got := byName["labcore_session_operation_results_total/assign_task/success"]; got != 1 {
		t.Fatalf("success counter = %v", got)
	}
	if got := byName["labcore_session_operation_results_total/assign_task/error"]; got != 1 {
		t.Fatalf("error counter = %v", got)
	}
	if got := byName["labcore_session_operation_duration_seconds_total/assign_task"]; got != 0.3 {
		t.Fatalf("duration counter = %v", got)
	}
	if got := byName["labcore_session_operation_duration_seconds_total/start_task"]; got != 0.01 {
		t.Fatalf("start duration = %v", got)
	}
}

func TestPrometheusRecorderRejectsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	if _, err := core.NewPrometheusMetricsRecorder(reg); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := core.NewPrometheusMetricsRecorder(reg); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}

func TestSummaryCollectorTracksSelection(t *testing.T) {
	actor := domain.Actor{ID: "admin", Role: domain.RoleTop}
	session := core.NewSession(actor, demoCatalog(), nil)

	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(core.NewSummaryCollector(session)); err != nil {
		t.Fatalf("register: %v", err)
	}

	gather := func() map[string]float64 {
		t.Helper()
		families, err := reg.Gather()
		if err != nil {
			t.Fatalf("gather: %v", err)
		}
		out := make(map[string]float64)
		for _, fam := range families {
			for _, m := range fam.GetMetric() {
				out[fam.GetName()] = m.GetGauge().GetValue()
			}
		}
		return out
	}

	got := gather()
	if got["labcore_dashboard_laboratories"] != 2 || got["labcore_dashboard_active_members"] != 3 {
		t.Fatalf("aggregate gauges wrong: %v", got)
	}
	if got["labcore_dashboard_open_loan_reports"] != 1 {
		t.Fatalf("open loans gauge = %v", got["labcore_dashboard_open_loan_reports"])
	}

	// gauges follow the selected dataset on the next gather
	session.Select("lab-b")
	got = gather()
	if got["labcore_dashboard_active_members"] != 1 || got["labcore_dashboard_lost_objects"] != 0 {
		t.Fatalf("gauges did not track selection: %v", got)
	}
}

type capturingMetrics struct {
	ops       []string
	successes []bool
}

func (m *capturingMetrics) Observe(_ context.Context, operation string, success bool, _ time.Duration) {
	m.ops = append(m.ops, operation)
	m.successes = append(m.successes, success)
}

func TestSessionReportsOperationOutcomes(t *testing.T) {
	metrics := &capturingMetrics{}
	actor := domain.Actor{ID: "mgr-1", Role: domain.RoleManager, LabMemberships: []string{"lab-a"}}
	s := core.NewSession(actor, demoCatalog(), nil, core.WithMetrics(metrics))
	ctx := context.Background()

	task, res := s.AssignTask(ctx, "aux-1", "Calibrate scale")
	if res.HasBlocking() {
		t.Fatalf("assignment rejected: %+v", res.Violations)
	}
	s.AssignTask(ctx, "mgr-1", "Self-promotion") // manager may not assign to manager
	s.StartTask(ctx, task.ID)

	if len(metrics.ops) != 3 || metrics.ops[0] != "assign_task" || metrics.ops[2] != "start_task" {
		t.Fatalf("observed ops = %v", metrics.ops)
	}
	if !metrics.successes[0] || metrics.successes[1] {
		t.Fatalf("observed outcomes = %v", metrics.successes)
	}
}
