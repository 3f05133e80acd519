package reservation_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"labcore/internal/reservation"
	"labcore/pkg/domain"
	"labcore/pkg/schedule"
)

type fakeBackend struct {
	got  reservation.Request
	labs []domain.Laboratory
	err  error
}

func (b *fakeBackend) AvailableLaboratories(_ context.Context, req reservation.Request) ([]domain.Laboratory, error) {
	b.got = req
	return b.labs, b.err
}

func anyDay() schedule.DayType {
	return schedule.DayType{ID: "any", Label: "Any day"}
}

func TestSubmitForwardsChosenDates(t *testing.T) {
	backend := &fakeBackend{labs: []domain.Laboratory{{Base: domain.Base{ID: "lab-a"}}}}
	planner := reservation.NewPlanner(backend)
	today := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	sel := planner.NewSelection(anyDay(), today)
	sel.Toggle("2025-03-10")
	sel.Toggle("2025-03-03")

	labs, err := planner.Submit(context.Background(), sel, "Morning block")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(labs) != 1 || labs[0].ID != "lab-a" {
		t.Fatalf("labs = %+v", labs)
	}
	want := reservation.Request{
		Dates:     []string{"2025-03-03", "2025-03-10"},
		SlotLabel: "Morning block",
		DayTypeID: "any",
	}
	if !reflect.DeepEqual(backend.got, want) {
		t.Fatalf("request = %+v, want %+v", backend.got, want)
	}
}

func TestSubmitExtensionIncludesLockedDates(t *testing.T) {
	backend := &fakeBackend{}
	planner := reservation.NewPlanner(backend)
	today := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	committed := domain.Reservation{
		Base:  domain.Base{ID: "r-1"},
		Dates: []string{"2025-02-03", "2025-02-10"},
	}

	sel := planner.ExtendSelection(committed, anyDay(), today)
	if sel.Toggle("2025-02-03") {
		t.Fatal("locked date must not toggle")
	}
	if !sel.Toggle("2025-02-17") {
		t.Fatal("new date refused")
	}

	if _, err := planner.Submit(context.Background(), sel, "Evening block"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	want := []string{"2025-02-03", "2025-02-10", "2025-02-17"}
	if !reflect.DeepEqual(backend.got.Dates, want) {
		t.Fatalf("dates = %v, want %v", backend.got.Dates, want)
	}
}

func TestSubmitRejectsEmptySelection(t *testing.T) {
	backend := &fakeBackend{}
	planner := reservation.NewPlanner(backend)
	sel := planner.NewSelection(anyDay(), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	if _, err := planner.Submit(context.Background(), sel, "Morning block"); err == nil {
		t.Fatal("expected error for empty selection")
	}
	if backend.got.Dates != nil {
		t.Fatal("backend called despite empty selection")
	}
}

func TestSubmitWrapsBackendError(t *testing.T) {
	boom := errors.New("unreachable")
	backend := &fakeBackend{err: boom}
	planner := reservation.NewPlanner(backend)
	sel := planner.NewSelection(anyDay(), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	sel.Toggle("2025-03-05")

	_, err := planner.Submit(context.Background(), sel, "Morning block")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped backend error", err)
	}
}

func TestAbandonedSelectionLeavesNoTrace(t *testing.T) {
	backend := &fakeBackend{}
	planner := reservation.NewPlanner(backend)
	today := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	sel := planner.NewSelection(anyDay(), today)
	sel.Toggle("2025-03-05")
	sel = nil // cancel: the selection is simply dropped
	_ = sel

	if backend.got.Dates != nil {
		t.Fatal("cancel must not reach the backend")
	}
	fresh := planner.NewSelection(anyDay(), today)
	if len(fresh.Dates()) != 0 {
		t.Fatalf("fresh selection carries state: %v", fresh.Dates())
	}
}
