package plan

import (
	"errors"
	"testing"
	"time"

	"github.com/eugene-medvedev/Tomorrow-Planner/internal/dateutil"
	"github.com/eugene-medvedev/Tomorrow-Planner/internal/model"
)

var (
	carryNow       = time.Date(2026, 3, 7, 15, 30, 0, 0, time.Local)
	carryYesterday = carryNow.AddDate(0, 0, -1)
)

func TestCarryOverRejectsNonToday(t *testing.T) {
	state := model.NewState()
	state.Day(dateutil.DateKey(carryYesterday))

	moved, err := CarryOver(state, carryNow.AddDate(0, 0, -2), carryNow)
	if !errors.Is(err, ErrNotToday) {
		t.Fatalf("expected ErrNotToday, got: %v", err)
	}
	if moved != 0 {
		t.Fatalf("expected no moves, got %d", moved)
	}
	if len(state.Day(dateutil.DateKey(carryNow)).CarriedTasks) != 0 {
		t.Fatal("failed carry-over must not mutate today")
	}
}

func TestCarryOverRequiresYesterdayRecord(t *testing.T) {
	state := model.NewState()
	if _, err := CarryOver(state, carryNow, carryNow); !errors.Is(err, ErrNoPriorData) {
		t.Fatalf("expected ErrNoPriorData, got: %v", err)
	}
}

func TestCarryOverMovesOnlyNewUnfinished(t *testing.T) {
	state := model.NewState()
	yesterday := state.Day(dateutil.DateKey(carryYesterday))
	yesterday.AddCustomTask("A") // incomplete, should move
	yesterday.AddCustomTask("B") // complete, stays behind
	yesterday.AddCustomTask("C") // incomplete but already carried today
	yesterday.SetCompleted("B", true)

	today := state.Day(dateutil.DateKey(carryNow))
	today.CarriedTasks = append(today.CarriedTasks, "C")

	moved, err := CarryOver(state, carryNow, carryNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moved != 1 {
		t.Fatalf("expected 1 moved task, got %d", moved)
	}
	if len(today.CarriedTasks) != 2 || today.CarriedTasks[1] != "A" {
		t.Fatalf("unexpected carried tasks: %v", today.CarriedTasks)
	}
}

func TestCarryOverCollectsGoalAndMiscSources(t *testing.T) {
	state := model.NewState()
	prevKey := dateutil.DateKey(carryYesterday)
	yesterday := state.Day(prevKey)
	yesterday.ToggleGoal("g_read") // "Pick book", "Put phone in other room"
	yesterday.SetCompleted("Pick book", true)
	yesterday.RemovedTasks = append(yesterday.RemovedTasks, "Put phone in other room")
	yesterday.ToggleGoal("g_sleep") // "Set alarm", "Lay out clothes for tomorrow"
	yesterday.CarriedTasks = append(yesterday.CarriedTasks, "old debt")
	state.ScheduleFutureTask(prevKey, "scheduled errand")

	moved, err := CarryOver(state, carryNow, carryNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Completed and removed goal tasks stay behind; everything else moves,
	// goal tasks first, in first-seen order.
	want := []string{"Set alarm", "Lay out clothes for tomorrow", "old debt", "scheduled errand"}
	if moved != len(want) {
		t.Fatalf("expected %d moved, got %d", len(want), moved)
	}
	today := state.Day(dateutil.DateKey(carryNow))
	for i, task := range want {
		if today.CarriedTasks[i] != task {
			t.Fatalf("unexpected order: %v", today.CarriedTasks)
		}
	}
}

func TestCarryOverDeduplicatesWithinUnion(t *testing.T) {
	state := model.NewState()
	yesterday := state.Day(dateutil.DateKey(carryYesterday))
	yesterday.AddCustomTask("Hydrate")
	yesterday.CarriedTasks = append(yesterday.CarriedTasks, "Hydrate")

	moved, err := CarryOver(state, carryNow, carryNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moved != 1 {
		t.Fatalf("duplicate unfinished entries collapse to one move, got %d", moved)
	}
}

func TestCarryOverNothingToDoIsSuccess(t *testing.T) {
	state := model.NewState()
	yesterday := state.Day(dateutil.DateKey(carryYesterday))
	yesterday.AddCustomTask("done thing")
	yesterday.SetCompleted("done thing", true)

	moved, err := CarryOver(state, carryNow, carryNow)
	if err != nil {
		t.Fatalf("expected success, got: %v", err)
	}
	if moved != 0 {
		t.Fatalf("expected 0 moved, got %d", moved)
	}
}
