package plan

import (
	"testing"
	"time"

	"github.com/eugene-medvedev/Tomorrow-Planner/internal/health"
	"github.com/eugene-medvedev/Tomorrow-Planner/internal/model"
)

func TestBuildMonthGridSundayStartMonth(t *testing.T) {
	// March 2026 starts on a Sunday: six leading padding cells under the
	// Monday-start convention.
	state := model.NewState()
	cursor := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 3, 7, 10, 0, 0, 0, time.Local)

	cells := BuildMonthGrid(state, cursor, GridModeMain, now, now)
	if len(cells) != GridSize {
		t.Fatalf("expected %d cells, got %d", GridSize, len(cells))
	}
	for i := 0; i < 6; i++ {
		if !cells[i].Padding() {
			t.Fatalf("cell %d should be padding", i)
		}
	}
	if cells[6].Day != 1 {
		t.Fatalf("expected day 1 at slot 6, got %d", cells[6].Day)
	}
}

func TestBuildMonthGridSelectionAndToday(t *testing.T) {
	state := model.NewState()
	cursor := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	selected := time.Date(2026, 3, 10, 23, 0, 0, 0, time.Local)
	now := time.Date(2026, 3, 7, 1, 0, 0, 0, time.Local)

	cells := BuildMonthGrid(state, cursor, GridModeMain, selected, now)
	var selectedCount, todayCount int
	for _, c := range cells {
		if c.IsSelected {
			selectedCount++
			if c.Day != 10 {
				t.Fatalf("wrong selected day: %d", c.Day)
			}
		}
		if c.IsToday {
			todayCount++
			if c.Day != 7 {
				t.Fatalf("wrong today day: %d", c.Day)
			}
		}
	}
	if selectedCount != 1 || todayCount != 1 {
		t.Fatalf("expected exactly one selected and one today cell, got %d/%d", selectedCount, todayCount)
	}
}

func TestBuildMonthGridTrailingPadding(t *testing.T) {
	// February 2027 starts on a Monday and has 28 days: zero leading
	// padding, seven trailing padding cells.
	state := model.NewState()
	cursor := time.Date(2027, 2, 1, 0, 0, 0, 0, time.Local)
	cells := BuildMonthGrid(state, cursor, GridModeMain, cursor, cursor)
	if cells[0].Day != 1 {
		t.Fatalf("expected day 1 first, got %+v", cells[0])
	}
	for i := 28; i < GridSize; i++ {
		if !cells[i].Padding() {
			t.Fatalf("cell %d should be trailing padding", i)
		}
	}
}

func TestBuildMonthGridSixRowMonthTruncates(t *testing.T) {
	// August 2026 starts on a Saturday (5 leading pads) and has 31 days:
	// 36 logical slots, so day 31 falls off the fixed grid.
	state := model.NewState()
	cursor := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	cells := BuildMonthGrid(state, cursor, GridModeMain, cursor, cursor)
	if len(cells) != GridSize {
		t.Fatalf("grid must stay fixed at %d cells, got %d", GridSize, len(cells))
	}
	if last := cells[GridSize-1]; last.Day != 30 {
		t.Fatalf("expected day 30 in the last slot, got %d", last.Day)
	}
}

func TestBuildMonthGridExerciseAndDietColors(t *testing.T) {
	state := model.NewState()
	cursor := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	day := state.Day("2026-03-05")
	day.Exercise.Intensity = 10
	rating := 3
	day.Diet.Rating = &rating

	exercise := BuildMonthGrid(state, cursor, GridModeExercise, cursor, cursor)
	diet := BuildMonthGrid(state, cursor, GridModeDiet, cursor, cursor)

	var exCell, dietCell *Cell
	for i := range exercise {
		if exercise[i].Key == "2026-03-05" {
			exCell = &exercise[i]
		}
	}
	for i := range diet {
		if diet[i].Key == "2026-03-05" {
			dietCell = &diet[i]
		}
	}
	if exCell == nil || !exCell.HasColor || exCell.Color != health.IntensityColor(10) {
		t.Fatalf("expected intensity color on exercise cell: %+v", exCell)
	}
	if dietCell == nil || !dietCell.HasColor || dietCell.Color != health.RatingColor(3) {
		t.Fatalf("expected rating color on diet cell: %+v", dietCell)
	}

	// Days without data carry no color in either mode.
	for _, c := range exercise {
		if c.Key == "2026-03-06" && c.HasColor {
			t.Fatal("unvisited day must not be colored")
		}
	}
}

func TestBuildMonthGridMainModeFutureTaskMarker(t *testing.T) {
	state := model.NewState()
	state.ScheduleFutureTask("2026-03-12", "renew passport")
	cursor := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)

	cells := BuildMonthGrid(state, cursor, GridModeMain, cursor, cursor)
	for _, c := range cells {
		if c.Key == "2026-03-12" && !c.HasFutureTask {
			t.Fatal("expected future-task marker on 2026-03-12")
		}
		if c.Key == "2026-03-13" && c.HasFutureTask {
			t.Fatal("unexpected marker on empty day")
		}
	}
}
