package plan

import (
	"errors"
	"time"

	"github.com/eugene-medvedev/Tomorrow-Planner/internal/dateutil"
	"github.com/eugene-medvedev/Tomorrow-Planner/internal/model"
)

var (
	// ErrNotToday is returned when carry-over targets any day other than the
	// actual current date.
	ErrNotToday = errors.New("plan: can only carry over onto today")
	// ErrNoPriorData is returned when no record exists for the previous day.
	ErrNoPriorData = errors.New("plan: no record for yesterday")
)

// CarryOver appends yesterday's unfinished tasks to today's carried list and
// returns how many were appended. Zero is a valid outcome, not an error.
//
// Unfinished means: tasks of yesterday's selected goals that are neither
// completed nor removed, plus any of yesterday's custom, carried, or
// scheduled tasks without a completion mark. First-seen order is preserved
// and tasks already on today's carried or custom lists are skipped.
//
// Fails without mutating anything when target is not the current date
// (ErrNotToday) or when yesterday has no record at all (ErrNoPriorData).
func CarryOver(state *model.State, target, now time.Time) (int, error) {
	targetKey := dateutil.DateKey(target)
	if targetKey != dateutil.DateKey(now) {
		return 0, ErrNotToday
	}
	prevKey := dateutil.DateKey(target.AddDate(0, 0, -1))
	yesterday, ok := state.Days[prevKey]
	if !ok {
		return 0, ErrNoPriorData
	}

	unfinished := make([]string, 0)
	seen := make(map[string]bool)
	add := func(task string) {
		if !seen[task] {
			seen[task] = true
			unfinished = append(unfinished, task)
		}
	}

	goalsByID := state.GoalsByID()
	for _, goalID := range yesterday.SelectedGoalIDs {
		g, found := goalsByID[goalID]
		if !found {
			continue
		}
		for _, task := range g.TodayTasks {
			if !yesterday.Completed[task] && !contains(yesterday.RemovedTasks, task) {
				add(task)
			}
		}
	}

	misc := make([]string, 0, len(yesterday.CustomTasks)+len(yesterday.CarriedTasks))
	misc = append(misc, yesterday.CustomTasks...)
	misc = append(misc, yesterday.CarriedTasks...)
	misc = append(misc, state.FutureTasks[prevKey]...)
	for _, task := range misc {
		if !yesterday.Completed[task] {
			add(task)
		}
	}

	today := state.Day(targetKey)
	moved := 0
	for _, task := range unfinished {
		if contains(today.CarriedTasks, task) || contains(today.CustomTasks, task) {
			continue
		}
		today.CarriedTasks = append(today.CarriedTasks, task)
		moved++
	}
	return moved, nil
}
