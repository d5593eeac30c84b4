// Package plan holds the planner's day-level bookkeeping: grouping a day's
// active tasks, carrying unfinished tasks forward, and building the fixed
// month grid the calendar views render.
package plan

import (
	"math"

	"github.com/eugene-medvedev/Tomorrow-Planner/internal/model"
)

// OtherGroupName labels the group collecting custom, carried, and
// scheduled-for-today tasks.
const OtherGroupName = "One-off / Other"

// Group is one named section of the day's checklist.
type Group struct {
	Name  string
	Tasks []string
	Done  int
}

// Complete reports whether every task in a non-empty group is done.
func (g Group) Complete() bool {
	return len(g.Tasks) > 0 && g.Done == len(g.Tasks)
}

// Summary is the aggregated checklist for one day. Totals only count
// non-empty groups.
type Summary struct {
	Groups     []Group
	TotalTasks int
	TotalDone  int
}

// CompletionPercent is the rounded done percentage, 0 when there are no tasks.
func (s Summary) CompletionPercent() int {
	if s.TotalTasks == 0 {
		return 0
	}
	return int(math.Round(float64(s.TotalDone) / float64(s.TotalTasks) * 100))
}

// Celebrate reports whether finishing this day deserves the celebration
// animation: every task done, and more than five of them.
func (s Summary) Celebrate() bool {
	return s.TotalTasks > 0 && s.TotalDone == s.TotalTasks && s.TotalTasks > 5
}

// AllTasks returns every task in group order, for cursor-based selection.
func (s Summary) AllTasks() []string {
	out := make([]string, 0, s.TotalTasks)
	for _, g := range s.Groups {
		out = append(out, g.Tasks...)
	}
	return out
}

// Aggregate groups the day's active tasks. Each selected goal that resolves in
// the catalog contributes a group named after it, minus tasks suppressed in
// RemovedTasks; goals whose tasks are all suppressed produce no group. Custom
// tasks, carried tasks, and tasks scheduled for this day are concatenated, in
// that order, into the "One-off / Other" group, omitted when empty.
//
// Done-state is looked up by literal task text in day.Completed, so identical
// text in two groups shares one completion state.
func Aggregate(goalsByID map[string]model.Goal, day *model.DayRecord, futureToday []string) Summary {
	var out Summary

	for _, goalID := range day.SelectedGoalIDs {
		g, ok := goalsByID[goalID]
		if !ok {
			continue
		}
		tasks := make([]string, 0, len(g.TodayTasks))
		for _, task := range g.TodayTasks {
			if !contains(day.RemovedTasks, task) {
				tasks = append(tasks, task)
			}
		}
		out.appendGroup(g.Name, tasks, day.Completed)
	}

	other := make([]string, 0, len(day.CustomTasks)+len(day.CarriedTasks)+len(futureToday))
	other = append(other, day.CustomTasks...)
	other = append(other, day.CarriedTasks...)
	other = append(other, futureToday...)
	out.appendGroup(OtherGroupName, other, day.Completed)

	return out
}

func (s *Summary) appendGroup(name string, tasks []string, completed map[string]bool) {
	if len(tasks) == 0 {
		return
	}
	done := 0
	for _, task := range tasks {
		if completed[task] {
			done++
		}
	}
	s.Groups = append(s.Groups, Group{Name: name, Tasks: tasks, Done: done})
	s.TotalTasks += len(tasks)
	s.TotalDone += done
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
