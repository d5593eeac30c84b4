package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidGoal = errors.New("model: invalid goal")

// Goal is a named template that contributes a fixed list of tasks to any day
// it is selected for. Goals are never deleted automatically and are only
// changed by wholesale replacement.
type Goal struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	TodayTasks []string `json:"todayTasks"`
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidGoal)
	}
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidGoal)
	}
	if len(g.TodayTasks) == 0 {
		return fmt.Errorf("%w: at least one task is required", ErrInvalidGoal)
	}
	return nil
}

// NewGoalID derives a goal id from the creation instant.
func NewGoalID(now time.Time) string {
	return fmt.Sprintf("g_%d", now.UnixMilli())
}

// NewGoal builds a goal from a name and a comma-separated task list, trimming
// blanks. Returns ErrInvalidGoal when the name or the task list is empty; the
// caller treats that as a silent no-op per the input-handling contract.
func NewGoal(name, commaTasks string, now time.Time) (Goal, error) {
	tasks := make([]string, 0)
	for _, raw := range strings.Split(commaTasks, ",") {
		if task := strings.TrimSpace(raw); task != "" {
			tasks = append(tasks, task)
		}
	}
	g := Goal{ID: NewGoalID(now), Name: strings.TrimSpace(name), TodayTasks: tasks}
	if err := g.Validate(); err != nil {
		return Goal{}, err
	}
	return g, nil
}

// DefaultGoals returns the built-in starter catalog used whenever persisted
// state is absent or unreadable.
func DefaultGoals() []Goal {
	return []Goal{
		{ID: "g_gym", Name: "Gym Workout", TodayTasks: []string{"Pack gym bag", "Fill water bottle", "Block 1hr on calendar"}},
		{ID: "g_read", Name: "Read 30 mins", TodayTasks: []string{"Pick book", "Put phone in other room"}},
		{ID: "g_sleep", Name: "Sleep by 10pm", TodayTasks: []string{"Set alarm", "Lay out clothes for tomorrow"}},
	}
}

// GenerateGoal is the template-based goal generator behind the "plan" palette
// command. It matches a few keywords in the prompt and otherwise falls back to
// a generic checklist.
func GenerateGoal(prompt string, now time.Time) (Goal, error) {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		return Goal{}, fmt.Errorf("%w: empty prompt", ErrInvalidGoal)
	}
	lower := strings.ToLower(trimmed)
	name := "Generated Goal: " + trimmed
	tasks := []string{"Check generated tasks", "Review in goals list"}
	switch {
	case strings.Contains(lower, "exercise") || strings.Contains(lower, "workout"):
		name = "Workout: " + trimmed
		tasks = []string{"Warm-up (5 mins)", "Main Set (45 mins)", "Cool-down (10 mins)", "Hydrate"}
	case strings.Contains(lower, "study") || strings.Contains(lower, "learn"):
		name = "Study: " + trimmed
		tasks = []string{"Gather materials", "Set timer for 45 mins", "Take 15 min break", "Review notes"}
	}
	return Goal{ID: NewGoalID(now), Name: name, TodayTasks: tasks}, nil
}
