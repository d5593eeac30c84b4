package model

// Exercise holds a single day's exercise inputs. Intensity is 0-10 where 0
// means "no exercise logged".
type Exercise struct {
	Intensity       int    `json:"intensity"`
	DurationMinutes int    `json:"durationMinutes"`
	Rating          *int   `json:"rating,omitempty"`
	LegacyType      string `json:"type,omitempty"`
}

// Diet holds a single day's diet inputs. ConsumedCalories is nil until the
// user enters a value; Rating is a 1-10 self-assessment.
type Diet struct {
	ConsumedCalories *int `json:"consumedCalories,omitempty"`
	Rating           *int `json:"rating,omitempty"`
}

// DayRecord is the per-date bundle of tasks, completion, notes, image, and
// health inputs. Records are created lazily on first access and never deleted.
//
// Task identity is the task text itself: Completed, RemovedTasks, and the
// task sequences all key by literal string. Two groups that contain the same
// text therefore share one completion state. That is a documented invariant
// carried over from the persisted format, not an accident.
type DayRecord struct {
	SelectedGoalIDs []string        `json:"selectedGoalIds"`
	Completed       map[string]bool `json:"completed"`
	CustomTasks     []string        `json:"customTasks"`
	CarriedTasks    []string        `json:"carriedTasks"`
	RemovedTasks    []string        `json:"removedTasks"`
	Notes           string          `json:"notes"`
	Image           string          `json:"image,omitempty"`
	Exercise        Exercise        `json:"exercise"`
	Diet            Diet            `json:"diet"`
}

// NewDayRecord returns a fully populated record with documented defaults.
func NewDayRecord() *DayRecord {
	return &DayRecord{
		SelectedGoalIDs: []string{},
		Completed:       map[string]bool{},
		CustomTasks:     []string{},
		CarriedTasks:    []string{},
		RemovedTasks:    []string{},
		Exercise:        Exercise{Intensity: 0, DurationMinutes: 60},
		Diet:            Diet{},
	}
}

// HasGoal reports whether the goal id is selected for this day.
func (d *DayRecord) HasGoal(goalID string) bool {
	for _, id := range d.SelectedGoalIDs {
		if id == goalID {
			return true
		}
	}
	return false
}

// ToggleGoal selects the goal for this day, or deselects it when already
// selected. Selection order is preserved for display.
func (d *DayRecord) ToggleGoal(goalID string) {
	for i, id := range d.SelectedGoalIDs {
		if id == goalID {
			d.SelectedGoalIDs = append(d.SelectedGoalIDs[:i], d.SelectedGoalIDs[i+1:]...)
			return
		}
	}
	d.SelectedGoalIDs = append(d.SelectedGoalIDs, goalID)
}

// AddCustomTask appends an ad hoc task unless it is already present in
// CustomTasks. Returns false for blank or duplicate input.
func (d *DayRecord) AddCustomTask(task string) bool {
	if task == "" || containsString(d.CustomTasks, task) {
		return false
	}
	d.CustomTasks = append(d.CustomTasks, task)
	return true
}

// SetCompleted records the done-state for a task by its text.
func (d *DayRecord) SetCompleted(task string, done bool) {
	if d.Completed == nil {
		d.Completed = map[string]bool{}
	}
	d.Completed[task] = done
}

// RemoveTask deletes a task from this day's checklist. Ad hoc occurrences are
// dropped from CustomTasks and CarriedTasks; when the task text belongs to any
// goal in the catalog it is also added to RemovedTasks so that the goal task
// stays hidden for this day even while the goal remains selected. The goal's
// own task list is never touched. Completion state for the text is cleared.
func (d *DayRecord) RemoveTask(task string, goals []Goal) {
	d.CustomTasks = withoutString(d.CustomTasks, task)
	d.CarriedTasks = withoutString(d.CarriedTasks, task)
	for _, g := range goals {
		if containsString(g.TodayTasks, task) {
			if !containsString(d.RemovedTasks, task) {
				d.RemovedTasks = append(d.RemovedTasks, task)
			}
			break
		}
	}
	delete(d.Completed, task)
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

func withoutString(items []string, target string) []string {
	out := items[:0]
	for _, item := range items {
		if item != target {
			out = append(out, item)
		}
	}
	return out
}
