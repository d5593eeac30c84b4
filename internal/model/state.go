package model

import "sort"

// StateVersion is bumped whenever the persisted shape changes in a way that
// Migrate has to repair. Version 2 introduced exercise intensity/duration in
// place of the legacy free-form exercise type.
const StateVersion = 2

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
	SexUnset  Sex = ""
)

// Profile is the singleton health profile, mutated in place with no history.
type Profile struct {
	Sex       Sex `json:"sex"`
	Age       int `json:"age,omitempty"`
	WeightLbs int `json:"weightLbs,omitempty"`
	HeightIn  int `json:"heightIn,omitempty"`
}

// State is the root aggregate of everything the planner persists. There is a
// single logical owner (the running TUI) and the whole tree is saved wholesale
// on every mutation.
type State struct {
	Version          int                   `json:"version"`
	Goals            []Goal                `json:"goals"`
	Days             map[string]*DayRecord `json:"days"`
	Theme            string                `json:"theme"`
	FutureTasks      map[string][]string   `json:"futureTasks"`
	Profile          Profile               `json:"profile"`
	LastVisitDateKey string                `json:"lastVisitDateKey,omitempty"`
}

// NewState returns the default state used on first run and after a failed load.
func NewState() *State {
	return &State{
		Version:     StateVersion,
		Goals:       DefaultGoals(),
		Days:        map[string]*DayRecord{},
		Theme:       "calm",
		FutureTasks: map[string][]string{},
	}
}

// Day returns the record for the given day key, lazily creating one with
// defaults. The returned pointer is the record stored in the map, so caller
// mutations are visible to the next save.
func (s *State) Day(key string) *DayRecord {
	if s.Days == nil {
		s.Days = map[string]*DayRecord{}
	}
	d, ok := s.Days[key]
	if !ok {
		d = NewDayRecord()
		s.Days[key] = d
	}
	return d
}

// GoalsByID indexes the catalog by goal id.
func (s *State) GoalsByID() map[string]Goal {
	out := make(map[string]Goal, len(s.Goals))
	for _, g := range s.Goals {
		out[g.ID] = g
	}
	return out
}

// ScheduleFutureTask appends a task to the given future date. Duplicate texts
// for one date are allowed here; dedup happens when the task is moved onto a
// day's checklist.
func (s *State) ScheduleFutureTask(dateKey, task string) {
	if s.FutureTasks == nil {
		s.FutureTasks = map[string][]string{}
	}
	s.FutureTasks[dateKey] = append(s.FutureTasks[dateKey], task)
}

// DeleteFutureTask removes one scheduled task text from a date, pruning the
// date entry entirely once it is empty.
func (s *State) DeleteFutureTask(dateKey, task string) {
	tasks, ok := s.FutureTasks[dateKey]
	if !ok {
		return
	}
	tasks = withoutString(tasks, task)
	if len(tasks) == 0 {
		delete(s.FutureTasks, dateKey)
	} else {
		s.FutureTasks[dateKey] = tasks
	}
}

// MoveFutureTaskToDay moves a scheduled task into the day's custom tasks,
// dropping it from FutureTasks. The move is deduplicated against the day's
// existing custom tasks.
func (s *State) MoveFutureTaskToDay(dateKey, task, dayKey string) {
	s.Day(dayKey).AddCustomTask(task)
	s.DeleteFutureTask(dateKey, task)
}

// UpcomingDateKeys returns the sorted date keys that still hold scheduled
// tasks, excluding the given day (shown on the checklist instead).
func (s *State) UpcomingDateKeys(excludeKey string) []string {
	keys := make([]string, 0, len(s.FutureTasks))
	for key, tasks := range s.FutureTasks {
		if key != excludeKey && len(tasks) > 0 {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Migrate repairs legacy persisted shapes in place. It runs exactly once per
// load, not on every access: records written before version 2 carried a
// free-form exercise type instead of an intensity, and very old records may
// have nil maps or slices.
func (s *State) Migrate() {
	if s.Goals == nil {
		s.Goals = DefaultGoals()
	}
	if s.Days == nil {
		s.Days = map[string]*DayRecord{}
	}
	if s.FutureTasks == nil {
		s.FutureTasks = map[string][]string{}
	}
	if s.Theme == "" {
		s.Theme = "calm"
	}
	for _, d := range s.Days {
		if d.SelectedGoalIDs == nil {
			d.SelectedGoalIDs = []string{}
		}
		if d.Completed == nil {
			d.Completed = map[string]bool{}
		}
		if d.CustomTasks == nil {
			d.CustomTasks = []string{}
		}
		if d.CarriedTasks == nil {
			d.CarriedTasks = []string{}
		}
		if d.RemovedTasks == nil {
			d.RemovedTasks = []string{}
		}
		if d.Exercise.Intensity == 0 && d.Exercise.LegacyType != "" {
			d.Exercise.Intensity = 5
			d.Exercise.LegacyType = ""
		}
		if d.Exercise.DurationMinutes == 0 {
			d.Exercise.DurationMinutes = 60
		}
	}
	s.Version = StateVersion
}
