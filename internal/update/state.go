package update

import (
	"sort"

	"github.com/eugene-medvedev/Tomorrow-Planner/internal/model"
	"github.com/eugene-medvedev/Tomorrow-Planner/internal/plan"
	"github.com/eugene-medvedev/Tomorrow-Planner/internal/views"
)

// daySummary aggregates the selected day's checklist, including tasks
// scheduled for that exact date.
func (m Model) daySummary() plan.Summary {
	key := m.selectedKey()
	return plan.Aggregate(m.State.GoalsByID(), m.State.Day(key), m.State.FutureTasks[key])
}

func (m Model) currentChecklistTask() (string, bool) {
	tasks := m.daySummary().AllTasks()
	if len(tasks) == 0 || m.ChecklistCursor < 0 || m.ChecklistCursor >= len(tasks) {
		return "", false
	}
	return tasks[m.ChecklistCursor], true
}

func (m Model) currentGoal() (model.Goal, bool) {
	if len(m.State.Goals) == 0 || m.GoalsCursor < 0 || m.GoalsCursor >= len(m.State.Goals) {
		return model.Goal{}, false
	}
	return m.State.Goals[m.GoalsCursor], true
}

type upcomingEntry struct {
	DateKey string
	Task    string
}

// upcomingEntries flattens the future-task map into (date, task) rows sorted
// by date, skipping the selected day whose tasks already sit on the checklist.
func (m Model) upcomingEntries() []upcomingEntry {
	selected := m.selectedKey()
	out := make([]upcomingEntry, 0)
	for _, key := range m.State.UpcomingDateKeys(selected) {
		tasks := append([]string(nil), m.State.FutureTasks[key]...)
		sort.Strings(tasks)
		for _, task := range tasks {
			out = append(out, upcomingEntry{DateKey: key, Task: task})
		}
	}
	return out
}

func (m Model) currentUpcomingEntry() (upcomingEntry, bool) {
	entries := m.upcomingEntries()
	if len(entries) == 0 || m.UpcomingCursor < 0 || m.UpcomingCursor >= len(entries) {
		return upcomingEntry{}, false
	}
	return entries[m.UpcomingCursor], true
}

func (m *Model) ensureCursors() {
	m.ChecklistCursor = clamp(m.ChecklistCursor, len(m.daySummary().AllTasks()))
	m.GoalsCursor = clamp(m.GoalsCursor, len(m.State.Goals))
	m.UpcomingCursor = clamp(m.UpcomingCursor, len(m.upcomingEntries()))
	if m.HealthCursorRow < 0 {
		m.HealthCursorRow = 0
	}
	if m.HealthCursorRow >= healthFieldCount {
		m.HealthCursorRow = healthFieldCount - 1
	}
}

func clamp(cursor, length int) int {
	if length == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}

func (m *Model) syncBubbleData() {
	if m.Palette.Active {
		m.commandInput.Focus()
	}
	if m.Reschedule.Active {
		m.dateInput.Focus()
	}
	if m.FieldEditing {
		m.fieldInput.Focus()
	}

	day := m.State.Day(m.selectedKey())
	if !m.NotesEditing {
		m.notesArea.SetValue(day.Notes)
	}
	md := day.Notes
	if md == "" {
		md = "_No notes yet_"
	}
	m.notesPreview.SetContent(views.RenderMarkdown(md))
}
