package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eugene-medvedev/Tomorrow-Planner/internal/dateutil"
)

func (m Model) handlePlannerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.ChecklistCursor > 0 {
			m.ChecklistCursor--
		}
	case "down", "j":
		if m.ChecklistCursor < len(m.daySummary().AllTasks())-1 {
			m.ChecklistCursor++
		}
	case "h", "left":
		m.Selected = m.Selected.AddDate(0, 0, -1)
		m.MainCursor = m.Selected
		m.Status = StatusBar{Text: "day: " + dateutil.HumanLabel(m.Selected)}
	case "l", "right":
		m.Selected = m.Selected.AddDate(0, 0, 1)
		m.MainCursor = m.Selected
		m.Status = StatusBar{Text: "day: " + dateutil.HumanLabel(m.Selected)}
	case "t":
		m.jumpToToday()
		m.Status = StatusBar{Text: "day: " + dateutil.HumanLabel(m.Selected)}
	case " ", "enter":
		return m.toggleSelectedTask()
	case "d":
		return m.deleteSelectedTask()
	case "s":
		if task, ok := m.currentChecklistTask(); ok {
			m.Reschedule = RescheduleState{Active: true, Task: task}
			m.dateInput.SetValue("")
			m.dateInput.Focus()
			m.Status = StatusBar{Text: fmt.Sprintf("reschedule %q: enter a date", task)}
		}
	case "n":
		m.NotesEditing = true
		m.notesArea.SetValue(m.State.Day(m.selectedKey()).Notes)
		m.notesArea.Focus()
		m.Status = StatusBar{Text: "editing notes, esc to save"}
	}
	return m, nil
}

func (m Model) toggleSelectedTask() (Model, tea.Cmd) {
	task, ok := m.currentChecklistTask()
	if !ok {
		return m, nil
	}
	day := m.State.Day(m.selectedKey())
	day.SetCompleted(task, !day.Completed[task])
	cmd := m.persist()

	summary := m.daySummary()
	switch {
	case summary.Celebrate():
		m.Status = StatusBar{Text: fmt.Sprintf("all %d tasks done, that is a full day", summary.TotalTasks)}
	case day.Completed[task]:
		m.Status = StatusBar{Text: "done: " + task}
	default:
		m.Status = StatusBar{Text: "reopened: " + task}
	}
	return m, cmd
}

func (m Model) deleteSelectedTask() (Model, tea.Cmd) {
	task, ok := m.currentChecklistTask()
	if !ok {
		return m, nil
	}
	day := m.State.Day(m.selectedKey())
	day.RemoveTask(task, m.State.Goals)
	m.State.DeleteFutureTask(m.selectedKey(), task)
	m.ensureCursors()
	cmd := m.persist()
	m.Status = StatusBar{Text: "removed: " + task}
	return m, cmd
}

// handleNotesKey runs while the notes textarea has focus. Esc commits the
// buffer to the day record and saves.
func (m Model) handleNotesKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.NotesEditing = false
		m.notesArea.Blur()
		m.State.Day(m.selectedKey()).Notes = m.notesArea.Value()
		cmd := m.persist()
		m.Status = StatusBar{Text: "notes saved"}
		return m, cmd
	}
	var cmd tea.Cmd
	m.notesArea, cmd = m.notesArea.Update(msg)
	return m, cmd
}

// handleRescheduleKey runs while the inline date prompt is open. Enter moves
// the chosen task off today's list onto the given future date.
func (m Model) handleRescheduleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Reschedule = RescheduleState{}
		m.dateInput.Blur()
		m.Status = StatusBar{Text: "reschedule cancelled"}
		return m, nil
	case "enter":
		raw := m.dateInput.Value()
		if _, err := dateutil.ParseDateKey(raw); err != nil {
			m.Status = StatusBar{Text: "enter a date as " + dateutil.KeyLayout, IsError: true}
			return m, nil
		}
		task := m.Reschedule.Task
		day := m.State.Day(m.selectedKey())
		day.RemoveTask(task, m.State.Goals)
		m.State.DeleteFutureTask(m.selectedKey(), task)
		m.State.ScheduleFutureTask(raw, task)
		m.Reschedule = RescheduleState{}
		m.dateInput.Blur()
		m.ensureCursors()
		cmd := m.persist()
		m.Status = StatusBar{Text: fmt.Sprintf("moved %q to %s", task, raw)}
		return m, cmd
	}
	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)
	return m, cmd
}
