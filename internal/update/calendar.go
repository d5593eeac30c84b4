package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eugene-medvedev/Tomorrow-Planner/internal/dateutil"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		m.shiftSelected(0, -1)
	case "l", "right":
		m.shiftSelected(0, 1)
	case "k", "up":
		m.shiftSelected(0, -7)
	case "j", "down":
		m.shiftSelected(0, 7)
	case "[":
		m.MainCursor = m.MainCursor.AddDate(0, -1, 0)
		m.Status = StatusBar{Text: "month: " + dateutil.MonthLabel(m.MainCursor)}
	case "]":
		m.MainCursor = m.MainCursor.AddDate(0, 1, 0)
		m.Status = StatusBar{Text: "month: " + dateutil.MonthLabel(m.MainCursor)}
	case "t":
		m.jumpToToday()
		m.Status = StatusBar{Text: "day: " + dateutil.HumanLabel(m.Selected)}
	case "enter":
		m.CurrentView = ViewPlanner
		m.Status = StatusBar{Text: "day: " + dateutil.HumanLabel(m.Selected)}
	case "K":
		if m.UpcomingCursor > 0 {
			m.UpcomingCursor--
		}
	case "J":
		if m.UpcomingCursor < len(m.upcomingEntries())-1 {
			m.UpcomingCursor++
		}
	case "m":
		entry, ok := m.currentUpcomingEntry()
		if !ok {
			return m, nil
		}
		m.State.MoveFutureTaskToDay(entry.DateKey, entry.Task, m.todayKey())
		m.ensureCursors()
		cmd := m.persist()
		m.Status = StatusBar{Text: fmt.Sprintf("moved %q to today", entry.Task)}
		return m, cmd
	case "d":
		entry, ok := m.currentUpcomingEntry()
		if !ok {
			return m, nil
		}
		m.State.DeleteFutureTask(entry.DateKey, entry.Task)
		m.ensureCursors()
		cmd := m.persist()
		m.Status = StatusBar{Text: fmt.Sprintf("deleted scheduled task %q", entry.Task)}
		return m, cmd
	}
	return m, nil
}

// shiftSelected moves the selected day and keeps the month cursor on the
// month that now contains it.
func (m *Model) shiftSelected(months, days int) {
	m.Selected = m.Selected.AddDate(0, months, days)
	m.MainCursor = m.Selected
}
