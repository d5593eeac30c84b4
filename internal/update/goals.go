package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleGoalsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.GoalsCursor > 0 {
			m.GoalsCursor--
		}
	case "down", "j":
		if m.GoalsCursor < len(m.State.Goals)-1 {
			m.GoalsCursor++
		}
	case " ", "enter":
		goal, ok := m.currentGoal()
		if !ok {
			return m, nil
		}
		day := m.State.Day(m.selectedKey())
		day.ToggleGoal(goal.ID)
		cmd := m.persist()
		if day.HasGoal(goal.ID) {
			m.Status = StatusBar{Text: fmt.Sprintf("%s is on for %s", goal.Name, m.selectedKey())}
		} else {
			m.Status = StatusBar{Text: fmt.Sprintf("%s is off for %s", goal.Name, m.selectedKey())}
		}
		return m, cmd
	case "x":
		goal, ok := m.currentGoal()
		if !ok {
			return m, nil
		}
		m.State.Goals = append(m.State.Goals[:m.GoalsCursor], m.State.Goals[m.GoalsCursor+1:]...)
		m.ensureCursors()
		cmd := m.persist()
		m.Status = StatusBar{Text: "deleted goal: " + goal.Name}
		return m, cmd
	}
	return m, nil
}
