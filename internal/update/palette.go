package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eugene-medvedev/Tomorrow-Planner/internal/commands"
	"github.com/eugene-medvedev/Tomorrow-Planner/internal/dateutil"
	"github.com/eugene-medvedev/Tomorrow-Planner/internal/model"
	"github.com/eugene-medvedev/Tomorrow-Planner/internal/plan"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			day := m.State.Day(m.selectedKey())
			if !day.AddCustomTask(a.Task) {
				return commands.Result{Message: fmt.Sprintf("%q is already on the list", a.Task)}, nil
			}
			return commands.Result{Message: "added task: " + a.Task}, nil
		},
		Goal: func(a commands.GoalArgs) (commands.Result, error) {
			goal, err := model.NewGoal(a.Name, a.Tasks, m.now())
			if err != nil {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: "goal needs a name and at least one task",
				}
			}
			m.State.Goals = append(m.State.Goals, goal)
			return commands.Result{Message: fmt.Sprintf("created goal %q with %d tasks", goal.Name, len(goal.TodayTasks))}, nil
		},
		Plan: func(a commands.PlanArgs) (commands.Result, error) {
			goal, err := model.GenerateGoal(a.Prompt, m.now())
			if err != nil {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: "plan needs a prompt",
				}
			}
			m.State.Goals = append(m.State.Goals, goal)
			return commands.Result{Message: fmt.Sprintf("generated goal %q", goal.Name)}, nil
		},
		Sched: func(a commands.SchedArgs) (commands.Result, error) {
			if _, err := dateutil.ParseDateKey(a.Date); err != nil {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: "sched needs a date as " + dateutil.KeyLayout,
				}
			}
			m.State.ScheduleFutureTask(a.Date, a.Task)
			return commands.Result{Message: fmt.Sprintf("scheduled %q for %s", a.Task, a.Date)}, nil
		},
		Carry: func() (commands.Result, error) {
			moved, err := plan.CarryOver(m.State, m.Selected, m.now())
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("carried over %d task(s) from yesterday", moved)}, nil
		},
		Go: func(a commands.GoArgs) (commands.Result, error) {
			if a.When == "today" {
				m.jumpToToday()
				return commands.Result{Message: "day: " + dateutil.HumanLabel(m.Selected)}, nil
			}
			t, err := dateutil.ParseDateKey(a.When)
			if err != nil {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: `go needs a date as ` + dateutil.KeyLayout + ` or "today"`,
				}
			}
			m.Selected = t
			m.MainCursor = t
			return commands.Result{Message: "day: " + dateutil.HumanLabel(m.Selected)}, nil
		},
		Photo: func(a commands.PhotoArgs) (commands.Result, error) {
			day := m.State.Day(m.selectedKey())
			if a.Clear {
				day.Image = ""
				return commands.Result{Message: "photo removed"}, nil
			}
			dataURL, err := readImageDataURL(a.Path)
			if err != nil {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: err.Error(),
				}
			}
			day.Image = dataURL
			return commands.Result{Message: "photo attached"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	m.Status = StatusBar{Text: res.Message}
	m.ensureCursors()
	return m, m.persist()
}
