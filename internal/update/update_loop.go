package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eugene-medvedev/Tomorrow-Planner/internal/dateutil"
	"github.com/eugene-medvedev/Tomorrow-Planner/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		m.ensureCursors()

		if m.Palette.Active {
			if typed.String() == "ctrl+c" {
				m.Quitting = true
				return m, tea.Quit
			}
			return m.handlePaletteKey(typed)
		}
		if m.NotesEditing {
			return m.handleNotesKey(typed)
		}
		if m.Reschedule.Active {
			return m.handleRescheduleKey(typed)
		}
		if m.FieldEditing {
			return m.handleFieldKey(typed)
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Planner:
			m.CurrentView = ViewPlanner
			return m, nil
		case m.Keys.Goals:
			m.CurrentView = ViewGoals
			return m, nil
		case m.Keys.Calendar:
			m.CurrentView = ViewCalendar
			return m, nil
		case m.Keys.Health:
			m.CurrentView = ViewHealth
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewPlanner:
			return m.handlePlannerKey(typed)
		case ViewGoals:
			return m.handleGoalsKey(typed)
		case ViewCalendar:
			return m.handleCalendarKey(typed)
		case ViewHealth:
			return m.handleHealthKey(typed)
		}
	case spinner.TickMsg:
		if m.spinnerActive {
			var cmd tea.Cmd
			m.syncSpinner, cmd = m.syncSpinner.Update(typed)
			return m, cmd
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SelectDayMsg:
		if t, err := dateutil.ParseDateKey(typed.Key); err == nil {
			m.Selected = t
			m.MainCursor = t
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case MirrorDoneMsg:
		m.spinnerActive = false
		if typed.Err == nil {
			m.Status = StatusBar{Text: "mirror sync complete"}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	m.syncBubbleData()

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewPlanner:
		leftPane = m.renderChecklistView()
		rightPane = m.renderNotesView() + m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewGoals:
		leftPane = m.renderGoalsView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewCalendar:
		leftPane = m.renderCalendarView()
		rightPane = m.renderUpcomingView() + m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewHealth:
		leftPane = m.renderHealthView()
		rightPane = m.renderHealthCalendarsView() + m.renderHelpIfVisible()
	}

	notification := ""
	if m.spinnerActive {
		notification = "mirror: " + m.syncSpinner.View() + " pushing"
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("planner | view: %s | day: %s", m.CurrentView, dateutil.HumanLabel(m.Selected)),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		Notification: notification,
		Footer: fmt.Sprintf("keys: %s plan | %s goals | %s cal | %s health | / cmd | %s help | %s quit",
			m.Keys.Planner, m.Keys.Goals, m.Keys.Calendar, m.Keys.Health, m.Keys.Help, m.Keys.Quit),
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewPlanner, ViewGoals, ViewCalendar, ViewHealth:
		return true
	default:
		return false
	}
}
