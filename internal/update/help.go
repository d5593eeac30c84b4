package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/eugene-medvedev/Tomorrow-Planner/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.viewBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Planner, Action: "switch to Planner"},
		{Key: m.Keys.Goals, Action: "switch to Goals"},
		{Key: m.Keys.Calendar, Action: "switch to Calendar"},
		{Key: m.Keys.Health, Action: "switch to Health"},
		{Key: "/", Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	switch m.CurrentView {
	case ViewPlanner:
		return []KeyBinding{
			{Key: "j/k", Action: "move checklist cursor"},
			{Key: "space", Action: "toggle task done"},
			{Key: "d", Action: "remove task from the day"},
			{Key: "s", Action: "reschedule task to a date"},
			{Key: "n", Action: "edit notes"},
			{Key: "h/l", Action: "previous/next day"},
			{Key: "t", Action: "jump to today"},
		}
	case ViewGoals:
		return []KeyBinding{
			{Key: "j/k", Action: "move goal cursor"},
			{Key: "space", Action: "toggle goal for the day"},
			{Key: "x", Action: "delete goal"},
		}
	case ViewCalendar:
		return []KeyBinding{
			{Key: "h/j/k/l", Action: "move selected day"},
			{Key: "[/]", Action: "previous/next month"},
			{Key: "J/K", Action: "move upcoming cursor"},
			{Key: "m/d", Action: "bring forward / delete scheduled task"},
			{Key: "enter", Action: "open day in planner"},
		}
	case ViewHealth:
		return []KeyBinding{
			{Key: "j/k", Action: "move field cursor"},
			{Key: "enter", Action: "edit field"},
			{Key: "space", Action: "cycle sex"},
			{Key: "[/]", Action: "previous/next health month"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.viewBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.viewBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
