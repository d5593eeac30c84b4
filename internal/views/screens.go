package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type ChecklistItemData struct {
	Text     string
	Done     bool
	Selected bool
	Carried  bool
	Future   bool
}

type ChecklistGroupData struct {
	Name     string
	Complete bool
	Items    []ChecklistItemData
}

type ChecklistPanelData struct {
	DayLabel     string
	Groups       []ChecklistGroupData
	TotalTasks   int
	TotalDone    int
	Percent      int
	ProgressView string
	Celebrate    bool
	HasPhoto     bool
}

func RenderChecklistPanel(data ChecklistPanelData) string {
	var b strings.Builder
	b.WriteString("checklist: " + data.DayLabel + "\n")
	b.WriteString("actions: [j/k]move [space]done [d]remove [s]reschedule [n]notes [h/l]day\n")
	b.WriteString(fmt.Sprintf("%s %d/%d (%d%%)\n", data.ProgressView, data.TotalDone, data.TotalTasks, data.Percent))
	if data.Celebrate {
		b.WriteString("*** every task finished, well planned ***\n")
	}
	if data.HasPhoto {
		b.WriteString("photo: attached\n")
	}
	if len(data.Groups) == 0 {
		b.WriteString("\n(no tasks, toggle a goal or /add one)")
		return strings.TrimSpace(b.String())
	}
	for _, group := range data.Groups {
		title := group.Name
		if group.Complete {
			title += " [complete]"
		}
		b.WriteString(fmt.Sprintf("\n%s:\n", title))
		for _, item := range group.Items {
			b.WriteString(renderChecklistItem(item) + "\n")
		}
	}
	return strings.TrimSpace(b.String())
}

func renderChecklistItem(item ChecklistItemData) string {
	cursor := " "
	if item.Selected {
		cursor = ">"
	}
	mark := "[ ]"
	if item.Done {
		mark = "[x]"
	}
	text := item.Text
	switch {
	case item.Carried:
		text += " (carried)"
	case item.Future:
		text += " (scheduled)"
	}
	if item.Done {
		text = doneStyle.Render(text)
	}
	return fmt.Sprintf("%s %s %s", cursor, mark, text)
}

type GoalItemData struct {
	Name        string
	TaskCount   int
	ActiveToday bool
	Selected    bool
}

type GoalsPanelData struct {
	DayLabel string
	Items    []GoalItemData
}

func RenderGoalsPanel(data GoalsPanelData) string {
	var b strings.Builder
	b.WriteString("goals for " + data.DayLabel + ":\n")
	b.WriteString("actions: [j/k]move [space]toggle [x]delete | palette: /goal /plan\n")
	if len(data.Items) == 0 {
		b.WriteString("\n(no goals yet, create one with /goal name: task, task)")
		return strings.TrimSpace(b.String())
	}
	for _, item := range data.Items {
		cursor := " "
		if item.Selected {
			cursor = ">"
		}
		mark := "( )"
		if item.ActiveToday {
			mark = "(*)"
		}
		b.WriteString(fmt.Sprintf("%s %s %s (%d tasks)\n", cursor, mark, item.Name, item.TaskCount))
	}
	return strings.TrimSpace(b.String())
}

type CalendarCellData struct {
	Day      int
	Selected bool
	Today    bool
	Marker   bool
	Color    lipgloss.Color
	HasColor bool
}

type CalendarPanelData struct {
	Title   string
	Legend  string
	Actions string
	Cells   []CalendarCellData
}

// RenderCalendarGrid draws a fixed five-week grid, seven cells per row.
func RenderCalendarGrid(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString(data.Title + "\n")
	if data.Actions != "" {
		b.WriteString(data.Actions + "\n")
	}
	b.WriteString(" Mo  Tu  We  Th  Fr  Sa  Su\n")
	for i, cell := range data.Cells {
		b.WriteString(renderCalendarCell(cell))
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}
	if data.Legend != "" {
		b.WriteString(data.Legend)
	}
	return strings.TrimSpace(b.String())
}

func renderCalendarCell(cell CalendarCellData) string {
	if cell.Day == 0 {
		return "  . "
	}
	text := fmt.Sprintf("%2d", cell.Day)
	if cell.Marker {
		text += "!"
	} else {
		text += " "
	}
	if cell.HasColor {
		text = lipgloss.NewStyle().Foreground(cell.Color).Render(text)
	}
	if cell.Today {
		text = todayStyle.Render(text)
	}
	if cell.Selected {
		text = selectStyle.Render(text)
	}
	return " " + text
}

type UpcomingEntryData struct {
	Date     string
	Task     string
	Selected bool
}

type UpcomingPanelData struct {
	Entries []UpcomingEntryData
}

func RenderUpcomingPanel(data UpcomingPanelData) string {
	var b strings.Builder
	b.WriteString("upcoming:\n")
	b.WriteString("actions: [J/K]move [m]bring to today [d]delete | /sched date task\n")
	if len(data.Entries) == 0 {
		b.WriteString("(nothing scheduled)")
		return strings.TrimSpace(b.String())
	}
	for _, entry := range data.Entries {
		cursor := " "
		if entry.Selected {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n", cursor, entry.Date, entry.Task))
	}
	return strings.TrimSpace(b.String())
}

type HealthFieldData struct {
	Label    string
	Value    string
	Selected bool
	Editing  bool
	Input    string
}

type ProjectionData struct {
	PerDay     float64
	PerWeek    float64
	PerMonth   float64
	PerQuarter float64
}

type HealthPanelData struct {
	Fields           []HealthFieldData
	BMR              int
	ExerciseCalories int
	Deficit          int
	Projection       ProjectionData
	HasProfile       bool
}

func RenderHealthPanel(data HealthPanelData) string {
	var b strings.Builder
	b.WriteString("health:\n")
	b.WriteString("actions: [j/k]field [enter]edit [space]cycle sex, month with [ and ]\n")
	for _, field := range data.Fields {
		cursor := " "
		if field.Selected {
			cursor = ">"
		}
		value := field.Value
		if value == "" {
			value = "-"
		}
		b.WriteString(fmt.Sprintf("%s %s: %s\n", cursor, field.Label, value))
		if field.Editing {
			b.WriteString("  " + field.Input + "\n")
		}
	}
	b.WriteString("\n")
	if !data.HasProfile {
		b.WriteString("fill in sex, age, weight, and height to see your numbers")
		return strings.TrimSpace(b.String())
	}
	b.WriteString(fmt.Sprintf("bmr: %d cal/day\n", data.BMR))
	b.WriteString(fmt.Sprintf("exercise burn: %d cal\n", data.ExerciseCalories))
	b.WriteString(fmt.Sprintf("deficit: %d cal\n", data.Deficit))
	b.WriteString(fmt.Sprintf("projected loss: %.2f lb/day | %.1f lb/wk | %.1f lb/mo | %.1f lb/qtr",
		data.Projection.PerDay, data.Projection.PerWeek, data.Projection.PerMonth, data.Projection.PerQuarter))
	return strings.TrimSpace(b.String())
}

type NotesPaneData struct {
	DayLabel   string
	Editing    bool
	EditorView string
	Preview    string
	HasPhoto   bool
}

func RenderNotesPane(data NotesPaneData) string {
	var b strings.Builder
	b.WriteString("notes: " + data.DayLabel + "\n")
	if data.Editing {
		b.WriteString("(editing, esc to save)\n")
		b.WriteString(data.EditorView)
		return strings.TrimSpace(b.String())
	}
	b.WriteString("[n]edit | /photo path | /photo clear\n")
	if data.HasPhoto {
		b.WriteString("photo: attached\n")
	}
	if strings.TrimSpace(data.Preview) == "" {
		b.WriteString("(no notes yet)")
	} else {
		b.WriteString(data.Preview)
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return "\n\ncommand: " + inputView
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("\n\nhelp:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
