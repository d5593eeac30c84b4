package update

import (
	"fmt"
	"strings"

	"github.com/eugene-medvedev/Tomorrow-Planner/internal/dateutil"
	"github.com/eugene-medvedev/Tomorrow-Planner/internal/health"
	"github.com/eugene-medvedev/Tomorrow-Planner/internal/plan"
	"github.com/eugene-medvedev/Tomorrow-Planner/internal/views"
)

func (m Model) renderChecklistView() string {
	summary := m.daySummary()
	day := m.State.Day(m.selectedKey())
	future := m.State.FutureTasks[m.selectedKey()]

	groups := make([]views.ChecklistGroupData, 0, len(summary.Groups))
	index := 0
	for _, group := range summary.Groups {
		items := make([]views.ChecklistItemData, 0, len(group.Tasks))
		for _, task := range group.Tasks {
			items = append(items, views.ChecklistItemData{
				Text:     task,
				Done:     day.Completed[task],
				Selected: index == m.ChecklistCursor,
				Carried:  containsTask(day.CarriedTasks, task),
				Future:   containsTask(future, task),
			})
			index++
		}
		groups = append(groups, views.ChecklistGroupData{
			Name:     group.Name,
			Complete: group.Complete(),
			Items:    items,
		})
	}

	return views.RenderChecklistPanel(views.ChecklistPanelData{
		DayLabel:     dateutil.HumanLabel(m.Selected),
		Groups:       groups,
		TotalTasks:   summary.TotalTasks,
		TotalDone:    summary.TotalDone,
		Percent:      summary.CompletionPercent(),
		ProgressView: m.doneProgress.ViewAs(float64(summary.CompletionPercent()) / 100),
		Celebrate:    summary.Celebrate(),
		HasPhoto:     day.Image != "",
	})
}

func (m Model) renderNotesView() string {
	day := m.State.Day(m.selectedKey())
	pane := views.RenderNotesPane(views.NotesPaneData{
		DayLabel:   dateutil.ShortLabel(m.Selected),
		Editing:    m.NotesEditing,
		EditorView: m.notesArea.View(),
		Preview:    m.notesPreview.View(),
		HasPhoto:   day.Image != "",
	})
	if m.Reschedule.Active {
		pane += fmt.Sprintf("\n\nreschedule %q:\n%s", m.Reschedule.Task, m.dateInput.View())
	}
	return pane
}

func (m Model) renderGoalsView() string {
	day := m.State.Day(m.selectedKey())
	items := make([]views.GoalItemData, 0, len(m.State.Goals))
	for i, goal := range m.State.Goals {
		items = append(items, views.GoalItemData{
			Name:        goal.Name,
			TaskCount:   len(goal.TodayTasks),
			ActiveToday: day.HasGoal(goal.ID),
			Selected:    i == m.GoalsCursor,
		})
	}
	return views.RenderGoalsPanel(views.GoalsPanelData{
		DayLabel: dateutil.HumanLabel(m.Selected),
		Items:    items,
	})
}

func (m Model) renderCalendarView() string {
	cells := plan.BuildMonthGrid(m.State, m.MainCursor, plan.GridModeMain, m.Selected, m.now())
	return views.RenderCalendarGrid(views.CalendarPanelData{
		Title:   "calendar: " + dateutil.MonthLabel(m.MainCursor),
		Actions: "actions: [h/j/k/l]day [t]today [enter]open, month with [ and ]",
		Legend:  "! has scheduled tasks",
		Cells:   gridCells(cells),
	})
}

func (m Model) renderUpcomingView() string {
	entries := m.upcomingEntries()
	data := make([]views.UpcomingEntryData, 0, len(entries))
	for i, entry := range entries {
		data = append(data, views.UpcomingEntryData{
			Date:     entry.DateKey,
			Task:     entry.Task,
			Selected: i == m.UpcomingCursor,
		})
	}
	return views.RenderUpcomingPanel(views.UpcomingPanelData{Entries: data})
}

func (m Model) renderHealthView() string {
	fields := make([]views.HealthFieldData, 0, int(healthFieldCount))
	for f := HealthField(0); f < healthFieldCount; f++ {
		fields = append(fields, views.HealthFieldData{
			Label:    healthFieldLabel(f),
			Value:    m.healthFieldValue(f),
			Selected: f == m.HealthCursorRow,
			Editing:  m.FieldEditing && f == m.HealthCursorRow,
			Input:    m.fieldInput.View(),
		})
	}

	day := m.State.Day(m.selectedKey())
	deficit, exerciseCals := health.DietDeficit(m.State.Profile, day.Exercise, day.Diet)
	return views.RenderHealthPanel(views.HealthPanelData{
		Fields:           fields,
		BMR:              health.BMR(m.State.Profile),
		ExerciseCalories: exerciseCals,
		Deficit:          deficit,
		Projection:       projectionData(health.WeightLossProjection(deficit)),
		HasProfile:       health.BMR(m.State.Profile) > 0,
	})
}

func (m Model) renderHealthCalendarsView() string {
	exercise := plan.BuildMonthGrid(m.State, m.HealthCursor, plan.GridModeExercise, m.Selected, m.now())
	diet := plan.BuildMonthGrid(m.State, m.HealthCursor, plan.GridModeDiet, m.Selected, m.now())
	month := dateutil.MonthLabel(m.HealthCursor)

	parts := []string{
		views.RenderCalendarGrid(views.CalendarPanelData{
			Title: "exercise: " + month,
			Cells: gridCells(exercise),
		}),
		views.RenderCalendarGrid(views.CalendarPanelData{
			Title: "diet: " + month,
			Cells: gridCells(diet),
		}),
	}
	return strings.Join(parts, "\n\n")
}

func (m Model) renderCommandPalette() string {
	if !m.Palette.Active {
		return ""
	}
	return views.RenderCommandPalette(true, m.commandInput.View())
}

func gridCells(cells []plan.Cell) []views.CalendarCellData {
	out := make([]views.CalendarCellData, 0, len(cells))
	for _, cell := range cells {
		out = append(out, views.CalendarCellData{
			Day:      cell.Day,
			Selected: cell.IsSelected,
			Today:    cell.IsToday,
			Marker:   cell.HasFutureTask,
			Color:    cell.Color,
			HasColor: cell.HasColor,
		})
	}
	return out
}

func projectionData(p health.Projection) views.ProjectionData {
	return views.ProjectionData{
		PerDay:     p.PerDay,
		PerWeek:    p.PerWeek,
		PerMonth:   p.PerMonth,
		PerQuarter: p.PerQuarter,
	}
}

func containsTask(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
