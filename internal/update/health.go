package update

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eugene-medvedev/Tomorrow-Planner/internal/dateutil"
	"github.com/eugene-medvedev/Tomorrow-Planner/internal/model"
)

func (m Model) handleHealthKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.HealthCursorRow > 0 {
			m.HealthCursorRow--
		}
	case "down", "j":
		if m.HealthCursorRow < healthFieldCount-1 {
			m.HealthCursorRow++
		}
	case "[":
		m.HealthCursor = m.HealthCursor.AddDate(0, -1, 0)
		m.Status = StatusBar{Text: "health month: " + dateutil.MonthLabel(m.HealthCursor)}
	case "]":
		m.HealthCursor = m.HealthCursor.AddDate(0, 1, 0)
		m.Status = StatusBar{Text: "health month: " + dateutil.MonthLabel(m.HealthCursor)}
	case " ":
		if m.HealthCursorRow == FieldSex {
			return m.cycleSex()
		}
	case "enter":
		if m.HealthCursorRow == FieldSex {
			return m.cycleSex()
		}
		m.FieldEditing = true
		m.fieldInput.SetValue(m.healthFieldValue(m.HealthCursorRow))
		m.fieldInput.Focus()
		m.Status = StatusBar{Text: "editing " + healthFieldLabel(m.HealthCursorRow)}
	}
	return m, nil
}

func (m Model) cycleSex() (Model, tea.Cmd) {
	switch m.State.Profile.Sex {
	case model.SexMale:
		m.State.Profile.Sex = model.SexFemale
	case model.SexFemale:
		m.State.Profile.Sex = model.SexOther
	default:
		m.State.Profile.Sex = model.SexMale
	}
	cmd := m.persist()
	m.Status = StatusBar{Text: "sex: " + string(m.State.Profile.Sex)}
	return m, cmd
}

// handleFieldKey runs while a numeric health field is being edited.
func (m Model) handleFieldKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.FieldEditing = false
		m.fieldInput.Blur()
		m.Status = StatusBar{Text: "edit cancelled"}
		return m, nil
	case "enter":
		raw := strings.TrimSpace(m.fieldInput.Value())
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			m.Status = StatusBar{Text: "enter a non-negative number", IsError: true}
			return m, nil
		}
		m.FieldEditing = false
		m.fieldInput.Blur()
		m.applyHealthField(m.HealthCursorRow, value)
		cmd := m.persist()
		m.Status = StatusBar{Text: fmt.Sprintf("%s: %d", healthFieldLabel(m.HealthCursorRow), value)}
		return m, cmd
	}
	var cmd tea.Cmd
	m.fieldInput, cmd = m.fieldInput.Update(msg)
	return m, cmd
}

func (m *Model) applyHealthField(field HealthField, value int) {
	day := m.State.Day(m.selectedKey())
	switch field {
	case FieldAge:
		m.State.Profile.Age = value
	case FieldWeight:
		m.State.Profile.WeightLbs = value
	case FieldHeight:
		m.State.Profile.HeightIn = value
	case FieldIntensity:
		day.Exercise.Intensity = clampScale(value)
	case FieldDuration:
		day.Exercise.DurationMinutes = value
	case FieldExerciseRating:
		rating := clampScale(value)
		day.Exercise.Rating = &rating
	case FieldConsumed:
		day.Diet.ConsumedCalories = &value
	case FieldDietRating:
		rating := clampScale(value)
		day.Diet.Rating = &rating
	}
}

func (m Model) healthFieldValue(field HealthField) string {
	day := m.State.Day(m.selectedKey())
	switch field {
	case FieldSex:
		return string(m.State.Profile.Sex)
	case FieldAge:
		return strconv.Itoa(m.State.Profile.Age)
	case FieldWeight:
		return strconv.Itoa(m.State.Profile.WeightLbs)
	case FieldHeight:
		return strconv.Itoa(m.State.Profile.HeightIn)
	case FieldIntensity:
		return strconv.Itoa(day.Exercise.Intensity)
	case FieldDuration:
		return strconv.Itoa(day.Exercise.DurationMinutes)
	case FieldExerciseRating:
		return intPtrString(day.Exercise.Rating)
	case FieldConsumed:
		return intPtrString(day.Diet.ConsumedCalories)
	case FieldDietRating:
		return intPtrString(day.Diet.Rating)
	default:
		return ""
	}
}

func healthFieldLabel(field HealthField) string {
	switch field {
	case FieldSex:
		return "sex"
	case FieldAge:
		return "age"
	case FieldWeight:
		return "weight (lbs)"
	case FieldHeight:
		return "height (in)"
	case FieldIntensity:
		return "exercise intensity (0-10)"
	case FieldDuration:
		return "exercise duration (mins)"
	case FieldExerciseRating:
		return "exercise rating (1-10)"
	case FieldConsumed:
		return "calories consumed"
	case FieldDietRating:
		return "diet rating (1-10)"
	default:
		return "field"
	}
}

// clampScale keeps 0-10 scale inputs on the scale.
func clampScale(value int) int {
	if value > 10 {
		return 10
	}
	return value
}

func intPtrString(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
