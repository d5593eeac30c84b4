package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/eugene-medvedev/Tomorrow-Planner/internal/dateutil"
	"github.com/eugene-medvedev/Tomorrow-Planner/internal/mirror"
	"github.com/eugene-medvedev/Tomorrow-Planner/internal/model"
	"github.com/eugene-medvedev/Tomorrow-Planner/internal/storage"
)

type View string

const (
	ViewPlanner  View = "Planner"
	ViewGoals    View = "Goals"
	ViewCalendar View = "Calendar"
	ViewHealth   View = "Health"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Planner  string
	Goals    string
	Calendar string
	Health   string
	Help     string
	Quit     string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// RescheduleState is the inline date prompt opened from the checklist. While
// active it captures keys until a date is entered or the prompt is dismissed.
type RescheduleState struct {
	Active bool
	Task   string
}

// HealthField enumerates the editable rows of the health pane, top to bottom.
type HealthField int

const (
	FieldSex HealthField = iota
	FieldAge
	FieldWeight
	FieldHeight
	FieldIntensity
	FieldDuration
	FieldExerciseRating
	FieldConsumed
	FieldDietRating
	healthFieldCount
)

type Model struct {
	State  *model.State
	Store  storage.StateStore
	Mirror mirror.Mirror
	UserID string

	CurrentView View
	// Selected is the day the planner operates on, at local midnight.
	Selected time.Time
	// MainCursor and HealthCursor are independent month cursors. The health
	// cursor is shared by the exercise and diet mini calendars.
	MainCursor   time.Time
	HealthCursor time.Time

	ChecklistCursor int
	GoalsCursor     int
	UpcomingCursor  int
	HealthCursorRow HealthField

	Palette      CommandPaletteState
	Reschedule   RescheduleState
	NotesEditing bool
	FieldEditing bool
	HelpVisible  bool

	Status    StatusBar
	Keys      GlobalKeyMap
	Quitting  bool
	LastError error

	// Bubble components used for rich TUI controls
	commandInput  textinput.Model
	dateInput     textinput.Model
	fieldInput    textinput.Model
	notesArea     textarea.Model
	doneProgress  progress.Model
	syncSpinner   spinner.Model
	helpModel     help.Model
	notesPreview  viewport.Model
	spinnerActive bool

	// now is the clock; tests pin it to a fixed instant.
	now func() time.Time
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// SelectDayMsg jumps the selected day to the given date key.
type SelectDayMsg struct {
	Key string
}

// MirrorDoneMsg reports a finished remote push. Err is informational only;
// mirroring is best effort and never blocks or fails a local save.
type MirrorDoneMsg struct {
	Err error
}

func NewModel(state *model.State) Model {
	if state == nil {
		state = model.NewState()
	}
	m := Model{
		State:       state,
		Mirror:      mirror.Nop{},
		UserID:      "local",
		CurrentView: ViewPlanner,
		Keys: GlobalKeyMap{
			Planner:  "1",
			Goals:    "2",
			Calendar: "3",
			Health:   "4",
			Help:     "?",
			Quit:     "q",
		},
		now: time.Now,
	}
	m.jumpToToday()
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func NewModelWithRuntime(state *model.State, store storage.StateStore, mr mirror.Mirror, cfg RuntimeConfig) Model {
	m := NewModel(state)
	m.Store = store
	if mr != nil {
		m.Mirror = mr
	}
	if cfg.UserID != "" {
		m.UserID = cfg.UserID
	}
	return m
}

// WithClock pins the model's clock, so tests control what "today" means.
func (m Model) WithClock(now func() time.Time) Model {
	m.now = now
	m.jumpToToday()
	return m
}

func (m *Model) jumpToToday() {
	t := m.now()
	m.Selected = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	m.MainCursor = m.Selected
	m.HealthCursor = m.Selected
}

func (m Model) selectedKey() string {
	return dateutil.DateKey(m.Selected)
}

func (m Model) todayKey() string {
	return dateutil.DateKey(m.now())
}

func (m *Model) initBubbleComponents() {
	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.dateInput = textinput.New()
	m.dateInput.Prompt = "date> "
	m.dateInput.Placeholder = dateutil.KeyLayout
	m.dateInput.CharLimit = 10
	m.dateInput.Width = 16

	m.fieldInput = textinput.New()
	m.fieldInput.Prompt = "value> "
	m.fieldInput.CharLimit = 6
	m.fieldInput.Width = 10

	m.notesArea = textarea.New()
	m.notesArea.SetWidth(54)
	m.notesArea.SetHeight(8)
	m.notesArea.ShowLineNumbers = false
	m.notesArea.Placeholder = "Notes for the day (markdown)"

	m.doneProgress = progress.New(progress.WithDefaultGradient())
	m.doneProgress.Width = 40

	m.syncSpinner = spinner.New()
	m.syncSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
	m.notesPreview = viewport.New(54, 10)
}
