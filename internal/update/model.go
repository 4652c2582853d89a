package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/todo/internal/config"
	"github.com/sandeepkv93/todo/internal/logging"
	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/source"
	"github.com/sandeepkv93/todo/internal/store"
)

// Dialog names the modal surface currently open over the list.
type Dialog string

const (
	DialogNone   Dialog = ""
	DialogEdit   Dialog = "edit"
	DialogDelete Dialog = "delete"
)

type LoadState string

const (
	LoadPending LoadState = "loading"
	LoadDone    LoadState = "loaded"
	LoadFailed  LoadState = "failed"
)

type StatusBar struct {
	Text    string
	IsError bool
}

// Selection is the task targeted by an open edit or delete dialog. For an
// edit, Title holds the in-progress text and is only committed on save.
type Selection struct {
	TaskID int
	Title  string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	Store       *store.Store
	Filter      model.FilterMode
	Selection   *Selection
	Dialog      Dialog
	Cursor      int
	Adding      bool
	Load        LoadState
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        KeyMap
	Quitting    bool

	source  source.Source
	timeout time.Duration
	logger  *log.Logger
	// Bubble components used for rich TUI controls
	addInput     textinput.Model
	editInput    textinput.Model
	commandInput textinput.Model
	loadSpinner  spinner.Model
	helpModel    help.Model
}

type TasksLoadedMsg struct {
	Source string
	Tasks  []model.Task
}

type TasksLoadFailedMsg struct {
	Source string
	Err    error
}

type AddTaskMsg struct {
	Title string
}

type ToggleTaskMsg struct {
	ID int
}

type RequestEditMsg struct {
	ID int
}

type RequestDeleteMsg struct {
	ID int
}

type SetFilterMsg struct {
	Mode model.FilterMode
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

// NewModel returns a model over an empty store with nothing to load.
func NewModel() Model {
	m := Model{
		Store:  store.New(),
		Filter: model.FilterAll,
		Load:   LoadDone,
		Keys:   DefaultKeyMap(),
		logger: logging.Discard(),
	}
	m.initBubbleComponents()
	return m
}

// NewModelWithSource returns a model whose store is seeded from src once the
// program starts.
func NewModelWithSource(src source.Source, cfg config.RuntimeConfig, logger *log.Logger) Model {
	m := NewModel()
	if logger != nil {
		m.logger = logger
	}
	if mode, err := model.ParseFilterMode(cfg.Filter); err == nil {
		m.Filter = mode
	}
	m.timeout = cfg.Timeout
	if src != nil {
		m.source = src
		m.Load = LoadPending
	}
	return m
}

func (m *Model) initBubbleComponents() {
	m.addInput = textinput.New()
	m.addInput.Prompt = "add> "
	m.addInput.Placeholder = "Add to task list"
	m.addInput.CharLimit = 256
	m.addInput.Width = 48

	m.editInput = textinput.New()
	m.editInput.Prompt = "title> "
	m.editInput.Placeholder = "Edit task"
	m.editInput.CharLimit = 256
	m.editInput.Width = 36

	m.commandInput = textinput.New()
	m.commandInput.Prompt = ":"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 40

	m.loadSpinner = spinner.New()
	m.loadSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
}

// visibleTasks is the filtered view the cursor indexes into.
func (m Model) visibleTasks() []model.Task {
	return m.Store.Filtered(m.Filter)
}

func (m Model) currentTask() (model.Task, bool) {
	tasks := m.visibleTasks()
	if m.Cursor < 0 || m.Cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[m.Cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.visibleTasks())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}
