package update

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/source"
)

const defaultLoadTimeout = 10 * time.Second

func (m Model) Init() tea.Cmd {
	if m.source == nil || m.Load != LoadPending {
		return nil
	}
	return tea.Batch(loadTasksCmd(m.source, m.timeout), m.loadSpinner.Tick)
}

// loadTasksCmd performs the one-time seed fetch off the update goroutine.
// The UI stays interactive while it runs.
func loadTasksCmd(src source.Source, timeout time.Duration) tea.Cmd {
	if timeout <= 0 {
		timeout = defaultLoadTimeout
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		tasks, err := src.Fetch(ctx)
		if err != nil {
			return TasksLoadFailedMsg{Source: src.Name(), Err: err}
		}
		return TasksLoadedMsg{Source: src.Name(), Tasks: tasks}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case tea.WindowSizeMsg:
		m.helpModel.Width = typed.Width
		return m, nil
	case spinner.TickMsg:
		if m.Load == LoadPending {
			var cmd tea.Cmd
			m.loadSpinner, cmd = m.loadSpinner.Update(typed)
			return m, cmd
		}
		return m, nil
	case TasksLoadedMsg:
		if m.Load != LoadPending {
			return m, nil
		}
		// Ids in an open dialog may belong to a different task once the
		// seed lands.
		if m.Dialog != DialogNone {
			m.logger.Debug("closing dialog for seed replace", "dialog", string(m.Dialog))
			m.closeDialog()
		}
		kept := m.Store.Replace(typed.Tasks)
		m.Load = LoadDone
		m.clampCursor()
		if dropped := len(typed.Tasks) - kept; dropped > 0 {
			m.logger.Warn("dropped invalid seed records", "source", typed.Source, "dropped", dropped)
		}
		m.logger.Info("tasks loaded", "source", typed.Source, "count", kept)
		m.Status = StatusBar{Text: fmt.Sprintf("loaded %d tasks", kept)}
		return m, nil
	case TasksLoadFailedMsg:
		if m.Load != LoadPending {
			return m, nil
		}
		m.Load = LoadFailed
		m.logger.Error("load tasks failed", "source", typed.Source, "err", typed.Err)
		return m, nil
	case AddTaskMsg:
		m.addTask(typed.Title)
		return m, nil
	case ToggleTaskMsg:
		m.toggleTask(typed.ID)
		return m, nil
	case RequestEditMsg:
		cmd := m.openEdit(typed.ID)
		return m, cmd
	case RequestDeleteMsg:
		m.openDelete(typed.ID)
		return m, nil
	case SetFilterMsg:
		m.setFilter(typed.Mode)
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}
	switch {
	case m.Dialog == DialogEdit:
		return m.handleEditKey(msg)
	case m.Dialog == DialogDelete:
		return m.handleDeleteKey(msg), nil
	case m.Palette.Active:
		return m.handlePaletteKey(msg), nil
	case m.Adding:
		return m.handleAddKey(msg)
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Help):
		m.HelpVisible = !m.HelpVisible
	case key.Matches(msg, m.Keys.Palette):
		m.Palette = CommandPaletteState{Active: true}
		m.commandInput.SetValue("")
		cmd := m.commandInput.Focus()
		return m, cmd
	case key.Matches(msg, m.Keys.Add):
		m.Adding = true
		cmd := m.addInput.Focus()
		return m, cmd
	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < len(m.visibleTasks())-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.Keys.Toggle):
		if t, ok := m.currentTask(); ok {
			m.toggleTask(t.ID)
		}
	case key.Matches(msg, m.Keys.Edit):
		if t, ok := m.currentTask(); ok {
			cmd := m.openEdit(t.ID)
			return m, cmd
		}
	case key.Matches(msg, m.Keys.Delete):
		if t, ok := m.currentTask(); ok {
			m.openDelete(t.ID)
		}
	case key.Matches(msg, m.Keys.NextFilter):
		m.setFilter(m.Filter.Next())
	case key.Matches(msg, m.Keys.FilterAll):
		m.setFilter(model.FilterAll)
	case key.Matches(msg, m.Keys.FilterCompleted):
		m.setFilter(model.FilterCompleted)
	}
	return m, nil
}
