package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// openEdit moves Idle -> EditRequested for task id, copying its title into
// the selection so edits stay uncommitted until save. It returns the input's
// cursor blink command, or nil when no dialog was opened.
func (m *Model) openEdit(id int) tea.Cmd {
	if m.Dialog != DialogNone {
		return nil
	}
	task, ok := m.Store.Get(id)
	if !ok {
		return nil
	}
	m.Selection = &Selection{TaskID: task.ID, Title: task.Title}
	m.Dialog = DialogEdit
	m.editInput.SetValue(task.Title)
	m.editInput.CursorEnd()
	return m.editInput.Focus()
}

// openDelete moves Idle -> DeleteRequested for task id. Nothing is removed
// until the user confirms.
func (m *Model) openDelete(id int) bool {
	if m.Dialog != DialogNone {
		return false
	}
	task, ok := m.Store.Get(id)
	if !ok {
		return false
	}
	m.Selection = &Selection{TaskID: task.ID, Title: task.Title}
	m.Dialog = DialogDelete
	return true
}

func (m *Model) closeDialog() {
	m.Dialog = DialogNone
	m.Selection = nil
	m.editInput.Blur()
	m.editInput.Reset()
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		m.closeDialog()
		m.Status = StatusBar{Text: "edit canceled"}
		return m, nil
	case key.Matches(msg, m.Keys.Submit):
		m.saveEdit()
		return m, nil
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	if m.Selection != nil {
		m.Selection.Title = m.editInput.Value()
	}
	return m, cmd
}

func (m *Model) saveEdit() {
	sel := m.Selection
	m.closeDialog()
	if sel == nil {
		return
	}
	if m.Store.Update(sel.TaskID, sel.Title) {
		m.Status = StatusBar{Text: fmt.Sprintf("updated #%d", sel.TaskID)}
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("#%d unchanged", sel.TaskID)}
}

func (m Model) handleDeleteKey(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.Keys.Confirm):
		m.confirmDelete()
	case key.Matches(msg, m.Keys.Deny):
		m.closeDialog()
		m.Status = StatusBar{Text: "delete canceled"}
	}
	return m
}

func (m *Model) confirmDelete() {
	sel := m.Selection
	m.closeDialog()
	if sel == nil {
		return
	}
	if m.Store.Remove(sel.TaskID) {
		m.clampCursor()
		m.Status = StatusBar{Text: fmt.Sprintf("deleted #%d", sel.TaskID)}
	}
}
