package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todo/internal/model"
)

func (m Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		m.Adding = false
		m.addInput.Blur()
		return m, nil
	case key.Matches(msg, m.Keys.Submit):
		if m.addTask(m.addInput.Value()) {
			m.addInput.Reset()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

// addTask appends a task and moves the cursor onto it when it is visible.
// Blank titles are ignored.
func (m *Model) addTask(title string) bool {
	task, ok := m.Store.Add(title)
	if !ok {
		return false
	}
	if m.Filter.Matches(task) {
		m.Cursor = len(m.visibleTasks()) - 1
	}
	m.Status = StatusBar{Text: fmt.Sprintf("added #%d", task.ID)}
	return true
}

func (m *Model) toggleTask(id int) bool {
	if !m.Store.ToggleCompleted(id) {
		return false
	}
	// Unchecking under the completed filter hides the row.
	m.clampCursor()
	if t, ok := m.Store.Get(id); ok && t.Completed {
		m.Status = StatusBar{Text: fmt.Sprintf("completed #%d", id)}
	} else {
		m.Status = StatusBar{Text: fmt.Sprintf("reopened #%d", id)}
	}
	return true
}

func (m *Model) setFilter(mode model.FilterMode) {
	if !mode.IsValid() || mode == m.Filter {
		return
	}
	m.Filter = mode
	m.Cursor = 0
}
