package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todo/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		m.closePalette()
		return m
	case key.Matches(msg, m.Keys.Submit):
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	m.commandInput, _ = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m
}

func (m *Model) closePalette() {
	m.Palette = CommandPaletteState{}
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	m.closePalette()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			if !m.addTask(a.Title) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "add requires a title"}
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Edit: func(e commands.EditArgs) (commands.Result, error) {
			if !m.Store.Update(e.ID, e.Title) {
				return commands.Result{}, noTask(e.ID)
			}
			return commands.Result{Message: fmt.Sprintf("updated #%d", e.ID)}, nil
		},
		Delete: func(d commands.DeleteArgs) (commands.Result, error) {
			// Deletes from the palette still go through the confirmation.
			if !m.openDelete(d.ID) {
				return commands.Result{}, noTask(d.ID)
			}
			return commands.Result{Message: fmt.Sprintf("confirm delete of #%d", d.ID)}, nil
		},
		Toggle: func(t commands.ToggleArgs) (commands.Result, error) {
			if !m.toggleTask(t.ID) {
				return commands.Result{}, noTask(t.ID)
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Filter: func(f commands.FilterArgs) (commands.Result, error) {
			m.setFilter(f.Mode)
			return commands.Result{Message: fmt.Sprintf("showing %s tasks", f.Mode)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: res.Message}
	return m
}

func noTask(id int) error {
	return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task #%d", id)}
}
