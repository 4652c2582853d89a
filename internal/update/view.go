package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/views"
)

// View renders purely from the model: store, filter, selection, dialog and
// cursor. It never mutates state.
func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	selected := "-"
	if m.Selection != nil {
		selected = fmt.Sprintf("#%d", m.Selection.TaskID)
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("todo | filter: %s | selected: %s", m.Filter, selected),
		LeftPane:   m.renderTaskList(),
		RightPane:  m.renderRightPane(),
		StatusLine: status,
		IsError:    m.Status.IsError,
		Footer:     m.helpModel.ShortHelpView(m.Keys.ShortHelp()),
	})
}

func (m Model) renderTaskList() string {
	tasks := m.visibleTasks()
	rows := make([]views.TaskRowData, 0, len(tasks))
	for i, t := range tasks {
		rows = append(rows, views.TaskRowData{
			ID:        t.ID,
			Title:     t.Title,
			Completed: t.Completed,
			Selected:  i == m.Cursor && m.Dialog == DialogNone && !m.Adding,
		})
	}
	return views.RenderTaskList(views.TaskListData{
		Filter:         string(m.Filter),
		Filters:        []string{string(model.FilterAll), string(model.FilterCompleted)},
		Rows:           rows,
		Total:          m.Store.Len(),
		CompletedCount: len(m.Store.Filtered(model.FilterCompleted)),
		Loading:        m.Load == LoadPending,
		SpinnerView:    m.loadSpinner.View(),
		AddInputView:   m.addInput.View(),
	})
}

func (m Model) renderRightPane() string {
	parts := make([]string, 0, 3)
	switch m.Dialog {
	case DialogEdit:
		if m.Selection != nil {
			parts = append(parts, views.RenderEditDialog(views.EditDialogData{
				TaskID:    m.Selection.TaskID,
				InputView: m.editInput.View(),
			}))
		}
	case DialogDelete:
		if m.Selection != nil {
			parts = append(parts, views.RenderDeleteDialog(views.DeleteDialogData{
				TaskID: m.Selection.TaskID,
				Title:  m.Selection.Title,
			}))
		}
	}
	if p := views.RenderCommandPalette(m.Palette.Active, m.Palette.Input); p != "" {
		parts = append(parts, p)
	}
	if m.HelpVisible {
		parts = append(parts, m.renderHelpView())
	}
	return strings.Join(parts, "\n\n")
}

func (m Model) renderHelpView() string {
	var plain []string
	for _, group := range m.Keys.FullHelp() {
		for _, b := range group {
			plain = append(plain, fmt.Sprintf("- `%s` %s", b.Help().Key, b.Help().Desc))
		}
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.FullHelpView([][]key.Binding{
			{m.Keys.Submit, m.Keys.Cancel},
			{m.Keys.Confirm, m.Keys.Deny},
		}),
	})
}
