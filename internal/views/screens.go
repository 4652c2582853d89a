package views

import (
	"fmt"
	"strings"
)

type TaskRowData struct {
	ID        int
	Title     string
	Completed bool
	Selected  bool
}

type TaskListData struct {
	Filter         string
	Filters        []string
	Rows           []TaskRowData
	Total          int
	CompletedCount int
	Loading        bool
	SpinnerView    string
	AddInputView   string
}

type EditDialogData struct {
	TaskID    int
	InputView string
}

type DeleteDialogData struct {
	TaskID int
	Title  string
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

func RenderTaskList(data TaskListData) string {
	var b strings.Builder
	b.WriteString(data.AddInputView + "\n")
	b.WriteString(RenderFilterBar(data.Filters, data.Filter) + "\n")
	b.WriteString(fmt.Sprintf("tasks: %d shown | %d/%d completed\n", len(data.Rows), data.CompletedCount, data.Total))
	if data.Loading {
		b.WriteString(fmt.Sprintf("%s loading tasks...\n", data.SpinnerView))
	}
	if len(data.Rows) == 0 {
		b.WriteString("  (no tasks)")
		return b.String()
	}
	for _, row := range data.Rows {
		b.WriteString(renderTaskRow(row) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderFilterBar(filters []string, active string) string {
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		if f == active {
			parts = append(parts, activeTabStyle.Render("["+f+"]"))
			continue
		}
		parts = append(parts, tabStyle.Render(" "+f+" "))
	}
	return "filter: " + strings.Join(parts, " ")
}

func renderTaskRow(row TaskRowData) string {
	cursor := " "
	if row.Selected {
		cursor = cursorStyle.Render(">")
	}
	check := "[ ]"
	title := row.Title
	if row.Completed {
		check = "[x]"
		title = completedStyle.Render(title)
	}
	return fmt.Sprintf("%s %s #%d %s", cursor, check, row.ID, title)
}

func RenderEditDialog(data EditDialogData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("edit task #%d\n", data.TaskID))
	b.WriteString(data.InputView + "\n")
	b.WriteString("[enter] save  [esc] cancel")
	return dialogStyle.Render(b.String())
}

func RenderDeleteDialog(data DeleteDialogData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("delete task #%d\n", data.TaskID))
	if data.Title != "" {
		b.WriteString(fmt.Sprintf("%q\n", data.Title))
	}
	b.WriteString("Are you sure you want to delete this task?\n")
	b.WriteString("[y] delete  [n] cancel")
	return dialogStyle.Render(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: :%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	md := "## keys\n\n" + strings.Join(data.Bindings, "\n") + "\n"
	return fmt.Sprintf("help:\n%s\n%s", RenderMarkdown(md), data.HelpView)
}
