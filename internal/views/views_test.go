package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderTaskListRows(t *testing.T) {
	out := RenderTaskList(TaskListData{
		Filter:  "all",
		Filters: []string{"all", "completed"},
		Rows: []TaskRowData{
			{ID: 1, Title: "A", Selected: true},
			{ID: 2, Title: "B", Completed: true},
		},
		Total:          2,
		CompletedCount: 1,
		AddInputView:   "add> ",
	})
	for _, want := range []string{"add> ", "[all]", "tasks: 2 shown | 1/2 completed", "> [ ] #1 A", "[x] #2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in task list: %q", want, out)
		}
	}
}

func TestRenderTaskListEmptyAndLoading(t *testing.T) {
	out := RenderTaskList(TaskListData{Filter: "completed", Filters: []string{"all", "completed"}, Loading: true, SpinnerView: "*"})
	if !strings.Contains(out, "(no tasks)") || !strings.Contains(out, "loading tasks") {
		t.Fatalf("unexpected empty list render: %q", out)
	}
	if !strings.Contains(out, "[completed]") {
		t.Fatalf("expected active completed filter: %q", out)
	}
}

func TestRenderDialogs(t *testing.T) {
	edit := RenderEditDialog(EditDialogData{TaskID: 7, InputView: "title> buy milk"})
	if !strings.Contains(edit, "edit task #7") || !strings.Contains(edit, "buy milk") {
		t.Fatalf("unexpected edit dialog: %q", edit)
	}
	del := RenderDeleteDialog(DeleteDialogData{TaskID: 7, Title: "buy milk"})
	if !strings.Contains(del, "delete task #7") || !strings.Contains(del, "Are you sure") {
		t.Fatalf("unexpected delete dialog: %q", del)
	}
}

func TestRenderAppCollapsesEmptyRightPane(t *testing.T) {
	out := RenderApp(AppData{Header: "todo", LeftPane: "list", StatusLine: "error: nope", Footer: "keys"})
	if !strings.Contains(out, "todo") || !strings.Contains(out, "list") || !strings.Contains(out, "error: nope") {
		t.Fatalf("unexpected app render: %q", out)
	}
	if RenderCommandPalette(false, "x") != "" {
		t.Fatal("expected inactive palette to render empty")
	}
	if RenderMarkdown("  ") != "" {
		t.Fatal("expected blank markdown to render empty")
	}
}

func TestStatusLineStyleFollowsErrorFlag(t *testing.T) {
	if got := statusLineStyle(true).GetForeground(); got != lipgloss.Color("9") {
		t.Fatalf("expected error colour for error status, got %v", got)
	}
	// Text alone never decides the style.
	if got := statusLineStyle(false).GetForeground(); got != lipgloss.Color("10") {
		t.Fatalf("expected normal colour for non-error status, got %v", got)
	}
	out := RenderApp(AppData{Header: "todo", LeftPane: "list", StatusLine: "status: renamed to error handling"})
	if !strings.Contains(out, "status: renamed to error handling") {
		t.Fatalf("unexpected status render: %q", out)
	}
}
