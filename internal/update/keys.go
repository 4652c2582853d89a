package update

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up              key.Binding
	Down            key.Binding
	Add             key.Binding
	Toggle          key.Binding
	Edit            key.Binding
	Delete          key.Binding
	NextFilter      key.Binding
	FilterAll       key.Binding
	FilterCompleted key.Binding
	Palette         key.Binding
	Help            key.Binding
	Quit            key.Binding

	Submit  key.Binding
	Cancel  key.Binding
	Confirm key.Binding
	Deny    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:              key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:            key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:             key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a", "add task")),
		Toggle:          key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "toggle done")),
		Edit:            key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:          key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		NextFilter:      key.NewBinding(key.WithKeys("tab", "f"), key.WithHelp("tab/f", "switch filter")),
		FilterAll:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all tasks")),
		FilterCompleted: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "completed tasks")),
		Palette:         key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Help:            key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:            key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Confirm: key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "confirm")),
		Deny:    key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Edit, k.Delete, k.NextFilter, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Add, k.Edit, k.Delete},
		{k.NextFilter, k.FilterAll, k.FilterCompleted},
		{k.Palette, k.Help, k.Quit},
	}
}
