package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Left, Right key.Binding
	Toggle, Expand        key.Binding
	Check, Uncheck        key.Binding
	CompleteAll, Delete   key.Binding
	Edit, Add, Random     key.Binding
	Columns, Help, Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev list")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next list")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Check:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "check item")),
		Uncheck:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "uncheck item")),
		Expand:      key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "expand/collapse")),
		CompleteAll: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete all")),
		Delete:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete list")),
		Edit:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Add:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Random:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "add random")),
		Columns:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "1/2 columns")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Add, k.Edit, k.Delete, k.Columns, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Check, k.Uncheck, k.Expand, k.CompleteAll},
		{k.Add, k.Random, k.Edit, k.Delete},
		{k.Columns, k.Help, k.Quit},
	}
}

// editorKeyMap drives the add/edit dialog. Plain runes go to the focused
// text field, so every binding here is a control or navigation key.
type editorKeyMap struct {
	Next, Prev         key.Binding
	IconPrev, IconNext key.Binding
	IconPick           key.Binding
	Check, Remove      key.Binding
	Save, Cancel       key.Binding
}

func newEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Next:     key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next field")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "prev field")),
		IconPrev: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev icon")),
		IconNext: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next icon")),
		IconPick: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"), key.WithHelp("1-8", "pick icon")),
		Check:    key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "check item")),
		Remove:   key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "remove item")),
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Check, k.Remove, k.Save, k.Cancel}
}

func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.IconPrev, k.IconNext, k.IconPick}, {k.Check, k.Remove, k.Save, k.Cancel}}
}

type confirmKeyMap struct {
	Yes, No key.Binding
}

func newConfirmKeyMap() confirmKeyMap {
	return confirmKeyMap{
		Yes: key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y/enter", "delete")),
		No:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n/esc", "cancel")),
	}
}

func (k confirmKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Yes, k.No} }
func (k confirmKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Yes, k.No}} }
