package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/checklists/internal/board"
	"github.com/idilsaglam/checklists/internal/ui"
)

// cursor addresses a row on the board: a checklist header (item == -1) or
// one of its items. It is re-derived from the board after every action.
type cursor struct {
	list, item int
}

const (
	focusName = iota
	focusIcon
	focusFirstRow
)

type appModel struct {
	board *board.Board

	keys        keyMap
	editorKeys  editorKeyMap
	confirmKeys confirmKeyMap
	help        help.Model

	width, height int
	cur           cursor
	status        string

	// add/edit dialog
	focus     int
	nameInput textinput.Model
	rowInput  textinput.Model
	editErr   string
}

func newAppModel(b *board.Board) appModel {
	t := ui.Current()
	h := help.New()
	h.Styles.ShortKey = t.Accent
	h.Styles.FullKey = t.Accent
	h.Styles.ShortDesc = t.Help
	h.Styles.FullDesc = t.Help

	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "Checklist name..."
	name.CharLimit = 80

	row := textinput.New()
	row.Prompt = ""
	row.Placeholder = "New item..."
	row.CharLimit = 200

	m := appModel{
		board:       b,
		keys:        newKeyMap(),
		editorKeys:  newEditorKeyMap(),
		confirmKeys: newConfirmKeyMap(),
		help:        h,
		width:       80,
		height:      24,
		cur:         cursor{list: 0, item: -1},
		nameInput:   name,
		rowInput:    row,
	}
	m.clampCursor()
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.nameInput.Width = max(10, m.dialogWidth()-12)
		m.rowInput.Width = max(10, m.dialogWidth()-12)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.board.Dialog().Kind {
		case board.DialogAdding, board.DialogEditing:
			return m.updateEditor(msg)
		case board.DialogConfirmDelete:
			return m.updateConfirm(msg)
		}
		return m.updateBoard(msg)
	}
	if m.board.Editor() != nil {
		return m.forwardToInput(msg)
	}
	return m, nil
}

func (m appModel) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveRow(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveRow(1)
	case key.Matches(msg, m.keys.Left):
		m.moveList(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveList(1)
	case key.Matches(msg, m.keys.Toggle):
		if m.cur.item < 0 {
			m.board.ToggleExpanded(m.cur.list)
		} else {
			m.board.ToggleItem(m.cur.list, m.cur.item)
		}
	case key.Matches(msg, m.keys.Check), key.Matches(msg, m.keys.Uncheck):
		if m.cur.item >= 0 {
			m.board.SetItemChecked(m.cur.list, m.cur.item, key.Matches(msg, m.keys.Check))
		}
	case key.Matches(msg, m.keys.Expand):
		if m.board.ToggleExpanded(m.cur.list) && !m.board.Expanded(m.cur.list) {
			m.cur.item = -1
		}
	case key.Matches(msg, m.keys.CompleteAll):
		if m.board.CompleteAll(m.cur.list) {
			m.status = "All items completed"
		}
	case key.Matches(msg, m.keys.Delete):
		if cl, ok := m.board.At(m.cur.list); ok && m.board.RequestDelete(m.cur.list) && !m.board.Dialog().Open() {
			m.status = fmt.Sprintf("Deleted %q", cl.Name)
		}
	case key.Matches(msg, m.keys.Edit):
		if m.board.OpenEdit(m.cur.list) {
			cmd := m.startEditor()
			return m, cmd
		}
	case key.Matches(msg, m.keys.Add):
		if m.board.OpenAdd() {
			cmd := m.startEditor()
			return m, cmd
		}
	case key.Matches(msg, m.keys.Random):
		if m.board.AddRandom() {
			m.cur = cursor{list: m.board.Len() - 1, item: -1}
			m.status = "Random checklist added"
		}
	case key.Matches(msg, m.keys.Columns):
		m.board.ToggleColumns()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	m.clampCursor()
	return m, nil
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.confirmKeys.Yes):
		idx := m.board.Dialog().Index
		cl, _ := m.board.At(idx)
		if m.board.ConfirmDelete() {
			m.status = fmt.Sprintf("Deleted %q", cl.Name)
		}
	case key.Matches(msg, m.confirmKeys.No):
		m.board.CancelDelete()
	}
	m.clampCursor()
	return m, nil
}

// rows flattens the board into cursor positions in display order.
func (m appModel) rows() []cursor {
	var out []cursor
	for i, cl := range m.board.Lists() {
		out = append(out, cursor{list: i, item: -1})
		if !m.board.Expanded(i) {
			continue
		}
		for j := range cl.Items {
			out = append(out, cursor{list: i, item: j})
		}
	}
	return out
}

func (m *appModel) moveRow(delta int) {
	rows := m.rows()
	for i, r := range rows {
		if r == m.cur {
			j := i + delta
			if j >= 0 && j < len(rows) {
				m.cur = rows[j]
			}
			return
		}
	}
}

func (m *appModel) moveList(delta int) {
	m.cur = cursor{list: m.cur.list + delta, item: -1}
	if m.cur.list < 0 {
		m.cur.list = 0
	}
}

// clampCursor keeps the cursor on an existing row after lists or items
// disappear.
func (m *appModel) clampCursor() {
	n := m.board.Len()
	if n == 0 {
		m.cur = cursor{list: 0, item: -1}
		return
	}
	if m.cur.list >= n {
		m.cur = cursor{list: n - 1, item: -1}
	}
	if m.cur.list < 0 {
		m.cur.list = 0
	}
	cl, _ := m.board.At(m.cur.list)
	switch {
	case !m.board.Expanded(m.cur.list), m.cur.item < -1:
		m.cur.item = -1
	case m.cur.item >= len(cl.Items):
		m.cur.item = len(cl.Items) - 1
	}
}
