package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/checklists/internal/board"
	"github.com/idilsaglam/checklists/internal/model"
	"github.com/idilsaglam/checklists/internal/ui"
)

// startEditor prepares the dialog inputs for the buffer the board just
// opened. A new list starts on the name field, an edit on the first row.
func (m *appModel) startEditor() tea.Cmd {
	ed := m.board.Editor()
	m.editErr = ""
	m.nameInput.SetValue(ed.Name)
	m.nameInput.CursorEnd()
	if m.board.Dialog().Kind == board.DialogEditing {
		return m.setFocus(focusFirstRow)
	}
	return m.setFocus(focusName)
}

func (m *appModel) setFocus(f int) tea.Cmd {
	ed := m.board.Editor()
	last := focusFirstRow + ed.Len() - 1
	f = max(focusName, min(f, last))
	m.focus = f
	m.nameInput.Blur()
	m.rowInput.Blur()
	switch {
	case f == focusName:
		return m.nameInput.Focus()
	case f >= focusFirstRow:
		row, _ := ed.Row(f - focusFirstRow)
		m.rowInput.SetValue(row.Text)
		m.rowInput.CursorEnd()
		return m.rowInput.Focus()
	}
	return nil
}

func (m appModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := m.board.Editor()
	m.editErr = ""
	switch {
	case key.Matches(msg, m.editorKeys.Cancel):
		m.board.CancelEditor()
		m.clampCursor()
		return m, nil
	case key.Matches(msg, m.editorKeys.Save):
		kind := m.board.Dialog().Kind
		if err := m.board.SaveEditor(); err != nil {
			m.editErr = editorErrorText(err)
			return m, nil
		}
		if kind == board.DialogAdding {
			m.cur = cursor{list: m.board.Len() - 1, item: -1}
			m.status = "Checklist added"
		} else {
			m.status = "Checklist saved"
		}
		m.clampCursor()
		return m, nil
	case key.Matches(msg, m.editorKeys.Next):
		cmd := m.setFocus(m.focus + 1)
		return m, cmd
	case key.Matches(msg, m.editorKeys.Prev):
		cmd := m.setFocus(m.focus - 1)
		return m, cmd
	}

	if m.focus == focusIcon {
		switch {
		case key.Matches(msg, m.editorKeys.IconPrev):
			ed.CycleIcon(-1)
		case key.Matches(msg, m.editorKeys.IconNext):
			ed.CycleIcon(1)
		case key.Matches(msg, m.editorKeys.IconPick):
			// 1-8 jump straight to an icon
			if icons := model.Icons(); len(msg.Runes) == 1 {
				if n := int(msg.Runes[0] - '1'); n >= 0 && n < len(icons) {
					ed.SetIcon(icons[n])
				}
			}
		}
		return m, nil
	}

	if m.focus >= focusFirstRow {
		row := m.focus - focusFirstRow
		switch {
		case key.Matches(msg, m.editorKeys.Check):
			if it, ok := ed.Row(row); ok {
				ed.SetChecked(row, !it.Checked)
			}
			return m, nil
		case key.Matches(msg, m.editorKeys.Remove):
			if ed.RemoveRow(row) {
				cmd := m.setFocus(m.focus)
				return m, cmd
			}
			return m, nil
		}
	}
	return m.forwardToInput(msg)
}

// forwardToInput feeds msg to the focused text field and copies the result
// into the editor buffer.
func (m appModel) forwardToInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	ed := m.board.Editor()
	var cmd tea.Cmd
	switch {
	case m.focus == focusName:
		m.nameInput, cmd = m.nameInput.Update(msg)
		ed.SetName(m.nameInput.Value())
	case m.focus >= focusFirstRow:
		row := m.focus - focusFirstRow
		m.rowInput, cmd = m.rowInput.Update(msg)
		value := m.rowInput.Value()
		if cur, ok := ed.Row(row); ok && cur.Text == value {
			return m, cmd
		}
		ed.SetText(row, value)
		// A cleared row is dropped from the buffer; follow the row that
		// took its place.
		if cur, ok := ed.Row(row); !ok || cur.Text != value {
			refocus := m.setFocus(m.focus)
			return m, tea.Batch(cmd, refocus)
		}
	}
	return m, cmd
}

func editorErrorText(err error) string {
	switch {
	case errors.Is(err, model.ErrBlankName):
		return "Name cannot be empty"
	case errors.Is(err, model.ErrNoItems):
		return "Add at least one item"
	}
	return err.Error()
}

func (m appModel) dialogWidth() int {
	return min(max(40, m.width*2/3), m.width-4)
}

func (m appModel) editorView() string {
	t := ui.Current()
	ed := m.board.Editor()
	w := m.dialogWidth()
	inner := w - 4

	title := "Add checklist"
	if m.board.Dialog().Kind == board.DialogEditing {
		title = "Edit checklist"
	}

	marker := func(f int) string {
		if m.focus == f {
			return t.Accent.Render("> ")
		}
		return "  "
	}

	lines := []string{t.Title.Render(title), ""}

	name := m.nameInput.View()
	if m.focus != focusName {
		name = ui.Truncate(ed.Name, inner-8)
		if ed.Name == "" {
			name = t.Muted.Render(m.nameInput.Placeholder)
		}
	}
	lines = append(lines, marker(focusName)+"Name: "+name)

	icon := ui.IconGlyph(ed.Icon) + " " + ed.Icon.String()
	if m.focus == focusIcon {
		icon = t.Accent.Render("‹ ") + icon + t.Accent.Render(" ›")
	}
	lines = append(lines, marker(focusIcon)+"Icon: "+icon, "", "  Items:")

	for i, it := range ed.Rows() {
		f := focusFirstRow + i
		box := t.Muted.Render(t.BoxUnchecked)
		if it.Checked {
			box = t.Success.Render(t.BoxChecked)
		}
		text := ui.Truncate(it.Text, inner-8)
		if m.focus == f {
			text = m.rowInput.View()
		} else if it.Blank() {
			text = t.Muted.Render(m.rowInput.Placeholder)
		}
		lines = append(lines, marker(f)+"  "+box+" "+text)
	}

	if m.editErr != "" {
		lines = append(lines, "", t.Error.Render(m.editErr))
	}
	h := m.help
	h.ShowAll = true
	lines = append(lines, "", h.View(m.editorKeys))

	return ui.PanelStyle(t.FocusColor).Width(w - 2).Render(strings.Join(lines, "\n"))
}

func (m appModel) confirmView() string {
	t := ui.Current()
	cl, _ := m.board.At(m.board.Dialog().Index)
	body := lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render("Delete checklist"),
		"",
		"Delete "+t.Accent.Render(ui.IconGlyph(cl.Icon)+" "+cl.Name)+"?",
		"",
		m.help.View(m.confirmKeys),
	)
	return ui.PanelStyle(t.FocusColor).Render(body)
}
