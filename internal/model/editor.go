package model

import (
	"errors"
	"strings"
)

var (
	ErrBlankName = errors.New("name cannot be empty")
	ErrNoItems   = errors.New("add at least one item")
)

// Editor stages a checklist's name, icon and items before commit.
//
// The row list always ends with exactly one blank row and holds no other
// blank rows. Typing into the trailing row grows the list by one, and
// clearing any other row removes it.
type Editor struct {
	Name string
	Icon Icon
	rows []Item
}

// NewAddEditor returns a buffer for a brand new checklist.
func NewAddEditor() *Editor {
	return &Editor{Icon: DefaultIcon, rows: []Item{{}}}
}

// NewEditEditor returns a buffer seeded from an existing checklist.
func NewEditEditor(list Checklist) *Editor {
	e := &Editor{Name: list.Name, Icon: list.Icon, rows: list.Clone().Items}
	e.normalize()
	return e
}

func (e *Editor) Len() int { return len(e.rows) }

// Rows returns a copy of the buffer rows, including the trailing blank one.
func (e *Editor) Rows() []Item {
	out := make([]Item, len(e.rows))
	copy(out, e.rows)
	return out
}

func (e *Editor) Row(i int) (Item, bool) {
	if i < 0 || i >= len(e.rows) {
		return Item{}, false
	}
	return e.rows[i], true
}

func (e *Editor) SetName(name string) { e.Name = name }
func (e *Editor) SetIcon(icon Icon)   { e.Icon = icon }

// CycleIcon moves the icon picker by delta positions.
func (e *Editor) CycleIcon(delta int) { e.Icon = e.Icon.Cycle(delta) }

// SetText replaces the text of row i and re-establishes the trailing
// blank row.
func (e *Editor) SetText(i int, text string) bool {
	if i < 0 || i >= len(e.rows) {
		return false
	}
	e.rows[i].Text = text
	e.normalize()
	return true
}

func (e *Editor) SetChecked(i int, checked bool) bool {
	if i < 0 || i >= len(e.rows) {
		return false
	}
	e.rows[i].Checked = checked
	return true
}

// CanRemove reports whether row i may be deleted: only non-blank rows, and
// never the last remaining row.
func (e *Editor) CanRemove(i int) bool {
	if i < 0 || i >= len(e.rows) || len(e.rows) <= 1 {
		return false
	}
	return !e.rows[i].Blank()
}

func (e *Editor) RemoveRow(i int) bool {
	if !e.CanRemove(i) {
		return false
	}
	e.rows = append(e.rows[:i], e.rows[i+1:]...)
	e.normalize()
	return true
}

// Validate returns ErrBlankName or ErrNoItems when the buffer cannot be
// committed.
func (e *Editor) Validate() error {
	if isBlank(e.Name) {
		return ErrBlankName
	}
	for _, r := range e.rows {
		if !r.Blank() {
			return nil
		}
	}
	return ErrNoItems
}

// Commit builds the final checklist with blank rows dropped.
func (e *Editor) Commit() (Checklist, error) {
	if err := e.Validate(); err != nil {
		return Checklist{}, err
	}
	items := make([]Item, 0, len(e.rows))
	for _, r := range e.rows {
		if r.Blank() {
			continue
		}
		items = append(items, Item{Text: strings.TrimSpace(r.Text), Checked: r.Checked})
	}
	return Checklist{
		Name:  strings.TrimSpace(e.Name),
		Icon:  e.Icon,
		Items: items,
	}, nil
}

// normalize drops blank rows and keeps a single blank row at the end. A
// blank row that is already last is kept as is so partial input (leading
// spaces) survives.
func (e *Editor) normalize() {
	var tail *Item
	if n := len(e.rows); n > 0 && e.rows[n-1].Blank() {
		last := e.rows[n-1]
		tail = &last
	}
	out := make([]Item, 0, len(e.rows)+1)
	for _, r := range e.rows {
		if !r.Blank() {
			out = append(out, r)
		}
	}
	if tail != nil {
		out = append(out, *tail)
	} else {
		out = append(out, Item{})
	}
	e.rows = out
}
