// Package board is the application state machine: the checklist
// collection, the layout flags and the modal dialog state. Every user
// action goes through a Board method; counters are always read from the
// collection, never cached.
package board

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/idilsaglam/checklists/internal/model"
	"github.com/idilsaglam/checklists/internal/seed"
)

var ErrNoEditor = errors.New("no editor open")

// Options tune a new Board.
type Options struct {
	TwoColumn     bool
	ConfirmDelete bool
	RandomSeed    uint64 // 0 picks a random seed
	Logger        *slog.Logger
}

type Board struct {
	lists  *model.Collection
	layout *Layout
	dialog Dialog
	editor *model.Editor

	gen           *seed.Generator
	confirmDelete bool
	log           *slog.Logger
}

func New(lists []model.Checklist, opt Options) *Board {
	log := opt.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Board{
		lists:         model.NewCollection(lists...),
		layout:        NewLayout(opt.TwoColumn),
		dialog:        closed,
		gen:           seed.NewGenerator(opt.RandomSeed),
		confirmDelete: opt.ConfirmDelete,
		log:           log,
	}
}

// ---- reads ----

func (b *Board) Len() int { return b.lists.Len() }
func (b *Board) At(i int) (model.Checklist, bool) { return b.lists.At(i) }
func (b *Board) Lists() []model.Checklist { return b.lists.Lists() }
func (b *Board) TotalLists() int { return b.lists.TotalLists() }
func (b *Board) CompletedItems() int { return b.lists.CompletedItems() }
func (b *Board) TotalItems() int { return b.lists.TotalItems() }
func (b *Board) TwoColumn() bool { return b.layout.TwoColumn }
func (b *Board) Expanded(i int) bool { return b.layout.Expanded(i) }
func (b *Board) Dialog() Dialog { return b.dialog }
func (b *Board) ConfirmsDelete() bool { return b.confirmDelete }

// Editor is the open editor buffer, or nil when no add/edit dialog is open.
func (b *Board) Editor() *model.Editor { return b.editor }

// ---- board actions (only while no dialog is open) ----

func (b *Board) ToggleItem(list, item int) bool {
	if b.dialog.Open() || !b.lists.ToggleItem(list, item) {
		return false
	}
	b.log.Debug("item toggled", "list", list, "item", item, "completed", b.lists.CompletedItems())
	return true
}

// SetItemChecked sets one item's checked flag explicitly.
func (b *Board) SetItemChecked(list, item int, checked bool) bool {
	if b.dialog.Open() || !b.lists.SetItemChecked(list, item, checked) {
		return false
	}
	b.log.Debug("item checked", "list", list, "item", item, "checked", checked, "completed", b.lists.CompletedItems())
	return true
}

// CompleteAll checks every item of one checklist.
func (b *Board) CompleteAll(list int) bool {
	if b.dialog.Open() || !b.lists.SetAllChecked(list, true) {
		return false
	}
	b.log.Debug("checklist completed", "list", list, "completed", b.lists.CompletedItems())
	return true
}

func (b *Board) ToggleExpanded(list int) bool {
	if b.dialog.Open() || list < 0 || list >= b.lists.Len() {
		return false
	}
	b.layout.ToggleExpanded(list)
	return true
}

func (b *Board) ToggleColumns() {
	b.layout.ToggleColumns()
	b.log.Debug("layout toggled", "two_column", b.layout.TwoColumn)
}

// AddRandom appends a generated "Random checklist N".
func (b *Board) AddRandom() bool {
	if b.dialog.Open() {
		return false
	}
	cl := b.gen.Next()
	b.lists.Add(cl)
	b.log.Info("checklist added", "index", b.lists.Len()-1, "name", cl.Name, "items", len(cl.Items), "random", true)
	return true
}

// ---- delete flow ----

// RequestDelete deletes list i, or opens the confirmation dialog when
// deletes must be confirmed.
func (b *Board) RequestDelete(list int) bool {
	if b.dialog.Open() || list < 0 || list >= b.lists.Len() {
		return false
	}
	if b.confirmDelete {
		b.dialog = Dialog{Kind: DialogConfirmDelete, Index: list}
		return true
	}
	return b.delete(list)
}

func (b *Board) ConfirmDelete() bool {
	if b.dialog.Kind != DialogConfirmDelete {
		return false
	}
	i := b.dialog.Index
	b.dialog = closed
	return b.delete(i)
}

func (b *Board) CancelDelete() bool {
	if b.dialog.Kind != DialogConfirmDelete {
		return false
	}
	b.dialog = closed
	return true
}

func (b *Board) delete(i int) bool {
	cl, ok := b.lists.At(i)
	if !ok || !b.lists.Delete(i) {
		return false
	}
	b.layout.Remove(i)
	b.log.Info("checklist deleted", "index", i, "name", cl.Name, "remaining", b.lists.Len())
	return true
}

// ---- add/edit flow ----

func (b *Board) OpenAdd() bool {
	if b.dialog.Open() {
		return false
	}
	b.editor = model.NewAddEditor()
	b.dialog = Dialog{Kind: DialogAdding, Index: -1}
	return true
}

func (b *Board) OpenEdit(list int) bool {
	if b.dialog.Open() {
		return false
	}
	cl, ok := b.lists.At(list)
	if !ok {
		return false
	}
	b.editor = model.NewEditEditor(cl)
	b.dialog = Dialog{Kind: DialogEditing, Index: list}
	return true
}

// SaveEditor commits the open editor. Validation errors leave the dialog
// open with the buffer untouched.
func (b *Board) SaveEditor() error {
	if b.editor == nil {
		return ErrNoEditor
	}
	cl, err := b.editor.Commit()
	if err != nil {
		return err
	}
	switch b.dialog.Kind {
	case DialogAdding:
		b.lists.Add(cl)
		b.log.Info("checklist added", "index", b.lists.Len()-1, "name", cl.Name, "items", len(cl.Items))
	case DialogEditing:
		if !b.lists.Replace(b.dialog.Index, cl) {
			return fmt.Errorf("edit checklist %d: no longer exists", b.dialog.Index)
		}
		b.log.Info("checklist edited", "index", b.dialog.Index, "name", cl.Name, "items", len(cl.Items))
	default:
		return ErrNoEditor
	}
	b.editor = nil
	b.dialog = closed
	return nil
}

// CancelEditor drops the buffer and all pending edits.
func (b *Board) CancelEditor() bool {
	if b.editor == nil {
		return false
	}
	b.log.Debug("editor cancelled", "dialog", b.dialog.String())
	b.editor = nil
	b.dialog = closed
	return true
}
