package board

import "fmt"

// DialogKind tags the modal currently shown over the board.
type DialogKind int

const (
	DialogClosed DialogKind = iota
	DialogAdding
	DialogEditing
	DialogConfirmDelete
)

func (k DialogKind) String() string {
	switch k {
	case DialogClosed:
		return "closed"
	case DialogAdding:
		return "adding"
	case DialogEditing:
		return "editing"
	case DialogConfirmDelete:
		return "confirm-delete"
	}
	return fmt.Sprintf("dialog(%d)", int(k))
}

// Dialog is the modal state. Index names the target checklist for
// DialogEditing and DialogConfirmDelete and is -1 otherwise.
type Dialog struct {
	Kind  DialogKind
	Index int
}

var closed = Dialog{Kind: DialogClosed, Index: -1}

func (d Dialog) Open() bool { return d.Kind != DialogClosed }

func (d Dialog) String() string {
	if d.Index < 0 {
		return d.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", d.Kind, d.Index)
}
