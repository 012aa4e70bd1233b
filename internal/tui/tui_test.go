package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/checklists/internal/board"
	"github.com/idilsaglam/checklists/internal/model"
	"github.com/idilsaglam/checklists/internal/seed"
	"github.com/idilsaglam/checklists/internal/ui"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func keyOf(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func newTestModel(t *testing.T, confirm bool) appModel {
	t.Helper()
	b := board.New(seed.Demo(), board.Options{ConfirmDelete: confirm, RandomSeed: 3})
	m := newAppModel(b)
	mAny, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return mAny.(appModel)
}

func press(t *testing.T, m appModel, msgs ...tea.Msg) appModel {
	t.Helper()
	for _, msg := range msgs {
		mAny, _ := m.Update(msg)
		m = mAny.(appModel)
	}
	return m
}

// typeText sends one key message per rune, like a user typing.
func typeText(t *testing.T, m appModel, s string) appModel {
	t.Helper()
	for _, r := range s {
		m = press(t, m, runes(string(r)))
	}
	return m
}

func TestBoard_SpaceTogglesItem(t *testing.T) {
	m := newTestModel(t, false)
	before := m.board.CompletedItems()

	m = press(t, m, keyOf(tea.KeyDown), keyOf(tea.KeySpace))
	assert.Equal(t, cursor{list: 0, item: 0}, m.cur)
	assert.Equal(t, before+1, m.board.CompletedItems())

	m = press(t, m, keyOf(tea.KeyEnter))
	assert.Equal(t, before, m.board.CompletedItems())
}

func TestBoard_ViewShowsCounters(t *testing.T) {
	m := newTestModel(t, false)
	v := m.View()
	assert.Contains(t, v, "Completed:")
	assert.Contains(t, v, "14/20")
	assert.Contains(t, v, "Total lists: 5")
	assert.Contains(t, v, "Todo list")
	assert.Contains(t, v, "one column")
}

func TestBoard_ToggleColumns(t *testing.T) {
	m := newTestModel(t, false)
	m = press(t, m, runes("t"))
	assert.True(t, m.board.TwoColumn())
	assert.Contains(t, m.View(), "two columns")
}

func TestBoard_CompleteAllDoesNotDelete(t *testing.T) {
	m := newTestModel(t, false)
	m = press(t, m, runes("l"), runes("c"))

	assert.Equal(t, 5, m.board.TotalLists())
	l, _ := m.board.At(1)
	assert.True(t, l.AllChecked())
	assert.Contains(t, m.View(), "All items completed")
}

func TestBoard_DeleteAsksForConfirmation(t *testing.T) {
	m := newTestModel(t, true)
	m = press(t, m, runes("l"), runes("d"))
	require.Equal(t, board.DialogConfirmDelete, m.board.Dialog().Kind)
	assert.Contains(t, m.View(), "Delete checklist")
	assert.Contains(t, m.View(), "Job hunt")

	m = press(t, m, runes("n"))
	assert.False(t, m.board.Dialog().Open())
	assert.Equal(t, 5, m.board.TotalLists())

	m = press(t, m, runes("d"), runes("y"))
	assert.Equal(t, 4, m.board.TotalLists())
	l, _ := m.board.At(1)
	assert.Equal(t, "House cleaning", l.Name)
	assert.Contains(t, m.View(), "Total lists: 4")
}

func TestBoard_CursorClampsAfterDeletingLastList(t *testing.T) {
	m := newTestModel(t, false)
	for i := 0; i < 4; i++ {
		m = press(t, m, runes("l"))
	}
	require.Equal(t, 4, m.cur.list)

	m = press(t, m, runes("d"))
	assert.Equal(t, 4, m.board.TotalLists())
	assert.Equal(t, cursor{list: 3, item: -1}, m.cur)

	for i := 0; i < 4; i++ {
		m = press(t, m, runes("d"))
	}
	assert.Equal(t, 0, m.board.TotalLists())
	assert.Contains(t, m.View(), "No checklists")
	m = press(t, m, runes("d"), runes("c"), keyOf(tea.KeySpace))
	assert.Equal(t, 0, m.board.TotalLists())
}

func TestBoard_CollapseSkipsItems(t *testing.T) {
	m := newTestModel(t, false)
	m = press(t, m, runes("z"))
	assert.False(t, m.board.Expanded(0))

	m = press(t, m, keyOf(tea.KeyDown))
	assert.Equal(t, cursor{list: 1, item: -1}, m.cur)

	m = press(t, m, keyOf(tea.KeyUp), keyOf(tea.KeySpace))
	assert.True(t, m.board.Expanded(0), "space on a header expands it")
}

func TestEditor_AddChecklistByTyping(t *testing.T) {
	m := newTestModel(t, false)
	m = press(t, m, runes("a"))
	require.Equal(t, board.DialogAdding, m.board.Dialog().Kind)
	assert.Equal(t, focusName, m.focus)
	assert.Contains(t, m.View(), "Add checklist")

	m = typeText(t, m, "Groceries")
	m = press(t, m, keyOf(tea.KeyTab), keyOf(tea.KeyRight), keyOf(tea.KeyTab))
	require.Equal(t, focusFirstRow, m.focus)

	m = typeText(t, m, "Milk")
	assert.Equal(t, 2, m.board.Editor().Len(), "typing into the blank row adds a new one")
	m = press(t, m, keyOf(tea.KeyDown))
	m = typeText(t, m, "Eggs")
	assert.Equal(t, 3, m.board.Editor().Len())

	m = press(t, m, keyOf(tea.KeyCtrlS))
	require.False(t, m.board.Dialog().Open())
	require.Equal(t, 6, m.board.TotalLists())

	got, _ := m.board.At(5)
	assert.Equal(t, model.Checklist{
		Name:  "Groceries",
		Icon:  model.IconFace,
		Items: []model.Item{{Text: "Milk"}, {Text: "Eggs"}},
	}, got)
	assert.Equal(t, cursor{list: 5, item: -1}, m.cur)
}

func TestEditor_InvalidSaveKeepsDialogOpen(t *testing.T) {
	m := newTestModel(t, false)
	m = press(t, m, runes("a"), keyOf(tea.KeyCtrlS))
	assert.Equal(t, board.DialogAdding, m.board.Dialog().Kind)
	assert.Contains(t, m.View(), "Name cannot be empty")

	m = typeText(t, m, "Empty")
	m = press(t, m, keyOf(tea.KeyCtrlS))
	assert.Equal(t, board.DialogAdding, m.board.Dialog().Kind)
	assert.Contains(t, m.View(), "Add at least one item")

	m = press(t, m, keyOf(tea.KeyEsc))
	assert.False(t, m.board.Dialog().Open())
	assert.Equal(t, 5, m.board.TotalLists())
}

func TestEditor_EditRemoveRowThenCancel(t *testing.T) {
	m := newTestModel(t, false)
	m = press(t, m, runes("l"), runes("e"))
	require.Equal(t, board.DialogEditing, m.board.Dialog().Kind)
	require.Equal(t, focusFirstRow, m.focus)
	assert.Equal(t, "Write application", m.rowInput.Value())

	m = press(t, m, keyOf(tea.KeyCtrlD))
	assert.Equal(t, 6, m.board.Editor().Len(), "5 items left plus the blank row")
	assert.Equal(t, "Send application", m.rowInput.Value())

	m = press(t, m, keyOf(tea.KeyEsc))
	l, _ := m.board.At(1)
	assert.Len(t, l.Items, 6, "cancel discards pending edits")
}

func TestEditor_ClearingRowDropsIt(t *testing.T) {
	m := newTestModel(t, false)
	m = press(t, m, runes("e"))
	require.Equal(t, "Buy milk", m.rowInput.Value())

	for range "Buy milk" {
		m = press(t, m, keyOf(tea.KeyBackspace))
	}
	assert.Equal(t, []model.Item{{}}, m.board.Editor().Rows())

	m = typeText(t, m, "Buy oat milk")
	m = press(t, m, keyOf(tea.KeyCtrlX), keyOf(tea.KeyCtrlS))
	require.False(t, m.board.Dialog().Open())

	l, _ := m.board.At(0)
	assert.Equal(t, []model.Item{{Text: "Buy oat milk", Checked: true}}, l.Items)
	assert.Contains(t, m.View(), "Checklist saved")
}

func TestBoard_RandomChecklist(t *testing.T) {
	m := newTestModel(t, false)
	m = press(t, m, runes("r"))
	assert.Equal(t, 6, m.board.TotalLists())
	assert.Equal(t, cursor{list: 5, item: -1}, m.cur)
	assert.Contains(t, m.View(), "Random checklist 1")
}

func TestBoard_QuitKeys(t *testing.T) {
	m := newTestModel(t, false)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m = press(t, m, runes("a"), runes("q"))
	assert.Equal(t, board.DialogAdding, m.board.Dialog().Kind, "q is typed into the editor")
	assert.Equal(t, "q", m.board.Editor().Name)

	_, cmd = m.Update(keyOf(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestBoard_ScrollKeepsCursorVisible(t *testing.T) {
	m := newTestModel(t, false)
	mAny, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 16})
	m = mAny.(appModel)
	for i := 0; i < 4; i++ {
		m = press(t, m, runes("l"))
	}
	v := m.View()
	assert.Contains(t, v, "Dinner plan")
	assert.False(t, strings.Contains(v, "Buy milk"), "first list scrolled out of view")
}

func TestBoard_CheckAndUncheckKeys(t *testing.T) {
	m := newTestModel(t, false)
	before := m.board.CompletedItems()

	m = press(t, m, runes("x"))
	assert.Equal(t, before, m.board.CompletedItems(), "header row has no item to check")

	m = press(t, m, keyOf(tea.KeyDown), runes("x"), runes("x"))
	assert.Equal(t, before+1, m.board.CompletedItems())

	m = press(t, m, runes("u"), runes("u"))
	assert.Equal(t, before, m.board.CompletedItems())
	l, _ := m.board.At(0)
	assert.False(t, l.Items[0].Checked)
}

func TestEditor_DigitPicksIcon(t *testing.T) {
	m := newTestModel(t, false)
	m = press(t, m, runes("a"), keyOf(tea.KeyTab))
	require.Equal(t, focusIcon, m.focus)

	m = press(t, m, runes("6"))
	assert.Equal(t, model.IconShopping, m.board.Editor().Icon)
	m = press(t, m, runes("9"))
	assert.Equal(t, model.IconShopping, m.board.Editor().Icon, "out of range digit is ignored")
	assert.Equal(t, "", m.board.Editor().Name, "digits on the icon field are not typed")
}

func TestHelpUsesThemeStyles(t *testing.T) {
	require.NoError(t, ui.SetTheme("neon"))
	t.Cleanup(func() { _ = ui.SetTheme("classic") })

	m := newTestModel(t, false)
	assert.Equal(t, ui.Current().Help, m.help.Styles.ShortDesc)
	assert.Equal(t, ui.Current().Accent, m.help.Styles.FullKey)
}
