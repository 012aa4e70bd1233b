package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/checklists/internal/model"
	"github.com/idilsaglam/checklists/internal/ui"
)

func (m appModel) View() string {
	t := ui.Current()

	layout := "one column"
	if m.board.TwoColumn() {
		layout = "two columns"
	}
	title := t.Title.Render(ui.IconGlyph(model.IconHouse)+" Checklists") + "  " + t.Muted.Render("["+layout+"]")
	counter := ui.Counters(m.board.CompletedItems(), m.board.TotalItems()) + "  " +
		t.Muted.Render(ui.ProgressBar(m.board.CompletedItems(), m.board.TotalItems(), 20))
	footer := ui.TotalLists(m.board.TotalLists())
	if m.status != "" {
		footer += "  " + t.Muted.Render(m.status)
	}
	helpLine := m.help.View(m.keys)

	top := []string{title, counter, ""}
	bottom := []string{"", footer, helpLine}
	avail := m.height - len(top) - len(bottom) - lipgloss.Height(helpLine) + 1
	avail = max(avail, 3)

	var body string
	switch {
	case m.board.Editor() != nil:
		body = lipgloss.Place(m.width, avail, lipgloss.Center, lipgloss.Center, m.editorView())
	case m.board.Dialog().Open():
		body = lipgloss.Place(m.width, avail, lipgloss.Center, lipgloss.Center, m.confirmView())
	default:
		body = m.boardView(avail)
	}

	out := append(top, body)
	out = append(out, bottom...)
	return strings.Join(out, "\n")
}

// boardView renders the checklist cards and scrolls so the cursor row
// stays inside height lines.
func (m appModel) boardView(height int) string {
	t := ui.Current()
	lists := m.board.Lists()
	if len(lists) == 0 {
		return t.Muted.Render("No checklists. Press a to add one, r for a random one.")
	}

	cols := 1
	if m.board.TwoColumn() {
		cols = 2
	}
	cardW := max(m.width/cols, 20)

	var (
		lines      []string
		cursorLine int
	)
	for start := 0; start < len(lists); start += cols {
		end := min(start+cols, len(lists))
		cards := make([]string, 0, cols)
		for i := start; i < end; i++ {
			card, row := m.renderCard(i, lists[i], cardW)
			cards = append(cards, card)
			if i == m.cur.list {
				cursorLine = len(lines) + row
			}
		}
		lines = append(lines, strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, cards...), "\n")...)
	}

	if len(lines) > height {
		off := max(0, min(cursorLine-height/2, len(lines)-height))
		lines = lines[off : off+height]
	}
	return strings.Join(lines, "\n")
}

// renderCard draws checklist i and reports the line of the cursor row
// within the card.
func (m appModel) renderCard(i int, cl model.Checklist, width int) (string, int) {
	t := ui.Current()
	inner := width - 4
	selected := m.cur.list == i
	expanded := m.board.Expanded(i)

	arrow := t.Collapsed
	if expanded {
		arrow = t.Expanded
	}
	count := fmt.Sprintf("%d/%d", cl.Completed(), len(cl.Items))
	name := ui.Truncate(cl.Name, inner-ui.Width(count)-6)
	head := ui.PadRight(arrow+" "+ui.IconGlyph(cl.Icon)+" "+name, inner-ui.Width(count)) + count
	if selected && m.cur.item < 0 {
		head = t.Selected.Render(head)
	} else {
		head = t.Title.Render(head)
	}

	lines := []string{head}
	row := 1
	if expanded {
		if len(cl.Items) == 0 {
			lines = append(lines, t.Muted.Render("  (empty)"))
		}
		for j, it := range cl.Items {
			prefix := "  "
			if selected && m.cur.item == j {
				prefix = t.Accent.Render("> ")
				row = j + 2
			}
			lines = append(lines, prefix+ui.ItemLine(it.Text, it.Checked, inner-2))
		}
	}

	border := t.BorderColor
	if selected {
		border = t.FocusColor
	}
	card := ui.PanelStyle(border).Width(width - 2).Render(strings.Join(lines, "\n"))
	return card, row
}
