package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel frames lines in a box using the current theme.
func Panel(lines []string) string {
	return PanelStyle(current.BorderColor).Render(strings.Join(lines, "\n"))
}

// PanelStyle is the bordered box used for panels, cards and dialogs.
func PanelStyle(border lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(border).
		Padding(0, 1)
}

// Counters renders the "Completed: x/y" line.
func Counters(completed, total int) string {
	return fmt.Sprintf("%s %s %d/%d",
		current.Title.Render("Completed:"),
		current.Success.Render(current.SymDone), completed, total)
}

// TotalLists renders the footer list counter.
func TotalLists(n int) string {
	return fmt.Sprintf("%s %d", current.Accent.Render("Total lists:"), n)
}

// ItemLine renders one checklist item, cut to width cells when width > 0.
func ItemLine(text string, checked bool, width int) string {
	box := current.Muted.Render(current.BoxUnchecked)
	if checked {
		box = current.Success.Render(current.BoxChecked)
	}
	if width > 0 {
		text = Truncate(text, width-Width(current.BoxUnchecked)-1)
	}
	if checked {
		text = current.Done.Render(text)
	}
	return box + " " + text
}
