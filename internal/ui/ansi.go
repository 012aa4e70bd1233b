package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// SetColorForcing overrides terminal colour detection. disable wins over
// force; with neither set the profile follows the environment (NO_COLOR,
// CLICOLOR_FORCE, TERM).
func SetColorForcing(force, disable bool) {
	switch {
	case disable:
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		lipgloss.SetColorProfile(termenv.ANSI256)
	default:
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
	}
}

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Success.Render(current.SymDone+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Error.Render("✖ "+msg))
}

// Width is the printable width of s, ignoring escape sequences.
func Width(s string) int { return ansi.StringWidth(s) }

// Truncate shortens s to at most width cells, marking the cut with "…".
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// PadRight fills s with spaces up to width cells.
func PadRight(s string, width int) string {
	if w := Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
