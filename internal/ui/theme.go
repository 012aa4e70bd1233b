package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/checklists/internal/model"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done, Help                          lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor
	FocusColor  lipgloss.TerminalColor

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
	Expanded, Collapsed      string

	Icons map[model.Icon]string
}

// Themes lists the accepted theme names.
var Themes = []string{"classic", "neon", "mono"}

var current = classic()

// SetTheme switches the active theme. Unknown names fall back to classic
// and return an error.
func SetTheme(name string) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "classic":
		current = classic()
	case "neon":
		current = neon()
	case "mono":
		lipgloss.SetColorProfile(termenv.Ascii)
		current = mono()
	default:
		current = classic()
		return fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(Themes, ", "))
	}
	return nil
}

// Expose what renderers need
func Current() Theme { return current }

// IconGlyph returns the glyph for icon in the current theme.
func IconGlyph(icon model.Icon) string {
	if g, ok := current.Icons[icon]; ok {
		return g
	}
	return "?"
}

var unicodeIcons = map[model.Icon]string{
	model.IconChecklist: "☰",
	model.IconFace:      "☺",
	model.IconCleaning:  "✧",
	model.IconSchool:    "✎",
	model.IconDining:    "♨",
	model.IconShopping:  "⛁",
	model.IconHouse:     "⌂",
	model.IconAndroid:   "⚙",
}

func classic() Theme {
	return Theme{
		Name:    "classic",
		Title:   lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Faint(true),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:     lipgloss.NewStyle().Faint(true),

		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
		FocusColor:  lipgloss.Color("12"),

		BoxUnchecked: "☐", BoxChecked: "☑",
		SymDone: "✔", SymPending: "•",
		Expanded: "▾", Collapsed: "▸",
		Icons: unicodeIcons,
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	t.Selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14"))
	t.BorderColor = lipgloss.Color("13")
	t.FocusColor = lipgloss.Color("14")
	t.BoxUnchecked, t.BoxChecked = "◻", "◼"
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:    "mono",
		Title:   plain.Bold(true),
		Muted:   plain,
		Accent:  plain,
		Success: plain,
		Error:   plain,
		Pending: plain,

		Selected: plain.Reverse(true),
		Done:     plain,
		Help:     plain,

		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.NoColor{},
		FocusColor:  lipgloss.NoColor{},

		BoxUnchecked: "[ ]", BoxChecked: "[x]",
		SymDone: "x", SymPending: "-",
		Expanded: "v", Collapsed: ">",
		Icons: map[model.Icon]string{
			model.IconChecklist: "#",
			model.IconFace:      "@",
			model.IconCleaning:  "~",
			model.IconSchool:    "S",
			model.IconDining:    "D",
			model.IconShopping:  "$",
			model.IconHouse:     "H",
			model.IconAndroid:   "A",
		},
	}
}
