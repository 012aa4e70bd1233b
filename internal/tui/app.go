// Package tui is the interactive checklist board.
package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/checklists/internal/board"
)

// Options tune the program; zero values use the terminal.
type Options struct {
	Input  io.Reader
	Output io.Writer
	Inline bool // render in the main screen buffer
}

// Run starts the board and blocks until the user quits.
func Run(b *board.Board, opt Options) error {
	var popts []tea.ProgramOption
	if !opt.Inline {
		popts = append(popts, tea.WithAltScreen())
	}
	if opt.Input != nil {
		popts = append(popts, tea.WithInput(opt.Input))
	}
	if opt.Output != nil {
		popts = append(popts, tea.WithOutput(opt.Output))
	}
	p := tea.NewProgram(newAppModel(b), popts...)
	_, err := p.Run()
	return err
}
