// Package logging builds the application logger. The terminal belongs to
// the TUI, so logs go to a file or nowhere.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// New returns a JSON debug logger writing to path, truncating it, and a
// function closing the file. An empty path returns a logger that drops
// everything.
func New(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("log dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), f.Close, nil
}
