package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/checklists/internal/board"
	"github.com/idilsaglam/checklists/internal/logging"
	"github.com/idilsaglam/checklists/internal/model"
	"github.com/idilsaglam/checklists/internal/seed"
	"github.com/idilsaglam/checklists/internal/tui"
	"github.com/idilsaglam/checklists/internal/ui"
)

// runBoard starts the interactive board; replaced in tests.
var runBoard = func(b *board.Board) error { return tui.Run(b, tui.Options{}) }

func NewRootCmd() *cobra.Command {
	opt := defaultOptions()

	cmd := &cobra.Command{
		Use:           "checklists",
		Short:         "Checklists on one screen",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		Example: strings.TrimSpace(`
  # Start the interactive board
  checklists

  # Start from your own lists, two columns
  checklists --seed lists.yaml --two-column

  # Print lists and counters
  checklists ls --group
`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opt.validate(); err != nil {
				return err
			}
			ui.SetColorForcing(false, opt.NoColor)
			return ui.SetTheme(opt.Theme)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.OutOrStdout(), opt)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: 2, Err: err}
	})

	f := cmd.PersistentFlags()
	f.StringVar(&opt.SeedPath, "seed", opt.SeedPath, "Seed file with checklists (YAML or JSON; env CHECKLISTS_SEED)")
	f.StringVar(&opt.Theme, "theme", opt.Theme, "Theme: "+strings.Join(ui.Themes, "|")+" (env CHECKLISTS_THEME)")
	f.BoolVar(&opt.NoColor, "no-color", opt.NoColor, "Disable colors (env NO_COLOR)")
	cmd.Flags().BoolVar(&opt.TwoColumn, "two-column", opt.TwoColumn, "Start in two-column layout")
	cmd.Flags().BoolVar(&opt.ConfirmDelete, "confirm-delete", opt.ConfirmDelete, "Ask before deleting a checklist")
	cmd.Flags().StringVar(&opt.LogFile, "log-file", opt.LogFile, "Write a JSON debug log to this file (env CHECKLISTS_LOG)")
	cmd.Flags().Uint64Var(&opt.RandomSeed, "random-seed", opt.RandomSeed, "Seed for random checklists (0 = time based)")

	cmd.AddCommand(newListCmd(&opt))
	cmd.AddCommand(newSeedCmd(&opt))
	cmd.AddCommand(newIconsCmd())

	return cmd
}

func runInteractive(w io.Writer, opt Options) error {
	log, closeLog, err := logging.New(opt.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	lists, err := loadLists(opt)
	if err != nil {
		return err
	}
	log.Info("checklists started",
		slog.Int("lists", len(lists)),
		slog.String("seed", opt.SeedPath),
		slog.Bool("two_column", opt.TwoColumn),
	)

	b := board.New(lists, board.Options{
		TwoColumn:     opt.TwoColumn,
		ConfirmDelete: opt.ConfirmDelete,
		RandomSeed:    opt.RandomSeed,
		Logger:        log,
	})
	if err := runBoard(b); err != nil {
		log.Error("tui failed", slog.Any("err", err))
		return fmt.Errorf("tui: %w", err)
	}
	log.Info("checklists stopped",
		slog.Int("lists", b.TotalLists()),
		slog.Int("completed", b.CompletedItems()),
		slog.Int("total", b.TotalItems()),
	)
	ui.OK(w, fmt.Sprintf("%d/%d items completed in %d lists", b.CompletedItems(), b.TotalItems(), b.TotalLists()))
	return nil
}

func loadLists(opt Options) ([]model.Checklist, error) {
	lists, err := seed.Load(opt.SeedPath)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return lists, nil
}
