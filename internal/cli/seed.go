package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/checklists/internal/model"
	"github.com/idilsaglam/checklists/internal/seed"
	"github.com/idilsaglam/checklists/internal/ui"
)

func newSeedCmd(opt *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Print the current seed as a YAML seed file",
		Long:  "Print the checklists the board would start with, in the format accepted by --seed.",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := loadLists(*opt)
			if err != nil {
				return err
			}
			return seed.Encode(cmd.OutOrStdout(), lists)
		},
	}
}

func newIconsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "icons",
		Short: "List icon names for seed files",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, ic := range model.Icons() {
				suffix := ""
				if ic == model.DefaultIcon {
					suffix = ui.Current().Muted.Render("  (default)")
				}
				fmt.Fprintf(w, "%s  %s%s\n", ui.IconGlyph(ic), ic, suffix)
			}
			return nil
		},
	}
}
