package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/checklists/internal/model"
	"github.com/idilsaglam/checklists/internal/ui"
)

const maxItemWidth = 60

func newListCmd(opt *Options) *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print checklists and counters",
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := loadLists(*opt)
			if err != nil {
				return err
			}
			printLists(cmd.OutOrStdout(), lists, group)
			return nil
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "group items by pending/done")
	return cmd
}

func printLists(w io.Writer, lists []model.Checklist, group bool) {
	t := ui.Current()
	col := model.NewCollection(lists...)
	done, total := col.CompletedItems(), col.TotalItems()

	// Header + progress
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Checklists"),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), total-done,
		t.Accent.Render("Total"), total,
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(done, total, 28)))
	lines = append(lines, "")

	if len(lists) == 0 {
		lines = append(lines, t.Muted.Render("no checklists"))
	}
	for i, l := range lists {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			ui.IconGlyph(l.Icon), t.Title.Render(l.Name),
			t.Muted.Render(fmt.Sprintf("(%d/%d)", l.Completed(), len(l.Items)))))
		if group {
			lines = append(lines, groupLines(l.Items)...)
		} else {
			lines = append(lines, flatLines(l.Items)...)
		}
		if i < len(lists)-1 {
			lines = append(lines, "")
		}
	}

	lines = append(lines, "")
	lines = append(lines, ui.Counters(done, total)+"   "+ui.TotalLists(col.TotalLists()))
	lines = append(lines, t.Muted.Render("Tip: run `checklists` for the interactive board"))
	fmt.Fprintln(w, ui.Panel(lines))
}

func flatLines(items []model.Item) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("  no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := t.Muted.Render(fmt.Sprintf("%2d.", i+1))
		out = append(out, fmt.Sprintf("  %s %s", idx, ui.ItemLine(it.Text, it.Checked, maxItemWidth)))
	}
	return out
}

func groupLines(items []model.Item) []string {
	t := ui.Current()
	var pend, done []model.Item
	for _, it := range items {
		if it.Checked {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, t.Accent.Render("  Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("  (none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, t.Accent.Render("  Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("  (none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
