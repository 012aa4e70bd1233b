package cli

import (
	"os"
	"slices"
	"strings"

	"github.com/idilsaglam/checklists/internal/ui"
)

// Options tune behavior from root flags.
type Options struct {
	SeedPath      string // seed file; empty means the built-in demo set
	Theme         string
	NoColor       bool
	TwoColumn     bool // start in two-column layout
	ConfirmDelete bool
	LogFile       string
	RandomSeed    uint64 // random checklist generator seed, 0 = time based
}

func defaultOptions() Options {
	return Options{
		SeedPath:      envOr("CHECKLISTS_SEED", ""),
		Theme:         envOr("CHECKLISTS_THEME", "classic"),
		NoColor:       strings.TrimSpace(os.Getenv("NO_COLOR")) != "",
		ConfirmDelete: true,
		LogFile:       envOr("CHECKLISTS_LOG", ""),
	}
}

func (o Options) validate() error {
	if !slices.Contains(ui.Themes, strings.ToLower(strings.TrimSpace(o.Theme))) {
		return usageError("unknown theme %q (want one of %s)", o.Theme, strings.Join(ui.Themes, ", "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
