package main

import (
	"os"

	"github.com/idilsaglam/checklists/internal/cli"
	"github.com/idilsaglam/checklists/internal/ui"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(cli.ExitCode(err))
	}
}
