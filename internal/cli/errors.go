package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ExitError carries the process exit code for a failed command:
// 1 for runtime failures, 2 for bad usage.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

func usageError(format string, args ...any) error {
	return &ExitError{Code: 2, Err: fmt.Errorf(format, args...)}
}

// noArgs rejects positional arguments as bad usage. On a command with
// subcommands the first argument is reported as an unknown command.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if cmd.HasSubCommands() {
		return usageError("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return usageError("%q accepts no arguments, got %q", cmd.CommandPath(), args)
}

// ExitCode maps an error returned by the root command to a process exit
// code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return 1
}
