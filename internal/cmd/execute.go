package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/dendrascience/dendra-fileops/fileops"
	"github.com/dendrascience/dendra-fileops/version"
)

// Process exit statuses. A dispatched command exits with ExitDispatched even
// when some files or jobs failed; partial failures are reported in the output.
const (
	ExitDispatched = 1
	ExitUsage      = -1
	ExitError      = 2
)

// ExitCode maps the error returned by the root command to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitDispatched
	case errors.Is(err, fileops.ErrUsage):
		return ExitUsage
	default:
		return ExitError
	}
}

// Execute runs the CLI with args and returns the exit status.
// Interrupts stop further workers from being spawned; running ones finish.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := fang.Execute(ctx, rootCmd,
		fang.WithVersion(version.GetVersion()),
		fang.WithCommit(version.GetCommit()),
		fang.WithNotifySignal(os.Interrupt),
	)
	return ExitCode(err)
}
