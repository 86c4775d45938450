// Package main is the entry point for the htmlfix CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/htmlfix/internal/cli"
	"github.com/yaklabco/htmlfix/internal/logging"
)

// Build-time variables set via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// ErrBalanceMismatch is just a signal for the exit code; the
		// report already told the user.
		if !errors.Is(err, cli.ErrBalanceMismatch) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeForError(err)
	}

	return cli.ExitSuccess
}
