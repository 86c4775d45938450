package cli

import (
	"errors"

	"github.com/yaklabco/htmlfix/pkg/fsutil"
)

// Exit codes for htmlfix.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitRunFailed indicates the run itself failed.
	ExitRunFailed = 1

	// ExitBalanceMismatch indicates unbalanced tag counts under --strict.
	ExitBalanceMismatch = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors that carry exit-code meaning out of RunE.
var (
	// ErrBalanceMismatch signals unbalanced tags in strict mode. The
	// output file is still written; only the exit code changes.
	ErrBalanceMismatch = errors.New("tag balance mismatch")

	// ErrUsage signals invalid command-line usage.
	ErrUsage = errors.New("invalid usage")

	// ErrConfig signals a configuration loading failure.
	ErrConfig = errors.New("configuration error")
)

// ExitCodeForError maps a command error to the process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrBalanceMismatch):
		return ExitBalanceMismatch
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitRunFailed
	}
}
