// Package runner orchestrates a single htmlfix run: read the input,
// run the normalization passes, compute diagnostics, and write the
// repaired document safely.
package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/htmlfix/pkg/balance"
	"github.com/yaklabco/htmlfix/pkg/config"
	"github.com/yaklabco/htmlfix/pkg/contentkind"
	"github.com/yaklabco/htmlfix/pkg/fsutil"
	"github.com/yaklabco/htmlfix/pkg/htmltext"
)

// OutputSuffix is appended to the input path when no explicit output
// path is given.
const OutputSuffix = ".fixed"

// ErrConcurrentModification is returned when the input file changed
// between reading it and rewriting it in place.
var ErrConcurrentModification = errors.New("input file modified during run")

// Options controls one run.
type Options struct {
	// InputPath is the file to repair. Required.
	InputPath string

	// Config carries the resolved configuration, including output
	// path, in-place mode, dry-run, and pass tuning.
	Config *config.Config
}

// Runner executes fix runs.
type Runner struct {
	normalizer *htmltext.Normalizer
}

// New creates a Runner configured from cfg.
func New(cfg *config.Config) *Runner {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Runner{
		normalizer: htmltext.New(htmltext.Options{
			IndentWidth:         cfg.IndentWidth,
			MaxEntityIterations: cfg.MaxEntityIterations,
		}),
	}
}

// Run repairs a single file.
//
// The balance diagnostic is computed regardless of outcome and never
// blocks the write: a mismatched document is still written, and the
// caller decides whether the mismatch affects the exit code.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}

	if opts.InputPath == "" {
		return nil, errors.New("no input path given")
	}

	content, info, err := fsutil.ReadFile(ctx, opts.InputPath)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Input:       opts.InputPath,
		Output:      resolveOutputPath(opts.InputPath, cfg),
		ContentKind: contentkind.Detect(content),
		DryRun:      cfg.DryRun,
	}

	fixed, stats, err := r.normalizer.Normalize(ctx, content)
	if err != nil {
		return nil, err
	}
	result.Stats = stats
	result.Balance = balance.Count(string(fixed))

	if cfg.DryRun {
		return result, nil
	}

	if cfg.InPlace {
		if err := r.writeInPlace(ctx, result, info, fixed, cfg); err != nil {
			return nil, err
		}
		return result, nil
	}

	if err := fsutil.WriteAtomic(ctx, result.Output, fixed, info.Mode); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}
	result.Written = true

	return result, nil
}

// writeInPlace rewrites the input file, guarding against concurrent
// modification and creating a sidecar backup when configured.
func (r *Runner) writeInPlace(ctx context.Context, result *Result, info *fsutil.FileInfo, fixed []byte, cfg *config.Config) error {
	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return fmt.Errorf("check input: %w", err)
	}
	if modified {
		return fmt.Errorf("%w: %s", ErrConcurrentModification, info.Path)
	}

	if cfg.Backups.Enabled && !cfg.NoBackups {
		created, err := fsutil.CreateBackup(ctx, info.Path)
		if err != nil {
			return fmt.Errorf("create backup: %w", err)
		}
		result.BackupCreated = created
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, info.Path, fixed, info.Mode)
	if err != nil {
		return fmt.Errorf("rewrite input: %w", err)
	}
	result.Written = written

	return nil
}

func resolveOutputPath(input string, cfg *config.Config) string {
	switch {
	case cfg.InPlace:
		return input
	case cfg.Output != "":
		return cfg.Output
	default:
		return input + OutputSuffix
	}
}
