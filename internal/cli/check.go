package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/htmlfix/pkg/config"
	"github.com/yaklabco/htmlfix/pkg/reporter"
	"github.com/yaklabco/htmlfix/pkg/runner"
)

type checkFlags struct {
	format string
	strict bool
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [input]",
		Short: "Report diagnostics without writing anything",
		Long: `Run the repair passes in memory and report the tag-balance
diagnostic and content-kind preflight. Nothing is written to disk.

Examples:
  htmlfix check page.html             # Diagnose a file
  htmlfix check --strict page.html    # Unbalanced tags fail the run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit non-zero when tag counts are unbalanced")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	cfg, err := loadConfig(cmd, func(cfg *config.Config) {
		// check never writes.
		cfg.DryRun = true
		if cmd.Flags().Changed("strict") {
			cfg.Strict = flags.strict
		}
		cfg.Format = config.OutputFormat(flags.format)
	})
	if err != nil {
		return err
	}

	input := resolveInput(args, cfg)
	if input == "" {
		return fmt.Errorf("%w: no input path given and no default_input configured", ErrUsage)
	}

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := runner.New(cfg).Run(ctx, runner.Options{
		InputPath: input,
		Config:    cfg,
	})
	if err != nil {
		return errors.Join(errors.New("check failed"), err)
	}

	if err := report(ctx, cmd, result, format); err != nil {
		return err
	}

	if cfg.Strict && result.HasMismatch() {
		return ErrBalanceMismatch
	}

	return nil
}
