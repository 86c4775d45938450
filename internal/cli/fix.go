package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/htmlfix/internal/configloader"
	"github.com/yaklabco/htmlfix/internal/logging"
	"github.com/yaklabco/htmlfix/pkg/config"
	"github.com/yaklabco/htmlfix/pkg/reporter"
	"github.com/yaklabco/htmlfix/pkg/runner"
)

type fixFlags struct {
	output      string
	inPlace     bool
	dryRun      bool
	noBackup    bool
	indentWidth int
	format      string
	strict      bool
}

func newFixCommand() *cobra.Command {
	flags := &fixFlags{}

	cmd := &cobra.Command{
		Use:   "fix [input] [output]",
		Short: "Repair an HTML file and write the fixed version",
		Long:  fixLongDescription,
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default <input>.fixed)")
	cmd.Flags().BoolVar(&flags.inPlace, "in-place", false, "rewrite the input file instead of writing a sidecar")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "report what would happen without writing anything")
	cmd.Flags().BoolVar(&flags.noBackup, "no-backup", false, "disable the sidecar backup for --in-place")
	cmd.Flags().IntVar(&flags.indentWidth, "indent-width", 0, "spaces per nesting level (0 = config or default)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit non-zero when tag counts are unbalanced")

	return cmd
}

const fixLongDescription = `Repair an HTML file.

The fixer runs three passes: collapse repeated ampersand encoding,
split adjacent structural tags (div, a, svg, button) onto separate
lines, and rebuild indentation from nesting depth. After fixing, the
open/close counts of the structural tags are compared and reported.

The repaired document is written to <input>.fixed unless an explicit
output path or --in-place is given. In-place rewrites keep a sidecar
backup (<input>.htmlfix.bak) unless --no-backup is set.

Examples:
  htmlfix fix page.html                 # Write page.html.fixed
  htmlfix fix page.html clean.html      # Explicit output path
  htmlfix fix --in-place page.html      # Rewrite with backup
  htmlfix fix --dry-run page.html       # Report only
  htmlfix fix --format json page.html   # Machine-readable report
  htmlfix fix --strict page.html        # Unbalanced tags fail the run`

func runFix(cmd *cobra.Command, args []string, flags *fixFlags) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd, func(cfg *config.Config) {
		applyFixFlags(cmd, cfg, flags, args)
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

	logger.Debug("starting fix run",
		logging.FieldInput, input,
		logging.FieldInPlace, cfg.InPlace,
		logging.FieldDryRun, cfg.DryRun,
	)

	result, err := runner.New(cfg).Run(ctx, runner.Options{
		InputPath: input,
		Config:    cfg,
	})
	if err != nil {
		return errors.Join(errors.New("fix run failed"), err)
	}

	logger.Debug("fix run complete",
		logging.FieldOutput, result.Output,
		logging.FieldBytesIn, result.Stats.BytesIn,
		logging.FieldBytesOut, result.Stats.BytesOut,
		logging.FieldLines, result.Stats.Lines,
		logging.FieldWritten, result.Written,
	)

	if err := report(ctx, cmd, result, format); err != nil {
		return err
	}

	if cfg.Strict && result.HasMismatch() {
		return ErrBalanceMismatch
	}

	return nil
}

// applyFixFlags layers CLI flag values over the loaded configuration.
// Only flags the user actually set override the config file.
func applyFixFlags(cmd *cobra.Command, cfg *config.Config, flags *fixFlags, args []string) {
	cfg.InPlace = flags.inPlace
	cfg.DryRun = flags.dryRun
	cfg.NoBackups = flags.noBackup

	cfg.Output = flags.output
	if len(args) > 1 {
		cfg.Output = args[1]
	}

	if cmd.Flags().Changed("indent-width") {
		cfg.IndentWidth = flags.indentWidth
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = flags.strict
	}
	cfg.Format = config.OutputFormat(flags.format)
}

// loadConfig resolves the configuration for a command, honoring the
// persistent --config flag and the working directory search.
func loadConfig(cmd *cobra.Command, apply func(*config.Config)) (*config.Config, error) {
	logger := logging.Default()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(cmd.Context(), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		Apply:        apply,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}

// resolveInput picks the input path: positional argument first, then
// the configured default.
func resolveInput(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.DefaultInput
}

// report renders the run result with the requested format and color.
func report(ctx context.Context, cmd *cobra.Command, result *runner.Result, format reporter.Format) error {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode,
		ShowSummary: true,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	return nil
}
