// Package cli provides the Cobra command structure for htmlfix.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/htmlfix/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root htmlfix command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "htmlfix",
		Short: "Repair over-encoded, unformatted HTML files",
		Long: `htmlfix repairs malformed HTML files whose content has been
entity-encoded one time too many and squashed onto a single line.

It collapses repeated ampersand encoding to plain ampersands, splits
runs of adjacent tags onto separate lines, rebuilds indentation from
nesting depth, and reports whether open and close tag counts match for
a small set of structural tags. The balance report is diagnostic only:
it never changes what gets written.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newFixCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
