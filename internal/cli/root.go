// Package cli provides the Cobra command structure for gozhlint.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gozhlint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
	locale     string
}

// NewRootCommand creates the root gozhlint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	globals := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "gozhlint",
		Short: "A typography linter for Chinese Markdown",
		Long: `gozhlint checks Chinese Markdown documents for typography defects.

It reports missing spaces between Chinese and Latin text or digits, stray
spaces around full-width punctuation, half-width parentheses next to Latin
text, and English sentences that end in full-width punctuation. Results are
printed as a JSON report grouped by rule, or as styled text.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if globals.debug {
				logging.SetLevel("debug")
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.WithLogger(ctx, logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&globals.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&globals.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&globals.color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&globals.locale, "locale", "",
		"language of labels and messages: en, zh")

	rootCmd.AddCommand(newLintCommand(globals))
	rootCmd.AddCommand(newRulesCommand(globals))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newContribCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	applyHelp(rootCmd, &globals.color)

	return rootCmd
}
