package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gozhlint/internal/configloader"
	"github.com/yaklabco/gozhlint/internal/logging"
	"github.com/yaklabco/gozhlint/pkg/config"
	"github.com/yaklabco/gozhlint/pkg/lint"
	_ "github.com/yaklabco/gozhlint/pkg/lint/rules" // Register built-in rules
	goldmarkparser "github.com/yaklabco/gozhlint/pkg/parser/goldmark"
	"github.com/yaklabco/gozhlint/pkg/reporter"
	"github.com/yaklabco/gozhlint/pkg/runner"
)

var (
	// ErrLintIssuesFound is returned in strict mode when lint issues are found.
	ErrLintIssuesFound = errors.New("lint issues found")

	// ErrFilesFailed is returned when one or more files could not be linted.
	ErrFilesFailed = errors.New("some files could not be linted")
)

type lintFlags struct {
	format           string
	jobs             int
	ignore           []string
	extensions       []string
	enable           []string
	disable          []string
	strict           bool
	ignoreCodeBlocks bool
	skipVendored     bool
	noContext        bool
	ruleFormat       string
}

func newLintCommand(globals *globalFlags) *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint Chinese Markdown files",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, globals, flags)
		},
	}

	addLintFlags(cmd, flags)

	return cmd
}

const lintLongDescription = `Lint Chinese Markdown files for typography issues.

By default, lints every Markdown file in the current directory and its
subdirectories. Files named on the command line are linted whatever their
extension.

The JSON report maps each rule label to the issues found, keyed by
"line N, column C". A document without issues prints a short message instead.

Examples:
  gozhlint lint                       # Lint current directory
  gozhlint lint docs/                 # Lint docs directory
  gozhlint lint README.md             # Lint single file
  gozhlint lint --locale zh           # Chinese labels and keys
  gozhlint lint --format text         # Styled terminal output
  gozhlint lint --ignore-code-blocks  # Skip fenced and indented code
  gozhlint lint --strict              # Exit 1 when any issue is found`

// cliConfig turns explicitly set flags into a config layer.
func cliConfig(cmd *cobra.Command, globals *globalFlags, flags *lintFlags) *config.Config {
	cfg := &config.Config{}

	changed := cmd.Flags().Changed

	if globals.locale != "" {
		cfg.Locale = config.Locale(globals.locale)
	}
	if changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if changed("rule-format") {
		cfg.RuleFormat = config.RuleFormat(flags.ruleFormat)
	}
	if changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if changed("ignore") {
		cfg.Ignore = flags.ignore
	}
	if changed("extensions") {
		cfg.Extensions = flags.extensions
	}
	if changed("enable") {
		cfg.EnableRules = flags.enable
	}
	if changed("disable") {
		cfg.DisableRules = flags.disable
	}
	cfg.Strict = flags.strict
	cfg.IgnoreCodeBlocks = flags.ignoreCodeBlocks
	cfg.SkipVendored = flags.skipVendored

	return cfg
}

// newEngine builds the lint engine with the default rules, the goldmark
// code-block finder and a shared line cache.
func newEngine() *lint.Engine {
	engine := lint.NewEngine(lint.DefaultRegistry)
	engine.Regions = goldmarkparser.New(goldmarkparser.FlavorGFM)
	engine.Cache = lint.NewMemoryLineCache(lint.DefaultLineCacheTTL, lint.DefaultLineCacheCleanup)
	return engine
}

func runLint(cmd *cobra.Command, args []string, globals *globalFlags, flags *lintFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: globals.configPath,
		CLIConfig:    cliConfig(cmd, globals, flags),
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldLocale, finalCfg.Locale,
		logging.FieldFormat, finalCfg.Format,
		logging.FieldJobs, finalCfg.Jobs,
		logging.FieldStrict, finalCfg.Strict,
	)

	runOpts := runner.OptionsFromConfig(finalCfg, args)
	runOpts.WorkingDir = workDir

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.New(newEngine()).Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("lint run failed"), err)
	}

	logger.Debug("lint run finished",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
		logging.FieldIssuesTotal, result.Stats.IssuesTotal,
		logging.FieldLinesScanned, result.Stats.LinesScanned,
		logging.FieldLinesSkipped, result.Stats.LinesSkipped,
	)

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Locale:      finalCfg.Locale,
		Color:       globals.color,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		RuleFormat:  finalCfg.RuleFormat,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result, finalCfg.Strict) == ExitSuccess {
		return nil
	}
	if result.HasErrors() {
		return fmt.Errorf("%w: %w", ErrFilesFailed, result.Err())
	}
	return ErrLintIssuesFound
}

func addLintFlags(cmd *cobra.Command, flags *lintFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "json", "output format: json, text")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.extensions, "extensions", nil,
		"file extensions treated as Markdown when walking directories")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs or names to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs or names to disable")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit 1 when any issue is found")
	cmd.Flags().BoolVar(&flags.ignoreCodeBlocks, "ignore-code-blocks", false,
		"skip lines inside fenced, indented and HTML blocks")
	cmd.Flags().BoolVar(&flags.skipVendored, "skip-vendored", false,
		"skip vendored directories such as node_modules")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in text output")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in text output: name, id, or combined")
}
