package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gozhlint/internal/logging"
	"github.com/yaklabco/gozhlint/pkg/contrib"
)

type contribFlags struct {
	format string
}

func newContribCommand() *cobra.Command {
	flags := &contribFlags{}

	cmd := &cobra.Command{
		Use:   "contrib [root]",
		Short: "Tally contributions recorded in document metadata",
		Long: `Walk a translation source tree and count, per GitHub ID, how many
documents each contributor collected, translated, proofread and published.

Contributors are read from "collector:", "translator:", "proofreader:" and
"publisher:" metadata lines. The root defaults to "` + contrib.DefaultRoot + `".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := contrib.DefaultRoot
			if len(args) == 1 {
				root = args[0]
			}
			return runContrib(cmd, root, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", formatText, "output format: text, json")

	return cmd
}

func runContrib(cmd *cobra.Command, root string, flags *contribFlags) error {
	if flags.format != formatText && flags.format != formatJSON {
		return fmt.Errorf("invalid format %q: must be text or json", flags.format)
	}

	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	tally, err := contrib.Collect(ctx, root)
	if err != nil {
		return fmt.Errorf("collect contributions: %w", err)
	}

	contributors := tally.Contributors()
	logger.Debug("contributions collected",
		logging.FieldRoot, root,
		logging.FieldFilesProcessed, tally.Files(),
		logging.FieldContributors, len(contributors),
	)

	if flags.format == formatJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(contributors); err != nil {
			return fmt.Errorf("encoding contributions: %w", err)
		}
		return nil
	}

	return contrib.WriteTable(cmd.OutOrStdout(), contributors)
}
