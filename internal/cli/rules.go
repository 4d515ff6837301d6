package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gozhlint/internal/logging"
	"github.com/yaklabco/gozhlint/internal/ui/pretty"
	"github.com/yaklabco/gozhlint/pkg/config"
	"github.com/yaklabco/gozhlint/pkg/lint"
)

type rulesFlags struct {
	format string
}

const (
	formatJSON = "json"
	formatText = "text"
)

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Family      string `json:"family"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Enabled     bool   `json:"enabled"`
}

func newRulesCommand(globals *globalFlags) *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		Long: `List all typography rules with their IDs, names, families, default
severity and the report label used for the selected locale.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			locale := config.Locale(globals.locale).OrDefault()
			rules := lint.DefaultRegistry.Rules()

			logging.FromContext(cmd.Context()).Debug("listing rules",
				logging.FieldLocale, locale,
				logging.FieldFormat, flags.format,
			)

			switch flags.format {
			case formatJSON:
				return outputRulesJSON(cmd.OutOrStdout(), rules, locale)
			case formatText:
				return outputRulesTable(cmd.OutOrStdout(), rules, locale, globals.color)
			default:
				return fmt.Errorf("invalid format %q: must be text or json", flags.format)
			}
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", formatText, "output format: text, json")

	return cmd
}

func outputRulesTable(w io.Writer, rules []lint.Rule, locale config.Locale, colorMode string) error {
	if len(rules) == 0 {
		_, err := fmt.Fprintln(w, "no rules registered")
		return err
	}

	rows := make([]pretty.RuleRow, 0, len(rules))
	for _, rule := range rules {
		rows = append(rows, pretty.RuleRow{
			ID:       rule.ID(),
			Name:     rule.Name(),
			Family:   string(rule.Family()),
			Severity: rule.DefaultSeverity(),
			Enabled:  rule.DefaultEnabled(),
			Label:    rule.Label(locale),
		})
	}

	colorEnabled := pretty.IsColorEnabled(colorMode, w)
	table := pretty.NewTableFormatter(pretty.NewStyles(colorEnabled), colorEnabled, terminalWidth(w))

	_, err := io.WriteString(w, table.FormatRules(rows))
	return err
}

// terminalWidth returns the width of w when it is a terminal, or 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(w io.Writer, rules []lint.Rule, locale config.Locale) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Family:      string(rule.Family()),
			Label:       rule.Label(locale),
			Description: rule.Description(),
			Severity:    string(rule.DefaultSeverity()),
			Enabled:     rule.DefaultEnabled(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
