package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes all rules with their documentation.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
	Severity    Severity
	Tags        []string
}

// RuleInfoProvider is a function that returns rule information.
// This allows decoupling from the lint package to avoid circular imports.
type RuleInfoProvider func() []RuleInfo

// DefaultRuleInfoProvider is set by the rules package during init.
//
//nolint:gochecknoglobals // Intentional extension point for rule info.
var DefaultRuleInfoProvider RuleInfoProvider

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateJSON()
	}
	if opts.Full {
		return generateFullTemplate(), nil
	}
	return generateMinimalTemplate(), nil
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

# Language of rule labels and messages: en or zh
locale: en

# Default severity for all rules: error, warning, or info
# severity_default: warning

# Skip lines inside fenced, indented and HTML blocks
# ignore_code_blocks: false

# Skip vendored directories such as node_modules
# skip_vendored: false

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"

# Rule-specific configuration (keys may be IDs or names)
# rules:
#   ZH103:
#     enabled: false
#   zh-digit-spacing:
#     severity: error
`)

	return buf.Bytes()
}

// generateFullTemplate creates a full template with all rules documented.
func generateFullTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`
#
# Full template: this template includes all available rules with their default settings.

# Language of rule labels and messages: en or zh
locale: en

# Default severity for all rules: error, warning, or info
severity_default: warning

# Skip lines inside fenced, indented and HTML blocks
ignore_code_blocks: false

# Skip vendored directories such as node_modules
skip_vendored: false

# File extensions treated as Markdown
extensions:
  - ".md"
  - ".markdown"

# File patterns to ignore (glob patterns)
ignore:
  - "vendor/**"
  - "node_modules/**"

# Rule-specific configuration
rules:
`)

	rules := getRuleInfos()
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID < rules[j].ID
	})

	for _, rule := range rules {
		buf.WriteString(fmt.Sprintf("\n  # %s: %s\n", rule.ID, rule.Name))
		buf.WriteString(fmt.Sprintf("  # %s\n", wrapComment(rule.Description, commentWrapWidth)))
		if len(rule.Tags) > 0 {
			buf.WriteString(fmt.Sprintf("  # Tags: %s\n", strings.Join(rule.Tags, ", ")))
		}
		buf.WriteString(fmt.Sprintf("  %s:\n", rule.ID))
		buf.WriteString(fmt.Sprintf("    enabled: %t\n", rule.Enabled))
		buf.WriteString(fmt.Sprintf("    severity: %s\n", rule.Severity))
	}

	return buf.Bytes()
}

// getRuleInfos returns information about all registered rules.
func getRuleInfos() []RuleInfo {
	if DefaultRuleInfoProvider != nil {
		return DefaultRuleInfoProvider()
	}
	return nil
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}

// templateJSON renders the full template as JSON (comments are dropped).
func templateJSON() ([]byte, error) {
	rulesMap := make(map[string]any)
	for _, r := range getRuleInfos() {
		rulesMap[r.ID] = map[string]any{
			"enabled":  r.Enabled,
			"severity": string(r.Severity),
		}
	}

	cfg := map[string]any{
		"locale":             string(LocaleEnglish),
		"severity_default":   string(SeverityWarning),
		"ignore_code_blocks": false,
		"skip_vendored":      false,
		"extensions":         []string{".md", ".markdown"},
		"ignore":             []string{"vendor/**", "node_modules/**"},
		"rules":              rulesMap,
	}

	jsonBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}
	return jsonBytes, nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# gozhlint configuration
# See: https://github.com/yaklabco/gozhlint`
}
