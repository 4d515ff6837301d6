package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gozhlint/internal/ui/pretty"
	"github.com/yaklabco/gozhlint/pkg/config"
	"github.com/yaklabco/gozhlint/pkg/lint"
)

func sampleIssue() *lint.Issue {
	return &lint.Issue{
		RuleID:    "ZH001",
		RuleName:  "zh-latin-spacing",
		Label:     "spacing required between Chinese and Latin text",
		Severity:  config.SeverityWarning,
		FilePath:  "guide.md",
		Line:      3,
		Column:    2,
		EndColumn: 4,
		Key:       "line 3, column 2",
		Text:      "试a",
	}
}

func TestFormatIssue_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatIssue(sampleIssue(), false, "")

	assert.Equal(t,
		"  guide.md:3:2  warning  spacing required between Chinese and Latin text  \"试a\"  (ZH001)\n",
		result)
}

func TestFormatIssue_WithContext(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatIssue(sampleIssue(), true, "测试abc")

	lines := strings.Split(strings.TrimSuffix(result, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "        测试abc", lines[1])
	// "测" is two cells wide.
	assert.Equal(t, "          ^", lines[2])
}

func TestFormatIssue_WithRuleFormat(t *testing.T) {
	styles := pretty.NewStyles(false)
	issue := sampleIssue()

	tests := []struct {
		name   string
		format config.RuleFormat
		want   string
	}{
		{"name", config.RuleFormatName, "(zh-latin-spacing)"},
		{"id", config.RuleFormatID, "(ZH001)"},
		{"combined", config.RuleFormatCombined, "(ZH001/zh-latin-spacing)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := styles.FormatIssueWithFormat(issue, false, "", tt.format)
			assert.Contains(t, result, tt.want)
		})
	}
}

func TestFormatSeverity_AllLevels(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		severity config.Severity
		expected string
	}{
		{config.SeverityError, "error"},
		{config.SeverityWarning, "warning"},
		{config.SeverityInfo, "info"},
		{config.Severity("custom"), "custom"},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			assert.Equal(t, tt.expected, styles.FormatSeverity(tt.severity))
		})
	}
}

func TestFormatSourceContext(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name   string
		line   string
		column int
		caret  string
	}{
		{"ascii", "abc def", 5, "            ^"},
		{"first column", "中文", 1, "        ^"},
		{"past end", "ab", 9, "          ^"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := styles.FormatSourceContext(tt.line, tt.column)
			lines := strings.Split(strings.TrimSuffix(result, "\n"), "\n")
			assert.Len(t, lines, 2)
			assert.Equal(t, tt.caret, lines[1])
		})
	}
}

func TestFormatSourceContext_ZeroColumn(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSourceContext("中文", 0)

	assert.NotContains(t, result, "^")
}

func TestFormatFileHeader(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "a.md (3 issues)", styles.FormatFileHeader("a.md", 3))
	assert.Equal(t, "a.md (1 issue)", styles.FormatFileHeader("a.md", 1))
	assert.Equal(t, "a.md", styles.FormatFileHeader("a.md", 0))
}
