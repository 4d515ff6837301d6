package lint

import (
	"strconv"

	"github.com/yaklabco/gozhlint/pkg/config"
)

// Issue is a single typography defect located in a document.
type Issue struct {
	// RuleID is the identifier of the rule that produced this issue.
	RuleID string

	// RuleName is the stable name of the rule (e.g., "zh-latin-spacing").
	RuleName string

	// Label is the localized bucket name the issue is reported under.
	Label string

	// Severity indicates the importance of the issue.
	Severity config.Severity

	// FilePath is the path to the file containing the issue.
	FilePath string

	// Line is the 1-based line number.
	Line int

	// Column is the 1-based code-point column of the first matched character.
	Column int

	// EndColumn is the 1-based code-point column just past the match.
	EndColumn int

	// Key is the localized position key, e.g. "line 3, column 5".
	Key string

	// Text is the offending text.
	Text string
}

// IssueKey formats the report key for a 1-based line and column.
func IssueKey(locale config.Locale, line, column int) string {
	if locale == config.LocaleChinese {
		return "行 " + strconv.Itoa(line) + "，列 " + strconv.Itoa(column)
	}
	return "line " + strconv.Itoa(line) + ", column " + strconv.Itoa(column)
}

// NoIssuesMessage is printed in place of an empty report.
func NoIssuesMessage(locale config.Locale) string {
	if locale == config.LocaleChinese {
		return "文档符合规范，没有发现问题。"
	}
	return "document conforms, no issues found"
}
