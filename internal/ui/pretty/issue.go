package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/gozhlint/pkg/config"
	"github.com/yaklabco/gozhlint/pkg/lint"
)

// FormatIssue formats a single issue for terminal output.
// Uses ID format for rule identifiers.
func (s *Styles) FormatIssue(issue *lint.Issue, showContext bool, sourceLine string) string {
	return s.FormatIssueWithFormat(issue, showContext, sourceLine, config.RuleFormatID)
}

// FormatIssueWithFormat formats an issue with configurable rule identifier format.
func (s *Styles) FormatIssueWithFormat(issue *lint.Issue, showContext bool, sourceLine string, ruleFormat config.RuleFormat) string {
	var builder strings.Builder

	// Location: path:line:col
	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(issue.FilePath),
		issue.Line,
		issue.Column,
	)

	ruleIdentifier := config.FormatRuleID(ruleFormat, issue.RuleID, issue.RuleName)

	// Main line: location  severity  label  "text"  (rule)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(issue.Severity),
		s.Label.Render(issue.Label),
		s.Text.Render(strconv.Quote(issue.Text)),
		s.RuleID.Render("("+ruleIdentifier+")"),
	))

	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, issue.Column))
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats the source line with a caret under the given
// 1-based code-point column. The caret is padded by the display width of the
// preceding characters, so it stays aligned under wide CJK text.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	// Indent to align with issue output
	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		runes := []rune(line)
		if column-1 > len(runes) {
			column = len(runes) + 1
		}
		width := lipgloss.Width(string(runes[:column-1]))
		builder.WriteString(indent + strings.Repeat(" ", width) + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	switch {
	case issueCount == 1:
		header += s.Dim.Render(" (1 issue)")
	case issueCount > 1:
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
