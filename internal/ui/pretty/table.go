package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/gozhlint/pkg/config"
)

// Table formatting constants.
const (
	tablePadding     = 2
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// RuleRow represents a single row in the rule listing table.
type RuleRow struct {
	ID       string
	Name     string
	Family   string
	Severity config.Severity
	Enabled  bool
	Label    string
}

// TableFormatter formats rule listings as a styled table.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

// FormatRules renders rows as a table grouped by family, in the given order.
func (t *TableFormatter) FormatRules(rows []RuleRow) string {
	if len(rows) == 0 {
		return ""
	}

	headers := []string{"ID", "NAME", "FAMILY", "SEVERITY", "LABEL"}
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row.cells() {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var builder strings.Builder

	builder.WriteString(t.styles.TableHeader.Render(formatCells(headers, widths)))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	family := rows[0].Family
	for _, row := range rows {
		if row.Family != family {
			builder.WriteString(t.formatSeparator(widths, lightSeparator))
			builder.WriteString("\n")
			family = row.Family
		}
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	return builder.String()
}

func (r RuleRow) cells() []string {
	severity := string(r.Severity)
	if !r.Enabled {
		severity += " (off)"
	}
	return []string{r.ID, r.Name, r.Family, severity, r.Label}
}

// formatCells left-aligns each cell in its column using display width,
// so CJK labels line up.
func formatCells(cells []string, widths []int) string {
	var builder strings.Builder
	builder.WriteString(" ")
	for i, cell := range cells {
		builder.WriteString(cell)
		if i == len(cells)-1 {
			break
		}
		builder.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+tablePadding))
	}
	return builder.String()
}

// formatSeparator formats a separator line no wider than the terminal.
func (t *TableFormatter) formatSeparator(widths []int, char string) string {
	total := 1 + tablePadding*(len(widths)-1)
	for _, w := range widths {
		total += w
	}
	total = min(total, t.termWidth)
	return t.styles.TableSeparator.Render(strings.Repeat(char, total))
}

// formatRow formats a single table row with severity-based styling.
func (t *TableFormatter) formatRow(row RuleRow, widths []int) string {
	content := formatCells(row.cells(), widths)
	if !row.Enabled {
		return t.styles.Dim.Render(content)
	}
	return t.getRowStyle(row.Severity).Render(content)
}

// getRowStyle returns the appropriate style for a severity level.
func (t *TableFormatter) getRowStyle(severity config.Severity) lipgloss.Style {
	switch severity {
	case config.SeverityError:
		return t.styles.TableErrorRow
	case config.SeverityWarning:
		return t.styles.TableWarnRow
	case config.SeverityInfo:
		return t.styles.TableInfoRow
	default:
		return lipgloss.NewStyle()
	}
}
