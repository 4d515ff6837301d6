package contrib

import (
	"fmt"
	"io"
	"strings"
)

// rowFormat lays out one table row; the widths are part of the output contract.
const rowFormat = "%-15s %-8s %-10s %-10s %-8s"

// Header returns the table header line.
func Header() string {
	return fmt.Sprintf(rowFormat, "GitHub ID", "Collect", "Translate", "Proofread", "Publish")
}

// Row returns the table line for one contributor.
func Row(c Contribution) string {
	return fmt.Sprintf(rowFormat,
		c.GitHubID,
		fmt.Sprint(c.Collect),
		fmt.Sprint(c.Translate),
		fmt.Sprint(c.Proofread),
		fmt.Sprint(c.Publish),
	)
}

// WriteTable writes the header, a dashed separator as wide as the header,
// and one row per contributor.
func WriteTable(w io.Writer, contributions []Contribution) error {
	header := Header()

	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", len(header)))
	b.WriteByte('\n')
	for _, c := range contributions {
		b.WriteString(Row(c))
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
