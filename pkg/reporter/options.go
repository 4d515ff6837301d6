package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/gozhlint/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Locale selects the language of the "no issues" message.
	Locale config.Locale

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowContext includes source line context in text output.
	ShowContext bool

	// ShowSummary displays a one-line summary after text output.
	ShowSummary bool

	// RuleFormat controls how rule identifiers appear in text output.
	RuleFormat config.RuleFormat
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatJSON,
		Locale:      config.LocaleEnglish,
		Color:       "auto",
		ShowContext: true,
		ShowSummary: true,
		RuleFormat:  config.RuleFormatName,
	}
}
