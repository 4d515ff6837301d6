// Package reporter renders lint results as JSON or styled text.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/gozhlint/pkg/runner"
)

// Reporter formats and writes lint results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of issues reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

var (
	_ Reporter = (*JSONReporter)(nil)
	_ Reporter = (*TextReporter)(nil)
)

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	defaults := DefaultOptions()
	if opts.Writer == nil {
		opts.Writer = defaults.Writer
	}
	if opts.Locale == "" {
		opts.Locale = defaults.Locale
	}

	format := opts.Format
	if format == "" {
		format = FormatJSON
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// documents returns the outcomes that produced a lint result, in path order.
func documents(result *runner.Result) []runner.FileOutcome {
	if result == nil {
		return nil
	}
	docs := make([]runner.FileOutcome, 0, len(result.Files))
	for _, file := range result.Files {
		if file.Error == nil && file.Result != nil {
			docs = append(docs, file)
		}
	}
	return docs
}

func displayPath(file runner.FileOutcome) string {
	if file.DisplayPath != "" {
		return file.DisplayPath
	}
	return file.Path
}
