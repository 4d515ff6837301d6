package reporter

import (
	"bufio"
	"context"
	"fmt"
	"sort"

	"github.com/yaklabco/gozhlint/internal/ui/pretty"
	"github.com/yaklabco/gozhlint/pkg/lint"
	"github.com/yaklabco/gozhlint/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int

	for _, file := range result.Files {
		path := displayPath(file)

		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Result == nil || !file.Result.HasIssues() {
			continue
		}

		issues := positionOrder(file.Result.Report.Issues())

		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(issues)))

		for i := range issues {
			issue := issues[i]
			issue.FilePath = path

			var sourceLine string
			if r.opts.ShowContext && file.Result.Document != nil {
				sourceLine = file.Result.Document.LineContent(issue.Line)
			}

			fmt.Fprint(r.bw, r.styles.FormatIssueWithFormat(&issue, r.opts.ShowContext, sourceLine, r.opts.RuleFormat))
			total++
		}

		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		if total == 0 && result.Stats.FilesErrored == 0 {
			fmt.Fprintln(r.bw, r.styles.Message.Render(lint.NoIssuesMessage(r.opts.Locale)))
		}
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

// positionOrder sorts issues by line, then column, then rule ID.
// The report itself is grouped by label; text output reads top to bottom.
func positionOrder(issues []lint.Issue) []lint.Issue {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i], issues[j]
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.RuleID < b.RuleID
	})
	return issues
}
