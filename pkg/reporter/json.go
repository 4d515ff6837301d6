package reporter

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gozhlint/pkg/lint"
	"github.com/yaklabco/gozhlint/pkg/runner"
)

// jsonIndent is the per-level indentation of JSON output.
const jsonIndent = "    "

// JSONReporter writes the nested issue report.
//
// A run over one document prints that document's report. A run over several
// documents prints an object keyed by path holding the reports of the
// documents that have issues. In both cases a run without issues prints the
// locale's "no issues" message instead.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	docs := documents(result)

	var (
		payload any
		total   int
	)

	if len(docs) == 1 {
		report := docs[0].Result.Report
		total = report.Len()
		payload = report
	} else {
		var files fileReports
		for _, doc := range docs {
			if !doc.Result.HasIssues() {
				continue
			}
			files = append(files, fileReport{path: displayPath(doc), report: doc.Result.Report})
			total += doc.Result.IssueCount()
		}
		payload = files
	}

	if total == 0 {
		if _, err := fmt.Fprintln(r.bw, lint.NoIssuesMessage(r.opts.Locale)); err != nil {
			return 0, fmt.Errorf("write message: %w", err)
		}
		return 0, nil
	}

	encoder := json.NewEncoder(r.bw)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", jsonIndent)
	if err := encoder.Encode(payload); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return total, nil
}

type fileReport struct {
	path   string
	report *lint.Report
}

// fileReports encodes as a JSON object keyed by path, in slice order.
type fileReports []fileReport

// MarshalJSON implements json.Marshaler.
func (f fileReports) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	for i, file := range f {
		if i > 0 {
			buf.WriteByte(',')
		}

		if err := lint.WriteJSONString(&buf, file.path); err != nil {
			return nil, fmt.Errorf("encode path %q: %w", file.path, err)
		}
		buf.WriteByte(':')

		report, err := file.report.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("encode report for %s: %w", file.path, err)
		}
		buf.Write(report)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
