package runner

import (
	"errors"

	"github.com/yaklabco/gozhlint/pkg/lint"
)

// FileOutcome holds the lint result or error for one file.
type FileOutcome struct {
	// Path is the absolute file path that was processed.
	Path string

	// DisplayPath is Path relative to the working directory when the file
	// lies inside it, otherwise Path.
	DisplayPath string

	// Result contains the lint result for this file.
	// Nil if the file encountered an error during processing.
	Result *lint.FileResult

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully linted.
	FilesProcessed int

	// FilesErrored is the number of files that could not be linted.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one issue.
	FilesWithIssues int

	// IssuesTotal is the total number of issues across all files.
	IssuesTotal int

	// IssuesBySeverity maps severity levels to counts.
	IssuesBySeverity map[string]int

	// LinesScanned is the number of lines scanned across all files.
	LinesScanned int

	// LinesSkipped is the number of code or HTML lines left unscanned.
	LinesSkipped int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasIssues reports whether any issues were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.IssuesTotal > 0
}

// HasErrors reports whether any file failed to be linted.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// Err joins the errors of every failed file, in path order.
func (r *Result) Err() error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, outcome := range r.Files {
		if outcome.Error != nil {
			errs = append(errs, outcome.Error)
		}
	}
	return errors.Join(errs...)
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		IssuesBySeverity: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.LinesScanned += outcome.Result.LinesScanned
	r.Stats.LinesSkipped += outcome.Result.LinesSkipped

	count := outcome.Result.IssueCount()
	r.Stats.IssuesTotal += count
	if count > 0 {
		r.Stats.FilesWithIssues++
	}

	for severity, n := range outcome.Result.Report.Counts() {
		if severity == "" {
			severity = "warning"
		}
		r.Stats.IssuesBySeverity[severity] += n
	}
}
