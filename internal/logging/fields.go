// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldRoot       = "root"

	// Configuration fields.
	FieldLocale = "locale"
	FieldFormat = "format"
	FieldJobs   = "jobs"
	FieldStrict = "strict"
	FieldSource = "source"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesWithIssues = "files_with_issues"
	FieldFilesErrored    = "files_errored"
	FieldIssuesTotal     = "issues_total"
	FieldLinesScanned    = "lines_scanned"
	FieldLinesSkipped    = "lines_skipped"
	FieldContributors    = "contributors"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldRule        = "rule"
	FieldName        = "name"
	FieldSeverity    = "severity"
	FieldDescription = "description"
)
