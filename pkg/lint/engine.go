package lint

import (
	"context"
	"fmt"

	"github.com/yaklabco/gozhlint/pkg/config"
	"github.com/yaklabco/gozhlint/pkg/document"
)

// FileResult contains the results of linting a single document.
type FileResult struct {
	// Document is the linted document.
	Document *document.Document

	// Report holds every issue found, in scan order.
	Report *Report

	// LinesScanned is the number of lines the scanner ran over.
	LinesScanned int

	// LinesSkipped is the number of lines left out as code or HTML.
	LinesSkipped int
}

// HasIssues returns true if any issues were found.
func (fr *FileResult) HasIssues() bool {
	return fr.Report != nil && !fr.Report.IsEmpty()
}

// IssueCount returns the total number of issues.
func (fr *FileResult) IssueCount() int {
	if fr.Report == nil {
		return 0
	}
	return fr.Report.Len()
}

// Engine scans documents line by line and aggregates the issue report.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry

	// Regions finds non-prose lines. Consulted only when
	// Config.IgnoreCodeBlocks is set; may be nil.
	Regions RegionFinder

	// Cache memoises line scans across documents; may be nil.
	Cache LineCache
}

// NewEngine creates a new Engine over the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{
		Registry: registry,
	}
}

// LintFile builds a document from content and lints it.
func (e *Engine) LintFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	return e.LintDocument(ctx, document.New(path, content), cfg)
}

// LintDocument scans the lines of doc in order and merges each line's
// spacing and punctuation issues into one report.
//
// The only failures are context cancellation and, with IgnoreCodeBlocks, a
// failing region finder.
func (e *Engine) LintDocument(
	ctx context.Context,
	doc *document.Document,
	cfg *config.Config,
) (*FileResult, error) {
	var skip map[int]bool
	if cfg != nil && cfg.IgnoreCodeBlocks && e.Regions != nil {
		var err error
		skip, err = e.Regions.SkipLines(ctx, doc.Content)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrParseFailure, doc.Path, err)
		}
	}

	result := &FileResult{
		Document: doc,
		Report:   NewReport(),
	}

	scanner := e.scanner(doc.Path, cfg)
	for _, line := range doc.Lines {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("linting cancelled: %w", err)
		}
		if skip[line.Number] {
			result.LinesSkipped++
			continue
		}
		mergeLine(result.Report, scanner.ScanLine(line))
		result.LinesScanned++
	}

	return result, nil
}

// LintLines aggregates the issues of externally supplied lines.
func (e *Engine) LintLines(
	ctx context.Context,
	path string,
	lines []document.Line,
	cfg *config.Config,
) (*Report, error) {
	report := NewReport()
	scanner := e.scanner(path, cfg)

	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("linting cancelled: %w", err)
		}
		mergeLine(report, scanner.ScanLine(line))
	}

	return report, nil
}

func (e *Engine) scanner(path string, cfg *config.Config) *Scanner {
	locale := config.LocaleEnglish
	if cfg != nil {
		locale = cfg.Locale.OrDefault()
	}
	return NewScanner(path, ResolveRules(e.Registry, cfg), locale, e.Cache)
}

// mergeLine folds a line's families into the document report, spacing first.
func mergeLine(report *Report, issues LineIssues) {
	report.Merge(issues.Spacing)
	report.Merge(issues.Punctuation)
}
