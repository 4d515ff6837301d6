// Package lint provides the rule engine, issue report, and registry for gozhlint.
package lint

import "github.com/yaklabco/gozhlint/pkg/config"

// Family groups rules into the report buckets a line scan produces.
type Family string

const (
	// FamilySpacing covers missing spaces between mixed-script runs.
	FamilySpacing Family = "spacing"

	// FamilyPunctuation covers full-width versus half-width punctuation misuse.
	FamilyPunctuation Family = "punctuation"
)

// Match is a single defect occurrence found by a rule within one line.
// Offsets count code points, not bytes.
type Match struct {
	// Start is the 0-based code-point offset of the first matched character.
	Start int

	// End is the code-point offset just past the last matched character.
	End int

	// Text is the substring reported for this match.
	Text string
}

// Rule defines the interface that all typography rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "ZH001").
	ID() string

	// Name returns the stable kebab-case name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// Family returns the report family this rule belongs to.
	Family() Family

	// Label returns the report bucket name for the given locale.
	Label(locale config.Locale) string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule.
	Tags() []string

	// Scan returns every reportable match in line, in left-to-right order.
	//
	// Scan must be pure: the same line always yields the same matches, and
	// it must be safe to call from multiple goroutines.
	Scan(line string) []Match
}
