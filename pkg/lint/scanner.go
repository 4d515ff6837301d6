package lint

import (
	"github.com/yaklabco/gozhlint/pkg/config"
	"github.com/yaklabco/gozhlint/pkg/document"
)

// LineIssues holds the two report families produced by scanning one line.
type LineIssues struct {
	// Spacing holds issues from spacing rules.
	Spacing *Report

	// Punctuation holds issues from punctuation rules.
	Punctuation *Report
}

// IsEmpty returns true if neither family has issues.
func (li LineIssues) IsEmpty() bool {
	return li.Spacing.IsEmpty() && li.Punctuation.IsEmpty()
}

// Scanner runs a fixed set of resolved rules over single lines.
//
// A Scanner is safe for concurrent use when its cache is.
type Scanner struct {
	path        string
	rules       []ResolvedRule
	locale      config.Locale
	cache       LineCache
	fingerprint string
}

// NewScanner creates a scanner for the file at path. cache may be nil.
func NewScanner(path string, rules []ResolvedRule, locale config.Locale, cache LineCache) *Scanner {
	return &Scanner{
		path:        path,
		rules:       rules,
		locale:      locale.OrDefault(),
		cache:       cache,
		fingerprint: Fingerprint(rules),
	}
}

// ScanLine runs every rule over line and buckets the matches by family.
// Rules are independent: every rule runs regardless of what others found.
func (s *Scanner) ScanLine(line document.Line) LineIssues {
	result := LineIssues{
		Spacing:     NewReport(),
		Punctuation: NewReport(),
	}

	perRule := s.matches(line.Content)
	for idx, rr := range s.rules {
		target := result.Punctuation
		if rr.Rule.Family() == FamilySpacing {
			target = result.Spacing
		}

		label := rr.Rule.Label(s.locale)
		for _, m := range perRule[idx] {
			target.Add(Issue{
				RuleID:    rr.Rule.ID(),
				RuleName:  rr.Rule.Name(),
				Label:     label,
				Severity:  rr.Severity,
				FilePath:  s.path,
				Line:      line.Number,
				Column:    m.Start + 1,
				EndColumn: m.End + 1,
				Key:       IssueKey(s.locale, line.Number, m.Start+1),
				Text:      m.Text,
			})
		}
	}

	return result
}

// matches returns the per-rule matches for content, consulting the cache.
func (s *Scanner) matches(content string) [][]Match {
	var key string
	if s.cache != nil {
		key = lineCacheKey(s.fingerprint, content)
		if cached, ok := s.cache.Get(key); ok && len(cached) == len(s.rules) {
			return cached
		}
	}

	perRule := make([][]Match, len(s.rules))
	for idx, rr := range s.rules {
		perRule[idx] = rr.Rule.Scan(content)
	}

	if s.cache != nil {
		s.cache.Set(key, perRule)
	}
	return perRule
}
