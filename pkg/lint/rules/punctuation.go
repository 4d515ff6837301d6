package rules

import (
	"regexp"
	"unicode/utf8"

	"github.com/yaklabco/gozhlint/pkg/config"
	"github.com/yaklabco/gozhlint/pkg/lint"
)

// PunctuationSpaceRule flags whitespace placed before a full-width
// punctuation mark. The reported text is the matched span with surrounding
// whitespace trimmed, so it is usually just the punctuation mark.
type PunctuationSpaceRule struct {
	lint.BaseRule
	pattern *regexp.Regexp
}

// NewPunctuationSpaceRule creates a new full-width punctuation spacing rule.
func NewPunctuationSpaceRule() *PunctuationSpaceRule {
	return &PunctuationSpaceRule{
		BaseRule: lint.NewBaseRule(
			"ZH101",
			"fullwidth-punctuation-space",
			"Full-width punctuation should not be preceded by whitespace",
			lint.FamilyPunctuation,
			map[config.Locale]string{
				config.LocaleEnglish: "no space allowed adjacent to full-width punctuation",
				config.LocaleChinese: "全角标点与其他字符之间不应有空格",
			},
			[]string{"punctuation", "whitespace"},
		),
		// Greedy whitespace gives back a trailing U+3000 when it is the only
		// punctuation candidate.
		pattern: regexp.MustCompile(`[` + classSpace + `]+[` + classFullPunc + `]`),
	}
}

// Scan returns every whitespace run that ends in full-width punctuation.
func (r *PunctuationSpaceRule) Scan(line string) []lint.Match {
	return findAll(r.pattern, line, trimSpace)
}

// ParenthesisRule flags a full-width closing parenthesis directly followed
// by ASCII letters or digits.
//
// The pattern also matches alphanumerics directly before a full-width
// opening parenthesis, but such matches start with an alphanumeric
// character and are dropped.
type ParenthesisRule struct {
	lint.BaseRule
	pattern *regexp.Regexp
}

// NewParenthesisRule creates a new full-width parenthesis rule.
func NewParenthesisRule() *ParenthesisRule {
	return &ParenthesisRule{
		BaseRule: lint.NewBaseRule(
			"ZH102",
			"fullwidth-parenthesis",
			"Full-width parentheses should not be glued to ASCII letters or digits",
			lint.FamilyPunctuation,
			map[config.Locale]string{
				config.LocaleEnglish: "full-width Chinese punctuation expected; check parenthesis correctness",
				config.LocaleChinese: "使用全角中文标点，检查括号是否正确",
			},
			[]string{"punctuation", "parenthesis"},
		),
		pattern: regexp.MustCompile(`[A-Za-z0-9]（|）[A-Za-z0-9]`),
	}
}

// Scan returns the parenthesis matches whose first character is not
// alphanumeric.
func (r *ParenthesisRule) Scan(line string) []lint.Match {
	all := findAll(r.pattern, line, nil)

	matches := all[:0]
	for _, m := range all {
		first, _ := utf8.DecodeRuneInString(m.Text)
		if m.Text != "" && isAlnum(first) {
			continue
		}
		matches = append(matches, m)
	}
	if len(matches) == 0 {
		return nil
	}
	return matches
}

// EnglishSentenceRule flags a run of English words that ends in a
// full-width punctuation mark other than a parenthesis.
//
// The run needs at least three word-and-separator groups and must not start
// right after a Chinese comma, full stop, or semicolon.
type EnglishSentenceRule struct {
	lint.BaseRule
	pattern *regexp.Regexp
}

// NewEnglishSentenceRule creates a new English half-width punctuation rule.
func NewEnglishSentenceRule() *EnglishSentenceRule {
	word := `[A-Za-z]+[` + classSpace + `-]+[A-Za-z` + classSpace + `-]+`
	return &EnglishSentenceRule{
		BaseRule: lint.NewBaseRule(
			"ZH103",
			"english-halfwidth-punctuation",
			"Full English sentences should end in half-width punctuation",
			lint.FamilyPunctuation,
			map[config.Locale]string{
				config.LocaleEnglish: "full sentences in English should use half-width punctuation",
				config.LocaleChinese: "英文整句应使用半角标点",
			},
			[]string{"punctuation", "english"},
		),
		pattern: regexp.MustCompile(`(?:` + word + `){3,}[` + classFullPuncNoParens + `]`),
	}
}

// isSentenceStop reports whether r is a Chinese comma, full stop, or semicolon.
func isSentenceStop(r rune) bool {
	return r == '，' || r == '。' || r == '；'
}

// Scan returns every English run ending in full-width punctuation.
func (r *EnglishSentenceRule) Scan(line string) []lint.Match {
	var matches []lint.Match
	counter := newRuneCounter(line)

	for pos := 0; pos < len(line); {
		loc := r.pattern.FindStringIndex(line[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]

		// A run may not start right after a sentence stop; retry one
		// character later.
		if prev, _ := utf8.DecodeLastRuneInString(line[:start]); start > 0 && isSentenceStop(prev) {
			_, size := utf8.DecodeRuneInString(line[start:])
			pos = start + size
			continue
		}

		matches = append(matches, lint.Match{
			Start: counter.at(start),
			End:   counter.at(end),
			Text:  line[start:end],
		})
		pos = end
	}

	return matches
}
