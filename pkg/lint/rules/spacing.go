package rules

import (
	"regexp"

	"github.com/yaklabco/gozhlint/pkg/config"
	"github.com/yaklabco/gozhlint/pkg/lint"
)

// ScriptSpacingRule flags a Chinese ideograph written directly against a
// character of another script, in either order. Each match spans the two
// adjacent characters; matches never overlap.
type ScriptSpacingRule struct {
	lint.BaseRule
	pattern *regexp.Regexp
}

// NewZhLatinSpacingRule creates the rule for Chinese next to Latin letters.
func NewZhLatinSpacingRule() *ScriptSpacingRule {
	return &ScriptSpacingRule{
		BaseRule: lint.NewBaseRule(
			"ZH001",
			"zh-latin-spacing",
			"Chinese text and Latin letters should be separated by a space",
			lint.FamilySpacing,
			map[config.Locale]string{
				config.LocaleEnglish: "spacing required between Chinese and Latin text",
				config.LocaleChinese: "中英文之间需要空格",
			},
			[]string{"spacing", "latin"},
		),
		pattern: regexp.MustCompile(`[` + classCJK + `][A-Za-z]|[A-Za-z][` + classCJK + `]`),
	}
}

// NewZhDigitSpacingRule creates the rule for Chinese next to ASCII digits.
func NewZhDigitSpacingRule() *ScriptSpacingRule {
	return &ScriptSpacingRule{
		BaseRule: lint.NewBaseRule(
			"ZH002",
			"zh-digit-spacing",
			"Chinese text and digits should be separated by a space",
			lint.FamilySpacing,
			map[config.Locale]string{
				config.LocaleEnglish: "spacing required between Chinese text and digits",
				config.LocaleChinese: "中文与数字之间需要空格",
			},
			[]string{"spacing", "digits"},
		),
		pattern: regexp.MustCompile(`[` + classCJK + `][0-9]|[0-9][` + classCJK + `]`),
	}
}

// Scan returns every ideograph/other-script pair in line.
func (r *ScriptSpacingRule) Scan(line string) []lint.Match {
	return findAll(r.pattern, line, nil)
}
