package rules

import (
	"github.com/yaklabco/gozhlint/pkg/config"
	"github.com/yaklabco/gozhlint/pkg/lint"
)

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	// Spacing rules
	registry.Register(NewZhLatinSpacingRule()) // ZH001
	registry.Register(NewZhDigitSpacingRule()) // ZH002

	// Punctuation rules
	registry.Register(NewPunctuationSpaceRule()) // ZH101
	registry.Register(NewParenthesisRule())      // ZH102
	registry.Register(NewEnglishSentenceRule())  // ZH103
}

// RegisterLabelAliases registers every localized label of the registered
// rules as an alias, so configuration may name a rule by its report bucket
// (e.g., "中英文之间需要空格" -> ZH001).
func RegisterLabelAliases(registry *lint.Registry) {
	for _, rule := range registry.Rules() {
		for _, locale := range []config.Locale{config.LocaleEnglish, config.LocaleChinese} {
			registry.RegisterAlias(rule.Label(locale), rule.ID())
		}
	}
}

// ruleInfos describes the registered rules for config template generation.
func ruleInfos(registry *lint.Registry) []config.RuleInfo {
	rules := registry.Rules()
	infos := make([]config.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, config.RuleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Enabled:     rule.DefaultEnabled(),
			Severity:    rule.DefaultSeverity(),
			Tags:        rule.Tags(),
		})
	}
	return infos
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
	RegisterLabelAliases(lint.DefaultRegistry)
	config.DefaultRuleInfoProvider = func() []config.RuleInfo {
		return ruleInfos(lint.DefaultRegistry)
	}
}
