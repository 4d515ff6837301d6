package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gozhlint/pkg/config"
)

func TestFormatRuleID(t *testing.T) {
	tests := []struct {
		name     string
		format   config.RuleFormat
		ruleID   string
		ruleName string
		want     string
	}{
		{"name format", config.RuleFormatName, "ZH001", "zh-latin-spacing", "zh-latin-spacing"},
		{"id format", config.RuleFormatID, "ZH001", "zh-latin-spacing", "ZH001"},
		{"combined format", config.RuleFormatCombined, "ZH001", "zh-latin-spacing", "ZH001/zh-latin-spacing"},
		{"name format empty name", config.RuleFormatName, "ZH001", "", "ZH001"},
		{"default to name", config.RuleFormat(""), "ZH001", "zh-latin-spacing", "zh-latin-spacing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FormatRuleID(tt.format, tt.ruleID, tt.ruleName)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocale(t *testing.T) {
	assert.True(t, config.LocaleEnglish.IsValid())
	assert.True(t, config.LocaleChinese.IsValid())
	assert.False(t, config.Locale("fr").IsValid())
	assert.Equal(t, config.LocaleEnglish, config.Locale("").OrDefault())
	assert.Equal(t, config.LocaleChinese, config.LocaleChinese.OrDefault())
}
