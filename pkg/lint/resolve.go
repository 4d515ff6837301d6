package lint

import (
	"slices"
	"strings"

	"github.com/yaklabco/gozhlint/pkg/config"
)

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// Severity is the resolved severity for issues from this rule.
	Severity config.Severity

	// Config is the rule-specific configuration (may be nil).
	Config *config.RuleConfig
}

// ResolveRules determines which rules to run based on registry and config.
// Returns only enabled rules, sorted by ID.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule

	for _, rule := range registry.Rules() {
		rr := resolveRule(rule, cfg)
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved
}

// resolveRule resolves the configuration for a single rule.
//
// Precedence, lowest to highest: rule defaults, severity_default, the rules
// section of the config, then --enable/--disable from the command line.
func resolveRule(rule Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:     rule,
		Enabled:  rule.DefaultEnabled(),
		Severity: rule.DefaultSeverity(),
		Config:   nil,
	}

	if cfg == nil {
		return rr
	}

	if cfg.SeverityDefault != "" {
		rr.Severity = config.Severity(cfg.SeverityDefault)
	}

	if ruleCfg, ok := cfg.Rules[rule.ID()]; ok {
		rr.Config = &ruleCfg

		if ruleCfg.Enabled != nil {
			rr.Enabled = *ruleCfg.Enabled
		}
		if ruleCfg.Severity != nil {
			rr.Severity = config.Severity(*ruleCfg.Severity)
		}
	}

	if slices.Contains(cfg.EnableRules, rule.ID()) {
		rr.Enabled = true
	}
	if slices.Contains(cfg.DisableRules, rule.ID()) {
		rr.Enabled = false
	}

	return rr
}

// Fingerprint identifies a set of resolved rules.
// Two rule sets with the same fingerprint produce identical matches.
func Fingerprint(rules []ResolvedRule) string {
	ids := make([]string, 0, len(rules))
	for _, rr := range rules {
		ids = append(ids, rr.Rule.ID())
	}
	return strings.Join(ids, ",")
}
