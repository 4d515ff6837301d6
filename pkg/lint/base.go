package lint

import "github.com/yaklabco/gozhlint/pkg/config"

// BaseRule provides the metadata half of the Rule interface.
// Embed this in rule implementations and provide Scan.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseRule struct {
	id     string                   // Unique identifier (e.g., "ZH001")
	name   string                   // Stable kebab-case name
	desc   string                   // Detailed description
	family Family                   // Report family
	labels map[config.Locale]string // Bucket label per locale
	tags   []string                 // Categorization tags
}

// NewBaseRule creates a BaseRule with the given properties.
// labels must contain at least the English label.
func NewBaseRule(
	id, name, desc string,
	family Family,
	labels map[config.Locale]string,
	tags []string,
) BaseRule {
	return BaseRule{
		id:     id,
		name:   name,
		desc:   desc,
		family: family,
		labels: labels,
		tags:   tags,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the stable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// Family returns the report family of the rule.
func (r *BaseRule) Family() Family {
	return r.family
}

// Label returns the bucket label for locale, falling back to English.
func (r *BaseRule) Label(locale config.Locale) string {
	if label, ok := r.labels[locale]; ok {
		return label
	}
	return r.labels[config.LocaleEnglish]
}

// Labels returns a copy of every localized label of the rule.
func (r *BaseRule) Labels() map[config.Locale]string {
	out := make(map[config.Locale]string, len(r.labels))
	for locale, label := range r.labels {
		out[locale] = label
	}
	return out
}

// DefaultEnabled returns whether the rule is enabled by default.
// Override this method to change the default.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}

// DefaultSeverity returns the default severity for this rule.
// Override this method to change the default.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return config.SeverityWarning
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}
