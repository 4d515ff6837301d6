// Package config defines core configuration types for gozhlint.
// These types are pure data structures with no dependency on the config loader.
package config

// Severity represents the severity level of a lint issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool   `yaml:"enabled"`
	Severity *string `yaml:"severity"`
}

// OutputFormat specifies the output format for reports.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatText OutputFormat = "text"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "zh-latin-spacing"
	RuleFormatID       RuleFormat = "id"       // "ZH001"
	RuleFormatCombined RuleFormat = "combined" // "ZH001/zh-latin-spacing"
)

// Locale selects the language of rule labels, issue keys and messages.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleChinese Locale = "zh"
)

// IsValid returns true if the locale is supported.
func (l Locale) IsValid() bool {
	switch l {
	case LocaleEnglish, LocaleChinese:
		return true
	default:
		return false
	}
}

// OrDefault returns l, or LocaleEnglish when l is empty or unknown.
func (l Locale) OrDefault() Locale {
	if l.IsValid() {
		return l
	}
	return LocaleEnglish
}

// Config is the root configuration structure for gozhlint.
type Config struct {
	// Locale selects label and message language ("en" or "zh").
	Locale Locale `yaml:"locale"`

	// SeverityDefault is the default severity for rules that don't specify one.
	SeverityDefault string `yaml:"severity_default"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore"`

	// Extensions lists the file extensions treated as Markdown.
	Extensions []string `yaml:"extensions"`

	// IgnoreCodeBlocks skips lines inside fenced, indented and HTML blocks.
	IgnoreCodeBlocks bool `yaml:"ignore_code_blocks"`

	// SkipVendored skips files in vendored directories (node_modules, vendor, ...).
	SkipVendored bool `yaml:"skip_vendored"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// RuleFormat controls how rule identifiers appear in text output.
	RuleFormat RuleFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `yaml:"-"`

	// Strict makes any reported issue a failing exit status.
	Strict bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Locale:          LocaleEnglish,
		SeverityDefault: string(SeverityWarning),
		Rules:           make(map[string]RuleConfig),
		Ignore:          nil,
		Extensions:      nil,
		Format:          FormatJSON,
		RuleFormat:      RuleFormatName,
		Jobs:            0, // 0 means use NumCPU
	}
}
