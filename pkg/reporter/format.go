package reporter

import "fmt"

// Format represents an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat parses a format string, returning an error for unknown formats.
// The empty string selects JSON.
func ParseFormat(formatStr string) (Format, error) {
	switch formatStr {
	case "json", "":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: json, text", formatStr)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatText:
		return true
	default:
		return false
	}
}
