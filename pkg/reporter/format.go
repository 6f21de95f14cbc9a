package reporter

import (
	"fmt"

	"github.com/yaklabco/mdstyle/pkg/config"
)

// Format is an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatText    Format = Format(config.FormatText)
	FormatJSON    Format = Format(config.FormatJSON)
	FormatSummary Format = Format(config.FormatSummary)
)

// ParseFormat parses a format name. Empty means text.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}
	format := Format(name)
	if !format.IsValid() {
		return "", fmt.Errorf("unknown format %q; valid formats: text, json, summary", name)
	}
	return format, nil
}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return config.OutputFormat(f).IsValid()
}
