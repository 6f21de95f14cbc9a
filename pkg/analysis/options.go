// Package analysis aggregates run results into per-file and per-rule views.
package analysis

import "github.com/yaklabco/mdstyle/pkg/config"

// SortField selects the ordering of ByFile and ByRule.
type SortField string

const (
	// SortByCount orders by issue count, highest first unless SortDesc is false.
	SortByCount SortField = "count"
	// SortByAlpha orders by path or rule ID.
	SortByAlpha SortField = "alpha"
	// SortBySeverity orders errors first, then warnings, then total count.
	SortBySeverity SortField = "severity"
)

// IsValid reports whether s is a known sort field.
func (s SortField) IsValid() bool {
	switch s {
	case SortByCount, SortByAlpha, SortBySeverity:
		return true
	default:
		return false
	}
}

// Options configures Analyze.
type Options struct {
	// IncludeEntries fills Report.Entries.
	IncludeEntries bool

	// SortBy orders ByFile and ByRule.
	SortBy SortField

	// SortDesc reverses SortByCount so the largest groups come first.
	SortDesc bool

	// RuleFormat controls rule labels in entries and rule groups.
	RuleFormat config.RuleFormat

	// WorkingDir makes paths relative when set.
	WorkingDir string
}

// DefaultOptions returns the options used by the summary report.
func DefaultOptions() Options {
	return Options{
		IncludeEntries: true,
		SortBy:         SortByCount,
		SortDesc:       true,
		RuleFormat:     config.RuleFormatName,
	}
}
