// Package reporter renders run results as text, JSON or a summary table.
package reporter

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/runner"
)

// Reporter formats and writes run results.
type Reporter interface {
	// Report writes result and returns the number of violations reported.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New returns the Reporter for opts.Format.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	if opts.Format == "" {
		opts.Format = FormatText
	}

	switch opts.Format {
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatSummary:
		return NewSummaryReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}
}

// sortedViolations returns a copy of violations ordered by line, then rule.
func sortedViolations(violations []lint.Violation) []lint.Violation {
	out := slices.Clone(violations)
	slices.SortStableFunc(out, func(a, b lint.Violation) int {
		return cmp.Or(cmp.Compare(a.Line, b.Line), cmp.Compare(a.RuleID, b.RuleID))
	})
	return out
}
