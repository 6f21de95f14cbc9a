package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/mdstyle/internal/ui/pretty"
	"github.com/yaklabco/mdstyle/pkg/analysis"
	"github.com/yaklabco/mdstyle/pkg/runner"
)

// TextReporter writes violations grouped by file.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int
	for _, file := range result.Files {
		if err := ctx.Err(); err != nil {
			return total, fmt.Errorf("report cancelled: %w", err)
		}
		total += r.writeFile(file)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

func (r *TextReporter) writeFile(file runner.FileOutcome) int {
	path := analysis.RelativePath(file.Path, r.opts.WorkingDir)

	if file.Error != nil {
		fmt.Fprint(r.bw, r.styles.FormatFileError(path, file.Error))
		return 0
	}
	if file.Result == nil || file.Result.FileResult == nil {
		return 0
	}
	if !file.Result.HasIssues() && !file.Result.HasRuleErrors() {
		return 0
	}

	violations := sortedViolations(file.Result.Violations)

	fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(violations)))

	for _, v := range violations {
		var source string
		if r.opts.ShowContext && file.Result.Document != nil {
			source = file.Result.Document.Line(v.Line)
		}
		fmt.Fprint(r.bw, r.styles.FormatViolation(v, path, r.opts.RuleFormat, source))
	}

	for _, ruleID := range file.Result.FailedRules() {
		fmt.Fprint(r.bw, r.styles.FormatRuleError(ruleID, file.Result.RuleErrors[ruleID]))
	}

	fmt.Fprintln(r.bw)

	return len(violations)
}
