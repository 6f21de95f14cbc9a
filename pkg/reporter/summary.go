package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdstyle/internal/ui/pretty"
	"github.com/yaklabco/mdstyle/pkg/analysis"
	"github.com/yaklabco/mdstyle/pkg/runner"
)

// SummaryReporter writes per-rule and per-file totals instead of
// individual violations.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	opts := analysis.DefaultOptions()
	opts.IncludeEntries = false
	opts.RuleFormat = r.opts.RuleFormat
	opts.WorkingDir = r.opts.WorkingDir

	report := analysis.Analyze(result, opts)

	if len(report.ByRule) > 0 {
		rows := make([][]string, 0, len(report.ByRule))
		for _, ra := range report.ByRule {
			rows = append(rows, []string{
				ra.Rule,
				strconv.Itoa(ra.Issues),
				strconv.Itoa(ra.Errors),
				strconv.Itoa(ra.Warnings),
				strconv.Itoa(len(ra.Files)),
			})
		}
		fmt.Fprintln(r.bw, r.styles.FormatTable(pretty.Table{
			Headers: []string{"RULE", "ISSUES", "ERRORS", "WARNINGS", "FILES"},
			Rows:    rows,
		}))
	}

	if len(report.ByFile) > 0 {
		rows := make([][]string, 0, len(report.ByFile))
		for _, fa := range report.ByFile {
			rows = append(rows, []string{
				fa.Path,
				strconv.Itoa(fa.Issues),
				strings.Join(fa.Rules, ","),
			})
		}
		fmt.Fprintln(r.bw, r.styles.FormatTable(pretty.Table{
			Headers: []string{"FILE", "ISSUES", "RULES"},
			Rows:    rows,
		}))
	}

	if result != nil {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return report.Totals.Issues, nil
}
