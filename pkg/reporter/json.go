package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/mdstyle/pkg/analysis"
	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/runner"
)

// JSONOutput is the top-level JSON document.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult holds one file's violations.
type JSONFileResult struct {
	Path       string            `json:"path"`
	Violations []JSONViolation   `json:"violations"`
	RuleErrors map[string]string `json:"ruleErrors,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// JSONViolation is a single violation.
type JSONViolation struct {
	Line        int    `json:"line"`
	RuleID      string `json:"ruleId"`
	RuleName    string `json:"ruleName"`
	Rule        string `json:"rule"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// JSONSummary contains aggregate counts.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesErrored    int            `json:"filesErrored"`
	TotalIssues     int            `json:"totalIssues"`
	RuleErrors      int            `json:"ruleErrors"`
	BySeverity      map[string]int `json:"bySeverity"`
}

// JSONReporter writes results as a JSON document.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalIssues, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: analysis.ReportVersion,
		Files:   []JSONFileResult{},
		Summary: JSONSummary{BySeverity: map[string]int{}},
	}
	if result == nil {
		return output
	}

	for _, file := range result.Files {
		entry := JSONFileResult{
			Path:       analysis.RelativePath(file.Path, r.opts.WorkingDir),
			Violations: []JSONViolation{},
		}
		output.Summary.FilesChecked++

		switch {
		case file.Error != nil:
			entry.Error = file.Error.Error()
			output.Summary.FilesErrored++
		case file.Result != nil && file.Result.FileResult != nil:
			for _, v := range sortedViolations(file.Result.Violations) {
				entry.Violations = append(entry.Violations, JSONViolation{
					Line:        v.Line,
					RuleID:      v.RuleID,
					RuleName:    v.RuleName,
					Rule:        config.FormatRuleID(r.opts.RuleFormat, v.RuleID, v.RuleName),
					Severity:    string(v.Severity),
					Description: v.Description,
				})
				output.Summary.BySeverity[string(v.Severity)]++
			}
			for ruleID, ruleErr := range file.Result.RuleErrors {
				if entry.RuleErrors == nil {
					entry.RuleErrors = make(map[string]string)
				}
				entry.RuleErrors[ruleID] = ruleErr.Error()
			}
			output.Summary.RuleErrors += len(file.Result.RuleErrors)
		}

		output.Summary.TotalIssues += len(entry.Violations)
		if len(entry.Violations) > 0 {
			output.Summary.FilesWithIssues++
		}

		output.Files = append(output.Files, entry)
	}

	return output
}
