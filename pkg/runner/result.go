package runner

import (
	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
)

// FileOutcome is the result of checking one discovered file.
type FileOutcome struct {
	// Path is the absolute file path.
	Path string

	// Result is nil when Error is set.
	Result *lint.PipelineResult

	// Error is set if the file could not be read or parsed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files that were parsed and checked.
	FilesProcessed int

	// FilesErrored is the number of files that could not be read or parsed.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one violation.
	FilesWithIssues int

	// ViolationsTotal is the number of violations across all files.
	ViolationsTotal int

	// ViolationsBySeverity counts violations per severity.
	ViolationsBySeverity map[config.Severity]int

	// RuleErrors is the number of rule failures across all files.
	RuleErrors int

	// BytesRead is the total size of processed files.
	BytesRead int64
}

// Result is the overall runner result.
type Result struct {
	// Files holds one outcome per discovered file, sorted by path.
	Files []FileOutcome

	// Stats aggregates Files.
	Stats Stats
}

// HasErrors reports whether any error-severity violation occurred.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.ViolationsBySeverity[config.SeverityError] > 0
}

// HasIssues reports whether any violation occurred.
func (r *Result) HasIssues() bool {
	return r != nil && r.Stats.ViolationsTotal > 0
}

// HasRuleErrors reports whether any rule failed on any file.
func (r *Result) HasRuleErrors() bool {
	return r != nil && r.Stats.RuleErrors > 0
}

// HasFileErrors reports whether any file could not be checked.
func (r *Result) HasFileErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// Violations returns every violation in file order.
func (r *Result) Violations() []lint.Violation {
	if r == nil {
		return nil
	}

	var out []lint.Violation
	for _, outcome := range r.Files {
		if outcome.Result != nil && outcome.Result.FileResult != nil {
			out = append(out, outcome.Result.Violations...)
		}
	}
	return out
}

func newStats() Stats {
	return Stats{
		ViolationsBySeverity: make(map[config.Severity]int),
	}
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil || outcome.Result.FileResult == nil {
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.BytesRead += outcome.Result.Size
	r.Stats.RuleErrors += len(outcome.Result.RuleErrors)

	count := outcome.Result.IssueCount()
	r.Stats.ViolationsTotal += count
	if count > 0 {
		r.Stats.FilesWithIssues++
	}

	for _, v := range outcome.Result.Violations {
		r.Stats.ViolationsBySeverity[v.Severity]++
	}
}
