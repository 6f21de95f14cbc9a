package analysis

import (
	"cmp"
	"path/filepath"
	"slices"

	"github.com/samber/lo"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/runner"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

const (
	severityError = string(config.SeverityError)
	severityInfo  = string(config.SeverityInfo)
)

// RelativePath returns absPath relative to workDir, or absPath unchanged
// when workDir is empty or the paths are unrelated.
func RelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	rel, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return rel
}

// Analyze computes every view of result in a single pass.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{Version: ReportVersion}
	if result == nil {
		return report
	}

	fileMap := make(map[string]*FileAnalysis)
	ruleMap := make(map[string]*RuleAnalysis)

	for _, file := range result.Files {
		report.Totals.Files++

		if file.Error != nil {
			report.Totals.FilesErrored++
			continue
		}
		if file.Result == nil || file.Result.FileResult == nil {
			continue
		}

		report.Totals.RuleErrors += len(file.Result.RuleErrors)

		violations := file.Result.Violations
		if len(violations) == 0 {
			continue
		}
		report.Totals.FilesWithIssues++

		path := RelativePath(file.Path, opts.WorkingDir)
		fa := &FileAnalysis{Path: path}
		fileMap[path] = fa

		for _, v := range violations {
			severity := string(v.Severity)
			label := config.FormatRuleID(opts.RuleFormat, v.RuleID, v.RuleName)

			report.Totals.add(severity)
			fa.add(severity)
			fa.Rules = append(fa.Rules, v.RuleID)

			ra, ok := ruleMap[v.RuleID]
			if !ok {
				ra = &RuleAnalysis{RuleID: v.RuleID, Rule: label}
				ruleMap[v.RuleID] = ra
			}
			ra.add(severity)
			ra.Files = append(ra.Files, path)

			if opts.IncludeEntries {
				report.Entries = append(report.Entries, Entry{
					Path:     path,
					Rule:     label,
					RuleID:   v.RuleID,
					Severity: severity,
					Message:  v.Description,
					Line:     v.Line,
				})
			}
		}
	}

	report.ByFile = make([]FileAnalysis, 0, len(fileMap))
	for _, fa := range fileMap {
		fa.Rules = sortedUnique(fa.Rules)
		report.ByFile = append(report.ByFile, *fa)
	}

	report.ByRule = make([]RuleAnalysis, 0, len(ruleMap))
	for _, ra := range ruleMap {
		ra.Files = sortedUnique(ra.Files)
		report.ByRule = append(report.ByRule, *ra)
	}

	sortGroups(report.ByFile, opts, func(fa FileAnalysis) (string, int, int, int) {
		return fa.Path, fa.Issues, fa.Errors, fa.Warnings
	})
	sortGroups(report.ByRule, opts, func(ra RuleAnalysis) (string, int, int, int) {
		return ra.RuleID, ra.Issues, ra.Errors, ra.Warnings
	})

	return report
}

func sortedUnique(values []string) []string {
	out := lo.Uniq(values)
	slices.Sort(out)
	return out
}

// sortGroups orders groups by opts.SortBy. Ties fall back to the key so
// output does not depend on map iteration order.
func sortGroups[T any](groups []T, opts Options, fields func(T) (key string, issues, errs, warnings int)) {
	slices.SortFunc(groups, func(left, right T) int {
		lKey, lIssues, lErrs, lWarn := fields(left)
		rKey, rIssues, rErrs, rWarn := fields(right)

		var result int
		switch opts.SortBy {
		case SortByAlpha:
		case SortBySeverity:
			result = cmp.Or(
				cmp.Compare(rErrs, lErrs),
				cmp.Compare(rWarn, lWarn),
				cmp.Compare(rIssues, lIssues),
			)
		default:
			result = cmp.Compare(lIssues, rIssues)
			if opts.SortDesc {
				result = -result
			}
		}

		return cmp.Or(result, cmp.Compare(lKey, rKey))
	})
}
