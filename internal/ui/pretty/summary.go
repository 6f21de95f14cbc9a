package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/runner"
)

// FormatSummaryOneLine renders run statistics as a single line, for example
// "3 issues (1 error, 2 warnings) in 2 files, 5 files checked (4.1 kB)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	checked := s.Dim.Render(fmt.Sprintf("%s checked (%s)",
		english.Plural(stats.FilesProcessed, "file", "files"),
		humanize.Bytes(uint64(max(stats.BytesRead, 0))),
	))

	var parts []string

	if stats.ViolationsTotal == 0 {
		parts = append(parts, s.Success.Render("No issues found"))
	} else {
		var bySeverity []string
		for _, sev := range []struct {
			severity         config.Severity
			singular, plural string
		}{
			{config.SeverityError, "error", "errors"},
			{config.SeverityWarning, "warning", "warnings"},
			{config.SeverityInfo, "info", "info"},
		} {
			if n := stats.ViolationsBySeverity[sev.severity]; n > 0 {
				label := english.Plural(n, sev.singular, sev.plural)
				bySeverity = append(bySeverity, s.severityStyle(sev.severity).Render(label))
			}
		}

		issues := english.Plural(stats.ViolationsTotal, "issue", "issues")
		if len(bySeverity) > 0 {
			issues += " (" + strings.Join(bySeverity, ", ") + ")"
		}
		parts = append(parts, issues+" in "+english.Plural(stats.FilesWithIssues, "file", "files"))
	}

	parts = append(parts, checked)

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(english.Plural(stats.FilesErrored, "file", "files")+" failed"))
	}
	if stats.RuleErrors > 0 {
		parts = append(parts, s.Failure.Render(english.Plural(stats.RuleErrors, "rule failure", "rule failures")))
	}

	return strings.Join(parts, ", ") + "\n"
}

func (s *Styles) severityStyle(sev config.Severity) lipgloss.Style {
	switch sev {
	case config.SeverityError:
		return s.Error
	case config.SeverityInfo:
		return s.Info
	default:
		return s.Warning
	}
}
