package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
)

// FormatViolation renders one violation as "  path:line  severity  message  (rule)".
// When sourceLine is non-empty it is echoed below with a line-number gutter.
func (s *Styles) FormatViolation(v lint.Violation, path string, ruleFormat config.RuleFormat, sourceLine string) string {
	var builder strings.Builder

	location := s.Location.Render(fmt.Sprintf("%s:%d", path, v.Line))
	rule := s.RuleID.Render("(" + config.FormatRuleID(ruleFormat, v.RuleID, v.RuleName) + ")")

	fmt.Fprintf(&builder, "  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(v.Severity),
		s.Message.Render(v.Description),
		rule,
	)

	if sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(v.Line, sourceLine))
	}

	return builder.String()
}

// FormatSeverity returns the styled severity name.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatSourceContext renders a source line under its line number.
// Tabs are expanded so the echoed line lines up in a terminal.
func (s *Styles) FormatSourceContext(line int, source string) string {
	gutter := s.Gutter.Render(fmt.Sprintf("%6d |", line))
	return gutter + " " + s.SourceLine.Render(strings.ReplaceAll(source, "\t", "    ")) + "\n"
}

// FormatFileHeader renders a file heading with its issue count.
func (s *Styles) FormatFileHeader(path string, issues int) string {
	header := s.FilePath.Render(path)
	switch issues {
	case 0:
		return header
	case 1:
		return header + s.Dim.Render(" (1 issue)")
	default:
		return header + s.Dim.Render(fmt.Sprintf(" (%d issues)", issues))
	}
}

// FormatFileError renders a file that could not be checked.
func (s *Styles) FormatFileError(path string, err error) string {
	return fmt.Sprintf("%s: %s\n", s.FilePath.Render(path), s.Error.Render("error: "+err.Error()))
}

// FormatRuleError renders a rule that failed on a file.
func (s *Styles) FormatRuleError(ruleID string, err error) string {
	return fmt.Sprintf("  %s  %s\n", s.Failure.Render("rule "+ruleID+" failed:"), s.Dim.Render(err.Error()))
}
