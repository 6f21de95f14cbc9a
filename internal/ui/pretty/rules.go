package pretty

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"github.com/yaklabco/mdstyle/pkg/lint"
)

const (
	// DefaultWidth is used when the terminal width cannot be determined.
	DefaultWidth = 80

	ruleIndent   = 8
	minWrapWidth = 20
)

// TerminalWidth returns the column count of writer when it is a terminal,
// then $COLUMNS, then fallback.
func TerminalWidth(writer io.Writer, fallback int) int {
	if f, ok := writer.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if w, _, err := term.GetSize(fd); err == nil && w > 0 {
				return w
			}
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

// FormatRuleList renders rule records with descriptions and option docs
// wrapped to width.
func (s *Styles) FormatRuleList(infos []lint.Info, width int) string {
	wrap := max(width-ruleIndent, minWrapWidth)

	var builder strings.Builder
	for idx, info := range infos {
		if idx > 0 {
			builder.WriteString("\n")
		}

		header := s.RuleID.Render(fmt.Sprintf("%-*s", ruleIndent, info.ID)) + s.Bold.Render(info.Name)
		if len(info.Tags) > 0 {
			header += "  " + s.Dim.Render("["+strings.Join(info.Tags, ", ")+"]")
		}
		if !info.Enabled {
			header += "  " + s.Dim.Render("(disabled)")
		}
		builder.WriteString(header + "\n")

		builder.WriteString(block(info.Description, wrap))

		for _, opt := range info.Options {
			builder.WriteString(block(formatOption(opt), wrap))
		}
	}

	return builder.String()
}

func formatOption(opt lint.OptionInfo) string {
	kind := opt.Kind
	if len(opt.Allowed) > 0 {
		kind += ": " + strings.Join(opt.Allowed, "|")
	}

	text := fmt.Sprintf("%s (%s, default %v)", opt.Name, kind, opt.Default)
	if opt.Description != "" {
		text += " " + opt.Description
	}
	return text
}

func block(text string, width int) string {
	wrapped := wordwrap.String(text, width)
	return indent.String(wrapped, ruleIndent) + "\n"
}
