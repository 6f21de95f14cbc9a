package rules

import (
	"unicode"

	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// defaultLineLength is the default maximum line length.
const defaultLineLength = 80

// MaxLineLengthRule checks that lines do not exceed a maximum length.
type MaxLineLengthRule struct {
	lint.BaseRule
}

// NewMaxLineLengthRule creates a new line length rule.
func NewMaxLineLengthRule() *MaxLineLengthRule {
	return &MaxLineLengthRule{
		BaseRule: lint.NewBaseRule(
			"MD013",
			"line-length",
			"Line length",
			[]string{"line_length"},
			lint.Schema{
				{
					Name:        "line_length",
					Kind:        lint.OptionInt,
					Default:     defaultLineLength,
					Min:         1,
					Description: "Maximum number of characters per line",
				},
			},
		),
	}
}

// Evaluate flags lines longer than the limit that still have a whitespace
// character past it. A long line with no break opportunity after the
// limit, such as a bare URL, is not flagged.
func (r *MaxLineLengthRule) Evaluate(doc *mdast.Document, opts lint.Options) []int {
	limit := opts.Int("line_length", defaultLineLength)

	var lines lint.LineSet
	for idx, line := range doc.Lines {
		if breaksAfter(line, limit) {
			lines.Add(idx + 1)
		}
	}

	return lines.Lines()
}

// breaksAfter reports whether line has a whitespace rune at a 0-based rune
// column >= limit.
func breaksAfter(line string, limit int) bool {
	col := 0
	for _, r := range line {
		if col >= limit && unicode.IsSpace(r) {
			return true
		}
		col++
	}
	return false
}
