package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// TrailingWhitespaceRule checks for trailing whitespace at the end of lines.
type TrailingWhitespaceRule struct {
	lint.BaseRule
}

// NewTrailingWhitespaceRule creates a new trailing whitespace rule.
func NewTrailingWhitespaceRule() *TrailingWhitespaceRule {
	return &TrailingWhitespaceRule{
		BaseRule: lint.NewBaseRule(
			"MD009",
			"no-trailing-spaces",
			"Trailing spaces",
			[]string{"whitespace"},
			nil,
		),
	}
}

// Evaluate flags every line ending in a whitespace character, including
// lines made only of whitespace. Empty lines are not flagged.
func (r *TrailingWhitespaceRule) Evaluate(doc *mdast.Document, _ lint.Options) []int {
	var lines lint.LineSet

	for idx, line := range doc.Lines {
		last, size := utf8.DecodeLastRuneInString(line)
		if size > 0 && unicode.IsSpace(last) {
			lines.Add(idx + 1)
		}
	}

	return lines.Lines()
}

// HardTabsRule checks for hard tab characters.
type HardTabsRule struct {
	lint.BaseRule
}

// NewHardTabsRule creates a new hard tabs rule.
func NewHardTabsRule() *HardTabsRule {
	return &HardTabsRule{
		BaseRule: lint.NewBaseRule(
			"MD010",
			"no-hard-tabs",
			"Hard tabs",
			[]string{"whitespace", "hard_tab"},
			nil,
		),
	}
}

// Evaluate flags every line containing a tab anywhere.
func (r *HardTabsRule) Evaluate(doc *mdast.Document, _ lint.Options) []int {
	var lines lint.LineSet

	for idx, line := range doc.Lines {
		if strings.ContainsRune(line, '\t') {
			lines.Add(idx + 1)
		}
	}

	return lines.Lines()
}

// MultipleBlankLinesRule checks for consecutive blank lines.
type MultipleBlankLinesRule struct {
	lint.BaseRule
}

// NewMultipleBlankLinesRule creates a new multiple blank lines rule.
func NewMultipleBlankLinesRule() *MultipleBlankLinesRule {
	return &MultipleBlankLinesRule{
		BaseRule: lint.NewBaseRule(
			"MD012",
			"no-multiple-blanks",
			"Multiple consecutive blank lines",
			[]string{"whitespace", "blank_lines"},
			nil,
		),
	}
}

// Evaluate flags each blank line that follows another blank line, except
// inside code blocks where blank runs are content.
func (r *MultipleBlankLinesRule) Evaluate(doc *mdast.Document, _ lint.Options) []int {
	excluded := codeLineIndices(doc)

	var lines lint.LineSet
	prevBlank := false

	for idx, line := range doc.Lines {
		blank := mdast.IsBlank(line)
		if blank && prevBlank {
			if _, skip := excluded[idx]; !skip {
				lines.Add(idx + 1)
			}
		}
		prevBlank = blank
	}

	return lines.Lines()
}

// codeLineIndices returns the 0-based line indices covered by fenced and
// indented code blocks.
func codeLineIndices(doc *mdast.Document) map[int]struct{} {
	excluded := make(map[int]struct{})
	for _, tok := range doc.Filter(mdast.TokFence, mdast.TokCodeBlock) {
		for idx := tok.Map.Start; idx < tok.Map.End; idx++ {
			excluded[idx] = struct{}{}
		}
	}
	return excluded
}
