package rules

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// Unordered list marker styles.
const (
	styleAsterisk = "asterisk"
	styleDash     = "dash"
	stylePlus     = "plus"
)

// listMarker matches a bullet or ordinal list marker at the start of a
// trimmed line. The following whitespace is checked separately.
var listMarker = regexp.MustCompile(`^(?:[*+\-]|\d+\.)`)

// UnorderedListStyleRule checks that bullet markers are consistent.
type UnorderedListStyleRule struct {
	lint.BaseRule
}

// NewUnorderedListStyleRule creates a new unordered list style rule.
func NewUnorderedListStyleRule() *UnorderedListStyleRule {
	return &UnorderedListStyleRule{
		BaseRule: lint.NewBaseRule(
			"MD004",
			"ul-style",
			"Unordered list style should be consistent",
			[]string{"bullet", "ul"},
			lint.Schema{
				{
					Name:        "style",
					Kind:        lint.OptionString,
					Default:     styleConsistent,
					Allowed:     []string{styleConsistent, styleAsterisk, styleDash, stylePlus},
					Description: "Required bullet marker, or consistent to follow the first item",
				},
			},
		),
	}
}

// Evaluate flags list items whose marker differs from the expected style.
// Items without a bullet marker (ordered items) are neither checked nor
// used to establish the expected style.
func (r *UnorderedListStyleRule) Evaluate(doc *mdast.Document, opts lint.Options) []int {
	style := opts.String("style", styleConsistent)

	var lines lint.LineSet
	for _, item := range doc.Filter(mdast.TokListItemOpen) {
		itemStyle := bulletStyle(doc.SourceLine(item))
		if itemStyle == "" {
			continue
		}
		if style == styleConsistent {
			style = itemStyle
			continue
		}
		if itemStyle != style {
			lines.Add(item.LineNumber())
		}
	}

	return lines.Lines()
}

// bulletStyle returns the marker style of a list item line, or "" when the
// first non-whitespace character is not a bullet.
func bulletStyle(line string) string {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	if trimmed == "" {
		return ""
	}
	switch trimmed[0] {
	case '*':
		return styleAsterisk
	case '-':
		return styleDash
	case '+':
		return stylePlus
	default:
		return ""
	}
}

// ListIndentRule checks that list items at the same level share an indent.
type ListIndentRule struct {
	lint.BaseRule
}

// NewListIndentRule creates a new list indent rule.
func NewListIndentRule() *ListIndentRule {
	return &ListIndentRule{
		BaseRule: lint.NewBaseRule(
			"MD005",
			"list-indent",
			"Inconsistent indentation for list items at the same level",
			[]string{"bullet", "ul", "indentation"},
			nil,
		),
	}
}

// Evaluate flags list items whose indentation differs from the first item
// seen at the same nesting level.
func (r *ListIndentRule) Evaluate(doc *mdast.Document, _ lint.Options) []int {
	var lines lint.LineSet
	established := make(map[int]int)

	for _, item := range doc.Filter(mdast.TokListItemOpen) {
		indent := lint.IndentOf(doc, item)
		want, ok := established[item.Level]
		if !ok {
			established[item.Level] = indent
			continue
		}
		if indent != want {
			lines.Add(item.LineNumber())
		}
	}

	return lines.Lines()
}

// ULStartLeftRule checks that top-level bullet lists start at column zero.
type ULStartLeftRule struct {
	lint.BaseRule
}

// NewULStartLeftRule creates a new top-level bullet indentation rule.
func NewULStartLeftRule() *ULStartLeftRule {
	return &ULStartLeftRule{
		BaseRule: lint.NewBaseRule(
			"MD006",
			"ul-start-left",
			"Consider starting bulleted lists at the beginning of the line",
			[]string{"bullet", "ul", "indentation"},
			nil,
		),
	}
}

// Evaluate flags outermost bullet lists that are indented.
func (r *ULStartLeftRule) Evaluate(doc *mdast.Document, _ lint.Options) []int {
	var lines lint.LineSet
	depth := 0

	for _, tok := range doc.Tokens {
		switch tok.Type {
		case mdast.TokBulletListOpen:
			depth++
			if depth == 1 && lint.IndentOf(doc, tok) != 0 {
				lines.Add(tok.LineNumber())
			}
		case mdast.TokBulletListClose:
			depth--
		}
	}

	return lines.Lines()
}

// ULIndentRule checks the indentation step of nested bullet lists.
type ULIndentRule struct {
	lint.BaseRule
}

// NewULIndentRule creates a new unordered list indentation rule.
func NewULIndentRule() *ULIndentRule {
	return &ULIndentRule{
		BaseRule: lint.NewBaseRule(
			"MD007",
			"ul-indent",
			"Unordered list indentation",
			[]string{"bullet", "ul", "indentation"},
			lint.Schema{
				{
					Name:        "indent",
					Kind:        lint.OptionInt,
					Default:     2,
					Min:         1,
					Description: "Spaces of indentation for each nested list",
				},
			},
		),
	}
}

// Evaluate flags bullet lists indented further than the previous bullet
// list by anything other than the configured step.
func (r *ULIndentRule) Evaluate(doc *mdast.Document, opts lint.Options) []int {
	step := opts.Int("indent", 2)

	var lines lint.LineSet
	prevIndent := 0

	for _, list := range doc.Filter(mdast.TokBulletListOpen) {
		indent := lint.IndentOf(doc, list)
		if indent > prevIndent && indent-prevIndent != step {
			lines.Add(list.LineNumber())
		}
		prevIndent = indent
	}

	return lines.Lines()
}

// BlanksAroundListsRule checks that lists are surrounded by blank lines.
type BlanksAroundListsRule struct {
	lint.BaseRule
}

// NewBlanksAroundListsRule creates a new blanks around lists rule.
func NewBlanksAroundListsRule() *BlanksAroundListsRule {
	return &BlanksAroundListsRule{
		BaseRule: lint.NewBaseRule(
			"MD032",
			"blanks-around-lists",
			"Lists should be surrounded by blank lines",
			[]string{"bullet", "ul", "ol", "blank_lines"},
			nil,
		),
	}
}

// Evaluate scans raw lines rather than list tokens, since parsers often
// miss list boundaries that lack surrounding blank lines.
//
// A list start must follow a blank or indented line; a non-list line
// ending a list must itself be blank or indented, otherwise the last list
// line is flagged. Fenced code toggles the scan off and ends any list.
func (r *BlanksAroundListsRule) Evaluate(doc *mdast.Document, _ lint.Options) []int {
	var lines lint.LineSet
	inList := false
	inCode := false
	prevLine := ""

	for idx, line := range doc.Lines {
		trimmed := strings.TrimSpace(line)

		if !inCode {
			marker := isListMarkerLine(trimmed)
			switch {
			case marker && !inList && !blankOrIndented(prevLine):
				lines.Add(idx + 1)
			case !marker && inList && !blankOrIndented(line):
				lines.Add(idx)
			}
			inList = marker
		}

		if lint.IsFenceMarker(trimmed) {
			inCode = !inCode
			inList = false
		}

		prevLine = line
	}

	return lines.Lines()
}

// isListMarkerLine reports whether a trimmed line starts with a list
// marker followed by whitespace.
func isListMarkerLine(trimmed string) bool {
	loc := listMarker.FindStringIndex(trimmed)
	if loc == nil {
		return false
	}
	next, _ := utf8.DecodeRuneInString(trimmed[loc[1]:])
	return next != utf8.RuneError && unicode.IsSpace(next)
}

// blankOrIndented reports whether a line is empty or starts with whitespace.
func blankOrIndented(line string) bool {
	if line == "" {
		return true
	}
	first, _ := utf8.DecodeRuneInString(line)
	return unicode.IsSpace(first)
}
