package rules

import (
	"regexp"

	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// Heading styles.
const (
	styleConsistent = "consistent"
	styleATX        = "atx"
	styleATXClosed  = "atx_closed"
	styleSetext     = "setext"
)

// closedATX matches the trailing hashes of a closed ATX heading.
var closedATX = regexp.MustCompile(`#\s*$`)

// HeadingIncrementRule checks that heading levels increment by one.
type HeadingIncrementRule struct {
	lint.BaseRule
}

// NewHeadingIncrementRule creates a new heading increment rule.
func NewHeadingIncrementRule() *HeadingIncrementRule {
	return &HeadingIncrementRule{
		BaseRule: lint.NewBaseRule(
			"MD001",
			"heading-increment",
			"Heading levels should only increment by one level at a time",
			[]string{"headings"},
			nil,
		),
	}
}

// Evaluate flags headings that skip a level relative to the previous heading.
// The first heading can be any level and decreases are always allowed.
func (r *HeadingIncrementRule) Evaluate(doc *mdast.Document, _ lint.Options) []int {
	var lines lint.LineSet
	prevLevel := 0

	for _, heading := range doc.Filter(mdast.TokHeadingOpen) {
		if prevLevel > 0 && heading.HeadingLevel > prevLevel+1 {
			lines.Add(heading.LineNumber())
		}
		prevLevel = heading.HeadingLevel
	}

	return lines.Lines()
}

// FirstHeadingH1Rule checks that the first heading is a top-level heading.
type FirstHeadingH1Rule struct {
	lint.BaseRule
}

// NewFirstHeadingH1Rule creates a new first heading rule.
func NewFirstHeadingH1Rule() *FirstHeadingH1Rule {
	return &FirstHeadingH1Rule{
		BaseRule: lint.NewBaseRule(
			"MD002",
			"first-heading-h1",
			"First heading should be a top-level heading",
			[]string{"headings"},
			nil,
		),
	}
}

// Evaluate inspects only the first heading.
func (r *FirstHeadingH1Rule) Evaluate(doc *mdast.Document, _ lint.Options) []int {
	for _, tok := range doc.Tokens {
		if tok.Type != mdast.TokHeadingOpen {
			continue
		}
		if tok.HeadingLevel != 1 {
			return []int{tok.LineNumber()}
		}
		return nil
	}
	return nil
}

// HeadingStyleRule checks that headings use a consistent style.
type HeadingStyleRule struct {
	lint.BaseRule
}

// NewHeadingStyleRule creates a new heading style rule.
func NewHeadingStyleRule() *HeadingStyleRule {
	return &HeadingStyleRule{
		BaseRule: lint.NewBaseRule(
			"MD003",
			"heading-style",
			"Heading style should be consistent",
			[]string{"headings"},
			lint.Schema{
				{
					Name:        "style",
					Kind:        lint.OptionString,
					Default:     styleConsistent,
					Allowed:     []string{styleConsistent, styleATX, styleATXClosed, styleSetext},
					Description: "Required heading style, or consistent to follow the first heading",
				},
			},
		),
	}
}

// Evaluate flags headings whose style differs from the configured or
// first-seen style.
func (r *HeadingStyleRule) Evaluate(doc *mdast.Document, opts lint.Options) []int {
	headings := doc.Filter(mdast.TokHeadingOpen)
	if len(headings) == 0 {
		return nil
	}

	style := opts.String("style", styleConsistent)
	if style == styleConsistent {
		style = headingStyle(doc, headings[0])
	}

	var lines lint.LineSet
	for _, heading := range headings {
		if headingStyle(doc, heading) != style {
			lines.Add(heading.LineNumber())
		}
	}

	return lines.Lines()
}

// headingStyle classifies a heading by its source shape.
// Single-line headings are ATX (closed when they end in '#'); anything
// spanning more lines is setext.
func headingStyle(doc *mdast.Document, heading mdast.Token) string {
	if heading.LineCount() != 1 {
		return styleSetext
	}
	if closedATX.MatchString(doc.SourceLine(heading)) {
		return styleATXClosed
	}
	return styleATX
}
