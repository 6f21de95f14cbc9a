package rules

import (
	"regexp"

	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// reversedLink matches "(text)[text]", a transposed "[text](url)".
var reversedLink = regexp.MustCompile(`\([^)]+\)\[[^\]]+\]`)

// ReversedLinkRule checks for reversed link syntax.
type ReversedLinkRule struct {
	lint.BaseRule
}

// NewReversedLinkRule creates a new reversed link rule.
func NewReversedLinkRule() *ReversedLinkRule {
	return &ReversedLinkRule{
		BaseRule: lint.NewBaseRule(
			"MD011",
			"no-reversed-links",
			"Reversed link syntax",
			[]string{"links"},
			nil,
		),
	}
}

// Evaluate flags the line of every inline run with a text child that looks
// like a reversed link.
func (r *ReversedLinkRule) Evaluate(doc *mdast.Document, _ lint.Options) []int {
	var lines lint.LineSet

	for _, inline := range doc.Filter(mdast.TokInline) {
		for _, child := range inline.Children {
			if child.Type == mdast.TokText && reversedLink.MatchString(child.Content) {
				lines.Add(inline.LineNumber())
				break
			}
		}
	}

	return lines.Lines()
}
