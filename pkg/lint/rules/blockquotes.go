package rules

import (
	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// NoBlanksBlockquoteRule checks for blank lines splitting a blockquote.
type NoBlanksBlockquoteRule struct {
	lint.BaseRule
}

// NewNoBlanksBlockquoteRule creates a new blank line in blockquote rule.
func NewNoBlanksBlockquoteRule() *NoBlanksBlockquoteRule {
	return &NoBlanksBlockquoteRule{
		BaseRule: lint.NewBaseRule(
			"MD028",
			"no-blanks-blockquote",
			"Blank line inside blockquote",
			[]string{"blockquote", "whitespace"},
			nil,
		),
	}
}

// Evaluate flags the line before a blockquote that reopens immediately
// after another one closes.
func (r *NoBlanksBlockquoteRule) Evaluate(doc *mdast.Document, _ lint.Options) []int {
	var lines lint.LineSet

	for idx := 1; idx < len(doc.Tokens); idx++ {
		if doc.Tokens[idx].Type == mdast.TokBlockquoteOpen &&
			doc.Tokens[idx-1].Type == mdast.TokBlockquoteClose {
			lines.Add(doc.Tokens[idx].LineNumber() - 1)
		}
	}

	return lines.Lines()
}
