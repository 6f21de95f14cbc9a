package rules

import (
	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// BlanksAroundFencesRule checks that fenced code blocks have blank lines around them.
type BlanksAroundFencesRule struct {
	lint.BaseRule
}

// NewBlanksAroundFencesRule creates a new blanks around fences rule.
func NewBlanksAroundFencesRule() *BlanksAroundFencesRule {
	return &BlanksAroundFencesRule{
		BaseRule: lint.NewBaseRule(
			"MD031",
			"blanks-around-fences",
			"Fenced code blocks should be surrounded by blank lines",
			[]string{"code", "blank_lines"},
			nil,
		),
	}
}

// Evaluate scans raw lines for fence markers, not fence tokens.
// An opening fence needs a blank line before it and a closing fence
// needs one after it. Document edges count as blank.
func (r *BlanksAroundFencesRule) Evaluate(doc *mdast.Document, _ lint.Options) []int {
	padded := lint.PadAndTrim(doc.Lines)

	var lines lint.LineSet
	inCode := false

	// padded[n] is 1-based line n.
	for lineNum := 1; lineNum < len(padded)-1; lineNum++ {
		if !lint.IsFenceMarker(padded[lineNum]) {
			continue
		}
		inCode = !inCode
		if (inCode && padded[lineNum-1] != "") || (!inCode && padded[lineNum+1] != "") {
			lines.Add(lineNum)
		}
	}

	return lines.Lines()
}
