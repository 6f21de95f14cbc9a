package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdstyle/pkg/mdast"
)

func TestTrailingWhitespaceRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  []string
		want []int
	}{
		{"trailing spaces", []string{"text   ", "text"}, []int{1}},
		{"clean", []string{"text", "more"}, nil},
		{"whitespace only", []string{"a", "   ", "b"}, []int{2}},
		{"empty line", []string{"a", "", "b"}, nil},
		{"trailing tab", []string{"a\t"}, []int{1}},
		{"unicode space", []string{"a "}, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := mdast.NewDocument("", lines(tt.src...), nil)
			assert.Equal(t, tt.want, evaluate(NewTrailingWhitespaceRule(), doc, nil))
		})
	}
}

func TestHardTabsRule(t *testing.T) {
	t.Parallel()

	doc := mdast.NewDocument("", lines("\tindented", "no tabs", "mid\ttab", "  spaces"), nil)
	assert.Equal(t, []int{1, 3}, evaluate(NewHardTabsRule(), doc, nil))
}

func TestMultipleBlankLinesRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"single blanks", "a\n\nb\n\nc", nil},
		{"two blanks", "a\n\n\nb", []int{3}},
		{"three blanks", "a\n\n\n\nb", []int{3, 4}},
		{"four blanks", "a\n\n\n\n\nb", []int{3, 4, 5}},
		{"whitespace-only lines are blank", "a\n  \n\t\nb", []int{3}},
		{"leading blanks", "\n\na", []int{2}},
		{"inside fence", "```\na\n\n\n\nb\n```", nil},
		{"inside indented code", "text\n\n    a\n\n\n    b\n", nil},
		{"after fence", "```\ncode\n```\n\n\ntext", []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, evaluateMarkdown(t, NewMultipleBlankLinesRule(), tt.input, nil))
		})
	}
}

func TestMultipleBlankLinesRule_Built(t *testing.T) {
	t.Parallel()

	// A fence nested in a list still excludes its lines.
	b := mdast.NewBuilder()
	b.Open(mdast.TokBulletListOpen, mdast.SpanOf(0, 6))
	b.Open(mdast.TokListItemOpen, mdast.SpanOf(0, 6))
	b.Leaf(mdast.TokFence, mdast.SpanOf(0, 5), "a\n\n\n")
	doc := mdast.NewDocument("", lines("- ```", "  a", "", "", "  ```", "", ""), b.Tokens())

	assert.Equal(t, []int{7}, evaluate(NewMultipleBlankLinesRule(), doc, nil))
}
