package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdstyle/pkg/mdast"
)

func TestBlanksAroundFencesRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"no blanks", "text\n```\ncode\n```\ntext", []int{2, 4}},
		{"blanks both sides", "text\n\n```\ncode\n```\n\ntext", nil},
		{"blank before only", "text\n\n```\ncode\n```\ntext", []int{5}},
		{"document edges", "```\ncode\n```", nil},
		{"tilde fence", "text\n~~~\ncode\n~~~\n", []int{2}},
		{"indented markers trimmed", "text\n  ```\n  code\n  ```\n\nmore", []int{2}},
		{"whitespace-only neighbours count as blank", "text\n   \n```\ncode\n```\n\t\nmore", nil},
		{"two blocks", "```\na\n```\n```\nb\n```\n", []int{3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := mdast.NewDocument("", []byte(tt.input), nil)
			assert.Equal(t, tt.want, evaluate(NewBlanksAroundFencesRule(), doc, nil))
		})
	}
}
