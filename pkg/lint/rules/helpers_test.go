package rules

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/mdast"
	"github.com/yaklabco/mdstyle/pkg/parser/goldmark"
)

// lines joins source lines into document content.
func lines(src ...string) []byte {
	return []byte(strings.Join(src, "\n"))
}

// evaluate runs rule over doc with raw options resolved against its schema.
func evaluate(rule lint.Rule, doc *mdast.Document, raw map[string]any) []int {
	return rule.Evaluate(doc, rule.Schema().Resolve(raw))
}

// evaluateMarkdown parses input with goldmark and runs rule over it.
func evaluateMarkdown(t *testing.T, rule lint.Rule, input string, raw map[string]any) []int {
	t.Helper()

	doc, err := goldmark.New(goldmark.FlavorCommonMark).Parse(context.Background(), "test.md", []byte(input))
	require.NoError(t, err)
	return evaluate(rule, doc, raw)
}
