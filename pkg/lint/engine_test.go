package lint_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// mockParser implements lint.Parser for testing.
type mockParser struct {
	parseFunc func(ctx context.Context, path string, content []byte) (*mdast.Document, error)
}

func (p *mockParser) Parse(ctx context.Context, path string, content []byte) (*mdast.Document, error) {
	if p.parseFunc != nil {
		return p.parseFunc(ctx, path, content)
	}
	// Default: a document with lines only.
	return mdast.NewDocument(path, content, nil), nil
}

// linesRule flags a fixed set of lines.
type linesRule struct {
	lint.BaseRule
	lines []int
}

func (r *linesRule) Evaluate(_ *mdast.Document, _ lint.Options) []int {
	return r.lines
}

// panicRule fails on every evaluation.
type panicRule struct {
	lint.BaseRule
	value any
}

func (r *panicRule) Evaluate(_ *mdast.Document, _ lint.Options) []int {
	panic(r.value)
}

// optionRule flags the line given by its "line" option.
type optionRule struct {
	lint.BaseRule
}

func (r *optionRule) Evaluate(_ *mdast.Document, opts lint.Options) []int {
	return []int{opts.Int("line", 0)}
}

func newLinesRule(id, name string, lines ...int) *linesRule {
	return &linesRule{BaseRule: lint.NewBaseRule(id, name, name+" description", nil, nil), lines: lines}
}

func newPanicRule(id, name string, value any) *panicRule {
	return &panicRule{BaseRule: lint.NewBaseRule(id, name, "panics", nil, nil), value: value}
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	parser := &mockParser{}
	registry := lint.MustNewRegistry()

	engine := lint.NewEngine(parser, registry)

	assert.Same(t, parser, engine.Parser)
	assert.Same(t, registry, engine.Registry)
	assert.Equal(t, 1, engine.Jobs)
}

func TestEngine_LintFile_Basic(t *testing.T) {
	t.Parallel()

	engine := lint.NewEngine(&mockParser{}, lint.MustNewRegistry(newLinesRule("MD001", "one", 1)))

	result, err := engine.LintFile(context.Background(), "test.md", []byte("# Hello"), config.NewConfig())
	require.NoError(t, err)

	require.NotNil(t, result.Document)
	assert.Equal(t, "test.md", result.Document.Path)
	require.Len(t, result.Violations, 1)

	v := result.Violations[0]
	assert.Equal(t, "MD001", v.RuleID)
	assert.Equal(t, "one", v.RuleName)
	assert.Equal(t, "one description", v.Description)
	assert.Equal(t, config.SeverityWarning, v.Severity)
	assert.Equal(t, "test.md", v.Path)
	assert.Equal(t, 1, v.Line)
}

func TestEngine_LintFile_ParseError(t *testing.T) {
	t.Parallel()

	parseErr := errors.New("parse failed")
	parser := &mockParser{
		parseFunc: func(_ context.Context, _ string, _ []byte) (*mdast.Document, error) {
			return nil, parseErr
		},
	}
	engine := lint.NewEngine(parser, lint.MustNewRegistry())

	_, err := engine.LintFile(context.Background(), "test.md", nil, config.NewConfig())
	require.ErrorIs(t, err, parseErr)
}

func TestEngine_Check_Ordering(t *testing.T) {
	t.Parallel()

	registry := lint.MustNewRegistry(
		newLinesRule("MD009", "b", 2, 7),
		newLinesRule("MD001", "a", 3),
	)
	engine := lint.NewEngine(&mockParser{}, registry)
	doc := mdast.NewDocument("", []byte("x"), nil)

	result, err := engine.Check(context.Background(), doc, nil)
	require.NoError(t, err)

	got := make([][2]any, 0, len(result.Violations))
	for _, v := range result.Violations {
		got = append(got, [2]any{v.RuleID, v.Line})
	}
	assert.Equal(t, [][2]any{{"MD001", 3}, {"MD009", 2}, {"MD009", 7}}, got)
}

func TestEngine_Check_IsolatesPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
	}{
		{"error value", errors.New("index out of range")},
		{"string value", "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := lint.MustNewRegistry(
				newLinesRule("MD001", "before", 1),
				newPanicRule("MD002", "broken", tt.value),
				newLinesRule("MD003", "after", 4),
			)
			engine := lint.NewEngine(&mockParser{}, registry)
			doc := mdast.NewDocument("doc.md", []byte("x"), nil)

			result, err := engine.Check(context.Background(), doc, nil)
			require.NoError(t, err)

			require.Len(t, result.Violations, 2)
			assert.Equal(t, "MD001", result.Violations[0].RuleID)
			assert.Equal(t, "MD003", result.Violations[1].RuleID)

			require.True(t, result.HasRuleErrors())
			assert.Equal(t, []string{"MD002"}, result.FailedRules())

			var ruleErr *lint.RuleError
			require.ErrorAs(t, result.RuleErrors["MD002"], &ruleErr)
			assert.Equal(t, "MD002", ruleErr.RuleID)
			assert.Contains(t, ruleErr.Error(), "rule MD002")
		})
	}
}

func TestEngine_Check_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	registry := lint.MustNewRegistry(
		newLinesRule("MD001", "a", 1, 5),
		newLinesRule("MD002", "b"),
		newPanicRule("MD003", "c", "boom"),
		newLinesRule("MD004", "d", 2),
		newLinesRule("MD005", "e", 3, 4, 9),
	)
	doc := mdast.NewDocument("", []byte("x"), nil)

	sequential := lint.NewEngine(&mockParser{}, registry)
	want, err := sequential.Check(context.Background(), doc, nil)
	require.NoError(t, err)

	parallel := lint.NewEngine(&mockParser{}, registry)
	parallel.Jobs = 4
	got, err := parallel.Check(context.Background(), doc, nil)
	require.NoError(t, err)

	assert.Equal(t, want.Violations, got.Violations)
	assert.Equal(t, want.FailedRules(), got.FailedRules())
}

func TestEngine_Check_Idempotent(t *testing.T) {
	t.Parallel()

	registry := lint.MustNewRegistry(newLinesRule("MD001", "a", 1, 2))
	engine := lint.NewEngine(&mockParser{}, registry)
	doc := mdast.NewDocument("", []byte("a\nb"), nil)

	first, err := engine.Check(context.Background(), doc, nil)
	require.NoError(t, err)
	second, err := engine.Check(context.Background(), doc, nil)
	require.NoError(t, err)

	assert.Equal(t, first.Violations, second.Violations)
}

func TestEngine_Check_ResolvedConfig(t *testing.T) {
	t.Parallel()

	rule := &optionRule{BaseRule: lint.NewBaseRule("MD010", "opt", "opt", nil, lint.Schema{
		{Name: "line", Kind: lint.OptionInt, Default: 1, Min: 1},
	})}
	engine := lint.NewEngine(&mockParser{}, lint.MustNewRegistry(rule))
	doc := mdast.NewDocument("", []byte("x"), nil)

	sev := "error"
	cfg := config.NewConfig()
	cfg.Rules["MD010"] = config.RuleConfig{Severity: &sev, Options: map[string]any{"line": 6}}

	result, err := engine.Check(context.Background(), doc, cfg)
	require.NoError(t, err)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, 6, result.Violations[0].Line)
	assert.Equal(t, config.SeverityError, result.Violations[0].Severity)
	assert.Equal(t, 1, result.CountBySeverity(config.SeverityError))
}

func TestEngine_Check_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, jobs := range []int{1, 4} {
		engine := lint.NewEngine(&mockParser{}, lint.MustNewRegistry(newLinesRule("MD001", "a", 1)))
		engine.Jobs = jobs

		_, err := engine.Check(ctx, mdast.NewDocument("", nil, nil), nil)
		require.ErrorIs(t, err, context.Canceled, "jobs=%d", jobs)
	}
}
