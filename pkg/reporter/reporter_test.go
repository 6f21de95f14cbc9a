package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/mdast"
	"github.com/yaklabco/mdstyle/pkg/reporter"
	"github.com/yaklabco/mdstyle/pkg/runner"
)

func sampleResult() *runner.Result {
	content := []byte("# Title\n\nText \n\tTab\n")
	doc := mdast.NewDocument("/repo/a.md", content, nil)

	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "/repo/a.md",
				Result: &lint.PipelineResult{
					Path: "/repo/a.md",
					FileResult: &lint.FileResult{
						Document: doc,
						Violations: []lint.Violation{
							{RuleID: "MD010", RuleName: "no-hard-tabs", Description: "Hard tabs", Severity: config.SeverityError, Path: "/repo/a.md", Line: 4},
							{RuleID: "MD009", RuleName: "no-trailing-spaces", Description: "Trailing spaces", Severity: config.SeverityWarning, Path: "/repo/a.md", Line: 3},
						},
						RuleErrors: map[string]error{"MD013": errors.New("boom")},
					},
				},
			},
			{
				Path:   "/repo/clean.md",
				Result: &lint.PipelineResult{Path: "/repo/clean.md", FileResult: &lint.FileResult{}},
			},
			{Path: "/repo/locked.md", Error: errors.New("permission denied")},
		},
		Stats: runner.Stats{
			FilesDiscovered: 3,
			FilesProcessed:  2,
			FilesErrored:    1,
			FilesWithIssues: 1,
			ViolationsTotal: 2,
			ViolationsBySeverity: map[config.Severity]int{
				config.SeverityError:   1,
				config.SeverityWarning: 1,
			},
			RuleErrors: 1,
		},
	}
}

func render(t *testing.T, opts reporter.Options, result *runner.Result) (string, int) {
	t.Helper()

	var buf bytes.Buffer
	opts.Writer = &buf
	opts.Color = "never"
	opts.WorkingDir = "/repo"

	rep, err := reporter.New(opts)
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)

	return buf.String(), count
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{"", reporter.FormatText, false},
		{"text", reporter.FormatText, false},
		{"json", reporter.FormatJSON, false},
		{"summary", reporter.FormatSummary, false},
		{"sarif", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.ParseFormat(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNew_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := reporter.New(reporter.Options{Format: "xml", Writer: &bytes.Buffer{}})
	require.Error(t, err)
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	opts := reporter.DefaultOptions()
	opts.RuleFormat = config.RuleFormatID

	out, count := render(t, opts, sampleResult())

	lines := strings.Split(out, "\n")
	for idx, line := range lines {
		lines[idx] = strings.TrimRight(line, " ")
	}

	assert.Equal(t, 2, count)
	assert.Equal(t, strings.Join([]string{
		"a.md (2 issues)",
		"  a.md:3  warning  Trailing spaces  (MD009)",
		"     3 | Text",
		"  a.md:4  error  Hard tabs  (MD010)",
		"     4 |     Tab",
		"  rule MD013 failed:  boom",
		"",
		"locked.md: error: permission denied",
		"2 issues (1 error, 1 warning) in 1 file, 2 files checked (0 B), 1 file failed, 1 rule failure",
		"",
	}, "\n"), strings.Join(lines, "\n"))
}

func TestTextReporter_NoContext(t *testing.T) {
	t.Parallel()

	opts := reporter.DefaultOptions()
	opts.ShowContext = false
	opts.ShowSummary = false

	out, _ := render(t, opts, sampleResult())

	assert.NotContains(t, out, " | ")
	assert.Contains(t, out, "(no-trailing-spaces)")
	assert.NotContains(t, out, "files checked")
}

func TestTextReporter_Empty(t *testing.T) {
	t.Parallel()

	out, count := render(t, reporter.DefaultOptions(), &runner.Result{})

	assert.Zero(t, count)
	assert.Equal(t, "No files to check.\n", out)
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	opts := reporter.DefaultOptions()
	opts.Format = reporter.FormatJSON
	opts.RuleFormat = config.RuleFormatCombined

	out, count := render(t, opts, sampleResult())
	assert.Equal(t, 2, count)

	var decoded reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "1.0.0", decoded.Version)
	require.Len(t, decoded.Files, 3)

	first := decoded.Files[0]
	assert.Equal(t, "a.md", first.Path)
	require.Len(t, first.Violations, 2)
	assert.Equal(t, reporter.JSONViolation{
		Line:        3,
		RuleID:      "MD009",
		RuleName:    "no-trailing-spaces",
		Rule:        "MD009/no-trailing-spaces",
		Severity:    "warning",
		Description: "Trailing spaces",
	}, first.Violations[0])
	assert.Equal(t, map[string]string{"MD013": "boom"}, first.RuleErrors)

	assert.Empty(t, decoded.Files[1].Violations)
	assert.Equal(t, "permission denied", decoded.Files[2].Error)

	assert.Equal(t, reporter.JSONSummary{
		FilesChecked:    3,
		FilesWithIssues: 1,
		FilesErrored:    1,
		TotalIssues:     2,
		RuleErrors:      1,
		BySeverity:      map[string]int{"error": 1, "warning": 1},
	}, decoded.Summary)
}

func TestJSONReporter_Compact(t *testing.T) {
	t.Parallel()

	opts := reporter.DefaultOptions()
	opts.Format = reporter.FormatJSON
	opts.Compact = true

	out, _ := render(t, opts, nil)

	assert.Equal(t, `{"version":"1.0.0","files":[],"summary":{"filesChecked":0,"filesWithIssues":0,"filesErrored":0,"totalIssues":0,"ruleErrors":0,"bySeverity":{}}}`+"\n", out)
}

func TestSummaryReporter(t *testing.T) {
	t.Parallel()

	opts := reporter.DefaultOptions()
	opts.Format = reporter.FormatSummary

	out, count := render(t, opts, sampleResult())

	assert.Equal(t, 2, count)
	assert.Contains(t, out, "RULE")
	assert.Contains(t, out, "no-hard-tabs")
	assert.Contains(t, out, "no-trailing-spaces")
	assert.Contains(t, out, "a.md  2       MD009,MD010")
	assert.True(t, strings.HasSuffix(out, "1 rule failure\n"))
}
