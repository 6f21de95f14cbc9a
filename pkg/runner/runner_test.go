package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/lint/rules"
	"github.com/yaklabco/mdstyle/pkg/parser/goldmark"
	"github.com/yaklabco/mdstyle/pkg/runner"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func newRunner() *runner.Runner {
	engine := lint.NewEngine(goldmark.New(goldmark.FlavorCommonMark), rules.NewRegistry())
	return runner.New(lint.NewPipeline(engine))
}

func TestNew(t *testing.T) {
	t.Parallel()

	pipeline := lint.NewPipeline(nil)
	assert.Same(t, pipeline, runner.New(pipeline).Pipeline)
}

func TestRunner_Run_NoFiles(t *testing.T) {
	t.Parallel()

	result, err := newRunner().Run(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	assert.Zero(t, result.Stats.FilesDiscovered)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasIssues())
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"clean.md":       "# Title\n\nText.\n",
		"docs/trail.md":  "# Title\n\nText \n",
		"docs/tabs.md":   "# Title\n\n\tindented\n\n\n",
		"docs/notes.txt": "ignored \n",
	})

	for _, jobs := range []int{1, 4} {
		result, err := newRunner().Run(context.Background(), runner.Options{
			WorkingDir: dir,
			Jobs:       jobs,
			Config:     config.NewConfig(),
		})
		require.NoError(t, err)

		require.Len(t, result.Files, 3)
		assert.Equal(t, filepath.Join(dir, "clean.md"), result.Files[0].Path)
		assert.Equal(t, filepath.Join(dir, "docs/tabs.md"), result.Files[1].Path)
		assert.Equal(t, filepath.Join(dir, "docs/trail.md"), result.Files[2].Path)

		stats := result.Stats
		assert.Equal(t, 3, stats.FilesDiscovered)
		assert.Equal(t, 3, stats.FilesProcessed)
		assert.Zero(t, stats.FilesErrored)
		assert.Equal(t, 2, stats.FilesWithIssues)
		assert.Equal(t, stats.ViolationsTotal, stats.ViolationsBySeverity[config.SeverityWarning])
		assert.Equal(t, len(result.Violations()), stats.ViolationsTotal)
		assert.Positive(t, stats.BytesRead)

		assert.True(t, result.HasIssues())
		assert.False(t, result.HasErrors())
		assert.False(t, result.HasRuleErrors())
	}
}

func TestRunner_Run_TrailingSpaceLine(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.md": "# Title\n\nText \n"})

	result, err := newRunner().Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.NoError(t, err)

	violations := result.Violations()
	require.Len(t, violations, 1)
	assert.Equal(t, "MD009", violations[0].RuleID)
	assert.Equal(t, 3, violations[0].Line)
	assert.Equal(t, filepath.Join(dir, "a.md"), violations[0].Path)
}

func TestRunner_Run_SeverityOverride(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.md": "# Title\n\nText \n"})

	cfg := config.NewConfig()
	cfg.Rules["MD009"] = config.RuleConfig{Severity: config.StringPtr(string(config.SeverityError))}

	result, err := newRunner().Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     cfg,
	})
	require.NoError(t, err)

	assert.True(t, result.HasErrors())
	assert.Equal(t, 1, result.Stats.ViolationsBySeverity[config.SeverityError])
}

func TestRunner_Run_FileError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.md": "# Title\n"})

	result, err := newRunner().Run(context.Background(), runner.Options{
		Paths:      []string{"a.md", "b.md"},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "b.md")
}

func TestRunner_Run_Cancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.md": "# Title\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRunner().Run(ctx, runner.Options{WorkingDir: dir})
	require.ErrorIs(t, err, context.Canceled)
}
