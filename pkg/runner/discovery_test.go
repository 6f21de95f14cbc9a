package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdstyle/pkg/runner"
)

func discoverRel(t *testing.T, dir string, opts runner.Options) []string {
	t.Helper()

	opts.WorkingDir = dir
	files, err := runner.Discover(context.Background(), opts)
	require.NoError(t, err)

	rel := make([]string, 0, len(files))
	for _, f := range files {
		r, err := filepath.Rel(dir, f)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	return rel
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"readme.md":         "x",
		"docs/guide.md":     "x",
		"docs/api.markdown": "x",
		"docs/UPPER.MD":     "x",
		"src/main.go":       "x",
		"notes.txt":         "x",
		".hidden/skip.md":   "x",
		"docs/.draft.md":    "x",
	})

	assert.Equal(t, []string{
		"docs/UPPER.MD",
		"docs/api.markdown",
		"docs/guide.md",
		"readme.md",
	}, discoverRel(t, dir, runner.Options{}))
}

func TestDiscover_ExplicitFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"notes.txt": "x", "a.md": "x"})

	assert.Equal(t, []string{"notes.txt"}, discoverRel(t, dir, runner.Options{Paths: []string{"notes.txt"}}))
}

func TestDiscover_Deduplicates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.md": "x", "docs/b.md": "x"})

	got := discoverRel(t, dir, runner.Options{Paths: []string{".", "a.md", "docs", "./docs/b.md"}})
	assert.Equal(t, []string{"a.md", "docs/b.md"}, got)
}

func TestDiscover_Excludes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"readme.md":                 "x",
		"CHANGELOG.md":              "x",
		"vendor/lib/readme.md":      "x",
		"docs/guide.md":             "x",
		"docs/generated/api.md":     "x",
		"pkg/node_modules/x/doc.md": "x",
	})

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name:     "directory suffix",
			patterns: []string{"vendor/**"},
			want:     []string{"CHANGELOG.md", "docs/generated/api.md", "docs/guide.md", "pkg/node_modules/x/doc.md", "readme.md"},
		},
		{
			name:     "any depth",
			patterns: []string{"**/node_modules/**"},
			want:     []string{"CHANGELOG.md", "docs/generated/api.md", "docs/guide.md", "readme.md", "vendor/lib/readme.md"},
		},
		{
			name:     "bare name at any depth",
			patterns: []string{"readme.md"},
			want:     []string{"CHANGELOG.md", "docs/generated/api.md", "docs/guide.md", "pkg/node_modules/x/doc.md"},
		},
		{
			name:     "double star in middle",
			patterns: []string{"docs/**/api.md"},
			want:     []string{"CHANGELOG.md", "docs/guide.md", "pkg/node_modules/x/doc.md", "readme.md", "vendor/lib/readme.md"},
		},
		{
			name:     "multiple",
			patterns: []string{"CHANGELOG.md", "docs", "vendor/**", "pkg/**"},
			want:     []string{"readme.md"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, discoverRel(t, dir, runner.Options{ExcludeGlobs: tc.patterns}))
		})
	}
}

func TestDiscover_Extensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.md": "x", "b.mdx": "x"})

	assert.Equal(t, []string{"b.mdx"}, discoverRel(t, dir, runner.Options{Extensions: []string{".mdx"}}))
}

func TestDiscover_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"missing.md"},
	})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDiscover_Symlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"real/a.md": "x"})
	if err := os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	assert.Equal(t, []string{"real/a.md"}, discoverRel(t, dir, runner.Options{}))

	// Files reached through the link resolve to the target path.
	assert.Equal(t, []string{"real/a.md"}, discoverRel(t, dir, runner.Options{FollowSymlinks: true}))
}
