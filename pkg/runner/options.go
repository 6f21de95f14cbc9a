// Package runner discovers Markdown files and checks them concurrently.
package runner

import "github.com/yaklabco/mdstyle/pkg/config"

// Options controls a multi-file run.
type Options struct {
	// Paths are files or directories to check. Empty means the working directory.
	Paths []string

	// WorkingDir resolves relative Paths and exclude patterns.
	// If empty, the process working directory is used.
	WorkingDir string

	// Extensions lists the lowercase extensions treated as Markdown.
	// Defaults to DefaultExtensions().
	Extensions []string

	// ExcludeGlobs skip matching files and directories. Patterns are matched
	// against slash-separated paths relative to WorkingDir and support "**".
	ExcludeGlobs []string

	// FollowSymlinks traverses directory symlinks.
	FollowSymlinks bool

	// Jobs bounds the number of files checked at once.
	// 0 or negative means runtime.NumCPU().
	Jobs int

	// Config is the resolved configuration applied to every file.
	Config *config.Config
}

// DefaultExtensions returns the extensions recognized as Markdown.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) paths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
