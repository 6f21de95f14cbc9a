package runner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// excludeSet matches relative paths against compiled exclude patterns.
type excludeSet struct {
	globs []glob.Glob
	// names hold patterns without a separator; they also match a bare file
	// or directory name at any depth.
	names []glob.Glob
}

func compileExcludes(patterns []string) (*excludeSet, error) {
	set := &excludeSet{}

	for _, raw := range patterns {
		pattern := strings.TrimPrefix(filepath.ToSlash(strings.TrimSpace(raw)), "./")
		if pattern == "" {
			continue
		}

		variants := []string{pattern}
		if rest, ok := strings.CutPrefix(pattern, "**/"); ok {
			// "**/x" also matches "x" at the root.
			variants = append(variants, rest)
		}

		for _, variant := range variants {
			g, err := glob.Compile(variant, '/')
			if err != nil {
				return nil, fmt.Errorf("invalid exclude pattern %q: %w", raw, err)
			}
			set.globs = append(set.globs, g)
		}

		if !strings.Contains(pattern, "/") {
			g, err := glob.Compile(pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid exclude pattern %q: %w", raw, err)
			}
			set.names = append(set.names, g)
		}
	}

	return set, nil
}

// matchFile reports whether the file at relPath is excluded.
func (s *excludeSet) matchFile(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	for _, g := range s.globs {
		if g.Match(relPath) {
			return true
		}
	}
	return s.matchName(relPath)
}

// matchDir reports whether the directory at relPath and everything below it
// is excluded. "docs/**" excludes the directory "docs".
func (s *excludeSet) matchDir(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	for _, g := range s.globs {
		if g.Match(relPath) || g.Match(relPath+"/") {
			return true
		}
	}
	return s.matchName(relPath)
}

func (s *excludeSet) matchName(relPath string) bool {
	base := relPath
	if idx := strings.LastIndex(relPath, "/"); idx >= 0 {
		base = relPath[idx+1:]
	}
	for _, g := range s.names {
		if g.Match(base) {
			return true
		}
	}
	return false
}
