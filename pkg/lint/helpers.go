package lint

import (
	"regexp"
	"slices"
	"strings"

	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// fenceMarker matches a line opening or closing a fenced code block.
var fenceMarker = regexp.MustCompile("^(```|~~~)")

// IsFenceMarker reports whether a trimmed line starts a code fence.
func IsFenceMarker(trimmed string) bool {
	return fenceMarker.MatchString(trimmed)
}

// IndentOf returns the leading whitespace width of the line a token starts on.
func IndentOf(doc *mdast.Document, tok mdast.Token) int {
	return mdast.LeadingWhitespace(doc.SourceLine(tok))
}

// PadAndTrim returns the document's lines trimmed of surrounding
// whitespace, with an empty line added before the first and after the last.
// Index i of the result corresponds to 1-based line i.
func PadAndTrim(lines []string) []string {
	padded := make([]string, 0, len(lines)+2)
	padded = append(padded, "")
	for _, line := range lines {
		padded = append(padded, strings.TrimSpace(line))
	}
	return append(padded, "")
}

// LineSet collects 1-based line numbers.
type LineSet struct {
	seen  map[int]struct{}
	lines []int
}

// Add records a line number. Repeats are ignored.
func (s *LineSet) Add(line int) {
	if s.seen == nil {
		s.seen = make(map[int]struct{})
	}
	if _, ok := s.seen[line]; ok {
		return
	}
	s.seen[line] = struct{}{}
	s.lines = append(s.lines, line)
}

// Lines returns the recorded line numbers in ascending order.
func (s *LineSet) Lines() []int {
	if len(s.lines) == 0 {
		return nil
	}
	out := slices.Clone(s.lines)
	slices.Sort(out)
	return out
}
