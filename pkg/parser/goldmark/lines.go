package goldmark

import (
	"sort"
	"strings"
	"unicode"

	"github.com/yuin/goldmark/text"
)

// lineIndex maps byte offsets in the source to 0-based line indices.
type lineIndex struct {
	starts []int
}

func newLineIndex(source []byte) lineIndex {
	starts := []int{0}
	for idx, b := range source {
		if b == '\n' {
			starts = append(starts, idx+1)
		}
	}
	return lineIndex{starts: starts}
}

// count returns the number of lines.
func (li lineIndex) count() int {
	return len(li.starts)
}

// lineOf returns the line containing offset.
func (li lineIndex) lineOf(offset int) int {
	line := sort.Search(len(li.starts), func(i int) bool {
		return li.starts[i] > offset
	}) - 1
	return max(line, 0)
}

// start returns the byte offset where line begins.
func (li lineIndex) start(line int) int {
	return li.starts[line]
}

// firstLine returns the line where seg begins.
func (li lineIndex) firstLine(seg text.Segment) int {
	return li.lineOf(seg.Start)
}

// lastLine returns the line where seg ends. A trailing newline inside the
// segment belongs to the line it terminates.
func (li lineIndex) lastLine(seg text.Segment) int {
	return li.lineOf(max(seg.Start, seg.Stop-1))
}

// isFenceLine reports whether line opens or closes a fenced code block once
// container markers are stripped.
func isFenceLine(line string) bool {
	stripped := strings.TrimLeftFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(">-*+.0123456789", r)
	})
	return strings.HasPrefix(stripped, "```") || strings.HasPrefix(stripped, "~~~")
}

// isMarkerOnly reports whether line holds nothing but a list marker once
// blockquote markers are stripped.
func isMarkerOnly(line string) bool {
	stripped := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "> "))
	switch {
	case stripped == "-" || stripped == "*" || stripped == "+":
		return true
	case len(stripped) < 2 || len(stripped) > 10:
		return false
	}
	last := stripped[len(stripped)-1]
	if last != '.' && last != ')' {
		return false
	}
	for _, r := range stripped[:len(stripped)-1] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
