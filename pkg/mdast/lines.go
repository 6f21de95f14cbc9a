package mdast

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SplitLines splits content into lines.
// It handles both LF (\n) and CRLF (\r\n) line endings. A trailing newline
// yields a final empty line, so line numbers match what an editor shows.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return []string{}
	}

	raw := bytes.Split(content, []byte("\n"))
	lines := make([]string, len(raw))
	for idx, line := range raw {
		lines[idx] = string(bytes.TrimSuffix(line, []byte("\r")))
	}
	return lines
}

// LeadingWhitespace returns the number of leading whitespace characters
// in line. Every Unicode whitespace rune counts as one, tabs included.
func LeadingWhitespace(line string) int {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	return utf8.RuneCountInString(line[:len(line)-len(trimmed)])
}

// IsBlank returns true if line is empty or whitespace-only.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
