// Package mdast provides the document model shared by every mdstyle rule.
// It defines an immutable view of a Markdown file:
// - Document: the raw lines and the token stream describing the same file
// - Token stream: a pre-order flattening of the parse tree
// - Span: half-open line ranges used for reporting and exclusion zones
package mdast

// Document is an immutable view of a Markdown file.
// Lines and Tokens describe the same content; every token's Map indexes
// validly into Lines.
type Document struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Lines holds the raw source lines without line terminators.
	Lines []string

	// Tokens is the pre-order flattening of the parse tree.
	Tokens []Token
}

// NewDocument creates a Document from raw content and a token stream.
func NewDocument(path string, content []byte, tokens []Token) *Document {
	return &Document{
		Path:   path,
		Lines:  SplitLines(content),
		Tokens: tokens,
	}
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// Line returns the content of a 1-based line number.
// Returns "" if the line number is out of range.
func (d *Document) Line(lineNum int) string {
	if lineNum < 1 || lineNum > len(d.Lines) {
		return ""
	}
	return d.Lines[lineNum-1]
}

// SourceLine returns the line a token begins on.
func (d *Document) SourceLine(tok Token) string {
	return d.Line(tok.LineNumber())
}

// Filter returns the top-level tokens whose type is one of types,
// preserving stream order.
func (d *Document) Filter(types ...TokenType) []Token {
	var out []Token
	for _, tok := range d.Tokens {
		for _, typ := range types {
			if tok.Type == typ {
				out = append(out, tok)
				break
			}
		}
	}
	return out
}
