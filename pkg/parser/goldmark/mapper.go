package goldmark

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// flattener converts a goldmark AST into a flat token stream.
//
// It runs two passes. The first assigns every block a line span in
// document order, keeping a cursor at the end of the last placed leaf so
// blocks without source segments (thematic breaks, empty headings, empty
// fences) land on the next candidate line. The second emits tokens.
type flattener struct {
	source []byte
	lines  []string
	index  lineIndex
	spans  map[ast.Node]mdast.Span
	cursor int
}

func newFlattener(source []byte, lines []string) *flattener {
	return &flattener{
		source: source,
		lines:  lines,
		index:  newLineIndex(source),
		spans:  make(map[ast.Node]mdast.Span),
	}
}

// flatten returns the token stream for root.
func (f *flattener) flatten(root ast.Node) []mdast.Token {
	for child := root.FirstChild(); child != nil; child = child.NextSibling() {
		f.place(child)
	}

	b := mdast.NewBuilder()
	for child := root.FirstChild(); child != nil; child = child.NextSibling() {
		f.emit(b, child)
	}
	return b.Tokens()
}

// place computes and records the span of node and its block descendants.
func (f *flattener) place(node ast.Node) mdast.Span {
	var span mdast.Span
	from := f.cursor

	switch n := node.(type) {
	case *ast.Heading:
		span = f.headingSpan(n)
	case *ast.FencedCodeBlock:
		span = f.fenceSpan(n)
	case *ast.HTMLBlock:
		span = f.segmentSpan(n)
		if n.HasClosure() {
			span = span.Union(mdast.SpanOf(f.index.firstLine(n.ClosureLine), f.index.lastLine(n.ClosureLine)+1))
		}
	case *ast.Paragraph, *ast.TextBlock, *ast.CodeBlock:
		span = f.segmentSpan(n)
	case *east.Table:
		span = f.textSpan(n)
		if !span.IsEmpty() {
			// Header row plus delimiter row.
			span.End = max(span.End, span.Start+2)
		}
	default:
		if node.Type() == ast.TypeBlock && node.HasChildren() {
			for child := node.FirstChild(); child != nil; child = child.NextSibling() {
				span = span.Union(f.place(child))
			}
		}
		// An item whose marker stands alone starts on the marker line.
		if _, ok := node.(*ast.ListItem); ok && !span.IsEmpty() {
			if line := span.Start - 1; line >= from && isMarkerOnly(f.lines[line]) {
				span.Start = line
			}
		}
	}

	if span.IsEmpty() {
		span = f.nextLine()
	}
	span = f.clamp(span)

	f.spans[node] = span
	f.cursor = max(f.cursor, span.End)
	return span
}

// headingSpan distinguishes ATX from setext headings by looking for '#'
// between the start of the line and the heading text. Setext headings
// also cover their underline.
func (f *flattener) headingSpan(n *ast.Heading) mdast.Span {
	segs := n.Lines()
	if segs.Len() == 0 {
		return mdast.Span{}
	}

	first := segs.At(0)
	last := segs.At(segs.Len() - 1)
	startLine := f.index.firstLine(first)
	prefix := f.source[f.index.start(startLine):first.Start]

	if bytes.ContainsRune(prefix, '#') {
		return mdast.SpanOf(startLine, startLine+1)
	}
	return mdast.SpanOf(startLine, f.index.lastLine(last)+2)
}

// fenceSpan covers the opening fence, the content and, when present, the
// closing fence.
func (f *flattener) fenceSpan(n *ast.FencedCodeBlock) mdast.Span {
	var open, lastContent int

	segs := n.Lines()
	if segs.Len() > 0 {
		open = f.index.firstLine(segs.At(0)) - 1
		lastContent = f.index.lastLine(segs.At(segs.Len() - 1))
	} else {
		open = f.cursor
		for open < len(f.lines) && !isFenceLine(f.lines[open]) {
			open++
		}
		if open >= len(f.lines) {
			return mdast.Span{}
		}
		lastContent = open
	}

	end := lastContent + 1
	if end < len(f.lines) && isFenceLine(f.lines[end]) {
		end++
	}
	return mdast.SpanOf(max(open, 0), end)
}

// segmentSpan covers a leaf block's source segments.
func (f *flattener) segmentSpan(node ast.Node) mdast.Span {
	segs := node.Lines()
	if segs.Len() == 0 {
		return mdast.Span{}
	}
	return mdast.SpanOf(f.index.firstLine(segs.At(0)), f.index.lastLine(segs.At(segs.Len()-1))+1)
}

// textSpan covers the text segments of node's descendants.
func (f *flattener) textSpan(node ast.Node) mdast.Span {
	var span mdast.Span
	_ = ast.Walk(node, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if txt, ok := child.(*ast.Text); ok {
			span = span.Union(mdast.SpanOf(f.index.firstLine(txt.Segment), f.index.lastLine(txt.Segment)+1))
		}
		return ast.WalkContinue, nil
	})
	return span
}

// nextLine returns a one-line span at the next non-blank line at or after
// the cursor.
func (f *flattener) nextLine() mdast.Span {
	line := f.cursor
	for line < len(f.lines)-1 && mdast.IsBlank(f.lines[line]) {
		line++
	}
	return mdast.SpanOf(line, line+1)
}

// clamp keeps span inside the document.
func (f *flattener) clamp(span mdast.Span) mdast.Span {
	last := len(f.lines)
	span.Start = min(max(span.Start, 0), last-1)
	span.End = min(max(span.End, span.Start+1), last)
	return span
}

// emit appends the tokens for node.
func (f *flattener) emit(b *mdast.Builder, node ast.Node) {
	span := f.spans[node]

	switch n := node.(type) {
	case *ast.Heading:
		b.OpenHeading(n.Level, span)
		b.Inline(span, f.inline(n)...)
		b.Close()

	case *ast.Paragraph, *ast.TextBlock:
		// Link reference definitions leave an empty block behind.
		if n.Lines().Len() == 0 {
			return
		}
		b.Open(mdast.TokParagraphOpen, span)
		b.Inline(span, f.inline(n)...)
		b.Close()

	case *ast.List:
		typ := mdast.TokBulletListOpen
		if n.IsOrdered() {
			typ = mdast.TokOrderedListOpen
		}
		b.Open(typ, span)
		f.emitChildren(b, n)
		b.Close()

	case *ast.ListItem:
		b.Open(mdast.TokListItemOpen, span)
		f.emitChildren(b, n)
		b.Close()

	case *ast.Blockquote:
		b.Open(mdast.TokBlockquoteOpen, span)
		f.emitChildren(b, n)
		b.Close()

	case *ast.FencedCodeBlock:
		b.Leaf(mdast.TokFence, span, f.segmentText(n))

	case *ast.CodeBlock:
		b.Leaf(mdast.TokCodeBlock, span, f.segmentText(n))

	case *ast.HTMLBlock:
		b.Leaf(mdast.TokHTMLBlock, span, f.segmentText(n))

	case *ast.ThematicBreak:
		b.Leaf(mdast.TokHR, span, "")

	case *east.Table:
		b.Open(mdast.TokTableOpen, span)
		_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
			if cell, ok := child.(*east.TableCell); ok && entering {
				cellSpan := f.textSpan(cell)
				if cellSpan.IsEmpty() {
					cellSpan = span
				}
				b.Inline(cellSpan, f.inline(cell)...)
				return ast.WalkSkipChildren, nil
			}
			return ast.WalkContinue, nil
		})
		b.Close()

	default:
		f.emitChildren(b, node)
	}
}

func (f *flattener) emitChildren(b *mdast.Builder, node ast.Node) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		f.emit(b, child)
	}
}

// segmentText returns the raw text of a block's source segments.
func (f *flattener) segmentText(node ast.Node) string {
	var sb strings.Builder
	segs := node.Lines()
	for idx := range segs.Len() {
		seg := segs.At(idx)
		sb.Write(seg.Value(f.source))
	}
	return sb.String()
}
