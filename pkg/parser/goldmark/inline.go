package goldmark

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// inlineWriter collects the children of an inline token.
// Adjacent text is merged into a single text child, as goldmark splits
// runs at every delimiter it considers.
type inlineWriter struct {
	source []byte
	out    []mdast.Token
	text   strings.Builder
	depth  int
}

// inline returns the inline children of a block node.
func (f *flattener) inline(node ast.Node) []mdast.Token {
	w := &inlineWriter{source: f.source}
	w.children(node)
	w.flush()
	return w.out
}

func (w *inlineWriter) children(node ast.Node) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		w.node(child)
	}
}

func (w *inlineWriter) node(node ast.Node) {
	switch n := node.(type) {
	case *ast.Text:
		w.text.Write(n.Segment.Value(w.source))
		switch {
		case n.HardLineBreak():
			w.emit(mdast.Token{Type: mdast.TokHardBreak})
		case n.SoftLineBreak():
			w.emit(mdast.Token{Type: mdast.TokSoftBreak})
		}

	case *ast.String:
		w.text.Write(n.Value)

	case *ast.CodeSpan:
		w.emit(mdast.Token{Type: mdast.TokCodeInline, Content: plainText(n, w.source)})

	case *ast.Emphasis:
		open, closing := mdast.TokEmOpen, mdast.TokEmClose
		if n.Level == 2 {
			open, closing = mdast.TokStrongOpen, mdast.TokStrongClose
		}
		w.wrap(n, open, closing)

	case *ast.Link:
		w.wrap(n, mdast.TokLinkOpen, mdast.TokLinkClose)

	case *ast.AutoLink:
		w.emit(mdast.Token{Type: mdast.TokLinkOpen})
		w.depth++
		w.text.Write(n.URL(w.source))
		w.flush()
		w.depth--
		w.emit(mdast.Token{Type: mdast.TokLinkClose})

	case *ast.Image:
		w.emit(mdast.Token{Type: mdast.TokImage, Content: plainText(n, w.source)})

	case *ast.RawHTML:
		var sb strings.Builder
		for idx := range n.Segments.Len() {
			seg := n.Segments.At(idx)
			sb.Write(seg.Value(w.source))
		}
		w.emit(mdast.Token{Type: mdast.TokHTMLInline, Content: sb.String()})

	case *east.Strikethrough:
		w.wrap(n, mdast.TokStrikeOpen, mdast.TokStrikeClose)

	case *east.TaskCheckBox:
		// Rendered as an input; carries no text.

	default:
		w.children(n)
	}
}

// wrap emits open, the children of node one level deeper, then closing.
func (w *inlineWriter) wrap(node ast.Node, open, closing mdast.TokenType) {
	w.emit(mdast.Token{Type: open})
	w.depth++
	w.children(node)
	w.flush()
	w.depth--
	w.emit(mdast.Token{Type: closing})
}

// emit flushes pending text and appends tok at the current depth.
func (w *inlineWriter) emit(tok mdast.Token) {
	w.flush()
	tok.Level = w.depth
	w.out = append(w.out, tok)
}

// flush appends pending text as a single text child.
func (w *inlineWriter) flush() {
	if w.text.Len() == 0 {
		return
	}
	w.out = append(w.out, mdast.Token{Type: mdast.TokText, Level: w.depth, Content: w.text.String()})
	w.text.Reset()
}

// plainText concatenates the text of node's descendants.
func plainText(node ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(node, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := child.(type) {
		case *ast.Text:
			sb.Write(n.Segment.Value(source))
		case *ast.String:
			sb.Write(n.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}
