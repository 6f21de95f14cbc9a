package mdast

import "strings"

// Builder assembles a well-nested token stream.
// It tracks nesting so every token carries the correct Level, and pairs each
// Close with the most recent Open.
type Builder struct {
	tokens []Token
	stack  []Token
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Open appends an opening token and increases the nesting level.
func (b *Builder) Open(typ TokenType, span Span) *Builder {
	return b.open(Token{Type: typ, Map: span})
}

// OpenHeading appends a heading_open token with the given heading level.
func (b *Builder) OpenHeading(level int, span Span) *Builder {
	return b.open(Token{Type: TokHeadingOpen, Map: span, HeadingLevel: level})
}

func (b *Builder) open(tok Token) *Builder {
	tok.Level = len(b.stack)
	b.tokens = append(b.tokens, tok)
	b.stack = append(b.stack, tok)
	return b
}

// Close appends the closing token for the innermost open container.
// It is a no-op when nothing is open.
func (b *Builder) Close() *Builder {
	if len(b.stack) == 0 {
		return b
	}

	opener := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	b.tokens = append(b.tokens, Token{
		Type:         TokenType(strings.TrimSuffix(string(opener.Type), "_open") + "_close"),
		Map:          opener.Map,
		Level:        len(b.stack),
		HeadingLevel: opener.HeadingLevel,
	})
	return b
}

// Leaf appends a token that has no closing counterpart (fence, code_block, hr...).
func (b *Builder) Leaf(typ TokenType, span Span, content string) *Builder {
	b.tokens = append(b.tokens, Token{
		Type:    typ,
		Map:     span,
		Level:   len(b.stack),
		Content: content,
	})
	return b
}

// Inline appends an inline token holding children.
// Children inherit the inline token's span; a child's Level is taken as
// relative to the inline token.
func (b *Builder) Inline(span Span, children ...Token) *Builder {
	var content strings.Builder
	kids := make([]Token, len(children))
	for idx, child := range children {
		child.Map = span
		child.Level += len(b.stack)
		kids[idx] = child
		if child.Type == TokText {
			content.WriteString(child.Content)
		}
	}

	b.tokens = append(b.tokens, Token{
		Type:     TokInline,
		Map:      span,
		Level:    len(b.stack),
		Content:  content.String(),
		Children: kids,
	})
	return b
}

// Heading appends heading_open, an inline text run and heading_close.
func (b *Builder) Heading(level int, span Span, text string) *Builder {
	return b.OpenHeading(level, span).Inline(span, Text(text)).Close()
}

// Paragraph appends paragraph_open, an inline text run and paragraph_close.
func (b *Builder) Paragraph(span Span, text string) *Builder {
	return b.Open(TokParagraphOpen, span).Inline(span, Text(text)).Close()
}

// Tokens closes any open containers and returns the stream.
func (b *Builder) Tokens() []Token {
	for len(b.stack) > 0 {
		b.Close()
	}
	return b.tokens
}

// Text creates a text child token.
func Text(content string) Token {
	return Token{Type: TokText, Content: content}
}

// SpanOf builds a Span from 0-based start and end line indices.
func SpanOf(start, end int) Span {
	return Span{Start: start, End: end}
}
