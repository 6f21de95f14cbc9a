package mdast

import "strings"

// TokenType classifies a token in the flattened parse stream.
// Names follow the markdown-it convention so configuration and rule logic
// read the same across implementations.
type TokenType string

// Block-level token types.
const (
	TokHeadingOpen      TokenType = "heading_open"
	TokHeadingClose     TokenType = "heading_close"
	TokParagraphOpen    TokenType = "paragraph_open"
	TokParagraphClose   TokenType = "paragraph_close"
	TokBulletListOpen   TokenType = "bullet_list_open"
	TokBulletListClose  TokenType = "bullet_list_close"
	TokOrderedListOpen  TokenType = "ordered_list_open"
	TokOrderedListClose TokenType = "ordered_list_close"
	TokListItemOpen     TokenType = "list_item_open"
	TokListItemClose    TokenType = "list_item_close"
	TokBlockquoteOpen   TokenType = "blockquote_open"
	TokBlockquoteClose  TokenType = "blockquote_close"
	TokTableOpen        TokenType = "table_open"
	TokTableClose       TokenType = "table_close"
	TokFence            TokenType = "fence"
	TokCodeBlock        TokenType = "code_block"
	TokHTMLBlock        TokenType = "html_block"
	TokHR               TokenType = "hr"
	TokInline           TokenType = "inline"
)

// Inline token types (children of TokInline).
const (
	TokText        TokenType = "text"
	TokSoftBreak   TokenType = "softbreak"
	TokHardBreak   TokenType = "hardbreak"
	TokCodeInline  TokenType = "code_inline"
	TokLinkOpen    TokenType = "link_open"
	TokLinkClose   TokenType = "link_close"
	TokImage       TokenType = "image"
	TokEmOpen      TokenType = "em_open"
	TokEmClose     TokenType = "em_close"
	TokStrongOpen  TokenType = "strong_open"
	TokStrongClose TokenType = "strong_close"
	TokStrikeOpen  TokenType = "s_open"
	TokStrikeClose TokenType = "s_close"
	TokHTMLInline  TokenType = "html_inline"
)

// IsOpen reports whether t opens a container.
func (t TokenType) IsOpen() bool {
	return strings.HasSuffix(string(t), "_open")
}

// IsClose reports whether t closes a container.
func (t TokenType) IsClose() bool {
	return strings.HasSuffix(string(t), "_close")
}

// Token is a node of the flattened parse stream.
type Token struct {
	// Type classifies the token.
	Type TokenType

	// Map is the 0-based, half-open range of source lines the token covers.
	// Inline children carry their parent's range.
	Map Span

	// Level is the nesting depth of the token in the stream.
	Level int

	// HeadingLevel is 1..6 on heading tokens, 0 otherwise.
	HeadingLevel int

	// Content holds text for text, inline, fence and code_block tokens.
	Content string

	// Children is only populated on inline tokens.
	Children []Token
}

// LineNumber returns the 1-based line where the token begins.
func (t Token) LineNumber() int {
	return t.Map.Start + 1
}

// LineCount returns the number of source lines the token covers.
func (t Token) LineCount() int {
	return t.Map.Len()
}
