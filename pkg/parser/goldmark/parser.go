// Package goldmark provides a lint.Parser implementation using the goldmark library.
//
// goldmark produces a tree; the rules read a flat, markdown-it-style token
// stream with 0-based half-open line spans. This package flattens the tree
// and recovers each block's line span from goldmark's source segments.
package goldmark

import (
	"context"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// Flavor identifies the Markdown flavor supported by the parser.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// ErrInvalidSpan reports a token whose line span falls outside the document.
var ErrInvalidSpan = errors.New("token span outside document")

// Parser implements lint.Parser using goldmark.
type Parser struct {
	flavor string
	md     goldmark.Markdown
}

var _ lint.Parser = (*Parser)(nil)

// New creates a new goldmark-based parser for the given flavor.
// Supported flavors are "commonmark" and "gfm".
// Invalid flavors default to "commonmark".
func New(flavor string) *Parser {
	f := flavorOrDefault(flavor)
	return &Parser{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
}

// Flavor returns the configured Markdown flavor.
func (p *Parser) Flavor() string {
	return p.flavor
}

// Parse converts raw Markdown bytes into a Document.
//
// Returns nil and an error if the context is cancelled or the flattened
// stream violates the Document invariants.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*mdast.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	source := copyContent(content)
	root := p.md.Parser().Parse(text.NewReader(source))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	lines := mdast.SplitLines(source)
	var tokens []mdast.Token
	if len(lines) > 0 {
		tokens = newFlattener(source, lines).flatten(root)
	}

	doc := &mdast.Document{Path: path, Lines: lines, Tokens: tokens}
	if err := validate(doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// flavorOrDefault returns the flavor if valid, otherwise defaults to CommonMark.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option

	switch flavor {
	case FlavorGFM:
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	case FlavorCommonMark:
		// No extensions for pure CommonMark.
	}

	return goldmark.New(opts...)
}

// copyContent creates a copy of the content slice so the parser never
// aliases caller memory.
func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}

// validate checks that every span indexes into the document and that
// open and close tokens are balanced.
func validate(doc *mdast.Document) error {
	depth := 0
	for idx, tok := range doc.Tokens {
		if tok.Map.Start < 0 || tok.Map.End > len(doc.Lines) || tok.Map.IsEmpty() {
			return fmt.Errorf("%w: token %d (%s) spans [%d,%d) of %d lines",
				ErrInvalidSpan, idx, tok.Type, tok.Map.Start, tok.Map.End, len(doc.Lines))
		}
		switch {
		case tok.Type.IsOpen():
			depth++
		case tok.Type.IsClose():
			depth--
		}
		if depth < 0 {
			return fmt.Errorf("unbalanced token stream at token %d (%s)", idx, tok.Type)
		}
	}
	if depth != 0 {
		return fmt.Errorf("unbalanced token stream: %d unclosed containers", depth)
	}
	return nil
}
