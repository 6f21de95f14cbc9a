package lint

import (
	"context"

	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// Parser parses Markdown content into a Document.
//
// The lint package defines this interface in the consumer package.
// Implementations (e.g., parser/goldmark) provide the concrete parsing logic.
//
// Implementations must be:
//   - deterministic for a given (flavor, path, content) tuple,
//   - side-effect free (no I/O, no global state mutation).
type Parser interface {
	// Parse converts raw Markdown bytes into a Document.
	//
	// The returned Document must satisfy:
	//   - doc.Path == path
	//   - doc.Lines == mdast.SplitLines(content)
	//   - every token's Map indexes validly into doc.Lines
	//   - open/close tokens are balanced and correctly nested
	Parse(ctx context.Context, path string, content []byte) (*mdast.Document, error)
}
