// Package rules provides the built-in style rules for mdstyle.
//
// # Rule Domains
//
//   - Headings:
//
//   - MD001: heading-increment - Heading levels should only increment by one
//
//   - MD002: first-heading-h1 - First heading should be a top-level heading
//
//   - MD003: heading-style - Heading style should be consistent
//
//   - Lists:
//
//   - MD004: ul-style - Unordered list style should be consistent
//
//   - MD005: list-indent - Inconsistent indentation for list items
//
//   - MD006: ul-start-left - Bulleted lists should start at the beginning of the line
//
//   - MD007: ul-indent - Unordered list indentation
//
//   - MD032: blanks-around-lists - Lists should be surrounded by blank lines
//
//   - Whitespace and layout:
//
//   - MD009: no-trailing-spaces - Trailing spaces
//
//   - MD010: no-hard-tabs - Hard tabs
//
//   - MD012: no-multiple-blanks - Multiple consecutive blank lines
//
//   - MD013: line-length - Line length
//
//   - Links, blockquotes and code:
//
//   - MD011: no-reversed-links - Reversed link syntax
//
//   - MD028: no-blanks-blockquote - Blank line inside blockquote
//
//   - MD031: blanks-around-fences - Fenced code blocks should be surrounded by blank lines
//
// # Techniques
//
// Token rules read the flattened stream in mdast.Document.Tokens. Line rules
// read mdast.Document.Lines only. MD031 and MD032 scan raw lines for fence
// and list boundaries rather than using the parsed blocks.
//
// # Registration
//
// NewRegistry builds an immutable lint.Registry once; callers pass it to
// lint.NewEngine explicitly. There is no package-level registry.
package rules
