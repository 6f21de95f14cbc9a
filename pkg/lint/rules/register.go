package rules

import "github.com/yaklabco/mdstyle/pkg/lint"

// All returns a fresh instance of every built-in rule.
func All() []lint.Rule {
	return []lint.Rule{
		// Heading rules
		NewHeadingIncrementRule(), // MD001
		NewFirstHeadingH1Rule(),   // MD002
		NewHeadingStyleRule(),     // MD003

		// List rules
		NewUnorderedListStyleRule(), // MD004
		NewListIndentRule(),         // MD005
		NewULStartLeftRule(),        // MD006
		NewULIndentRule(),           // MD007
		NewBlanksAroundListsRule(),  // MD032

		// Whitespace rules
		NewTrailingWhitespaceRule(), // MD009
		NewHardTabsRule(),           // MD010
		NewMultipleBlankLinesRule(), // MD012

		// Line length rule
		NewMaxLineLengthRule(), // MD013

		// Link rules
		NewReversedLinkRule(), // MD011

		// Blockquote rules
		NewNoBlanksBlockquoteRule(), // MD028

		// Code block rules
		NewBlanksAroundFencesRule(), // MD031
	}
}

// NewRegistry builds the immutable registry of built-in rules.
func NewRegistry() *lint.Registry {
	return lint.MustNewRegistry(All()...)
}
