// Package lint provides the rule contract, registry, and evaluation engine for mdstyle.
package lint

import (
	"fmt"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// Rule defines the interface that all style rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "MD001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a summary of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule (e.g., ["headings"]).
	Tags() []string

	// Schema declares the options the rule accepts and their defaults.
	Schema() Schema

	// Evaluate returns the 1-based line numbers that violate the rule.
	//
	// Rules must:
	//   - Return line numbers in ascending order without duplicates.
	//   - Be deterministic for identical inputs.
	//   - Never retain state between calls.
	//   - Never mutate the document.
	Evaluate(doc *mdast.Document, opts Options) []int
}

// Violation is a single rule violation found in a document.
type Violation struct {
	// RuleID is the identifier of the rule that produced this violation.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "no-trailing-spaces").
	RuleName string

	// Description is the rule's description, used as the message.
	Description string

	// Severity is the resolved severity of the rule.
	Severity config.Severity

	// Path is the file containing the violation.
	Path string

	// Line is the 1-based line number of the violation.
	Line int
}

// RuleError records a rule that failed while evaluating a document.
// A failed rule contributes no violations for that run.
type RuleError struct {
	// RuleID identifies the failing rule.
	RuleID string

	// Err is the underlying failure.
	Err error
}

// Error implements the error interface.
func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %s: %v", e.RuleID, e.Err)
}

// Unwrap returns the underlying failure.
func (e *RuleError) Unwrap() error {
	return e.Err
}
