package lint

import (
	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override methods as needed.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
// Use NewBaseRule to construct one.
type BaseRule struct {
	id     string   // Unique identifier (e.g., "MD001")
	name   string   // Human-readable name
	desc   string   // Summary of the check
	tags   []string // Categorization tags
	schema Schema   // Accepted options
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, tags []string, schema Schema) BaseRule {
	return BaseRule{
		id:     id,
		name:   name,
		desc:   desc,
		tags:   tags,
		schema: schema,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a summary of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// DefaultEnabled returns whether the rule is enabled by default.
// Override this method to change the default.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}

// DefaultSeverity returns the default severity for this rule.
// Override this method to change the default.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return config.SeverityWarning
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// Schema returns the options the rule accepts.
func (r *BaseRule) Schema() Schema {
	return r.schema
}

// Evaluate must be overridden by concrete rule implementations.
// The default implementation reports nothing.
func (r *BaseRule) Evaluate(_ *mdast.Document, _ Options) []int {
	return nil
}
