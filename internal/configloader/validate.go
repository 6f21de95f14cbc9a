package configloader

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
)

// ValidationError is a single configuration finding.
type ValidationError struct {
	// Field is the dotted path of the offending field, e.g. "rules.MD013.options.line_length".
	Field string

	// Value is the rejected value.
	Value any

	// Message describes the problem.
	Message string

	// FilePath is the configuration file, when known.
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, 3)
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult collects errors, which stop loading, and warnings.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid reports whether there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings reports whether there are warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns errors then warnings, each prefixed with its level.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

func (r *ValidationResult) errorf(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warnf(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// Validate checks cfg against registry. Rule keys must already be
// normalized to IDs; unknown keys are reported as warnings.
func Validate(cfg *config.Config, registry *lint.Registry) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Flavor != "" && !cfg.Flavor.IsValid() {
		result.errorf("flavor", cfg.Flavor, "invalid flavor %q; must be one of: commonmark, gfm", cfg.Flavor)
	}
	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.errorf("format", cfg.Format, "invalid format %q; must be one of: text, json, summary", cfg.Format)
	}
	if cfg.RuleFormat != "" && !cfg.RuleFormat.IsValid() {
		result.errorf("rule_format", cfg.RuleFormat, "invalid rule format %q; must be one of: name, id, combined", cfg.RuleFormat)
	}
	if cfg.Jobs < 0 {
		result.errorf("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	for _, id := range sortedKeys(cfg.Rules) {
		validateRule(id, cfg.Rules[id], registry, result)
	}

	for _, key := range slices.Concat(cfg.EnableRules, cfg.DisableRules) {
		if registry != nil {
			if _, ok := registry.Resolve(key); !ok {
				result.warnf("rules", key, "unknown rule %q; it will be ignored", key)
			}
		}
	}

	for idx, pattern := range cfg.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			result.errorf(fmt.Sprintf("ignore[%d]", idx), pattern, "invalid glob pattern: %v", err)
		}
	}

	return result
}

func validateRule(id string, rc config.RuleConfig, registry *lint.Registry, result *ValidationResult) {
	field := "rules." + id

	if rc.Severity != nil && !config.Severity(*rc.Severity).IsValid() {
		result.errorf(field+".severity", *rc.Severity,
			"invalid severity %q; must be one of: error, warning, info", *rc.Severity)
	}

	if registry == nil {
		return
	}

	rule, ok := registry.Get(id)
	if !ok {
		result.warnf(field, id, "unknown rule %q; it will be ignored", id)
		return
	}

	schema := rule.Schema()
	for _, name := range sortedKeys(rc.Options) {
		spec, ok := schema.Lookup(name)
		if !ok {
			result.warnf(field+".options."+name, name, "unknown option %q for %s; it will be ignored", name, id)
			continue
		}
		if err := spec.Validate(rc.Options[name]); err != nil {
			result.errorf(field+".options."+name, rc.Options[name], "%v", err)
		}
	}
}

// ValidateWithFile validates cfg and attributes every finding to filePath.
func ValidateWithFile(cfg *config.Config, registry *lint.Registry, filePath string) *ValidationResult {
	result := Validate(cfg, registry)
	for idx := range result.Errors {
		result.Errors[idx].FilePath = filePath
	}
	for idx := range result.Warnings {
		result.Warnings[idx].FilePath = filePath
	}
	return result
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
