package lint

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/mdast"
)

// FileResult contains the results of checking a single document.
type FileResult struct {
	// Document is the parsed file.
	Document *mdast.Document

	// Violations contains all issues found, grouped by rule in registry
	// order and ascending by line within a rule.
	Violations []Violation

	// RuleErrors contains rules that failed during evaluation, keyed by rule ID.
	RuleErrors map[string]error
}

// HasIssues returns true if any violations were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Violations) > 0
}

// IssueCount returns the total number of violations.
func (fr *FileResult) IssueCount() int {
	return len(fr.Violations)
}

// HasRuleErrors returns true if any rule failed.
func (fr *FileResult) HasRuleErrors() bool {
	return len(fr.RuleErrors) > 0
}

// CountBySeverity returns the number of violations with the given severity.
func (fr *FileResult) CountBySeverity(sev config.Severity) int {
	count := 0
	for _, v := range fr.Violations {
		if v.Severity == sev {
			count++
		}
	}
	return count
}

// FailedRules returns the IDs of failed rules in sorted order.
func (fr *FileResult) FailedRules() []string {
	ids := make([]string, 0, len(fr.RuleErrors))
	for id := range fr.RuleErrors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Engine coordinates parsing and rule execution.
type Engine struct {
	// Parser parses Markdown files into Documents.
	Parser Parser

	// Registry holds all available rules.
	Registry *Registry

	// Jobs bounds concurrent rule evaluation for one document.
	// Values <= 1 evaluate rules sequentially.
	Jobs int
}

// NewEngine creates a new Engine with the given parser and registry.
func NewEngine(parser Parser, registry *Registry) *Engine {
	return &Engine{
		Parser:   parser,
		Registry: registry,
		Jobs:     1,
	}
}

// LintFile parses and checks a single file.
func (e *Engine) LintFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	doc, err := e.Parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	return e.Check(ctx, doc, cfg)
}

// Check runs every enabled rule against doc.
//
// A rule that panics is recorded in RuleErrors and contributes no
// violations; the remaining rules still run. The result does not depend
// on Jobs.
func (e *Engine) Check(ctx context.Context, doc *mdast.Document, cfg *config.Config) (*FileResult, error) {
	resolved := ResolveRules(e.Registry, cfg)

	outcomes := make([]ruleOutcome, len(resolved))

	if e.Jobs <= 1 {
		for idx, rr := range resolved {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("check cancelled: %w", ctx.Err())
			default:
			}
			outcomes[idx] = evaluate(rr, doc)
		}
	} else {
		group, gctx := errgroup.WithContext(ctx)
		group.SetLimit(e.Jobs)
		for idx, rr := range resolved {
			group.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				// Each goroutine owns a distinct slot.
				outcomes[idx] = evaluate(rr, doc)
				return nil
			})
		}
		if err := group.Wait(); err != nil {
			return nil, fmt.Errorf("check cancelled: %w", err)
		}
	}

	result := &FileResult{
		Document:   doc,
		RuleErrors: make(map[string]error),
	}

	for idx, rr := range resolved {
		outcome := outcomes[idx]
		if outcome.err != nil {
			result.RuleErrors[rr.Rule.ID()] = outcome.err
			continue
		}
		for _, line := range outcome.lines {
			result.Violations = append(result.Violations, Violation{
				RuleID:      rr.Rule.ID(),
				RuleName:    rr.Rule.Name(),
				Description: rr.Rule.Description(),
				Severity:    rr.Severity,
				Path:        doc.Path,
				Line:        line,
			})
		}
	}

	return result, nil
}

// ruleOutcome is the result of evaluating one rule.
type ruleOutcome struct {
	lines []int
	err   error
}

// evaluate runs a single rule, converting a panic into a RuleError.
func evaluate(rr ResolvedRule, doc *mdast.Document) (outcome ruleOutcome) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err, ok := recovered.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", recovered)
			}
			outcome = ruleOutcome{err: &RuleError{RuleID: rr.Rule.ID(), Err: err}}
		}
	}()

	return ruleOutcome{lines: rr.Rule.Evaluate(doc, rr.Options)}
}
