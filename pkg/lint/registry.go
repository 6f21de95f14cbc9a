package lint

import (
	"cmp"
	"fmt"
	"slices"
)

// Registry is an immutable, ordered collection of rules.
// Build it once at startup and pass it to the Engine explicitly.
type Registry struct {
	rules  []Rule
	byID   map[string]Rule
	byName map[string]Rule
}

// NewRegistry creates a registry holding rules, ordered by rule ID.
// It fails if two rules share an ID or a name.
func NewRegistry(rules ...Rule) (*Registry, error) {
	reg := &Registry{
		rules:  make([]Rule, 0, len(rules)),
		byID:   make(map[string]Rule, len(rules)),
		byName: make(map[string]Rule, len(rules)),
	}

	for _, rule := range rules {
		if _, dup := reg.byID[rule.ID()]; dup {
			return nil, fmt.Errorf("duplicate rule id %q", rule.ID())
		}
		if _, dup := reg.byName[rule.Name()]; dup {
			return nil, fmt.Errorf("duplicate rule name %q", rule.Name())
		}
		reg.byID[rule.ID()] = rule
		reg.byName[rule.Name()] = rule
		reg.rules = append(reg.rules, rule)
	}

	// Sort by rule ID for consistent, deterministic output.
	slices.SortFunc(reg.rules, func(a, b Rule) int {
		return cmp.Compare(a.ID(), b.ID())
	})

	return reg, nil
}

// MustNewRegistry is like NewRegistry but panics on error.
// Intended for the fixed built-in rule set.
func MustNewRegistry(rules ...Rule) *Registry {
	reg, err := NewRegistry(rules...)
	if err != nil {
		panic(err)
	}
	return reg
}

// Get retrieves a rule by ID or name.
// It tries ID first, then falls back to name lookup.
func (r *Registry) Get(key string) (Rule, bool) {
	if rule, ok := r.byID[key]; ok {
		return rule, true
	}
	rule, ok := r.byName[key]
	return rule, ok
}

// Resolve returns the canonical ID for a rule ID or name.
func (r *Registry) Resolve(key string) (string, bool) {
	rule, ok := r.Get(key)
	if !ok {
		return "", false
	}
	return rule.ID(), true
}

// Rules returns all registered rules ordered by ID.
func (r *Registry) Rules() []Rule {
	return slices.Clone(r.rules)
}

// IDs returns all registered rule IDs in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.rules))
	for idx, rule := range r.rules {
		ids[idx] = rule.ID()
	}
	return ids
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.rules)
}
