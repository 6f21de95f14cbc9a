package lint

import "github.com/yaklabco/mdstyle/pkg/config"

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// Severity is the resolved severity for violations from this rule.
	Severity config.Severity

	// Options are the rule's options with defaults applied.
	Options Options
}

// ResolveRules determines which rules to run based on registry and config.
// Returns only enabled rules, in registry order.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule

	for _, rule := range registry.Rules() {
		rr := resolveRule(registry, rule, cfg)
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved
}

// resolveRule resolves the configuration for a single rule.
// Precedence (lowest to highest): rule default, config "default",
// per-rule "enabled", CLI --enable, CLI --disable.
func resolveRule(registry *Registry, rule Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:     rule,
		Enabled:  rule.DefaultEnabled(),
		Severity: rule.DefaultSeverity(),
	}

	if cfg == nil {
		rr.Options = rule.Schema().Defaults()
		return rr
	}

	if cfg.Default != nil {
		rr.Enabled = *cfg.Default
	}

	var raw map[string]any
	if ruleCfg, ok := cfg.Rules[rule.ID()]; ok {
		raw = ruleCfg.Options
		if ruleCfg.Enabled != nil {
			rr.Enabled = *ruleCfg.Enabled
		}
		if ruleCfg.Severity != nil {
			if sev := config.Severity(*ruleCfg.Severity); sev.IsValid() {
				rr.Severity = sev
			}
		}
	}
	rr.Options = rule.Schema().Resolve(raw)

	if matchesAny(registry, rule, cfg.EnableRules) {
		rr.Enabled = true
	}
	if matchesAny(registry, rule, cfg.DisableRules) {
		rr.Enabled = false
	}

	return rr
}

// matchesAny reports whether any key (ID or name) refers to rule.
func matchesAny(registry *Registry, rule Rule, keys []string) bool {
	for _, key := range keys {
		if id, ok := registry.Resolve(key); ok && id == rule.ID() {
			return true
		}
	}
	return false
}
