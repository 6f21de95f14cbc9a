package configloader

import (
	"maps"

	"github.com/yaklabco/mdstyle/pkg/config"
)

// merge layers override on top of base and returns a new Config.
//   - Scalars replace base when set to a non-zero value.
//   - Pointer fields replace base when non-nil.
//   - Rules merge per rule and per option.
//   - Slices replace base when non-nil.
//
// Strict can only be switched on by a higher layer.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override.Clone()
	}
	if override == nil {
		return base.Clone()
	}

	result := base.Clone()

	if override.Flavor != "" {
		result.Flavor = override.Flavor
	}
	if override.Default != nil {
		result.Default = config.BoolPtr(*override.Default)
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.RuleFormat != "" {
		result.RuleFormat = override.RuleFormat
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.RuleJobs != 0 {
		result.RuleJobs = override.RuleJobs
	}
	if override.Strict {
		result.Strict = true
	}

	result.Rules = mergeRules(result.Rules, override.Rules)

	if override.Ignore != nil {
		result.Ignore = append([]string(nil), override.Ignore...)
	}
	if override.EnableRules != nil {
		result.EnableRules = append([]string(nil), override.EnableRules...)
	}
	if override.DisableRules != nil {
		result.DisableRules = append([]string(nil), override.DisableRules...)
	}

	return result
}

func mergeRules(base, override map[string]config.RuleConfig) map[string]config.RuleConfig {
	result := make(map[string]config.RuleConfig, len(base)+len(override))
	maps.Copy(result, base)

	for key, rc := range override {
		existing, ok := result[key]
		if !ok {
			result[key] = rc
			continue
		}

		if rc.Enabled != nil {
			existing.Enabled = rc.Enabled
		}
		if rc.Severity != nil {
			existing.Severity = rc.Severity
		}
		if rc.Options != nil {
			opts := make(map[string]any, len(existing.Options)+len(rc.Options))
			maps.Copy(opts, existing.Options)
			maps.Copy(opts, rc.Options)
			existing.Options = opts
		}
		result[key] = existing
	}

	return result
}

// MergeAll merges configs in order; later configs take precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	var result *config.Config
	for _, cfg := range configs {
		result = merge(result, cfg)
	}
	return result
}
