// Package configloader resolves the effective mdstyle configuration from
// system, user, project and explicit files, MDSTYLE_* environment
// variables and command-line flags.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/mdstyle/internal/logging"
	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
)

// ErrInvalidConfig wraps every error caused by bad configuration content,
// as opposed to I/O failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory the project search starts from.
	// Defaults to the current working directory.
	WorkingDir string

	// ExplicitPath is the file named by --config. It is loaded after the
	// discovered files.
	ExplicitPath string

	IgnoreSystemConfig  bool
	IgnoreUserConfig    bool
	IgnoreProjectConfig bool
	IgnoreEnv           bool

	// CLIConfig holds flag values. It takes highest precedence.
	CLIConfig *config.Config

	// Registry resolves rule names and validates rule options.
	// Validation of rule keys is skipped when nil.
	Registry *lint.Registry
}

// LoadResult contains the resolved configuration and where it came from.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were loaded, lowest precedence first.
	LoadedFrom []string

	// Warnings contains non-fatal findings.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence, lowest to highest:
//  1. Defaults
//  2. System config (/etc/mdstyle/config.yaml)
//  3. User config ($XDG_CONFIG_HOME/mdstyle/config.yaml)
//  4. Project config (.mdstyle.yml upward search)
//  5. Explicit config (opts.ExplicitPath)
//  6. Environment variables (MDSTYLE_*)
//  7. CLI flags (opts.CLIConfig)
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	logger := logging.FromContext(ctx)

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []struct {
		source string
		path   string
		skip   bool
	}{
		{"system", paths.System, opts.IgnoreSystemConfig},
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig || opts.ExplicitPath != ""},
		{"explicit", paths.Explicit, false},
	}

	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}

		fileCfg, err := loadConfigFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.source, err)
		}

		normalizeRuleKeys(fileCfg, opts.Registry, result)

		validation := ValidateWithFile(fileCfg, opts.Registry, layer.path)
		if !validation.Valid() {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, &validation.Errors[0])
		}
		for _, w := range validation.Warnings {
			result.Warnings = append(result.Warnings, w.Error())
		}

		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)

		logger.Debug("loaded config",
			logging.FieldSource, layer.source,
			logging.FieldConfig, layer.path,
		)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	normalizeRuleKeys(cfg, opts.Registry, result)

	// Rule keys were already checked per file; only report the merged
	// scalar and flag problems here.
	validation := Validate(cfg, opts.Registry)
	if !validation.Valid() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, &validation.Errors[0])
	}
	for _, w := range validation.Warnings {
		if w.Field == "rules" {
			result.Warnings = append(result.Warnings, w.Error())
		}
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile reads and parses a YAML configuration file.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	return cfg, nil
}

// normalizeRuleKeys rewrites rule names such as "no-trailing-spaces" to
// their IDs. Unknown keys are kept so validation can warn about them.
// When a rule appears under both its ID and its name, the name entry wins
// and a warning is recorded.
func normalizeRuleKeys(cfg *config.Config, registry *lint.Registry, result *LoadResult) {
	if registry == nil || len(cfg.Rules) == 0 {
		return
	}

	normalized := make(map[string]config.RuleConfig, len(cfg.Rules))
	seen := make(map[string]string)

	for _, key := range sortedKeys(cfg.Rules) {
		ruleCfg := cfg.Rules[key]

		id, ok := registry.Resolve(key)
		if !ok {
			normalized[key] = ruleCfg
			continue
		}

		if original, dup := seen[id]; dup {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("duplicate rule configuration: %q and %q both refer to %s; using %q",
					original, key, id, key))
		}

		seen[id] = key
		normalized[id] = ruleCfg
	}

	cfg.Rules = normalized
}
