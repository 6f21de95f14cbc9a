package configloader

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/mdstyle/pkg/config"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MDSTYLE_"

type envVar struct {
	suffix      string
	description string
	apply       func(cfg *config.Config, value string) error
}

//nolint:gochecknoglobals // read-only lookup table
var envVars = []envVar{
	{
		suffix:      "FLAVOR",
		description: "Markdown flavor: commonmark or gfm",
		apply: func(cfg *config.Config, value string) error {
			cfg.Flavor = config.Flavor(value)
			return nil
		},
	},
	{
		suffix:      "FORMAT",
		description: "Output format: text, json or summary",
		apply: func(cfg *config.Config, value string) error {
			cfg.Format = config.OutputFormat(value)
			return nil
		},
	},
	{
		suffix:      "JOBS",
		description: "Number of files checked in parallel (0 = auto)",
		apply: func(cfg *config.Config, value string) error {
			jobs, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid integer %q", value)
			}
			cfg.Jobs = jobs
			return nil
		},
	},
	{
		suffix:      "IGNORE",
		description: "Comma-separated glob patterns to skip",
		apply: func(cfg *config.Config, value string) error {
			cfg.Ignore = splitList(value)
			return nil
		},
	},
	{
		suffix:      "STRICT",
		description: "Fail on warnings: true or false",
		apply: func(cfg *config.Config, value string) error {
			strict, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", value)
			}
			cfg.Strict = strict
			return nil
		},
	},
}

// LoadFromEnv applies MDSTYLE_* overrides from the process environment.
func LoadFromEnv(cfg *config.Config) error {
	return applyEnv(cfg, os.Getenv)
}

func applyEnv(cfg *config.Config, getenv func(string) string) error {
	if cfg == nil {
		return nil
	}

	for _, ev := range envVars {
		name := EnvPrefix + ev.suffix
		value := strings.TrimSpace(getenv(name))
		if value == "" {
			continue
		}
		if err := ev.apply(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

// ListEnvVars returns the supported environment variables and their meaning.
func ListEnvVars() map[string]string {
	out := make(map[string]string, len(envVars))
	for _, ev := range envVars {
		out[EnvPrefix+ev.suffix] = ev.description
	}
	return out
}

// splitList parses a comma-separated list, dropping empty entries.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	for idx := range parts {
		parts[idx] = strings.TrimSpace(parts[idx])
	}
	return slices.DeleteFunc(parts, func(s string) bool { return s == "" })
}
