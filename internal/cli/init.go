package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdstyle/internal/logging"
	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/lint/rules"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

const defaultConfigFile = ".mdstyle.yml"

const configHeader = `# mdstyle configuration
# Run "mdstyle rules" for the full list of rules and options.`

type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .mdstyle.yml configuration file",
		Long: `Create a configuration file in the current directory.

The minimal file only sets the flavor. With --full every rule is listed with
its default state, severity and options.`,
		Example: `  mdstyle init                     # Create a minimal .mdstyle.yml
  mdstyle init --full              # List every rule and option
  mdstyle init -o docs/mdstyle.yml # Write to another path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "include every rule with its defaults")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.FromContext(cmd.Context())

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return usageErrorf("file %q already exists; use --force to overwrite", flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	cfg := config.NewConfig()
	if flags.full {
		cfg.Default = config.BoolPtr(true)
		cfg.Rules = templateRules(rules.NewRegistry().Infos())
	}

	content, err := cfg.ToYAMLWithHeader(configHeader)
	if err != nil {
		return fmt.Errorf("generate config: %w", err)
	}

	if err := os.WriteFile(absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", flags.output)
	return err
}

// templateRules spells out the default configuration of every rule.
func templateRules(infos []lint.Info) map[string]config.RuleConfig {
	out := make(map[string]config.RuleConfig, len(infos))
	for _, info := range infos {
		rc := config.RuleConfig{
			Enabled:  config.BoolPtr(info.Enabled),
			Severity: config.StringPtr(info.Severity),
		}
		if len(info.Options) > 0 {
			rc.Options = make(map[string]any, len(info.Options))
			for _, opt := range info.Options {
				rc.Options[opt.Name] = opt.Default
			}
		}
		out[info.ID] = rc
	}
	return out
}
