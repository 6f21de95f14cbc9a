package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdstyle/internal/configloader"
	"github.com/yaklabco/mdstyle/internal/logging"
	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/lint/rules"
	goldmarkparser "github.com/yaklabco/mdstyle/pkg/parser/goldmark"
	"github.com/yaklabco/mdstyle/pkg/reporter"
	"github.com/yaklabco/mdstyle/pkg/runner"
)

type checkFlags struct {
	format         string
	flavor         string
	ruleFormat     string
	ignore         []string
	enable         []string
	disable        []string
	extensions     []string
	jobs           int
	ruleJobs       int
	strict         bool
	noContext      bool
	compact        bool
	followSymlinks bool
}

func newCheckCommand(globals *globalFlags) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check Markdown files",
		Long: `Check Markdown files against the enabled style rules.

With no paths, every .md and .markdown file under the current directory is
checked. Hidden directories are skipped.`,
		Example: `  mdstyle check                     # Check the current directory
  mdstyle check docs/ README.md      # Check specific paths
  mdstyle check --format json        # Machine-readable output
  mdstyle check --disable MD013      # Skip the line-length rule
  mdstyle check --strict             # Fail on warnings too`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, globals, flags)
		},
	}

	addCheckFlags(cmd, flags)

	return cmd
}

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json, summary (default text)")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "", "Markdown flavor: commonmark, gfm (default commonmark)")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "",
		"rule identifier format in output: name, id, combined (default name)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs or names to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs or names to disable")
	cmd.Flags().StringSliceVar(&flags.extensions, "extensions", nil, "file extensions to check (default .md, .markdown)")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of files checked in parallel (0 = auto)")
	cmd.Flags().IntVar(&flags.ruleJobs, "rule-jobs", 0, "number of rules evaluated in parallel per file (default 1)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit non-zero on warnings")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "write JSON without indentation")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "follow symlinked directories")
}

// cliConfig builds the highest-precedence config layer from flags that were
// set explicitly.
func cliConfig(cmd *cobra.Command, flags *checkFlags) (*config.Config, error) {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
		if !cfg.Format.IsValid() {
			return nil, usageErrorf("invalid --format %q: must be text, json or summary", flags.format)
		}
	}
	if changed("flavor") {
		cfg.Flavor = config.Flavor(flags.flavor)
		if !cfg.Flavor.IsValid() {
			return nil, usageErrorf("invalid --flavor %q: must be commonmark or gfm", flags.flavor)
		}
	}
	if changed("rule-format") {
		cfg.RuleFormat = config.RuleFormat(flags.ruleFormat)
		if !cfg.RuleFormat.IsValid() {
			return nil, usageErrorf("invalid --rule-format %q: must be name, id or combined", flags.ruleFormat)
		}
	}
	if changed("ignore") {
		cfg.Ignore = flags.ignore
	}
	if changed("jobs") {
		if flags.jobs < 0 {
			return nil, usageErrorf("--jobs must be >= 0")
		}
		cfg.Jobs = flags.jobs
	}
	if changed("rule-jobs") {
		if flags.ruleJobs < 1 {
			return nil, usageErrorf("--rule-jobs must be >= 1")
		}
		cfg.RuleJobs = flags.ruleJobs
	}

	cfg.EnableRules = flags.enable
	cfg.DisableRules = flags.disable
	cfg.Strict = flags.strict

	return cfg, nil
}

func runCheck(cmd *cobra.Command, args []string, globals *globalFlags, flags *checkFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cliCfg, err := cliConfig(cmd, flags)
	if err != nil {
		return err
	}

	registry := rules.NewRegistry()

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: globals.configPath,
		CLIConfig:    cliCfg,
		Registry:     registry,
	})
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	cfg := loadResult.Config

	logger.Debug("configuration loaded",
		logging.FieldWorkingDir, workDir,
		logging.FieldPaths, loadResult.LoadedFrom,
		logging.FieldFlavor, cfg.Flavor,
		logging.FieldFormat, cfg.Format,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldStrict, cfg.Strict,
	)

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return usageErrorf("%v", err)
	}

	engine := lint.NewEngine(goldmarkparser.New(string(cfg.Flavor)), registry)
	engine.Jobs = cfg.RuleJobs

	result, err := runner.New(lint.NewPipeline(engine)).Run(ctx, runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		Extensions:     flags.extensions,
		ExcludeGlobs:   cfg.Ignore,
		FollowSymlinks: flags.followSymlinks,
		Jobs:           cfg.Jobs,
		Config:         cfg,
	})
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       globals.color,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		Compact:     flags.compact,
		RuleFormat:  cfg.RuleFormat,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	return resultError(result, cfg.Strict)
}
