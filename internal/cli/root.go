// Package cli provides the cobra command tree for mdstyle.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdstyle/internal/logging"
	"github.com/yaklabco/mdstyle/internal/ui/pretty"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root mdstyle command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	globals := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "mdstyle",
		Short: "A Markdown style checker",
		Long: `mdstyle checks Markdown documents against a fixed set of style rules
covering headings, lists, whitespace, line length, links, blockquotes and
fenced code blocks.

Each rule reports the lines it flags. Rules can be enabled, disabled and
tuned through .mdstyle.yml, MDSTYLE_* environment variables and flags.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !pretty.ValidColorMode(globals.color) {
				return usageErrorf("invalid --color %q: must be auto, always or never", globals.color)
			}

			logger := logging.FromContext(cmd.Context())
			if globals.debug {
				logger.SetLevel(log.DebugLevel)
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&globals.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&globals.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&globals.color, "color", pretty.ColorAuto,
		"colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: ExitInvalidUsage, Err: err}
	})

	rootCmd.AddCommand(newCheckCommand(globals))
	rootCmd.AddCommand(newRulesCommand(globals))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter(colorModeFromArgs(os.Args[1:]), os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}

// colorModeFromArgs peeks at --color before cobra parses flags, so help
// output can be styled consistently.
func colorModeFromArgs(args []string) string {
	for idx, arg := range args {
		if arg == "--color" && idx+1 < len(args) {
			return args[idx+1]
		}
		if mode, ok := strings.CutPrefix(arg, "--color="); ok {
			return mode
		}
	}
	return pretty.ColorAuto
}

func usageErrorf(format string, args ...any) error {
	return &ExitError{Code: ExitInvalidUsage, Err: fmt.Errorf(format, args...)}
}
