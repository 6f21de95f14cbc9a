package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdstyle/internal/ui/pretty"
	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/lint/rules"
)

const formatJSON = "json"

type rulesFlags struct {
	format string
}

func newRulesCommand(globals *globalFlags) *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available style rules",
		Long: `List every built-in rule with its ID, name, tags, default state
and configurable options.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos := rules.NewRegistry().Infos()
			out := cmd.OutOrStdout()

			switch flags.format {
			case formatJSON:
				return writeRulesJSON(out, infos)
			case "text", "":
				styles := pretty.NewStyles(pretty.IsColorEnabled(globals.color, out))
				width := pretty.TerminalWidth(out, pretty.DefaultWidth)
				_, err := io.WriteString(out, styles.FormatRuleList(infos, width))
				return err
			default:
				return usageErrorf("invalid --format %q: must be text or json", flags.format)
			}
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")

	return cmd
}

func writeRulesJSON(w io.Writer, infos []lint.Info) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encode rules: %w", err)
	}
	return nil
}
