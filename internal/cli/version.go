package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdstyle/internal/logging"
)

func newVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash and build date of mdstyle.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logging.FromContext(cmd.Context()).Debug("version requested",
				logging.FieldVersion, info.Version,
				logging.FieldCommit, info.Commit,
				logging.FieldBuilt, info.Date,
			)

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "mdstyle %s (commit %s, built %s)\n",
				info.Version, info.Commit, info.Date)
			return err
		},
	}
}
