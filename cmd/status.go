package cmd

import (
	"github.com/spf13/cobra"

	"manage-updates/internal/service/switcher"
)

// statusCmd reports the current update settings without changing anything.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report the current update settings of all hosts.",
	Long: `Prints aggregate statistics about host update settings to stdout.

Strictly read-only: no ENC file is ever written by this command.
Per-host lines are logged at verbose level.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSwitcher(cmd, switcher.ModeStatus)
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(statusCmd)
}
