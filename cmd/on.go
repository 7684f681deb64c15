package cmd

import (
	"github.com/spf13/cobra"

	"manage-updates/internal/service/switcher"
)

// onCmd switches security updates on for every host.
var onCmd = &cobra.Command{
	Use:   "on",
	Short: "Switch security updates on for all hosts.",
	Long: `Sets the updates property to "security" in every host ENC file.

Refused with a warning while a configured downtime window is active,
because updates must not come back in the middle of a maintenance.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSwitcher(cmd, switcher.ModeOn)
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(onCmd)
}
