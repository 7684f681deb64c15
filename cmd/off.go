package cmd

import (
	"github.com/spf13/cobra"

	"manage-updates/internal/service/switcher"
)

// offCmd switches updates off for every host.
var offCmd = &cobra.Command{
	Use:   "off",
	Short: "Switch updates off for all hosts.",
	Long:  `Sets the updates property to "none" in every host ENC file.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSwitcher(cmd, switcher.ModeOff)
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(offCmd)
}
