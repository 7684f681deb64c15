package cmd

import (
	"github.com/spf13/cobra"

	"manage-updates/internal/service/switcher"
)

// updateCmd reconciles update settings with the downtime calendar.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Suspend or resume security updates around downtimes.",
	Long: `Reconciles host update settings with the downtime calendar.

During an active downtime window, hosts with "security" are moved to
"security_off". Outside of any window, hosts left at "security_off" are
moved back to "security". Intended to run periodically from cron.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSwitcher(cmd, switcher.ModeUpdate)
	},
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(updateCmd)
}
