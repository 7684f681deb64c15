// Package cmd implements the manage-updates CLI commands.
package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"manage-updates/internal/config"
	"manage-updates/internal/domain/updates"
	"manage-updates/internal/lock"
	"manage-updates/internal/logger"
	"manage-updates/internal/repository/enc"
	"manage-updates/internal/service/switcher"
	"manage-updates/internal/version"
)

// Exit codes, kept stable because monitoring scripts match on them.
const (
	exitFailure      = 1
	exitLockOrWindow = 2
	exitBadInput     = 3
)

// errUsage is returned when no subcommand was given.
var errUsage = errors.New("one of the commands on, off, update or status is required")

var (
	// cfgPath stores the settings file path.
	cfgPath string
	// encDir overrides the ENC directory from the settings file.
	encDir string
	// logFile overrides the log file from the settings file.
	logFile string
	// quiet suppresses the statistics report on stdout.
	quiet bool
	// verbose raises the console log level to info.
	verbose bool
	// debug raises the console log level to debug, superseding verbose.
	debug bool

	// rootCmd represents the base command of the tool.
	rootCmd = &cobra.Command{
		Use:   "manage-updates",
		Short: "Switch OS updates on or off by editing Puppet ENC files.",
		Long: `Switches operating-system updates on or off for a fleet of hosts.

The tool edits the per-host ENC YAML files consumed by the Puppet agent,
flipping the properties.updates value between "security", "security_off"
and "none". Files are written back only when the value actually changes,
and nothing is changed while a configured downtime window is active.`,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return errUsage
		},
	}
)

// Execute runs the manage-updates CLI and exits with a mode-specific code on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Errorf(context.Background(), "%v", err)
		os.Exit(exitCode(err))
	}
}

// runSwitcher wires the flags into one switcher run for the given mode.
func runSwitcher(cmd *cobra.Command, mode switcher.Mode) error {
	// Setup graceful shutdown handling.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	settings, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	// Command-line overrides beat the settings file.
	if encDir != "" {
		settings.ENCDirectory = encDir
	}

	if logFile != "" {
		settings.LogFile = logFile
	}

	configureLogger(ctx, settings)

	return mode.Run(ctx, &switcher.Options{
		Settings: settings,
		Quiet:    quiet,
		Out:      cmd.OutOrStdout(),
	})
}

// configureLogger applies settings and verbosity flags to the global logger.
// An unusable log file is reported but never aborts the run.
func configureLogger(ctx context.Context, settings *config.Settings) {
	level := zapcore.WarnLevel
	if parsed, ok := logger.ParseLogLevel(settings.LogLevel); ok {
		level = parsed
	}

	switch {
	case debug:
		level = zapcore.DebugLevel
	case verbose:
		level = zapcore.InfoLevel
	}

	logger.SetLevel(level)

	if settings.LogFile == "" {
		return
	}

	option, err := logger.WithFileSink(settings.LogFile)
	if err != nil {
		logger.Errorf(ctx, "log file unavailable: %v", err)
		return
	}

	logger.SetLogger(logger.New(nil, option))
}

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	switch {
	case errors.Is(err, lock.ErrBusy),
		errors.Is(err, updates.ErrInvalidWindow):
		return exitLockOrWindow
	case errors.Is(err, enc.ErrNotFound),
		errors.Is(err, enc.ErrMalformed),
		errors.Is(err, updates.ErrNoUpdatesKey),
		errors.Is(err, updates.ErrBadDocument),
		errors.Is(err, config.ErrMalformed),
		errors.Is(err, os.ErrNotExist),
		errors.Is(err, os.ErrPermission):
		return exitBadInput
	default:
		return exitFailure
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgPath, "config", "c", config.DefaultSettingsPath, "path to settings file")
	flags.StringVarP(&encDir, "yamldir", "y", "", "directory with per-host ENC YAML files")
	flags.StringVarP(&logFile, "logfile", "l", "", "append logs to this file")
	flags.BoolVarP(&quiet, "quiet", "q", false, "suppress the statistics report of the status command")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	flags.BoolVarP(&debug, "debug", "d", false, "debug logging (supersedes --verbose)")
}
