// Package cli implements the calllog CLI commands.
package cli

import (
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/watchfire-io/calllog/internal/config"
	"github.com/watchfire-io/calllog/internal/logging"
	"github.com/watchfire-io/calllog/internal/models"
)

var (
	flagLogLevel string
	flagLogFile  string

	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "calllog",
	Short: "Browse recorded call logs",
	Long: `Calllog displays recorded browser automation calls.
Each call shows its status, duration and parameters, and expands to show
its messages. Snapshot icons preview the page before, during and after a call.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
			logCloser = nil
		}
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "log file (default ~/.calllog/calllog.log)")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(viewCmd)
}

// setupLogging installs the file logger. Flags override settings.
func setupLogging(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	level := settings.Logging.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	path := flagLogFile
	if path == "" {
		if path, err = config.ResolveLogFile(settings); err != nil {
			return err
		}
	}

	closer, err := logging.Setup(level, path)
	if err != nil {
		return err
	}
	logCloser = closer
	log.Debug().Str("component", "cli").Str("command", cmd.CommandPath()).Msg("start")
	return nil
}

// loadSettingsAndDir loads settings and resolves the recordings directory.
func loadSettingsAndDir() (*models.Settings, string, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, "", err
	}
	dir, err := config.ResolveRecordingsDir(settings)
	if err != nil {
		return nil, "", err
	}
	return settings, dir, nil
}
