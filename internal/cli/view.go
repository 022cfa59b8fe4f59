package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/watchfire-io/calllog/internal/tui"
)

var viewFollow bool

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Open the interactive call log viewer",
	Long: `Open the interactive call log viewer.

Without a file the viewer starts on the list of recordings in the recordings
directory. When stdout is not a terminal the call log is printed instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().BoolVarP(&viewFollow, "follow", "f", true, "reload the recording when it changes on disk")
}

func runView(cmd *cobra.Command, args []string) error {
	settings, dir, err := loadSettingsAndDir()
	if err != nil {
		return err
	}

	follow := settings.Follow
	if cmd.Flags().Changed("follow") {
		follow = viewFollow
	}

	var path string
	if len(args) == 1 {
		path = args[0]
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		if path == "" {
			return printRecordings(cmd.OutOrStdout(), dir)
		}
		return printRecording(cmd.OutOrStdout(), path, defaultWidth, false)
	}

	return tui.Run(tui.Options{
		Path:          path,
		RecordingsDir: dir,
		Settings:      settings,
		Follow:        follow,
	})
}
