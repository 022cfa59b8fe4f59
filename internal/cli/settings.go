package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/calllog/internal/config"
	"github.com/watchfire-io/calllog/internal/models"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Show global settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		printSettings(cmd, settings)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a global setting",
	Long: `Change a global setting.

Keys: ` + strings.Join(config.SettingKeys, ", "),
	Args: cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return config.SettingKeys, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		if err := config.SetSetting(settings, args[0], args[1]); err != nil {
			return err
		}
		if err := config.SaveSettings(settings); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s\n", styleSuccess.Render("Saved"), args[0], args[1])
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
}

func printSettings(cmd *cobra.Command, settings *models.Settings) {
	dir, _ := config.ResolveRecordingsDir(settings)
	logFile, _ := config.ResolveLogFile(settings)

	rows := []struct {
		key   string
		value string
	}{
		{"recordings_dir", dir},
		{"follow", fmt.Sprint(settings.Follow)},
		{"previews.hover_hidden", fmt.Sprint(settings.Previews.HoverHidden)},
		{"logging.level", settings.Logging.Level},
		{"logging.file", logFile},
	}

	out := cmd.OutOrStdout()
	for _, r := range rows {
		fmt.Fprintf(out, "  %s %s\n", styleLabel.Render(fmt.Sprintf("%-22s", r.key)), styleValue.Render(r.value))
	}
}
