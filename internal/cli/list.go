package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/calllog/internal/config"
	"github.com/watchfire-io/calllog/internal/models"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recordings",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, dir, err := loadSettingsAndDir()
		if err != nil {
			return err
		}
		return printRecordings(cmd.OutOrStdout(), dir)
	},
}

// recordingOutcome groups a recording by its worst call status.
func recordingOutcome(r *models.RecordingSummary) string {
	switch {
	case r.Counts[models.StatusError] > 0:
		return "Failed"
	case r.Counts[models.StatusInProgress] > 0, r.Counts[models.StatusPaused] > 0:
		return "Running"
	default:
		return "Done"
	}
}

func printRecordings(out io.Writer, dir string) error {
	recordings, err := config.ListRecordings(dir)
	if err != nil {
		return err
	}

	if len(recordings) == 0 {
		fmt.Fprintf(out, "No recordings in %s. Run 'calllog new <name>' to create one.\n", dir)
		return nil
	}

	groups := map[string][]*models.RecordingSummary{}
	for _, r := range recordings {
		outcome := recordingOutcome(r)
		groups[outcome] = append(groups[outcome], r)
	}

	printRecordingGroup(out, "Failed", groups["Failed"])
	printRecordingGroup(out, "Running", groups["Running"])
	printRecordingGroup(out, "Done", groups["Done"])
	return nil
}

func printRecordingGroup(out io.Writer, name string, recordings []*models.RecordingSummary) {
	if len(recordings) == 0 {
		return
	}

	fmt.Fprintf(out, "\n%s (%d):\n", name, len(recordings))
	for _, r := range recordings {
		var counts []string
		for _, s := range models.Statuses {
			if n := r.Counts[s]; n > 0 {
				counts = append(counts, statusBadges[s].Render(fmt.Sprintf("%d %s", n, s)))
			}
		}
		created := "unknown"
		if !r.CreatedAt.IsZero() {
			created = r.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(out, "  %s  %s  %s\n",
			styleValue.Render(r.Name),
			styleLabel.Render(created),
			strings.Join(counts, ", "),
		)
	}
}
