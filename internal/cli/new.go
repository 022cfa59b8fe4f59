package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/watchfire-io/calllog/internal/config"
	"github.com/watchfire-io/calllog/internal/models"
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create an empty recording",
	Args:  cobra.ExactArgs(1),
	RunE:  runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	_, dir, err := loadSettingsAndDir()
	if err != nil {
		return err
	}

	name := strings.TrimSpace(args[0])
	if name == "" || strings.ContainsAny(name, `/\`) {
		return errors.Errorf("invalid recording name: %q", args[0])
	}

	path := config.RecordingFile(dir, name)
	if config.FileExists(path) {
		return errors.Errorf("recording already exists: %s", path)
	}

	rec := models.NewRecording(uuid.NewString(), strings.TrimSuffix(name, config.RecordingExt))
	if err := config.SaveRecording(path, rec); err != nil {
		return err
	}
	log.Info().Str("component", "cli").Str("path", path).Str("recording_id", rec.RecordingID).Msg("recording created")

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styleSuccess.Render("Created"), styleValue.Render(path))
	return nil
}
