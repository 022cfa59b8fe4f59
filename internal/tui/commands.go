package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/watchfire-io/calllog/internal/config"
	"github.com/watchfire-io/calllog/internal/models"
	"github.com/watchfire-io/calllog/internal/watcher"
)

func loadRecordingCmd(path string) tea.Cmd {
	return func() tea.Msg {
		rec, err := config.LoadRecording(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		log.Debug().Str("component", "tui").Str("path", path).Int("calls", len(rec.Calls)).Msg("recording loaded")
		return RecordingLoadedMsg{Path: path, Recording: rec}
	}
}

func listRecordingsCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		recordings, err := config.ListRecordings(dir)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return RecordingsLoadedMsg{Dir: dir, Recordings: recordings}
	}
}

// startWatchCmd starts the watcher and forwards its events to the program
// until ctx is cancelled.
func startWatchCmd(ctx context.Context, w *watcher.Watcher, dir string, program *programRef) tea.Cmd {
	return func() tea.Msg {
		w.Start()
		if dir != "" && config.FileExists(dir) {
			if err := w.WatchDir(dir); err != nil {
				log.Warn().Str("component", "tui").Err(err).Msg("failed to watch recordings dir")
			}
		}

		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case ev := <-w.Events():
					switch ev.Type {
					case watcher.EventRecordingChanged:
						program.Send(RecordingChangedMsg{Path: ev.Path})
					case watcher.EventRecordingRemoved:
						program.Send(RecordingRemovedMsg{Path: ev.Path})
					case watcher.EventRecordingsDirChanged:
						program.Send(RecordingsDirChangedMsg{})
					}
				}
			}
		}()

		return nil
	}
}

// watchRecordingCmd moves the watch from the previously open recording to path.
func watchRecordingCmd(w *watcher.Watcher, prev, path string) tea.Cmd {
	return func() tea.Msg {
		if prev != "" && prev != path {
			w.UnwatchRecording(prev)
		}
		if err := w.WatchRecording(path); err != nil {
			return ErrorMsg{Err: err}
		}
		return nil
	}
}

func saveSettingsCmd(settings *models.Settings) tea.Cmd {
	return func() tea.Msg {
		if err := config.SaveSettings(settings); err != nil {
			return ErrorMsg{Err: errors.Wrap(err, "failed to save settings")}
		}
		log.Info().Str("component", "tui").Msg("settings saved")
		return SettingsSavedMsg{Settings: settings}
	}
}

func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}

func clearSavedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearSavedMsg{}
	})
}
