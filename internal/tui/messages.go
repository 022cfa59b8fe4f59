package tui

import (
	"github.com/watchfire-io/calllog/internal/models"
)

// RecordingLoadedMsg carries a recording read from disk.
type RecordingLoadedMsg struct {
	Path      string
	Recording *models.Recording
}

// RecordingsLoadedMsg carries the recordings directory listing.
type RecordingsLoadedMsg struct {
	Dir        string
	Recordings []*models.RecordingSummary
}

// RecordingChangedMsg signals the open recording changed on disk.
type RecordingChangedMsg struct {
	Path string
}

// RecordingRemovedMsg signals the open recording was deleted.
type RecordingRemovedMsg struct {
	Path string
}

// RecordingsDirChangedMsg signals a recording was added, changed, or removed
// in the recordings directory.
type RecordingsDirChangedMsg struct{}

// SettingsSavedMsg signals settings were written.
type SettingsSavedMsg struct {
	Settings *models.Settings
}

// ErrorMsg carries an error to display.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}

// ClearSavedMsg clears the "Saved" indicator.
type ClearSavedMsg struct{}

// EditorFinishedMsg carries the result of an external editor session.
type EditorFinishedMsg struct {
	Path string
	Err  error
}
