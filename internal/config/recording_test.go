package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/watchfire-io/calllog/internal/models"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadRecording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkout.yaml")
	writeFile(t, path, `
version: 1
recording_id: abc
calls:
  - id: 1
    title: navigate
    params:
      url: https://example.com
    status: done
    duration: 120
    snapshots: {before: true, action: false, after: true}
  - id: 2
    title: click
    params:
      selector: text=Buy
    status: in-progress
    snapshots: {before: true}
    reveal: true
`)

	rec, err := LoadRecording(path)
	require.NoError(t, err)
	require.Equal(t, "checkout", rec.Name)
	require.Len(t, rec.Calls, 2)
	require.Equal(t, "https://example.com", rec.Calls[0].Params.URL)
	require.Equal(t, models.StatusInProgress, rec.Calls[1].Status)
	require.True(t, rec.Calls[1].Reveal)
}

func TestLoadRecordingRejectsUnknownStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "calls:\n  - id: 1\n    title: goto\n    status: skipped\n")

	_, err := LoadRecording(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown call status")
}

func TestLoadRecordingRejectsDuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.yaml")
	writeFile(t, path, "calls:\n  - id: 1\n    title: a\n    status: done\n  - id: 1\n    title: b\n    status: done\n")

	_, err := LoadRecording(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate call id 1")
}

func TestSaveAndLoadRecording(t *testing.T) {
	path := RecordingFile(t.TempDir(), "new")
	rec := models.NewRecording("rec-1", "new")
	ms := 1500.0
	rec.Calls = append(rec.Calls, &models.CallLog{
		ID:       7,
		Title:    "fill",
		Status:   models.StatusError,
		Duration: &ms,
		Error:    "timeout",
	})

	require.NoError(t, SaveRecording(path, rec))
	require.False(t, FileExists(path+".tmp"))

	loaded, err := LoadRecording(path)
	require.NoError(t, err)
	require.Equal(t, "rec-1", loaded.RecordingID)
	require.Len(t, loaded.Calls, 1)
	require.Equal(t, "timeout", loaded.Calls[0].Error)
	require.Equal(t, 1500.0, *loaded.Calls[0].Duration)
}

func TestListRecordings(t *testing.T) {
	dir := t.TempDir()

	older := models.NewRecording("old", "older")
	older.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	older.Calls = []*models.CallLog{{ID: 1, Status: models.StatusDone}}
	require.NoError(t, SaveRecording(RecordingFile(dir, "older"), older))

	newer := models.NewRecording("new", "newer")
	newer.CreatedAt = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, SaveRecording(RecordingFile(dir, "newer"), newer))

	writeFile(t, filepath.Join(dir, "broken.yaml"), "calls: [")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	summaries, err := ListRecordings(dir)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	require.Equal(t, "newer", summaries[0].Name)
	require.Equal(t, "older", summaries[1].Name)
	require.Equal(t, 1, summaries[1].Counts[models.StatusDone])
}

func TestListRecordingsMissingDir(t *testing.T) {
	summaries, err := ListRecordings(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	require.Empty(t, summaries)
}
