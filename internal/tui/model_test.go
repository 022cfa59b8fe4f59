package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/watchfire-io/calllog/internal/models"
)

func newTestModel(t *testing.T, path string) Model {
	t.Helper()
	m := NewModel(Options{Path: path, RecordingsDir: t.TempDir()}, &programRef{}, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func loadSample(t *testing.T, m Model, path string) Model {
	t.Helper()
	rec := models.NewRecording("rec-1", "checkout")
	rec.Calls = sampleLog()
	updated, _ := m.Update(RecordingLoadedMsg{Path: path, Recording: rec})
	return updated.(Model)
}

func TestModelStartsOnRecordingsWithoutPath(t *testing.T) {
	m := newTestModel(t, "")
	require.Equal(t, modeRecordings, m.mode)

	m = loadSample(t, m, "/tmp/checkout.yaml")
	require.Equal(t, modeCallLog, m.mode)
	require.Len(t, m.callLog.Log(), 3)
	require.Contains(t, m.View(), "checkout")
}

func TestModelHoverUpdatesPreview(t *testing.T) {
	m := loadSample(t, newTestModel(t, "/tmp/checkout.yaml"), "/tmp/checkout.yaml")

	layout := computeLayout(100, 30, m.splitRatio)
	// Left border plus the first trigger column of the first header row.
	x := 1 + (layout.leftWidth - 2) - triggersWidth
	updated, _ := m.Update(tea.MouseMsg{X: x, Y: 2, Action: tea.MouseActionMotion})
	m = updated.(Model)

	entry, phase := m.preview.Target()
	require.NotNil(t, entry)
	require.Equal(t, 1, entry.ID)
	require.Equal(t, models.PhaseBefore, phase)
	require.Contains(t, m.preview.View(), "Before")

	// Moving into the preview panel leaves the trigger.
	updated, _ = m.Update(tea.MouseMsg{X: 90, Y: 5, Action: tea.MouseActionMotion})
	m = updated.(Model)
	entry, _ = m.preview.Target()
	require.Nil(t, entry)
}

func TestModelReloadRebindsPreview(t *testing.T) {
	m := loadSample(t, newTestModel(t, "/tmp/checkout.yaml"), "/tmp/checkout.yaml")
	m.callLog.CyclePreview()

	m = loadSample(t, m, "/tmp/checkout.yaml")
	entry, phase := m.preview.Target()
	require.Same(t, m.callLog.Log()[0], entry)
	require.Equal(t, models.PhaseBefore, phase)
}

func TestModelRecordingChangedReloads(t *testing.T) {
	m := loadSample(t, newTestModel(t, "/tmp/checkout.yaml"), "/tmp/checkout.yaml")

	_, cmd := m.Update(RecordingChangedMsg{Path: "/tmp/checkout.yaml"})
	require.NotNil(t, cmd)

	_, cmd = m.Update(RecordingChangedMsg{Path: "/tmp/other.yaml"})
	require.Nil(t, cmd)
}

func TestModelSettingsSavedAppliesHoverPolicy(t *testing.T) {
	m := loadSample(t, newTestModel(t, "/tmp/checkout.yaml"), "/tmp/checkout.yaml")
	require.True(t, m.callLog.hoverHidden)

	settings := models.NewSettings()
	settings.Previews.HoverHidden = false
	updated, cmd := m.Update(SettingsSavedMsg{Settings: settings})
	m = updated.(Model)

	require.NotNil(t, cmd)
	require.False(t, m.callLog.hoverHidden)
	require.True(t, m.showSaved)
}

func TestModelErrorIsShownAndCleared(t *testing.T) {
	m := newTestModel(t, "")

	updated, cmd := m.Update(ErrorMsg{Err: errors.New("boom")})
	m = updated.(Model)
	require.NotNil(t, cmd)
	require.Contains(t, m.View(), "boom")

	updated, _ = m.Update(ClearErrorMsg{})
	m = updated.(Model)
	require.Nil(t, m.err)
}

func TestModelEscReturnsToRecordings(t *testing.T) {
	m := loadSample(t, newTestModel(t, "/tmp/checkout.yaml"), "/tmp/checkout.yaml")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	require.Equal(t, modeRecordings, m.mode)
	require.NotNil(t, cmd)
}

func TestModelHelpOverlay(t *testing.T) {
	m := newTestModel(t, "")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = updated.(Model)
	require.Equal(t, overlayHelp, m.activeOverlay)
	require.Contains(t, m.View(), "Keyboard Shortcuts")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	require.Equal(t, overlayNone, m.activeOverlay)
}

func TestModelTooSmall(t *testing.T) {
	m := NewModel(Options{}, &programRef{}, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	require.Contains(t, updated.(Model).View(), "Terminal too small")
}

func TestComputeLayoutKeepsMinimumWidths(t *testing.T) {
	layout := computeLayout(80, 24, 0.95)
	require.GreaterOrEqual(t, layout.rightWidth, minPanelWidth)
	require.Equal(t, 79, layout.leftWidth+layout.rightWidth)
	require.Equal(t, 22, layout.contentHeight)
}

func TestModelOverlayBlocksHover(t *testing.T) {
	m := loadSample(t, newTestModel(t, "/tmp/checkout.yaml"), "/tmp/checkout.yaml")
	layout := computeLayout(100, 30, m.splitRatio)
	trigger := tea.MouseMsg{X: 1 + (layout.leftWidth - 2) - triggersWidth, Y: 2, Action: tea.MouseActionMotion}

	updated, _ := m.Update(trigger)
	m = updated.(Model)
	entry, _ := m.preview.Target()
	require.NotNil(t, entry)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = updated.(Model)
	entry, _ = m.preview.Target()
	require.NotNil(t, entry)

	// Pointer motion under the overlay leaves the trigger and starts no new hover.
	updated, _ = m.Update(trigger)
	m = updated.(Model)
	entry, _ = m.preview.Target()
	require.Nil(t, entry)
}
