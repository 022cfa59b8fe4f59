package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/watchfire-io/calllog/internal/models"
)

func sampleSummaries(n int) []*models.RecordingSummary {
	out := make([]*models.RecordingSummary, n)
	for i := range out {
		out[i] = &models.RecordingSummary{
			Path:   "/tmp/r.yaml",
			Name:   string(rune('a' + i)),
			Calls:  2,
			Counts: map[models.Status]int{models.StatusDone: 1, models.StatusError: 1},
		}
	}
	return out
}

func TestRecordingListStates(t *testing.T) {
	l := NewRecordingList()
	l.SetSize(60, 5)
	require.False(t, l.Loaded())
	require.Contains(t, l.View(), "Loading")

	l.SetRecordings(nil)
	require.True(t, l.Loaded())
	require.Nil(t, l.Selected())
	require.Contains(t, l.View(), "No recordings yet")
}

func TestRecordingListNavigation(t *testing.T) {
	l := NewRecordingList()
	l.SetSize(60, 3)
	l.SetRecordings(sampleSummaries(5))

	require.Equal(t, "a", l.Selected().Name)
	l.MoveUp()
	require.Equal(t, "a", l.Selected().Name)

	for i := 0; i < 10; i++ {
		l.MoveDown()
	}
	require.Equal(t, "e", l.Selected().Name)
	require.Equal(t, 2, l.scrollOffset)
	require.Contains(t, ansi.Strip(l.View()), "▲ more")

	// Row 0 is the "more" indicator once scrolled.
	require.Equal(t, "c", l.SelectAt(1).Name)
	require.Nil(t, l.SelectAt(0))
}

func TestRecordingListClampsSelection(t *testing.T) {
	l := NewRecordingList()
	l.SetSize(60, 10)
	l.SetRecordings(sampleSummaries(4))
	l.MoveDown()
	l.MoveDown()
	l.MoveDown()

	l.SetRecordings(sampleSummaries(2))
	require.Equal(t, "b", l.Selected().Name)
}

func TestRenderStatusCountsSkipsZero(t *testing.T) {
	out := ansi.Strip(renderStatusCounts(map[models.Status]int{
		models.StatusDone:  3,
		models.StatusError: 1,
	}))
	require.Equal(t, "✗1 ✓3", out)
}

func TestPreviewPane(t *testing.T) {
	p := NewPreviewPane()
	p.SetSize(40, 20)
	require.Contains(t, p.View(), "Hover a snapshot")

	duration := 250.0
	entry := &models.CallLog{
		ID:        4,
		Title:     "fill",
		Params:    models.Params{Selector: "#email"},
		Status:    models.StatusDone,
		Duration:  &duration,
		Snapshots: models.Snapshots{Before: true},
	}

	p.Show(entry, models.PhaseBefore)
	out := ansi.Strip(p.View())
	require.Contains(t, out, "Before · #4")
	require.Contains(t, out, "selector: #email")
	require.Contains(t, out, "duration: 250ms")
	require.Contains(t, out, "Snapshot captured")

	p.Show(entry, models.PhaseAfter)
	require.Contains(t, ansi.Strip(p.View()), "No snapshot for this phase")

	p.Show(nil, models.PhaseNone)
	got, _ := p.Target()
	require.Nil(t, got)
}
