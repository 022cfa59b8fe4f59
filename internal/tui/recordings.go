package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/watchfire-io/calllog/internal/models"
)

// RecordingList displays the recordings found in the recordings directory.
type RecordingList struct {
	recordings    []*models.RecordingSummary
	selectedIndex int
	width         int
	height        int
	scrollOffset  int
	loaded        bool // whether recordings have been listed at least once
}

// NewRecordingList creates a new recording list.
func NewRecordingList() *RecordingList {
	return &RecordingList{}
}

// SetSize updates dimensions.
func (l *RecordingList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.ensureVisible()
}

// SetRecordings updates the list.
func (l *RecordingList) SetRecordings(recordings []*models.RecordingSummary) {
	l.recordings = recordings
	l.loaded = true
	if l.selectedIndex >= len(recordings) {
		l.selectedIndex = len(recordings) - 1
	}
	if l.selectedIndex < 0 {
		l.selectedIndex = 0
	}
	l.ensureVisible()
}

// Selected returns the currently selected recording, or nil.
func (l *RecordingList) Selected() *models.RecordingSummary {
	if l.selectedIndex < 0 || l.selectedIndex >= len(l.recordings) {
		return nil
	}
	return l.recordings[l.selectedIndex]
}

// MoveUp moves the cursor up.
func (l *RecordingList) MoveUp() {
	if l.selectedIndex > 0 {
		l.selectedIndex--
		l.ensureVisible()
	}
}

// MoveDown moves the cursor down.
func (l *RecordingList) MoveDown() {
	if l.selectedIndex < len(l.recordings)-1 {
		l.selectedIndex++
		l.ensureVisible()
	}
}

// SelectAt selects the recording drawn on the given view row and returns it.
func (l *RecordingList) SelectAt(y int) *models.RecordingSummary {
	if l.scrollOffset > 0 {
		y-- // "more" indicator
	}
	i := l.scrollOffset + y
	if y < 0 || i >= len(l.recordings) {
		return nil
	}
	l.selectedIndex = i
	return l.recordings[i]
}

// Loaded returns whether recordings have been listed at least once.
func (l *RecordingList) Loaded() bool {
	return l.loaded
}

func (l *RecordingList) ensureVisible() {
	if l.height <= 0 {
		return
	}
	if l.selectedIndex < l.scrollOffset {
		l.scrollOffset = l.selectedIndex
	}
	if l.selectedIndex >= l.scrollOffset+l.height {
		l.scrollOffset = l.selectedIndex - l.height + 1
	}
}

// View renders the recording list.
func (l *RecordingList) View() string {
	if !l.loaded {
		return lipgloss.NewStyle().Foreground(colorDim).Width(l.width).Align(lipgloss.Center).
			Render("\nLoading recordings...")
	}

	if len(l.recordings) == 0 {
		return lipgloss.NewStyle().Foreground(colorDim).Width(l.width).Align(lipgloss.Center).
			Render("\nNo recordings yet. Create one with 'calllog new <name>'.")
	}

	var lines []string
	end := l.scrollOffset + l.height
	if end > len(l.recordings) {
		end = len(l.recordings)
	}

	for i := l.scrollOffset; i < end; i++ {
		line := formatRecordingLine(l.recordings[i])

		if i == l.selectedIndex {
			line = selectedItemStyle.Width(l.width).Render(line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	if l.scrollOffset > 0 {
		lines = append([]string{lipgloss.NewStyle().Foreground(colorDim).Render("  ▲ more")}, lines...)
	}
	if end < len(l.recordings) {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorDim).Render("  ▼ more"))
	}

	return strings.Join(lines, "\n")
}

// formatRecordingLine renders "name — 2026-02-10 14:30 — 12 calls ✓9 ✗1".
func formatRecordingLine(r *models.RecordingSummary) string {
	created := "unknown"
	if !r.CreatedAt.IsZero() {
		created = r.CreatedAt.Local().Format("2006-01-02 15:04")
	}

	return fmt.Sprintf("%s — %s — %s %s",
		lipgloss.NewStyle().Foreground(colorWhite).Bold(true).Render(r.Name),
		lipgloss.NewStyle().Foreground(colorDim).Render(created),
		lipgloss.NewStyle().Foreground(colorDim).Render(fmt.Sprintf("%d calls", r.Calls)),
		renderStatusCounts(r.Counts),
	)
}

// renderStatusCounts renders the non-zero per-status counts in status order.
func renderStatusCounts(counts map[models.Status]int) string {
	var parts []string
	for _, s := range models.Statuses {
		if n := counts[s]; n > 0 {
			parts = append(parts, statusStyle(s).Render(fmt.Sprintf("%s%d", classGlyphs[statusIconClass(s)], n)))
		}
	}
	return strings.Join(parts, " ")
}
