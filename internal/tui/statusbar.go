package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(m *Model, width int) string {
	if m.err != nil {
		return renderErrorBar(m.err.Error(), width)
	}

	if m.showSaved {
		return renderSavedBar(width)
	}

	left := " " + getKeyHints(m)

	right := ""
	switch {
	case m.mode == modeCallLog && m.recording != nil:
		right = lipgloss.NewStyle().Foreground(colorDim).Render(fmt.Sprintf("%d calls", len(m.recording.Calls))) + " "
	case m.mode == modeRecordings && m.recordingList.Loaded():
		right = lipgloss.NewStyle().Foreground(colorDim).Render(m.recordingsDir) + " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func getKeyHints(m *Model) string {
	if m.activeOverlay == overlaySettings {
		return keyHint("Enter", "edit") + "  " + keyHint("Space", "toggle") + "  " + keyHint("Esc", "close")
	}
	if m.activeOverlay != overlayNone {
		return keyHint("Esc", "close")
	}

	base := keyHint("q", "quit") + "  " + keyHint("?", "help") + "  " + keyHint("s", "settings")

	if m.mode == modeRecordings {
		return base + "  " + keyHint("j/k", "navigate") + "  " + keyHint("Enter", "open")
	}
	return base + "  " + keyHint("Enter", "expand") + "  " + keyHint("p", "preview") + "  " +
		keyHint("e", "edit") + "  " + keyHint("Esc", "recordings")
}

func keyHint(k, desc string) string {
	if k == "" {
		return hintStyle.Render(desc)
	}
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}

func renderErrorBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorRed).
		Width(width).
		Render(" " + msg)
}

func renderSavedBar(width int) string {
	return statusBarStyle.
		Width(width).
		Render(" " + lipgloss.NewStyle().Foreground(colorGreen).Render("Saved"))
}
