package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// overlayKind identifies the box drawn over the panels.
type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayHelp
	overlaySettings
)

// ansiReset ends any styling left open by the dimmed background.
const ansiReset = "\033[0m"

// renderOverlay draws box centered over a dimmed copy of base.
func renderOverlay(base, box string, width, height int) string {
	rows := dimLines(base)
	boxLines := strings.Split(box, "\n")
	top, left := overlayOrigin(boxLines, width, height)

	for i, line := range boxLines {
		row := top + i
		if row >= len(rows) {
			break
		}
		rows[row] = spliceLine(rows[row], line, left)
	}
	return strings.Join(rows, "\n")
}

// dimLines strips the original colors so the call log and preview read as
// background while an overlay is open.
func dimLines(view string) []string {
	lines := strings.Split(view, "\n")
	for i, line := range lines {
		lines[i] = overlayDimStyle.Render(ansi.Strip(line))
	}
	return lines
}

// overlayOrigin returns the top row and left column that center the box.
// Row 0 and column 0 are kept free for the header and panel border.
func overlayOrigin(boxLines []string, width, height int) (top, left int) {
	boxWidth := 0
	for _, l := range boxLines {
		boxWidth = max(boxWidth, lipgloss.Width(l))
	}
	top = max((height-len(boxLines))/2, 1)
	left = max((width-boxWidth)/2, 1)
	return top, left
}

// spliceLine replaces the cells of bg starting at column left with line.
func spliceLine(bg, line string, left int) string {
	bgWidth := lipgloss.Width(bg)
	var b strings.Builder
	b.WriteString(ansi.Truncate(bg, left, ""))
	b.WriteString(ansiReset)
	b.WriteString(line)
	b.WriteString(ansiReset)
	if end := left + lipgloss.Width(line); end < bgWidth {
		b.WriteString(ansi.Cut(bg, end, bgWidth))
	}
	return b.String()
}
