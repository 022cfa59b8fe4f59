package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const minPanelWidth = 24

// panelLayout holds computed dimensions for the log | preview layout.
type panelLayout struct {
	leftWidth     int
	rightWidth    int
	contentHeight int
	dividerCol    int // x position of the divider for mouse hit testing
}

func computeLayout(width, height int, splitRatio float64) panelLayout {
	// 1 line header, 1 line status bar
	contentHeight := height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}

	usable := width - 1 // divider
	leftWidth := int(float64(usable) * splitRatio)
	if leftWidth < minPanelWidth {
		leftWidth = minPanelWidth
	}
	rightWidth := usable - leftWidth
	if rightWidth < minPanelWidth {
		rightWidth = minPanelWidth
		leftWidth = usable - rightWidth
	}

	return panelLayout{
		leftWidth:     leftWidth,
		rightWidth:    rightWidth,
		contentHeight: contentHeight,
		dividerCol:    leftWidth,
	}
}

func renderPanels(logContent, previewContent string, layout panelLayout, focusedPanel int) string {
	logStyle := unfocusedBorderStyle
	previewStyle := unfocusedBorderStyle
	if focusedPanel == 0 {
		logStyle = focusedBorderStyle
	} else {
		previewStyle = focusedBorderStyle
	}

	logInner := max(layout.leftWidth-2, 1)
	previewInner := max(layout.rightWidth-2, 1)
	innerHeight := max(layout.contentHeight-2, 1)

	left := logStyle.
		Width(logInner).
		Height(innerHeight).
		Render(fitContent(logContent, logInner, innerHeight))

	right := previewStyle.
		Width(previewInner).
		Height(innerHeight).
		Render(fitContent(previewContent, previewInner, innerHeight))

	divider := lipgloss.NewStyle().
		Foreground(colorDim).
		Render(strings.TrimSuffix(strings.Repeat("│\n", lipgloss.Height(left)), "\n"))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, divider, right)
}

// fitContent clips content to the given dimensions.
func fitContent(content string, width, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = ansi.Truncate(line, width, "")
		}
	}
	return strings.Join(lines, "\n")
}
