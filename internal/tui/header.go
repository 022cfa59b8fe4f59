package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderHeader(m *Model, width int) string {
	title := "Call Log"
	if m.mode == modeCallLog && m.recording != nil {
		title = m.recording.Name
	}

	dot := lipgloss.NewStyle().Foreground(colorOrange).Render("●")
	name := lipgloss.NewStyle().Bold(true).Render(title)
	tabs := renderTabs([]string{"Recordings", "Calls"}, m.mode)

	left := fmt.Sprintf(" %s %s  %s", dot, name, tabs)
	right := renderFollowBadge(m.follow) + " "
	if m.mode == modeCallLog && m.recording != nil {
		right = renderStatusCounts(m.recording.StatusCounts()) + "  " + right
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return headerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func renderTabs(tabs []string, active int) string {
	var parts []string
	for i, tab := range tabs {
		if i == active {
			parts = append(parts, activeTabStyle.Render(tab))
		} else {
			parts = append(parts, inactiveTabStyle.Render(tab))
		}
	}
	return strings.Join(parts, tabSepStyle.Render(" | "))
}

func renderFollowBadge(follow bool) string {
	if follow {
		return lipgloss.NewStyle().Foreground(colorGreen).Bold(true).Render("● Following")
	}
	return lipgloss.NewStyle().Foreground(colorDim).Render("○ Static")
}
