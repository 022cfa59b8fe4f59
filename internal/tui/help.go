package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	keys  []helpKey
}

type helpKey struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Global",
		keys: []helpKey{
			{"q / Ctrl+q", "Quit"},
			{"? / Ctrl+h", "Toggle help"},
			{"Tab", "Switch panel focus"},
			{"s", "Settings"},
		},
	},
	{
		title: "Call Log",
		keys: []helpKey{
			{"j/k ↑/↓", "Navigate calls"},
			{"Enter / Space", "Expand or collapse call"},
			{"p", "Cycle snapshot preview"},
			{"PgUp/PgDn", "Scroll"},
			{"e", "Edit recording in $EDITOR"},
			{"r", "Reload recording"},
			{"Esc", "Back to recordings"},
		},
	},
	{
		title: "Recordings",
		keys: []helpKey{
			{"j/k ↑/↓", "Navigate recordings"},
			{"Enter", "Open recording"},
			{"r", "Reload list"},
		},
	},
	{
		title: "Mouse",
		keys: []helpKey{
			{"Click ▸/▾", "Expand or collapse call"},
			{"Hover ○ ◉ ●", "Preview before/action/after"},
			{"Drag │", "Resize panels"},
		},
	},
	{
		title: "Settings",
		keys: []helpKey{
			{"j/k", "Navigate fields"},
			{"Enter", "Edit text field"},
			{"Space", "Toggle boolean"},
			{"Esc", "Close"},
		},
	},
}

// renderHelp renders the help overlay content.
func renderHelp(width int) string {
	maxWidth := 60
	if width-4 < maxWidth {
		maxWidth = width - 4
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	title := overlayTitleStyle.Render("Keyboard Shortcuts")
	sections := make([]string, 0, len(helpSections)*4+3)
	sections = append(sections, title)

	for _, sec := range helpSections {
		header := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Render(sec.title)
		sections = append(sections, "", header)

		for _, k := range sec.keys {
			keyCol := lipgloss.NewStyle().
				Width(16).
				Foreground(colorWhite).
				Bold(true).
				Render(k.key)
			descCol := lipgloss.NewStyle().
				Foreground(colorDim).
				Render(k.desc)
			sections = append(sections, "  "+keyCol+descCol)
		}
	}

	sections = append(sections, "", lipgloss.NewStyle().Foreground(colorDim).Render("Press Esc or ? to close"))

	content := strings.Join(sections, "\n")
	return overlayStyle.Width(maxWidth).Render(content)
}
