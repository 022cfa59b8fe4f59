package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/watchfire-io/calllog/internal/models"
)

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorOrange = lipgloss.AdaptiveColor{Light: "166", Dark: "208"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})

	focusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorWhite)

	unfocusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim)
)

// Tab styles.
var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(colorWhite)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	selectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})
)

// Glyphs for the class tokens a call row is built from.
var classGlyphs = map[string]string{
	classChevronDown:     "▾",
	classChevronRight:    "▸",
	classCheck:           "✓",
	classClock:           "◷",
	classPause:           "‖",
	classError:           "✗",
	"codicon-vm-outline": "○",
	"codicon-vm-running": "◉",
	"codicon-vm-active":  "●",
}

// Call log styles.
var (
	chevronStyle      = lipgloss.NewStyle().Foreground(colorDim)
	callTitleStyle    = lipgloss.NewStyle().Foreground(colorWhite)
	callParamStyle    = lipgloss.NewStyle().Foreground(colorCyan)
	callDurationStyle = lipgloss.NewStyle().Foreground(colorDim)
	callMessageStyle  = lipgloss.NewStyle().Foreground(colorDim)
	callErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)

	previewStyle        = lipgloss.NewStyle().Foreground(colorDim)
	previewHoveredStyle = lipgloss.NewStyle().Foreground(colorOrange).Bold(true)

	callStatusStyles = map[models.Status]lipgloss.Style{
		models.StatusDone:       lipgloss.NewStyle().Foreground(colorGreen),
		models.StatusInProgress: lipgloss.NewStyle().Foreground(colorCyan),
		models.StatusPaused:     lipgloss.NewStyle().Foreground(colorYellow),
		models.StatusError:      lipgloss.NewStyle().Foreground(colorRed).Bold(true),
	}
)

// Overlay styles.
var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWhite).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				MarginBottom(1)

	overlayDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Preview pane header.
var previewHeaderStyle = lipgloss.NewStyle().
	Background(lipgloss.AdaptiveColor{Light: "237", Dark: "237"}).
	Foreground(colorOrange).
	Bold(true).
	Padding(0, 1)

// Key hint styles for status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// Settings form styles.
var (
	settingsLabelStyle = lipgloss.NewStyle().
				Width(20).
				Foreground(colorDim)

	settingsValueStyle = lipgloss.NewStyle().
				Foreground(colorWhite)

	settingsToggleOn = lipgloss.NewStyle().
				Foreground(colorGreen).
				Bold(true)

	settingsToggleOff = lipgloss.NewStyle().
				Foreground(colorRed)

	settingsCursorStyle = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})
)

func statusStyle(status models.Status) lipgloss.Style {
	if s, ok := callStatusStyles[status]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
