package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/watchfire-io/calllog/internal/models"
	"github.com/watchfire-io/calllog/internal/timefmt"
)

const messageIndent = "    "

// flatten collapses whitespace runs, including newlines, to single spaces.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// renderCallHeader draws the header line of one row. The preview triggers
// always occupy the last triggersWidth columns.
func renderCallHeader(row callRow, width int, selected bool, hovered hoverTarget) string {
	left := chevronStyle.Render(classGlyphs[row.Chevron]) + " " + callTitleStyle.Render(flatten(row.Title))
	if row.URL != "" {
		left += " " + callParamStyle.Render(row.URL)
	}
	if row.Selector != "" {
		left += " " + callParamStyle.Render(row.Selector)
	}
	left += " " + statusStyle(row.Entry.Status).Render(classGlyphs[row.StatusIcon])
	if row.Duration != "" {
		left += " " + callDurationStyle.Render("— "+row.Duration)
	}

	triggers := renderTriggers(row, hovered)
	if width <= 0 {
		return left + "  " + triggers
	}

	room := width - triggersWidth - 1
	if room < 1 {
		room = 1
	}
	left = truncateLine(left, room)

	gap := width - lipgloss.Width(left) - triggersWidth
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + triggers
	if selected {
		line = selectedItemStyle.Render(line)
	}
	return line
}

// renderTriggers draws the three preview glyphs separated by single spaces.
// Invisible triggers keep their cell but draw nothing.
func renderTriggers(row callRow, hovered hoverTarget) string {
	parts := make([]string, len(row.Previews))
	for i, p := range row.Previews {
		switch {
		case p.Invisible:
			parts[i] = " "
		case hovered.entry == row.Entry && hovered.phase == p.Phase:
			parts[i] = previewHoveredStyle.Render(classGlyphs[p.Icon])
		default:
			parts[i] = previewStyle.Render(classGlyphs[p.Icon])
		}
	}
	return strings.Join(parts, " ")
}

func renderCallMessage(msg string, width int) string {
	return truncateLine(messageIndent+callMessageStyle.Render(flatten(msg)), width)
}

func renderCallError(text string, width int) string {
	return truncateLine(messageIndent+callErrorStyle.Render(flatten(text)), width)
}

// RenderPlain renders a call log once without any interactive state. With
// expandAll every entry is expanded, otherwise the default expansion applies.
func RenderPlain(log []*models.CallLog, width int, expandAll bool) string {
	lines := make([]string, 0, len(log))
	for _, e := range log {
		expanded := expandAll || defaultExpanded(e)
		row := buildRow(e, expanded, timefmt.Milliseconds)
		lines = append(lines, renderCallHeader(row, width, false, hoverTarget{}))
		for _, m := range row.Messages {
			lines = append(lines, renderCallMessage(m, width))
		}
		if row.Error != nil && !row.Error.Hidden {
			lines = append(lines, renderCallError(row.Error.Text, width))
		}
	}
	return strings.Join(lines, "\n")
}
