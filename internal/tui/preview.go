package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/watchfire-io/calllog/internal/models"
	"github.com/watchfire-io/calllog/internal/timefmt"
)

var phaseLabels = map[models.Phase]string{
	models.PhaseBefore: "Before",
	models.PhaseAction: "Action",
	models.PhaseAfter:  "After",
}

// PreviewPane shows the snapshot the pointer is hovering in the call log.
type PreviewPane struct {
	entry  *models.CallLog
	phase  models.Phase
	width  int
	height int
}

// NewPreviewPane creates an empty preview pane.
func NewPreviewPane() *PreviewPane {
	return &PreviewPane{}
}

// SetSize updates dimensions.
func (p *PreviewPane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Show displays the given snapshot. A nil entry clears the pane.
func (p *PreviewPane) Show(entry *models.CallLog, phase models.Phase) {
	p.entry = entry
	p.phase = phase
}

// Target returns the entry and phase being previewed.
func (p *PreviewPane) Target() (*models.CallLog, models.Phase) {
	return p.entry, p.phase
}

// View renders the preview.
func (p *PreviewPane) View() string {
	if p.entry == nil {
		return lipgloss.NewStyle().Foreground(colorDim).Width(p.width).Align(lipgloss.Center).
			Render("\nHover a snapshot icon to preview it.")
	}

	e := p.entry
	header := previewHeaderStyle.Render(fmt.Sprintf("%s · #%d", phaseLabels[p.phase], e.ID))

	lines := []string{
		header,
		"",
		lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render(flatten(e.Title)),
		statusStyle(e.Status).Render(classGlyphs[statusIconClass(e.Status)] + " " + string(e.Status)),
	}
	if e.Params.URL != "" {
		lines = append(lines, previewField("url", e.Params.URL))
	}
	if e.Params.Selector != "" {
		lines = append(lines, previewField("selector", e.Params.Selector))
	}
	if e.HasDuration() {
		lines = append(lines, previewField("duration", timefmt.Milliseconds(*e.Duration)))
	}

	lines = append(lines, "")
	if e.Snapshots.Has(p.phase) {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorGreen).Render("Snapshot captured"))
	} else {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorDim).Render("No snapshot for this phase"))
	}

	if len(e.Messages) > 0 {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(colorDim).Render(strings.Repeat("─", max(p.width, 1))))
		for _, m := range e.Messages {
			lines = append(lines, callMessageStyle.Render(flatten(m)))
		}
	}
	if e.Error != "" {
		lines = append(lines, callErrorStyle.Render(flatten(e.Error)))
	}

	return strings.Join(lines, "\n")
}

func previewField(label, value string) string {
	return lipgloss.NewStyle().Foreground(colorDim).Render(label+": ") + callParamStyle.Render(value)
}
