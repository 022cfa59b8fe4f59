package tui

import (
	"fmt"
	"strings"

	"github.com/watchfire-io/calllog/internal/models"
)

// Class tokens shared with the web recorder stylesheet. Rendering looks
// glyphs and styles up by these tokens.
const (
	classChevronDown  = "codicon-chevron-down"
	classChevronRight = "codicon-chevron-right"
	classCheck        = "codicon-check"
	classClock        = "codicon-clock"
	classPause        = "codicon-debug-pause"
	classError        = "codicon-error"
	classInvisible    = "invisible"
)

var previewIcons = [3]string{"codicon-vm-outline", "codicon-vm-running", "codicon-vm-active"}

// DurationFormatter renders a millisecond duration.
type DurationFormatter func(ms float64) string

// previewTrigger is one of the three hover targets on a header line.
type previewTrigger struct {
	Phase     models.Phase
	Icon      string
	Invisible bool
}

// Class returns the full class list of the trigger.
func (p previewTrigger) Class() string {
	c := "codicon " + p.Icon + " preview"
	if p.Invisible {
		c += " " + classInvisible
	}
	return c
}

// errorLine stays in the row structure when collapsed; Hidden only
// suppresses drawing.
type errorLine struct {
	Text   string
	Hidden bool
}

// callRow is the render structure for one call log entry.
type callRow struct {
	Entry      *models.CallLog
	Class      string
	Expanded   bool
	Chevron    string
	Title      string
	URL        string
	Selector   string
	StatusIcon string
	Duration   string
	Previews   [3]previewTrigger
	Messages   []string
	Error      *errorLine
}

// statusIconClass maps every status to its icon. The status set is closed
// and decoding rejects anything else, so the panic is unreachable.
func statusIconClass(status models.Status) string {
	switch status {
	case models.StatusDone:
		return classCheck
	case models.StatusInProgress:
		return classClock
	case models.StatusPaused:
		return classPause
	case models.StatusError:
		return classError
	}
	panic(fmt.Sprintf("unreachable: no icon for call status %q", status))
}

// defaultExpanded is the expansion of an entry the user has not toggled.
func defaultExpanded(entry *models.CallLog) bool {
	return entry.Status != models.StatusDone
}

func chevronClass(expanded bool) string {
	if expanded {
		return classChevronDown
	}
	return classChevronRight
}

// buildRow derives the render structure for one entry.
func buildRow(entry *models.CallLog, expanded bool, format DurationFormatter) callRow {
	row := callRow{
		Entry:      entry,
		Class:      string(entry.Status),
		Expanded:   expanded,
		Chevron:    chevronClass(expanded),
		Title:      entry.Title,
		URL:        entry.Params.URL,
		Selector:   entry.Params.Selector,
		StatusIcon: statusIconClass(entry.Status),
	}

	if entry.Duration != nil {
		row.Duration = format(*entry.Duration)
	}

	for i, phase := range models.Phases {
		row.Previews[i] = previewTrigger{
			Phase:     phase,
			Icon:      previewIcons[i],
			Invisible: !entry.Snapshots.Has(phase),
		}
	}

	if expanded {
		row.Messages = make([]string, 0, len(entry.Messages))
		for _, m := range entry.Messages {
			row.Messages = append(row.Messages, strings.TrimSpace(m))
		}
	}

	if entry.Error != "" {
		row.Error = &errorLine{Text: entry.Error, Hidden: !expanded}
	}

	return row
}
