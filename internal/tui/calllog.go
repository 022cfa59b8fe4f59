package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog/log"

	"github.com/watchfire-io/calllog/internal/models"
	"github.com/watchfire-io/calllog/internal/timefmt"
)

// HoverFunc is notified when the pointer enters or leaves a preview trigger.
// A leave is reported as (nil, models.PhaseNone).
type HoverFunc func(entry *models.CallLog, phase models.Phase)

// Alignment selects where a scrolled-to line ends up.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
	AlignNearest
)

// Scroller brings a content line into view.
type Scroller interface {
	ScrollIntoView(line int, block, inline Alignment)
}

// expandOverrides maps call ids to an explicit expansion choice.
// Values are never mutated; with returns a new map.
type expandOverrides map[int]bool

func (o expandOverrides) with(id int, expanded bool) expandOverrides {
	next := make(expandOverrides, len(o)+1)
	for k, v := range o {
		next[k] = v
	}
	next[id] = expanded
	return next
}

type hoverTarget struct {
	entry *models.CallLog
	phase models.Phase
}

// Width of the three preview glyphs and the spaces between them.
const triggersWidth = 5

// CallLogOptions configures a CallLogView.
type CallLogOptions struct {
	// FormatDuration defaults to timefmt.Milliseconds.
	FormatDuration DurationFormatter
	// HoverHidden lets triggers without a snapshot fire hover callbacks.
	HoverHidden bool
	// Scroller defaults to the view's own viewport.
	Scroller Scroller
}

// CallLogView renders the recorded calls with per-entry expand state and
// preview triggers.
type CallLogView struct {
	log            []*models.CallLog
	overrides      expandOverrides
	onHover        HoverFunc
	formatDuration DurationFormatter
	hoverHidden    bool
	scroller       Scroller
	viewport       viewport.Model
	width          int
	height         int
	cursor         int
	hovered        hoverTarget
	keyPhase       int // index into models.Phases driven by the keyboard, -1 = none

	// anchor changes whenever a new log is supplied; scrolledAnchor is the
	// anchor the reveal scroll last ran for.
	anchor         int
	scrolledAnchor int

	// Committed layout of the last render.
	lines       []string
	lineEntry   []int // entry index per content line, -1 for none
	headerLines []int // content line of each entry's header
	anchorLine  int
}

// NewCallLogView creates a call log view reporting hovers to onHover.
func NewCallLogView(onHover HoverFunc, opts CallLogOptions) *CallLogView {
	v := &CallLogView{
		overrides:      expandOverrides{},
		onHover:        onHover,
		formatDuration: opts.FormatDuration,
		hoverHidden:    opts.HoverHidden,
		scroller:       opts.Scroller,
		viewport:       viewport.New(80, 24),
		keyPhase:       -1,
	}
	if v.formatDuration == nil {
		v.formatDuration = timefmt.Milliseconds
	}
	if v.scroller == nil {
		v.scroller = viewportScroller{vp: &v.viewport}
	}
	if v.onHover == nil {
		v.onHover = func(*models.CallLog, models.Phase) {}
	}
	return v
}

// SetSize updates dimensions.
func (v *CallLogView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = height
	v.render()
	v.afterRender()
}

// SetHoverHidden changes whether invisible triggers respond to hover.
func (v *CallLogView) SetHoverHidden(enabled bool) {
	v.hoverHidden = enabled
}

// SetLog replaces the displayed calls. Display order is the slice order.
// Each call establishes a new scroll anchor, so a revealed entry is
// scrolled to once per supplied log.
func (v *CallLogView) SetLog(log []*models.CallLog) {
	v.log = log
	v.anchor++

	if v.cursor >= len(log) {
		v.cursor = len(log) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
	v.rebindHover()

	v.render()
	v.afterRender()
}

// Log returns the displayed calls.
func (v *CallLogView) Log() []*models.CallLog {
	return v.log
}

// rebindHover points the hover target at the matching entry of the new log.
// If the entry disappeared the pointer has effectively left it.
func (v *CallLogView) rebindHover() {
	if v.hovered.entry == nil {
		return
	}
	for _, e := range v.log {
		if e.ID == v.hovered.entry.ID {
			v.hovered.entry = e
			return
		}
	}
	v.setHover(hoverTarget{})
}

// IsExpanded returns the effective expansion of an entry: the user's
// override if one exists, otherwise expanded for anything not done.
func (v *CallLogView) IsExpanded(entry *models.CallLog) bool {
	if expanded, ok := v.overrides[entry.ID]; ok {
		return expanded
	}
	return defaultExpanded(entry)
}

// Toggle flips the effective expansion of one entry.
func (v *CallLogView) Toggle(entry *models.CallLog) {
	v.overrides = v.overrides.with(entry.ID, !v.IsExpanded(entry))
	v.render()
}

// Rows returns the render structure for the current log.
func (v *CallLogView) Rows() []callRow {
	rows := make([]callRow, 0, len(v.log))
	for _, e := range v.log {
		rows = append(rows, buildRow(e, v.IsExpanded(e), v.formatDuration))
	}
	return rows
}

// Selected returns the entry under the cursor, or nil.
func (v *CallLogView) Selected() *models.CallLog {
	if v.cursor < 0 || v.cursor >= len(v.log) {
		return nil
	}
	return v.log[v.cursor]
}

// MoveUp moves the cursor to the previous entry.
func (v *CallLogView) MoveUp() {
	if v.cursor > 0 {
		v.selectIndex(v.cursor - 1)
	}
}

// MoveDown moves the cursor to the next entry.
func (v *CallLogView) MoveDown() {
	if v.cursor < len(v.log)-1 {
		v.selectIndex(v.cursor + 1)
	}
}

func (v *CallLogView) selectIndex(i int) {
	if i == v.cursor {
		return
	}
	if v.keyPhase >= 0 {
		v.keyPhase = -1
		v.setHover(hoverTarget{})
	}
	v.cursor = i
	v.render()
	v.ensureVisible()
}

// ToggleSelected toggles the entry under the cursor.
func (v *CallLogView) ToggleSelected() {
	if e := v.Selected(); e != nil {
		v.Toggle(e)
		v.ensureVisible()
	}
}

// CyclePreview moves a keyboard hover across the selected entry's triggers:
// before, action, after, then none.
func (v *CallLogView) CyclePreview() {
	e := v.Selected()
	if e == nil {
		return
	}
	for {
		v.keyPhase++
		if v.keyPhase >= len(models.Phases) {
			v.keyPhase = -1
			v.setHover(hoverTarget{})
			return
		}
		phase := models.Phases[v.keyPhase]
		if v.hoverHidden || e.Snapshots.Has(phase) {
			v.setHover(hoverTarget{entry: e, phase: phase})
			return
		}
	}
}

// PageUp scrolls up half a page.
func (v *CallLogView) PageUp() {
	v.viewport.HalfViewUp()
}

// PageDown scrolls down half a page.
func (v *CallLogView) PageDown() {
	v.viewport.HalfViewDown()
}

// HandleMouse processes a mouse event in view-local coordinates.
func (v *CallLogView) HandleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		v.viewport.LineUp(3)
		return
	case msg.Button == tea.MouseButtonWheelDown:
		v.viewport.LineDown(3)
		return
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		v.keyPhase = -1
		v.setHover(v.triggerAt(msg.X, msg.Y))

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		idx, header := v.entryAt(msg.Y)
		if idx < 0 {
			return
		}
		v.selectIndex(idx)
		if header && msg.X >= 0 && msg.X <= 1 {
			v.Toggle(v.log[idx])
		}
	}
}

// Leave reports that the pointer left the view.
func (v *CallLogView) Leave() {
	v.setHover(hoverTarget{})
}

// setHover performs the enter/leave protocol. Every change of target
// produces exactly one leave for the old target and one enter for the new.
func (v *CallLogView) setHover(target hoverTarget) {
	if target == v.hovered {
		return
	}
	if v.hovered.entry != nil {
		v.onHover(nil, models.PhaseNone)
	}
	v.hovered = target
	v.render()
	if target.entry != nil {
		log.Debug().Str("component", "calllog").Int("call", target.entry.ID).Str("phase", string(target.phase)).Msg("preview hover")
		v.onHover(target.entry, target.phase)
	}
}

// entryAt maps a view row to an entry index and whether it is a header line.
func (v *CallLogView) entryAt(y int) (int, bool) {
	line := y + v.viewport.YOffset
	if y < 0 || y >= v.viewport.Height || line < 0 || line >= len(v.lineEntry) {
		return -1, false
	}
	idx := v.lineEntry[line]
	if idx < 0 {
		return -1, false
	}
	return idx, v.headerLines[idx] == line
}

// triggerAt returns the preview trigger under a view position.
func (v *CallLogView) triggerAt(x, y int) hoverTarget {
	idx, header := v.entryAt(y)
	if idx < 0 || !header {
		return hoverTarget{}
	}
	start := v.width - triggersWidth
	if start < 0 || x < start || x >= v.width {
		return hoverTarget{}
	}
	offset := x - start
	if offset%2 != 0 {
		return hoverTarget{}
	}
	entry := v.log[idx]
	phase := models.Phases[offset/2]
	if !v.hoverHidden && !entry.Snapshots.Has(phase) {
		return hoverTarget{}
	}
	return hoverTarget{entry: entry, phase: phase}
}

// render commits the current rows to the viewport.
func (v *CallLogView) render() {
	rows := v.Rows()
	v.lines = v.lines[:0]
	v.lineEntry = v.lineEntry[:0]
	v.headerLines = make([]int, len(rows))

	for i, row := range rows {
		v.headerLines[i] = len(v.lines)
		v.appendLine(renderCallHeader(row, v.width, i == v.cursor, v.hovered), i)
		for _, m := range row.Messages {
			v.appendLine(renderCallMessage(m, v.width), i)
		}
		if row.Error != nil && !row.Error.Hidden {
			v.appendLine(renderCallError(row.Error.Text, v.width), i)
		}
	}

	// The anchor sits after the last entry.
	v.anchorLine = len(v.lines)
	v.appendLine("", -1)

	v.viewport.SetContent(strings.Join(v.lines, "\n"))
}

func (v *CallLogView) appendLine(line string, entry int) {
	v.lines = append(v.lines, line)
	v.lineEntry = append(v.lineEntry, entry)
}

// afterRender runs once the content for the current log is committed.
func (v *CallLogView) afterRender() {
	// Without a real size the reveal scroll waits for SetSize.
	if v.anchor == v.scrolledAnchor || v.height <= 0 {
		return
	}
	v.scrolledAnchor = v.anchor
	if firstRevealed(v.log) == nil {
		return
	}
	v.scroller.ScrollIntoView(v.anchorLine, AlignCenter, AlignNearest)
}

func firstRevealed(log []*models.CallLog) *models.CallLog {
	for _, e := range log {
		if e.Reveal {
			return e
		}
	}
	return nil
}

func (v *CallLogView) ensureVisible() {
	if v.cursor < 0 || v.cursor >= len(v.headerLines) {
		return
	}
	v.scroller.ScrollIntoView(v.headerLines[v.cursor], AlignNearest, AlignNearest)
}

// View renders the call log.
func (v *CallLogView) View() string {
	if len(v.log) == 0 {
		return lipgloss.NewStyle().Foreground(colorDim).Width(v.width).Align(lipgloss.Center).
			Render("\nNo calls recorded.")
	}
	return v.viewport.View()
}

// viewportScroller scrolls a bubbles viewport. There is no horizontal
// scrolling, so the inline alignment is ignored.
type viewportScroller struct {
	vp *viewport.Model
}

func (s viewportScroller) ScrollIntoView(line int, block, _ Alignment) {
	h := s.vp.Height
	switch block {
	case AlignStart:
		s.vp.SetYOffset(line)
	case AlignCenter:
		s.vp.SetYOffset(line - h/2)
	case AlignEnd:
		s.vp.SetYOffset(line - h + 1)
	case AlignNearest:
		if line < s.vp.YOffset {
			s.vp.SetYOffset(line)
		} else if line >= s.vp.YOffset+h {
			s.vp.SetYOffset(line - h + 1)
		}
	}
}

// truncateLine cuts a styled line to width.
func truncateLine(line string, width int) string {
	if width <= 0 || lipgloss.Width(line) <= width {
		return line
	}
	return ansi.Truncate(line, width, "…")
}
