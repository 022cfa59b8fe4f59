package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/watchfire-io/calllog/internal/config"
	"github.com/watchfire-io/calllog/internal/models"
	"github.com/watchfire-io/calllog/internal/watcher"
)

// Left panel modes.
const (
	modeRecordings = iota
	modeCallLog
)

// Options configures the root model.
type Options struct {
	// Path of the recording to open. Empty starts on the recordings list.
	Path          string
	RecordingsDir string
	Settings      *models.Settings
	// Follow reloads the open recording when it changes on disk.
	Follow bool
}

// Model is the root Bubbletea model for the TUI.
type Model struct {
	// Recording data
	settings      *models.Settings
	recordingsDir string
	path          string
	recording     *models.Recording

	// UI state
	mode          int
	focusedPanel  int         // 0=left, 1=right
	activeOverlay overlayKind // overlayNone, overlayHelp, overlaySettings
	splitRatio    float64     // Default 0.6
	width         int
	height        int

	// Status display
	err       error
	showSaved bool

	// Child components
	callLog       *CallLogView
	preview       *PreviewPane
	recordingList *RecordingList
	settingsForm  *SettingsForm

	// Program reference for goroutine Send()
	program *programRef

	// Follow mode
	follow      bool
	watchedPath string
	watcher     *watcher.Watcher
	watchCtx    context.Context
	watchCancel context.CancelFunc

	// Dragging state
	dragging bool
}

// NewModel creates the initial TUI model. w may be nil when follow mode is off.
func NewModel(opts Options, program *programRef, w *watcher.Watcher) Model {
	settings := opts.Settings
	if settings == nil {
		settings = models.NewSettings()
	}

	preview := NewPreviewPane()
	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		settings:      settings,
		recordingsDir: opts.RecordingsDir,
		path:          opts.Path,
		mode:          modeRecordings,
		splitRatio:    0.6,
		preview:       preview,
		callLog: NewCallLogView(preview.Show, CallLogOptions{
			HoverHidden: settings.Previews.HoverHidden,
		}),
		recordingList: NewRecordingList(),
		settingsForm:  NewSettingsForm(),
		program:       program,
		follow:        opts.Follow && w != nil,
		watcher:       w,
		watchCtx:      ctx,
		watchCancel:   cancel,
	}
	if opts.Path != "" {
		m.mode = modeCallLog
	}
	m.settingsForm.LoadFromSettings(settings)
	return m
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseAllMotion}
	if m.path != "" {
		cmds = append(cmds, loadRecordingCmd(m.path))
	} else {
		cmds = append(cmds, listRecordingsCmd(m.recordingsDir))
	}
	if m.follow {
		cmds = append(cmds, startWatchCmd(m.watchCtx, m.watcher, m.recordingsDir, m.program))
	}
	return tea.Batch(cmds...)
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	// ── Window resize ──────────────────────────────────────────────
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()
		return m, nil

	// ── Key events ─────────────────────────────────────────────────
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	// ── Mouse events ───────────────────────────────────────────────
	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	// ── Recording data ─────────────────────────────────────────────
	case RecordingLoadedMsg:
		m.path = msg.Path
		m.recording = msg.Recording
		m.mode = modeCallLog
		m.callLog.SetLog(msg.Recording.Calls)
		m.refreshPreview()
		if m.follow && m.watchedPath != msg.Path {
			cmds = append(cmds, watchRecordingCmd(m.watcher, m.watchedPath, msg.Path))
			m.watchedPath = msg.Path
		}
		return m, tea.Batch(cmds...)

	case RecordingsLoadedMsg:
		m.recordingList.SetRecordings(msg.Recordings)
		return m, nil

	case RecordingChangedMsg:
		if m.mode == modeCallLog && samePath(msg.Path, m.path) {
			cmds = append(cmds, loadRecordingCmd(m.path))
		}
		return m, tea.Batch(cmds...)

	case RecordingRemovedMsg:
		if samePath(msg.Path, m.path) {
			m.err = errors.Errorf("%s was removed", filepath.Base(msg.Path))
			cmds = append(cmds, clearErrorAfter(5*time.Second))
		}
		return m, tea.Batch(cmds...)

	case RecordingsDirChangedMsg:
		if m.mode == modeRecordings {
			cmds = append(cmds, listRecordingsCmd(m.recordingsDir))
		}
		return m, tea.Batch(cmds...)

	// ── Settings ───────────────────────────────────────────────────
	case SettingsSavedMsg:
		m.settings = msg.Settings
		m.callLog.SetHoverHidden(msg.Settings.Previews.HoverHidden)
		m.settingsForm.LoadFromSettings(msg.Settings)
		m.showSaved = true
		return m, clearSavedAfter(3 * time.Second)

	// ── Error handling ─────────────────────────────────────────────
	case ErrorMsg:
		m.err = msg.Err
		return m, clearErrorAfter(5 * time.Second)

	case ClearErrorMsg:
		m.err = nil
		return m, nil

	case ClearSavedMsg:
		m.showSaved = false
		return m, nil

	// ── Editor finished ────────────────────────────────────────────
	case EditorFinishedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			cmds = append(cmds, clearErrorAfter(5*time.Second))
		}
		if msg.Path != "" {
			cmds = append(cmds, loadRecordingCmd(msg.Path))
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// refreshPreview points the preview at the reloaded copy of its entry.
func (m *Model) refreshPreview() {
	entry, phase := m.preview.Target()
	if entry == nil {
		return
	}
	for _, c := range m.callLog.Log() {
		if c.ID == entry.ID {
			m.preview.Show(c, phase)
			return
		}
	}
	m.preview.Show(nil, models.PhaseNone)
}

func samePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}

// handleKey processes key events.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Overlay captures everything
	if m.activeOverlay != overlayNone {
		return m.handleOverlayKey(msg)
	}

	// Global shortcuts
	switch {
	case key.Matches(msg, globalKeys.Quit):
		return m.doQuit()

	case key.Matches(msg, globalKeys.Help):
		m.activeOverlay = overlayHelp
		return nil

	case key.Matches(msg, globalKeys.Settings):
		m.settingsForm.LoadFromSettings(m.settings)
		m.activeOverlay = overlaySettings
		return nil

	case key.Matches(msg, globalKeys.Tab):
		m.focusedPanel = 1 - m.focusedPanel
		return nil
	}

	if m.focusedPanel != 0 {
		return nil
	}
	if m.mode == modeRecordings {
		return m.handleRecordingListKey(msg)
	}
	return m.handleCallLogKey(msg)
}

func (m *Model) handleCallLogKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, callLogKeys.Up):
		m.callLog.MoveUp()
	case key.Matches(msg, callLogKeys.Down):
		m.callLog.MoveDown()
	case key.Matches(msg, callLogKeys.Toggle):
		m.callLog.ToggleSelected()
	case key.Matches(msg, callLogKeys.Preview):
		m.callLog.CyclePreview()
	case key.Matches(msg, callLogKeys.PageUp):
		m.callLog.PageUp()
	case key.Matches(msg, callLogKeys.PageDown):
		m.callLog.PageDown()
	case key.Matches(msg, callLogKeys.Edit):
		if m.path != "" {
			return launchEditorCmd(m.path)
		}
	case key.Matches(msg, callLogKeys.Reload):
		if m.path != "" {
			return loadRecordingCmd(m.path)
		}
	case key.Matches(msg, callLogKeys.Back):
		m.callLog.Leave()
		m.mode = modeRecordings
		return listRecordingsCmd(m.recordingsDir)
	}
	return nil
}

func (m *Model) handleRecordingListKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, recordingListKeys.Up):
		m.recordingList.MoveUp()
	case key.Matches(msg, recordingListKeys.Down):
		m.recordingList.MoveDown()
	case key.Matches(msg, recordingListKeys.Open):
		if r := m.recordingList.Selected(); r != nil {
			return loadRecordingCmd(r.Path)
		}
	case key.Matches(msg, recordingListKeys.Reload):
		return listRecordingsCmd(m.recordingsDir)
	}
	return nil
}

func (m *Model) handleOverlayKey(msg tea.KeyMsg) tea.Cmd {
	switch m.activeOverlay {
	case overlayHelp:
		if key.Matches(msg, overlayKeys.Cancel) || key.Matches(msg, globalKeys.Help) {
			m.activeOverlay = overlayNone
		}
		return nil

	case overlaySettings:
		return m.handleSettingsKey(msg)
	}
	return nil
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	if m.settingsForm.IsEditing() {
		switch msg.Type {
		case tea.KeyEnter:
			changed, k, v := m.settingsForm.FinishEdit()
			if changed {
				return m.applySetting(k, v)
			}
			return nil
		case tea.KeyEscape:
			m.settingsForm.CancelEdit()
			return nil
		default:
			ti := m.settingsForm.InputModel()
			newTI, _ := ti.Update(msg)
			*ti = newTI
			return nil
		}
	}

	switch {
	case key.Matches(msg, overlayKeys.Cancel):
		m.activeOverlay = overlayNone
	case key.Matches(msg, settingsKeys.Up):
		m.settingsForm.MoveUp()
	case key.Matches(msg, settingsKeys.Down):
		m.settingsForm.MoveDown()
	case key.Matches(msg, settingsKeys.Toggle):
		changed, k, v := m.settingsForm.Toggle()
		if changed {
			return m.applySetting(k, v)
		}
	case key.Matches(msg, settingsKeys.Enter):
		if m.settingsForm.StartEdit() {
			return nil
		}
		changed, k, v := m.settingsForm.Toggle()
		if changed {
			return m.applySetting(k, v)
		}
	}
	return nil
}

// applySetting validates one change against a copy of the settings and saves it.
func (m *Model) applySetting(k, v string) tea.Cmd {
	next := *m.settings
	if err := config.SetSetting(&next, k, v); err != nil {
		m.settingsForm.LoadFromSettings(m.settings)
		m.err = err
		return clearErrorAfter(5 * time.Second)
	}
	return saveSettingsCmd(&next)
}

// doQuit performs clean shutdown: stop forwarding, clear program ref, stop watcher, quit.
func (m *Model) doQuit() tea.Cmd {
	m.watchCancel()
	m.program.Clear()
	if m.watcher != nil {
		m.watcher.Stop()
	}
	return tea.Quit
}

// ── Mouse handling ───────────────────────────────────────────────

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	// Overlays cover the panels.
	if m.activeOverlay != overlayNone {
		m.dragging = false
		m.callLog.Leave()
		return nil
	}

	layout := computeLayout(m.width, m.height, m.splitRatio)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && msg.X >= layout.dividerCol-1 && msg.X <= layout.dividerCol+1 {
			m.dragging = true
			return nil
		}
		if msg.X < layout.dividerCol {
			m.focusedPanel = 0
		} else {
			m.focusedPanel = 1
		}

	case tea.MouseActionRelease:
		m.dragging = false

	case tea.MouseActionMotion:
		if m.dragging {
			ratio := float64(msg.X) / float64(m.width)
			if ratio < 0.2 {
				ratio = 0.2
			}
			if ratio > 0.8 {
				ratio = 0.8
			}
			m.splitRatio = ratio
			m.updateDimensions()
			return nil
		}
	}

	// Translate into left panel inner coordinates: header + top border above,
	// left border before.
	local := msg
	local.X = msg.X - 1
	local.Y = msg.Y - 2
	inner := local.X >= 0 && local.X < layout.leftWidth-2 && local.Y >= 0 && local.Y < layout.contentHeight-2

	if m.mode == modeRecordings {
		if inner && msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				m.recordingList.MoveUp()
			case tea.MouseButtonWheelDown:
				m.recordingList.MoveDown()
			case tea.MouseButtonLeft:
				prev := m.recordingList.Selected()
				if r := m.recordingList.SelectAt(local.Y); r != nil && r == prev {
					return loadRecordingCmd(r.Path)
				}
			}
		}
		return nil
	}

	if !inner {
		m.callLog.Leave()
		return nil
	}
	m.callLog.HandleMouse(local)
	return nil
}

// ── Dimension helpers ────────────────────────────────────────────

func (m *Model) updateDimensions() {
	layout := computeLayout(m.width, m.height, m.splitRatio)
	innerHeight := layout.contentHeight - 2
	leftInner := layout.leftWidth - 2
	rightInner := layout.rightWidth - 2

	if innerHeight < 1 {
		innerHeight = 1
	}
	if leftInner < 1 {
		leftInner = 1
	}
	if rightInner < 1 {
		rightInner = 1
	}

	m.callLog.SetSize(leftInner, innerHeight)
	m.recordingList.SetSize(leftInner, innerHeight)
	m.preview.SetSize(rightInner, innerHeight)

	formWidth := m.width - 14
	if formWidth > 60 {
		formWidth = 60
	}
	m.settingsForm.SetWidth(formWidth)
}

// ── View ─────────────────────────────────────────────────────────

// View renders the TUI.
func (m Model) View() string {
	if m.width < minWidth || m.height < minHeight {
		sizeStr := fmt.Sprintf("%dx%d", m.width, m.height)
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorYellow).
			Render(lipgloss.JoinVertical(lipgloss.Center,
				"Terminal too small",
				lipgloss.NewStyle().Foreground(colorDim).Render(
					fmt.Sprintf("Need %dx%d, have ", minWidth, minHeight)+lipgloss.NewStyle().Bold(true).Render(sizeStr),
				),
			))
	}

	layout := computeLayout(m.width, m.height, m.splitRatio)

	header := renderHeader(&m, m.width)

	var leftContent string
	if m.mode == modeRecordings {
		leftContent = m.recordingList.View()
	} else {
		leftContent = m.callLog.View()
	}
	rightContent := m.preview.View()

	panels := renderPanels(leftContent, rightContent, layout, m.focusedPanel)
	statusBar := renderStatusBar(&m, m.width)

	view := lipgloss.JoinVertical(lipgloss.Left, header, panels, statusBar)

	var overlayContent string
	switch m.activeOverlay {
	case overlayHelp:
		overlayContent = renderHelp(m.width)
	case overlaySettings:
		overlayContent = m.settingsForm.View()
	}
	if overlayContent != "" {
		view = renderOverlay(view, overlayContent, m.width, m.height)
	}

	return view
}

// Minimum terminal size.
const (
	minWidth  = 80
	minHeight = 24
)
