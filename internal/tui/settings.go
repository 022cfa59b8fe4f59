package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/watchfire-io/calllog/internal/models"
)

// FieldType defines the type of a settings field.
type FieldType int

const (
	fieldText FieldType = iota
	fieldToggle
)

// SettingsField is a single field in the settings form.
type SettingsField struct {
	Label     string
	Key       string // settings key understood by config.SetSetting
	Value     string
	BoolValue bool
	Type      FieldType
}

// SettingsForm edits the global settings in an overlay.
type SettingsForm struct {
	fields  []SettingsField
	cursor  int
	editing bool
	input   textinput.Model
	width   int
}

// NewSettingsForm creates a new settings form.
func NewSettingsForm() *SettingsForm {
	ti := textinput.New()
	ti.CharLimit = 256
	return &SettingsForm{
		input: ti,
	}
}

// LoadFromSettings populates fields from settings.
func (s *SettingsForm) LoadFromSettings(settings *models.Settings) {
	s.fields = []SettingsField{
		{Label: "Recordings Dir", Key: "recordings_dir", Value: settings.RecordingsDir, Type: fieldText},
		{Label: "Follow", Key: "follow", BoolValue: settings.Follow, Type: fieldToggle},
		{Label: "Hover Hidden", Key: "previews.hover_hidden", BoolValue: settings.Previews.HoverHidden, Type: fieldToggle},
		{Label: "Log Level", Key: "logging.level", Value: settings.Logging.Level, Type: fieldText},
		{Label: "Log File", Key: "logging.file", Value: settings.Logging.File, Type: fieldText},
	}
	if s.cursor >= len(s.fields) {
		s.cursor = len(s.fields) - 1
	}
}

// SetWidth updates the form width.
func (s *SettingsForm) SetWidth(width int) {
	s.width = width
	s.input.Width = width - 24
}

// MoveUp moves cursor up.
func (s *SettingsForm) MoveUp() {
	if !s.editing && s.cursor > 0 {
		s.cursor--
	}
}

// MoveDown moves cursor down.
func (s *SettingsForm) MoveDown() {
	if !s.editing && s.cursor < len(s.fields)-1 {
		s.cursor++
	}
}

// Toggle flips a boolean field.
func (s *SettingsForm) Toggle() (changed bool, key, value string) {
	if s.cursor < 0 || s.cursor >= len(s.fields) {
		return false, "", ""
	}
	f := &s.fields[s.cursor]
	if f.Type == fieldToggle {
		f.BoolValue = !f.BoolValue
		return true, f.Key, strconv.FormatBool(f.BoolValue)
	}
	return false, "", ""
}

// StartEdit begins inline editing of the current text field.
func (s *SettingsForm) StartEdit() bool {
	if s.cursor < 0 || s.cursor >= len(s.fields) {
		return false
	}
	f := s.fields[s.cursor]
	if f.Type != fieldText {
		return false
	}
	s.editing = true
	s.input.SetValue(f.Value)
	s.input.Focus()
	return true
}

// FinishEdit confirms the current edit.
func (s *SettingsForm) FinishEdit() (changed bool, key, value string) {
	if !s.editing {
		return false, "", ""
	}
	s.editing = false
	s.input.Blur()

	f := &s.fields[s.cursor]
	newVal := strings.TrimSpace(s.input.Value())
	if newVal != f.Value {
		f.Value = newVal
		return true, f.Key, newVal
	}
	return false, "", ""
}

// CancelEdit cancels the current edit.
func (s *SettingsForm) CancelEdit() {
	s.editing = false
	s.input.Blur()
}

// IsEditing returns whether a field is being edited.
func (s *SettingsForm) IsEditing() bool {
	return s.editing
}

// InputModel returns the text input model for Update forwarding.
func (s *SettingsForm) InputModel() *textinput.Model {
	return &s.input
}

// View renders the settings form as overlay content.
func (s *SettingsForm) View() string {
	lines := []string{overlayTitleStyle.Render("Settings")}
	for i, f := range s.fields {
		var line string
		label := settingsLabelStyle.Render(f.Label + ":")

		if f.Type == fieldToggle {
			var val string
			if f.BoolValue {
				val = settingsToggleOn.Render("[ON]")
			} else {
				val = settingsToggleOff.Render("[OFF]")
			}
			line = label + " " + val
		} else {
			if s.editing && i == s.cursor {
				line = label + " " + s.input.View()
			} else {
				val := f.Value
				if val == "" {
					val = lipgloss.NewStyle().Foreground(colorDim).Render("(default)")
				} else {
					val = settingsValueStyle.Render(val)
				}
				line = label + " " + val
			}
		}

		if i == s.cursor {
			line = settingsCursorStyle.Width(s.width).Render(line)
		}
		lines = append(lines, line)
	}

	lines = append(lines, "", overlayDimStyle.Render("j/k navigate · Enter edit · Space toggle · Esc close"))
	return overlayStyle.Width(s.width + 4).Render(strings.Join(lines, "\n"))
}
