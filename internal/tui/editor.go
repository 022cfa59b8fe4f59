package tui

import (
	"os"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

// launchEditorCmd returns a tea.Cmd that suspends bubbletea and opens the
// recording file in $EDITOR. The recording is reloaded by the caller once
// the editor exits.
func launchEditorCmd(path string) tea.Cmd {
	editor := findEditorPath()
	if editor == "" {
		return func() tea.Msg {
			return EditorFinishedMsg{Path: path, Err: errors.New("no editor found, set $EDITOR")}
		}
	}

	c := exec.Command(editor, path) //nolint:noctx // tea.ExecProcess requires *exec.Cmd, not CommandContext
	return tea.ExecProcess(c, func(err error) tea.Msg {
		if err != nil {
			return EditorFinishedMsg{Path: path, Err: errors.Wrapf(err, "failed to run %s", editor)}
		}
		return EditorFinishedMsg{Path: path}
	})
}

// findEditorPath locates the user's preferred editor.
func findEditorPath() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	for _, name := range []string{"vim", "vi", "nano"} {
		if p, err := exec.LookPath(name); err == nil {
			return p
		}
	}
	return ""
}
