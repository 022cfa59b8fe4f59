// Package tui implements the interactive call log viewer.
package tui

import (
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/watchfire-io/calllog/internal/watcher"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Run launches the TUI. With an empty opts.Path it starts on the recordings list.
func Run(opts Options) error {
	if opts.Path != "" {
		abs, err := filepath.Abs(opts.Path)
		if err != nil {
			return errors.Wrapf(err, "failed to resolve %s", opts.Path)
		}
		opts.Path = abs
	}

	var w *watcher.Watcher
	if opts.Follow {
		var err error
		w, err = watcher.New()
		if err != nil {
			return err
		}
		defer w.Stop()
	}

	ref := &programRef{}
	model := NewModel(opts, ref, w)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	ref.Set(p)

	log.Info().Str("component", "tui").Str("path", opts.Path).Bool("follow", opts.Follow).Msg("starting viewer")
	_, err := p.Run()
	ref.Clear()
	return err
}
