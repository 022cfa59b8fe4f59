// Package watcher handles file system watching for open recordings.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/watchfire-io/calllog/internal/config"
)

// EventType represents the type of file system event.
type EventType int

// Event types for file system changes.
const (
	EventRecordingChanged EventType = iota
	EventRecordingRemoved
	EventRecordingsDirChanged
)

func (t EventType) String() string {
	switch t {
	case EventRecordingChanged:
		return "recording-changed"
	case EventRecordingRemoved:
		return "recording-removed"
	case EventRecordingsDirChanged:
		return "recordings-dir-changed"
	}
	return "unknown"
}

// Event represents a file system change event.
type Event struct {
	Type EventType
	Path string
}

// Watcher watches recording files and recording directories.
// Directories are watched rather than files so that atomic
// write-then-rename saves are picked up.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	eventsChan chan Event
	done       chan struct{}
	stopOnce   sync.Once
	mu         sync.RWMutex
	files      map[string]struct{}
	dirs       map[string]struct{}
	debounce   map[string]*time.Timer
	debounceMu sync.Mutex
	delay      time.Duration
}

// New creates a new file system watcher.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	return &Watcher{
		fsWatcher:  fsWatcher,
		eventsChan: make(chan Event, 100),
		done:       make(chan struct{}),
		files:      make(map[string]struct{}),
		dirs:       make(map[string]struct{}),
		debounce:   make(map[string]*time.Timer),
		delay:      100 * time.Millisecond,
	}, nil
}

// Events returns the channel for receiving events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Start starts processing events.
func (w *Watcher) Start() {
	go w.processEvents()
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()

		w.debounceMu.Lock()
		for path, timer := range w.debounce {
			timer.Stop()
			delete(w.debounce, path)
		}
		w.debounceMu.Unlock()
	})
}

// WatchRecording watches a single recording file for changes.
func (w *Watcher) WatchRecording(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve %s", path)
	}

	w.mu.Lock()
	w.files[abs] = struct{}{}
	w.mu.Unlock()

	if err := w.fsWatcher.Add(filepath.Dir(abs)); err != nil {
		return errors.Wrapf(err, "failed to watch %s", filepath.Dir(abs))
	}
	log.Debug().Str("component", "watcher").Str("path", abs).Msg("watching recording")
	return nil
}

// UnwatchRecording stops reporting changes for a recording file.
func (w *Watcher) UnwatchRecording(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	w.mu.Lock()
	delete(w.files, abs)
	w.mu.Unlock()
}

// WatchDir watches a recordings directory for added, changed, or removed recordings.
func (w *Watcher) WatchDir(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve %s", dir)
	}

	w.mu.Lock()
	w.dirs[abs] = struct{}{}
	w.mu.Unlock()

	if err := w.fsWatcher.Add(abs); err != nil {
		return errors.Wrapf(err, "failed to watch %s", abs)
	}
	log.Debug().Str("component", "watcher").Str("dir", abs).Msg("watching recordings dir")
	return nil
}

// processEvents processes file system events.
func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			log.Trace().Str("component", "watcher").Str("op", event.Op.String()).Str("path", event.Name).Msg("fsnotify")
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warn().Str("component", "watcher").Err(err).Msg("watcher error")
		}
	}
}

// handleEvent filters and debounces a single file system event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}
	if !w.isRelevant(event.Name) {
		return
	}

	w.debounceEvent(event.Name, func() {
		w.processFileChange(event.Name)
	})
}

func (w *Watcher) isRelevant(path string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if _, ok := w.files[path]; ok {
		return true
	}
	if _, ok := w.dirs[filepath.Dir(path)]; ok {
		return config.IsRecordingFile(filepath.Base(path))
	}
	return false
}

// debounceEvent debounces events for the same path.
func (w *Watcher) debounceEvent(path string, fn func()) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}

	w.debounce[path] = time.AfterFunc(w.delay, func() {
		w.debounceMu.Lock()
		delete(w.debounce, path)
		w.debounceMu.Unlock()
		fn()
	})
}

// processFileChange classifies a debounced change. The final state of the
// file decides between changed and removed, since a burst may mix ops.
func (w *Watcher) processFileChange(path string) {
	w.mu.RLock()
	_, isFile := w.files[path]
	w.mu.RUnlock()

	var ev Event
	switch {
	case isFile && !config.FileExists(path):
		ev = Event{Type: EventRecordingRemoved, Path: path}
	case isFile:
		ev = Event{Type: EventRecordingChanged, Path: path}
	default:
		ev = Event{Type: EventRecordingsDirChanged, Path: path}
	}

	log.Debug().Str("component", "watcher").Stringer("type", ev.Type).Str("path", path).Msg("debounce fired")
	select {
	case w.eventsChan <- ev:
	case <-w.done:
	}
}
