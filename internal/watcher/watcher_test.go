package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T) *Watcher {
	t.Helper()
	w, err := New()
	require.NoError(t, err)
	w.delay = 50 * time.Millisecond
	w.Start()
	t.Cleanup(w.Stop)
	return w
}

func waitEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case ev := <-w.Events():
		return ev
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}
	return Event{}
}

func expectNoEvent(t *testing.T, w *Watcher, wait time.Duration) {
	t.Helper()
	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected event %s for %s", ev.Type, ev.Path)
	case <-time.After(wait):
	}
}

func TestWatchRecordingDebouncesWrites(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("calls: []\n"), 0o644))

	w := newTestWatcher(t)
	require.NoError(t, w.WatchRecording(path))

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("calls: []\n# edit\n"), 0o644))
	}

	ev := waitEvent(t, w)
	require.Equal(t, EventRecordingChanged, ev.Type)
	require.Equal(t, path, ev.Path)
	expectNoEvent(t, w, 200*time.Millisecond)
}

func TestWatchRecordingRemoved(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("calls: []\n"), 0o644))

	w := newTestWatcher(t)
	require.NoError(t, w.WatchRecording(path))
	require.NoError(t, os.Remove(path))

	ev := waitEvent(t, w)
	require.Equal(t, EventRecordingRemoved, ev.Type)
}

func TestWatchDirIgnoresOtherFiles(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	w := newTestWatcher(t)
	require.NoError(t, w.WatchDir(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	expectNoEvent(t, w, 200*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.yaml"), []byte("calls: []\n"), 0o644))
	ev := waitEvent(t, w)
	require.Equal(t, EventRecordingsDirChanged, ev.Type)
	require.Equal(t, filepath.Join(dir, "new.yaml"), ev.Path)
}

func TestStopIsIdempotent(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	w.Start()
	w.Stop()
	w.Stop()
}

func TestEventTypeString(t *testing.T) {
	require.Equal(t, "recording-changed", EventRecordingChanged.String())
	require.Equal(t, "unknown", EventType(42).String())
}
