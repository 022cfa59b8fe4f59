package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/watchfire-io/calllog/internal/models"
)

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	s, err := LoadSettings()
	require.NoError(t, err)
	require.True(t, s.Follow)
	require.True(t, s.Previews.HoverHidden)
	require.Equal(t, "info", s.Logging.Level)
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s := models.NewSettings()
	require.NoError(t, SetSetting(s, "previews.hover_hidden", "false"))
	require.NoError(t, SetSetting(s, "recordings_dir", "/tmp/recs"))
	require.NoError(t, SaveSettings(s))
	require.True(t, FileExists(filepath.Join(home, GlobalDirName, SettingsFileName)))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	require.False(t, loaded.Previews.HoverHidden)
	require.Equal(t, "/tmp/recs", loaded.RecordingsDir)

	dir, err := ResolveRecordingsDir(loaded)
	require.NoError(t, err)
	require.Equal(t, "/tmp/recs", dir)
}

func TestSetSetting(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
	}{
		{name: "follow", key: "follow", value: "false"},
		{name: "bad bool", key: "follow", value: "maybe", wantErr: true},
		{name: "level", key: "logging.level", value: "debug"},
		{name: "bad level", key: "logging.level", value: "trace", wantErr: true},
		{name: "unknown key", key: "theme", value: "dark", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetSetting(models.NewSettings(), tt.key, tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestResolveDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := ResolveRecordingsDir(models.NewSettings())
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, GlobalDirName, RecordingsDirName), dir)

	logFile, err := ResolveLogFile(nil)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, GlobalDirName, LogFileName), logFile)
}
