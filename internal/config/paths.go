// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// GlobalDirName is the name of the global calllog directory.
	GlobalDirName = ".calllog"

	// RecordingsDirName is the name of the default recordings directory.
	RecordingsDirName = "recordings"

	// RecordingExt is the file extension of recording files.
	RecordingExt = ".yaml"
)

// File names
const (
	SettingsFileName = "settings.yaml"
	LogFileName      = "calllog.log"
)

// GlobalDir returns the path to the global calllog directory (~/.calllog/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// GlobalLogFile returns the default path of the application log.
func GlobalLogFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFileName), nil
}

// DefaultRecordingsDir returns ~/.calllog/recordings.
func DefaultRecordingsDir() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, RecordingsDirName), nil
}

// RecordingFile returns the path of a recording by name inside dir.
func RecordingFile(dir, name string) string {
	if !strings.HasSuffix(name, RecordingExt) {
		name += RecordingExt
	}
	return filepath.Join(dir, name)
}

// IsRecordingFile reports whether a file name looks like a recording.
func IsRecordingFile(name string) bool {
	return strings.HasSuffix(name, RecordingExt) && name != SettingsFileName
}

// EnsureGlobalDir creates the global calllog directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}
