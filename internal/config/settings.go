package config

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/watchfire-io/calllog/internal/models"
)

// LoadSettings loads the global settings from ~/.calllog/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadYAMLOrDefault(path, models.NewSettings)
}

// SaveSettings saves the global settings to ~/.calllog/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	if err := EnsureGlobalDir(); err != nil {
		return err
	}
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}

// ResolveRecordingsDir returns the configured recordings directory or the default one.
func ResolveRecordingsDir(settings *models.Settings) (string, error) {
	if settings != nil && settings.RecordingsDir != "" {
		return settings.RecordingsDir, nil
	}
	return DefaultRecordingsDir()
}

// ResolveLogFile returns the configured log file or the default one.
func ResolveLogFile(settings *models.Settings) (string, error) {
	if settings != nil && settings.Logging.File != "" {
		return settings.Logging.File, nil
	}
	return GlobalLogFile()
}

// SettingKeys lists the keys accepted by SetSetting.
var SettingKeys = []string{
	"recordings_dir",
	"follow",
	"previews.hover_hidden",
	"logging.level",
	"logging.file",
}

// SetSetting updates a single setting by its YAML key path.
func SetSetting(settings *models.Settings, key, value string) error {
	switch key {
	case "recordings_dir":
		settings.RecordingsDir = value
	case "follow":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Errorf("invalid boolean for %s: %s", key, value)
		}
		settings.Follow = b
	case "previews.hover_hidden":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Errorf("invalid boolean for %s: %s", key, value)
		}
		settings.Previews.HoverHidden = b
	case "logging.level":
		switch value {
		case "debug", "info", "warn", "error":
			settings.Logging.Level = value
		default:
			return errors.Errorf("invalid log level: %s (expected debug, info, warn or error)", value)
		}
	case "logging.file":
		settings.Logging.File = value
	default:
		return errors.Errorf("unknown setting: %s", key)
	}
	return nil
}
