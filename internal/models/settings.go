package models

// PreviewsConfig holds preview trigger behavior.
type PreviewsConfig struct {
	// HoverHidden lets triggers without a snapshot still fire hover callbacks.
	HoverHidden bool `yaml:"hover_hidden"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
	File  string `yaml:"file"`  // empty = ~/.calllog/calllog.log
}

// Settings represents global application settings.
// This corresponds to ~/.calllog/settings.yaml.
type Settings struct {
	Version       int            `yaml:"version"`
	RecordingsDir string         `yaml:"recordings_dir"` // empty = ~/.calllog/recordings
	Follow        bool           `yaml:"follow"`
	Previews      PreviewsConfig `yaml:"previews"`
	Logging       LoggingConfig  `yaml:"logging"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Follow:  true,
		Previews: PreviewsConfig{
			HoverHidden: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
