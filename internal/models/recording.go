package models

import "time"

// Recording is a recorded call log session.
// This corresponds to a YAML file in the recordings directory.
type Recording struct {
	Version     int        `yaml:"version"`
	RecordingID string     `yaml:"recording_id"`
	Name        string     `yaml:"name"`
	CreatedAt   time.Time  `yaml:"created_at"`
	Calls       []*CallLog `yaml:"calls"`
}

// NewRecording creates an empty recording with default values.
func NewRecording(id, name string) *Recording {
	return &Recording{
		Version:     1,
		RecordingID: id,
		Name:        name,
		CreatedAt:   time.Now().UTC(),
		Calls:       []*CallLog{},
	}
}

// StatusCounts returns the number of calls per status.
func (r *Recording) StatusCounts() map[Status]int {
	counts := make(map[Status]int, len(Statuses))
	for _, c := range r.Calls {
		counts[c.Status]++
	}
	return counts
}

// RecordingSummary is the listing metadata for a recording file.
type RecordingSummary struct {
	Path        string
	RecordingID string
	Name        string
	CreatedAt   time.Time
	Calls       int
	Counts      map[Status]int
}
