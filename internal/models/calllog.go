package models

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Status represents the state of a recorded call.
type Status string

const (
	StatusDone       Status = "done"
	StatusInProgress Status = "in-progress"
	StatusPaused     Status = "paused"
	StatusError      Status = "error"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusInProgress, StatusPaused, StatusError, StatusDone}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusDone, StatusInProgress, StatusPaused, StatusError:
		return true
	}
	return false
}

// UnmarshalYAML rejects statuses outside the closed set.
func (s *Status) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	status := Status(raw)
	if !status.Valid() {
		return errors.Errorf("line %d: unknown call status %q", node.Line, raw)
	}
	*s = status
	return nil
}

// Phase identifies which snapshot of a call is being previewed.
type Phase string

const (
	PhaseNone   Phase = ""
	PhaseBefore Phase = "before"
	PhaseAction Phase = "action"
	PhaseAfter  Phase = "after"
)

// Phases lists the preview phases in trigger order.
var Phases = [3]Phase{PhaseBefore, PhaseAction, PhaseAfter}

// Params holds the call parameters shown next to the title.
type Params struct {
	URL      string `yaml:"url,omitempty"`
	Selector string `yaml:"selector,omitempty"`
}

// Snapshots marks which preview phases were captured for a call.
type Snapshots struct {
	Before bool `yaml:"before"`
	Action bool `yaml:"action"`
	After  bool `yaml:"after"`
}

// Has reports whether a snapshot exists for the phase.
func (s Snapshots) Has(phase Phase) bool {
	switch phase {
	case PhaseBefore:
		return s.Before
	case PhaseAction:
		return s.Action
	case PhaseAfter:
		return s.After
	}
	return false
}

// CallLog is one recorded step of an automated action sequence.
// This corresponds to an entry of the `calls` list in a recording file.
type CallLog struct {
	ID        int       `yaml:"id"`
	Title     string    `yaml:"title"`
	Params    Params    `yaml:"params"`
	Status    Status    `yaml:"status"`
	Duration  *float64  `yaml:"duration,omitempty"` // milliseconds
	Messages  []string  `yaml:"messages,omitempty"`
	Error     string    `yaml:"error,omitempty"`
	Snapshots Snapshots `yaml:"snapshots"`
	Reveal    bool      `yaml:"reveal,omitempty"`
}

// HasDuration reports whether the call carries a numeric duration.
func (c *CallLog) HasDuration() bool {
	return c.Duration != nil
}
