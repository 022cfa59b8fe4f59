package models

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStatusUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{name: "done", input: "done", want: StatusDone},
		{name: "in progress", input: "in-progress", want: StatusInProgress},
		{name: "paused", input: "paused", want: StatusPaused},
		{name: "error", input: "error", want: StatusError},
		{name: "unknown", input: "running", wantErr: true},
		{name: "wrong case", input: "Done", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Status
			err := yaml.Unmarshal([]byte(tt.input), &s)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, s)
		})
	}
}

func TestStatusUnmarshalErrorCarriesLine(t *testing.T) {
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("\nrunning\n"), &doc))

	var s Status
	err := s.UnmarshalYAML(doc.Content[0])
	require.EqualError(t, err, `line 2: unknown call status "running"`)
	_, hasStack := err.(interface{ StackTrace() errors.StackTrace })
	require.True(t, hasStack)
}

func TestCallLogDecode(t *testing.T) {
	doc := `
id: 3
title: click
params:
  selector: "#submit"
status: paused
duration: 1500
messages:
  - "  waiting for selector  "
snapshots:
  before: true
  after: true
reveal: true
`
	var c CallLog
	require.NoError(t, yaml.Unmarshal([]byte(doc), &c))
	require.Equal(t, 3, c.ID)
	require.Equal(t, StatusPaused, c.Status)
	require.Empty(t, c.Params.URL)
	require.Equal(t, "#submit", c.Params.Selector)
	require.True(t, c.HasDuration())
	require.Equal(t, 1500.0, *c.Duration)
	require.True(t, c.Reveal)
	require.Equal(t, []string{"  waiting for selector  "}, c.Messages)
}

func TestCallLogDecodeWithoutDuration(t *testing.T) {
	var c CallLog
	require.NoError(t, yaml.Unmarshal([]byte("id: 1\ntitle: goto\nstatus: done\n"), &c))
	require.False(t, c.HasDuration())
	require.False(t, c.Reveal)
}

func TestSnapshotsHas(t *testing.T) {
	s := Snapshots{Before: true, After: true}
	require.True(t, s.Has(PhaseBefore))
	require.False(t, s.Has(PhaseAction))
	require.True(t, s.Has(PhaseAfter))
	require.False(t, s.Has(PhaseNone))
}

func TestRecordingStatusCounts(t *testing.T) {
	r := NewRecording("rec-1", "demo")
	r.Calls = []*CallLog{
		{ID: 1, Status: StatusDone},
		{ID: 2, Status: StatusDone},
		{ID: 3, Status: StatusError},
	}
	counts := r.StatusCounts()
	require.Equal(t, 2, counts[StatusDone])
	require.Equal(t, 1, counts[StatusError])
	require.Zero(t, counts[StatusPaused])
}
