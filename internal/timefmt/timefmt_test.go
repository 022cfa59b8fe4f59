package timefmt

import (
	"math"
	"testing"
)

func TestMilliseconds(t *testing.T) {
	tests := []struct {
		name     string
		ms       float64
		expected string
	}{
		{name: "zero", ms: 0, expected: "0"},
		{name: "sub second", ms: 999, expected: "999ms"},
		{name: "one and a half seconds", ms: 1500, expected: "1.5s"},
		{name: "exact second", ms: 1000, expected: "1.0s"},
		{name: "minutes", ms: 90000, expected: "1.5m"},
		{name: "hours", ms: 2 * 60 * 60 * 1000, expected: "2.0h"},
		{name: "days", ms: 36 * 60 * 60 * 1000, expected: "1.5d"},
		{name: "infinite", ms: math.Inf(1), expected: "-"},
		{name: "nan", ms: math.NaN(), expected: "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Milliseconds(tt.ms)
			if result != tt.expected {
				t.Errorf("Milliseconds(%v) = %q, want %q", tt.ms, result, tt.expected)
			}
		})
	}
}
