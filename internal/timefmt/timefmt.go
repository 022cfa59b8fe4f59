// Package timefmt formats call durations for display.
package timefmt

import (
	"math"
	"strconv"
)

// Milliseconds renders a millisecond duration with one unit: ms below a
// second, then seconds, minutes, hours and days with one decimal.
func Milliseconds(ms float64) string {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return "-"
	}
	if ms == 0 {
		return "0"
	}
	if ms < 1000 {
		return strconv.FormatFloat(ms, 'f', 0, 64) + "ms"
	}

	seconds := ms / 1000
	if seconds < 60 {
		return oneDecimal(seconds) + "s"
	}
	minutes := seconds / 60
	if minutes < 60 {
		return oneDecimal(minutes) + "m"
	}
	hours := minutes / 60
	if hours < 24 {
		return oneDecimal(hours) + "h"
	}
	return oneDecimal(hours/24) + "d"
}

func oneDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
