// Package analytics holds the pure aggregate computations behind the
// wellness dashboard: streaks, rolling averages, day-of-week profiles,
// period trends and peak-hour detection.
//
// Every function works on a caller-owned slice of Entry values, never
// mutates it, and returns a zero value for empty input.
package analytics

import (
	"math"
	"time"
)

// DefaultWindowDays is the rolling window used when none is configured
const DefaultWindowDays = 30

// NoDay is reported for best/worst weekday when there is no data
const NoDay = "N/A"

// Entry is a single timestamped numeric observation (mood score,
// sleep minutes, screen minutes, ...)
type Entry struct {
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

// Mean returns the arithmetic mean of the entry values, or 0 when empty
func Mean(entries []Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range entries {
		sum += e.Value
	}
	return sum / float64(len(entries))
}

// Round rounds v to the given number of decimals; halves round toward +Inf
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Floor(v*p+0.5) / p
}

// dayNumber maps t to a serial calendar-day number in t's own location
func dayNumber(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / int64(24*time.Hour/time.Second)
}
