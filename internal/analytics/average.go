package analytics

import "time"

// RollingAverage returns the mean value of the entries logged within the
// last windowDays days before now, rounded to one decimal place.
// A non-positive window falls back to DefaultWindowDays.
func RollingAverage(entries []Entry, windowDays int, now time.Time) float64 {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	cutoff := now.AddDate(0, 0, -windowDays)

	sum := 0.0
	n := 0
	for _, e := range entries {
		if e.Timestamp.Before(cutoff) {
			continue
		}
		sum += e.Value
		n++
	}
	if n == 0 {
		return 0
	}
	return Round(sum/float64(n), 1)
}

// Window returns the entries whose timestamps fall in [start, end)
func Window(entries []Entry, start, end time.Time) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Timestamp.Before(start) || !e.Timestamp.Before(end) {
			continue
		}
		out = append(out, e)
	}
	return out
}
