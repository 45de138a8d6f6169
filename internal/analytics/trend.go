package analytics

import "fmt"

// Direction of a period-over-period change
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// TrendResult is a whole-number percentage change and its direction
type TrendResult struct {
	PercentChange float64   `json:"percent_change"`
	Direction     Direction `json:"direction"`
}

// PeakHour is the hour-of-day bucket with the largest summed value
type PeakHour struct {
	Hour  int     `json:"hour"`
	Total float64 `json:"total"`
	Label string  `json:"label"`
}

// PercentChange returns the rounded change from previous to current in
// percent. A non-positive previous value yields 0.
func PercentChange(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}
	return Round((current-previous)/previous*100, 0)
}

// Trend wraps PercentChange with the direction of the change
func Trend(current, previous float64) TrendResult {
	pct := PercentChange(current, previous)
	dir := DirectionFlat
	switch {
	case pct > 0:
		dir = DirectionUp
	case pct < 0:
		dir = DirectionDown
	}
	return TrendResult{PercentChange: pct, Direction: dir}
}

// FindPeakHour sums entry values by Timestamp.Hour() and returns the
// largest bucket. Equal sums go to the earlier hour. Without data the
// result is hour 0 with a zero total.
func FindPeakHour(entries []Entry) PeakHour {
	var sums [24]float64
	var seen [24]bool
	for _, e := range entries {
		h := e.Timestamp.Hour()
		sums[h] += e.Value
		seen[h] = true
	}

	peak := -1
	for h := 0; h < 24; h++ {
		if !seen[h] {
			continue
		}
		if peak < 0 || sums[h] > sums[peak] {
			peak = h
		}
	}
	if peak < 0 {
		return PeakHour{Hour: 0, Label: FormatHourRange(0)}
	}

	return PeakHour{Hour: peak, Total: sums[peak], Label: FormatHourRange(peak)}
}

// FormatHourRange renders an hour bucket as "9am-10am", wrapping 23 to "11pm-12am"
func FormatHourRange(hour int) string {
	hour = ((hour % 24) + 24) % 24
	return fmt.Sprintf("%s-%s", formatHour(hour), formatHour((hour+1)%24))
}

func formatHour(hour int) string {
	suffix := "am"
	if hour >= 12 {
		suffix = "pm"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d%s", h, suffix)
}
