package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{name: "previous zero", current: 7, previous: 0, want: 0},
		{name: "previous negative", current: 7, previous: -1, want: 0},
		{name: "increase", current: 8, previous: 6, want: 33},
		{name: "decrease", current: 6, previous: 8, want: -25},
		{name: "unchanged", current: 4.2, previous: 4.2, want: 0},
		{name: "negative half rounds toward positive infinity", current: 1.5, previous: 4, want: -62},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PercentChange(tt.current, tt.previous))
		})
	}
}

func TestTrend(t *testing.T) {
	assert.Equal(t, TrendResult{PercentChange: 50, Direction: DirectionUp}, Trend(6, 4))
	assert.Equal(t, TrendResult{PercentChange: -50, Direction: DirectionDown}, Trend(2, 4))
	assert.Equal(t, TrendResult{PercentChange: 0, Direction: DirectionFlat}, Trend(9, 0))
}

func atHour(hour int) time.Time {
	return time.Date(2024, time.March, 14, hour, 15, 0, 0, time.UTC)
}

func TestFindPeakHour(t *testing.T) {
	entries := []Entry{
		{Value: 30, Timestamp: atHour(9)},
		{Value: 20, Timestamp: atHour(9)},
		{Value: 10, Timestamp: atHour(14)},
	}

	got := FindPeakHour(entries)

	assert.Equal(t, PeakHour{Hour: 9, Total: 50, Label: "9am-10am"}, got)
}

func TestFindPeakHour_Empty(t *testing.T) {
	got := FindPeakHour(nil)

	assert.Equal(t, 0, got.Hour)
	assert.Equal(t, 0.0, got.Total)
	assert.Equal(t, "12am-1am", got.Label)
}

func TestFindPeakHour_TieGoesToEarlierHour(t *testing.T) {
	entries := []Entry{
		{Value: 45, Timestamp: atHour(21)},
		{Value: 45, Timestamp: atHour(7)},
	}

	assert.Equal(t, 7, FindPeakHour(entries).Hour)
}

func TestFindPeakHour_ZeroMinutesStillCountsAsBucket(t *testing.T) {
	got := FindPeakHour([]Entry{{Value: 0, Timestamp: atHour(18)}})

	assert.Equal(t, 18, got.Hour)
	assert.Equal(t, "6pm-7pm", got.Label)
}

func TestFormatHourRange(t *testing.T) {
	tests := map[int]string{
		0:  "12am-1am",
		9:  "9am-10am",
		11: "11am-12pm",
		12: "12pm-1pm",
		14: "2pm-3pm",
		23: "11pm-12am",
	}
	for hour, want := range tests {
		assert.Equal(t, want, FormatHourRange(hour), "hour %d", hour)
	}
}
