package models

import "github.com/dailywell/backend/internal/analytics"

// EntryKind names the table and column an entry series is read from
type EntryKind string

const (
	EntryKindMood         EntryKind = "mood"
	EntryKindSleep        EntryKind = "sleep"
	EntryKindSleepQuality EntryKind = "sleep_quality"
	EntryKindScreenTime   EntryKind = "screen_time"
	EntryKindWater        EntryKind = "water"
)

// EntryKinds lists every supported kind in display order
var EntryKinds = []EntryKind{
	EntryKindMood,
	EntryKindSleep,
	EntryKindSleepQuality,
	EntryKindScreenTime,
	EntryKindWater,
}

// Valid reports whether k is a known kind
func (k EntryKind) Valid() bool {
	for _, known := range EntryKinds {
		if k == known {
			return true
		}
	}
	return false
}

// MoodStats is the summary shown on the mood stat cards
type MoodStats struct {
	AverageMood   float64 `json:"average_mood"`
	WindowDays    int     `json:"window_days"`
	CurrentStreak int     `json:"current_streak"`
	BestStreak    int     `json:"best_streak"`
}

// SleepTrends compares the current window with the one before it
type SleepTrends struct {
	Sleep   analytics.TrendResult `json:"sleep"`
	Quality analytics.TrendResult `json:"quality"`
}

// SleepStats is the summary shown on the sleep and screen time cards
type SleepStats struct {
	AverageSleepHours      float64            `json:"average_sleep_hours"`
	SleepQuality           float64            `json:"sleep_quality"`
	AverageScreenTimeHours float64            `json:"average_screen_time_hours"`
	PeakScreenTime         string             `json:"peak_screen_time"`
	PeakScreenHour         analytics.PeakHour `json:"peak_screen_hour"`
	Trends                 SleepTrends        `json:"trends"`
	WindowDays             int                `json:"window_days"`
}

// EntriesResponse is the payload of the raw entry series endpoint
type EntriesResponse struct {
	Kind    EntryKind         `json:"kind"`
	Entries []analytics.Entry `json:"entries"`
}
