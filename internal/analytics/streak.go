package analytics

import (
	"sort"
	"time"
)

// StreakResult holds the current and best consecutive-day streaks
type StreakResult struct {
	Current int `json:"current_streak"`
	Best    int `json:"best_streak"`
}

// CalculateStreaks computes streaks over the calendar days (in now's
// location) that have at least one entry.
//
// The current streak counts back from today, or from yesterday when
// nothing was logged yet today. The best streak only registers once a
// pair of consecutive days is seen, so a lone entry has Best == 0.
func CalculateStreaks(entries []Entry, now time.Time) StreakResult {
	days := distinctDaysDesc(entries, now.Location())
	if len(days) == 0 {
		return StreakResult{}
	}

	today := dayNumber(now)

	// Future-dated entries never start or extend a streak
	start := 0
	for start < len(days) && days[start] > today {
		start++
	}

	current := 0
	if start < len(days) {
		anchor := today
		if days[start] == today-1 {
			anchor = today - 1
		}
		for _, day := range days[start:] {
			if anchor-day != int64(current) {
				break
			}
			current++
		}
	}

	best := 0
	run := 1
	for i := 1; i < len(days); i++ {
		if days[i-1]-days[i] == 1 {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 1
		}
	}

	return StreakResult{Current: current, Best: best}
}

// distinctDaysDesc returns the unique day numbers of entries, most recent first
func distinctDaysDesc(entries []Entry, loc *time.Location) []int64 {
	seen := make(map[int64]struct{}, len(entries))
	days := make([]int64, 0, len(entries))
	for _, e := range entries {
		d := dayNumber(e.Timestamp.In(loc))
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] > days[j] })
	return days
}
