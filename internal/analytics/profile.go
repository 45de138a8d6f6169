package analytics

import (
	"sort"
	"time"
)

// DayProfile summarizes which value is logged most often and which
// weekdays score best and worst on average
type DayProfile struct {
	MostFrequentValue float64 `json:"most_frequent_value"`
	BestDay           string  `json:"best_day"`
	WorstDay          string  `json:"worst_day"`
	TotalEntries      int     `json:"total_entries"`
}

// ProfileDays builds a DayProfile from entries.
//
// Ties are broken by a fixed order: the smallest value wins a frequency
// tie, and the earliest weekday (Sunday first) wins a mean tie.
func ProfileDays(entries []Entry) DayProfile {
	if len(entries) == 0 {
		return DayProfile{BestDay: NoDay, WorstDay: NoDay}
	}

	freq := make(map[float64]int)
	var sums [7]float64
	var counts [7]int
	for _, e := range entries {
		freq[e.Value]++
		wd := e.Timestamp.Weekday()
		sums[wd] += e.Value
		counts[wd]++
	}

	values := make([]float64, 0, len(freq))
	for v := range freq {
		values = append(values, v)
	}
	sort.Float64s(values)

	mostFrequent := values[0]
	for _, v := range values[1:] {
		if freq[v] > freq[mostFrequent] {
			mostFrequent = v
		}
	}

	best, worst := -1, -1
	var bestMean, worstMean float64
	for wd := 0; wd < 7; wd++ {
		if counts[wd] == 0 {
			continue
		}
		mean := sums[wd] / float64(counts[wd])
		if best < 0 || mean > bestMean {
			best, bestMean = wd, mean
		}
		if worst < 0 || mean < worstMean {
			worst, worstMean = wd, mean
		}
	}

	return DayProfile{
		MostFrequentValue: mostFrequent,
		BestDay:           time.Weekday(best).String(),
		WorstDay:          time.Weekday(worst).String(),
		TotalEntries:      len(entries),
	}
}
