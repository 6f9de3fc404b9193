// Package stats derives summary metrics from tracker entry lists. All
// functions are pure and recomputed on every read; inputs are small enough
// that caching would buy nothing.
package stats

import "math"

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
// The empty-set default avoids divide-by-zero without treating "no data"
// as an error.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Round1 rounds to one decimal place, the precision every tracker displays.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// TagCount is one row of a tag frequency table.
type TagCount struct {
	Tag   string
	Count int
}

// CountTags counts occurrences across tag sets, sorted descending by count
// with ties broken by first-encountered order.
func CountTags(tagSets [][]string) []TagCount {
	counts := make(map[string]int)
	var order []string
	for _, tags := range tagSets {
		for _, t := range tags {
			if _, seen := counts[t]; !seen {
				order = append(order, t)
			}
			counts[t]++
		}
	}

	out := make([]TagCount, 0, len(order))
	for _, t := range order {
		out = append(out, TagCount{Tag: t, Count: counts[t]})
	}
	// Insertion sort keeps the first-encountered order stable for ties.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Count > out[j-1].Count; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// TopTags returns at most n rows of the frequency table.
func TopTags(tagSets [][]string, n int) []TagCount {
	all := CountTags(tagSets)
	if n > 0 && len(all) > n {
		all = all[:n]
	}
	return all
}
