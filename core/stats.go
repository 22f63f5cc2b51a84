// Package core implements the regression detection engine: duration
// statistics, aggregation, baseline summarization and classification.
package core

import (
	"math"
	"sort"
)

// Percentile computes an order statistic from duration samples using
// linear interpolation between ranked values (the R-7/NIST method).
// An empty input returns 0.0 as a deliberate "no data" sentinel, not an
// error. p is expressed in [0, 100].
func Percentile(durations []int64, p float64) float64 {
	if len(durations) == 0 {
		return 0.0
	}

	sorted := make([]int64, len(durations))
	copy(sorted, durations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	k := float64(len(sorted)-1) * (p / 100.0)
	f := int(k)
	c := f + 1
	if c >= len(sorted) {
		c = f
	}
	return float64(sorted[f]) + (k-float64(f))*float64(sorted[c]-sorted[f])
}

// Mean returns the arithmetic mean of the samples, 0.0 when empty.
func Mean(durations []int64) float64 {
	if len(durations) == 0 {
		return 0.0
	}
	var sum int64
	for _, d := range durations {
		sum += d
	}
	return float64(sum) / float64(len(durations))
}

// Median returns the 50th percentile of the samples.
func Median(durations []int64) float64 {
	return Percentile(durations, 50)
}

// SampleStddev returns the sample standard deviation (n-1 divisor).
// Fewer than 2 samples yields 0.0, matching the baseline format where
// stddev is undefined for a single observation.
func SampleStddev(durations []int64) float64 {
	if len(durations) < 2 {
		return 0.0
	}
	mean := Mean(durations)
	var sumSq float64
	for _, d := range durations {
		diff := float64(d) - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(durations)-1))
}

// Round2 rounds a value to 2 decimal places for persisted statistics.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round1 rounds a value to 1 decimal place for percentage display fields.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
