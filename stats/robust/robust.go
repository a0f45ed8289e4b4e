package robust

import (
	"math"
	"sort"
)

// Summary holds aggregate statistics over a sample set.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	StdDev float64
}

// Defined reports whether the summary was computed from at least one sample.
// Mean, Median, and StdDev are meaningless when Defined is false.
func (s Summary) Defined() bool {
	return s.Count > 0
}

// Mean returns the arithmetic mean of values.
// Uses Kahan summation for numerical stability.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum, c float64
	for _, x := range values {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(values))
}

// Median returns the median of values without mutating the input.
// For an even number of samples it returns the mean of the two middle
// order statistics.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}

	return 0.5 * (sorted[n/2-1] + sorted[n/2])
}

// StdDev returns the population standard deviation of values
// (variance normalized by N, not N-1).
func StdDev(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	mean := Mean(values)

	var sumSq float64
	for _, x := range values {
		d := x - mean
		sumSq += d * d
	}

	return math.Sqrt(sumSq / float64(n))
}

// Summarize computes count, mean, median, and population standard deviation
// in one call. An empty input yields a zero-valued, undefined Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	return Summary{
		Count:  len(values),
		Mean:   Mean(values),
		Median: Median(values),
		StdDev: StdDev(values),
	}
}

// ClipMask marks values whose absolute deviation from center exceeds radius.
// The returned mask is parallel to values; true means "outside the clip
// window". A non-positive radius marks every sample whose value differs from
// center at all.
func ClipMask(values []float64, center, radius float64) []bool {
	mask := make([]bool, len(values))
	for i, x := range values {
		mask[i] = x < center-radius || x > center+radius
	}

	return mask
}
