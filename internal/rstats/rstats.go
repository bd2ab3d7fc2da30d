// Package rstats wraps github.com/montanaflynn/stats with the explicit
// (value, error) return shape the rest of this module uses.
package rstats

import "github.com/montanaflynn/stats"

// Mean returns the arithmetic mean of xs. It returns an error if xs is
// empty.
func Mean(xs []float64) (float64, error) {
	return stats.Mean(stats.Float64Data(xs))
}

// StdDev returns the population standard deviation of xs. It returns an
// error if xs is empty.
func StdDev(xs []float64) (float64, error) {
	return stats.StandardDeviation(stats.Float64Data(xs))
}

// Percentile returns the p-th percentile (0, 100] of xs using the
// nearest-rank definition. It returns an error if xs is empty or p is out
// of bounds.
func Percentile(xs []float64, p float64) (float64, error) {
	return stats.Percentile(stats.Float64Data(xs), p)
}
