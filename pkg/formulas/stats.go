package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// ZScore reports how many standard deviations value sits from the mean of
// the historical series. Returns 0 when the series is degenerate (fewer
// than two points or zero spread) so callers never divide by zero.
func ZScore(value float64, history []float64) float64 {
	sd := StdDev(history)
	if sd == 0 {
		return 0
	}
	return (value - Mean(history)) / sd
}

// Correlation calculates the Pearson correlation coefficient between two datasets
func Correlation(x, y []float64) float64 {
	if len(x) == 0 || len(y) == 0 || len(x) != len(y) {
		return 0
	}
	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return 0
	}
	return r
}

// Herfindahl computes the Herfindahl concentration index from percentage
// shares (0-100 scale): sum of squared fractional shares, in [0, 1].
func Herfindahl(shares []float64) float64 {
	sum := 0.0
	for _, s := range shares {
		f := s / 100.0
		sum += f * f
	}
	return sum
}

// PercentChange returns the relative change from previous to current as a
// percentage. A zero previous value yields 0, never a division error.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100.0
}

// Ratio returns part/total as a percentage, 0 when total is zero.
func Ratio(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100.0
}
