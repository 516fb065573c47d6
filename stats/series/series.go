// Package series provides scalar time-series statistics used across the
// correlation pipeline: compensated means for fluctuation removal and
// single-pass higher moments for diagnostics.
package series

import (
	"fmt"
	"math"
)

// Mean returns the arithmetic mean of x using Kahan summation for
// numerical stability on long trajectories.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	var sum, c float64
	for _, v := range x {
		y := v - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(x))
}

// Variance returns the population variance of x.
func Variance(x []float64) float64 {
	_, variance, _, _ := Moments(x)
	return variance
}

// RMS returns the root-mean-square of x.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	var sumSq float64
	for _, v := range x {
		sumSq += v * v
	}

	return math.Sqrt(sumSq / float64(len(x)))
}

// Moments returns the mean, population variance, skewness, and excess
// kurtosis of x using Welford's online algorithm for numerical stability.
func Moments(x []float64) (mean, variance, skewness, kurtosis float64) {
	n := len(x)
	if n == 0 {
		return 0, 0, 0, 0
	}

	var m2, m3, m4 float64

	for i, v := range x {
		ni := float64(i + 1)
		delta := v - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		// M4 must be updated before M3, and M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN
	}

	nf := float64(n)

	variance = m2 / nf
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	return mean, variance, skewness, kurtosis
}

// Covariance returns the population covariance of a and b after removing
// each series' own mean. Both series must have the same length.
func Covariance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("series: length mismatch: %d vs %d", len(a), len(b))
	}

	if len(a) == 0 {
		return 0, nil
	}

	meanA := Mean(a)
	meanB := Mean(b)

	var sum float64
	for i := range a {
		sum += (a[i] - meanA) * (b[i] - meanB)
	}

	return sum / float64(len(a)), nil
}
