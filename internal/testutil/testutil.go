// Package testutil provides deterministic signal generators and assertion
// helpers shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// Sine generates a deterministic sine series. freq is in cycles per
// simulation time unit, dt the step spacing in the same unit.
func Sine(freq, dt, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freq * dt
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// Cosine generates a deterministic cosine series.
func Cosine(freq, dt, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freq * dt
	for i := range out {
		out[i] = amplitude * math.Cos(step*float64(i))
	}

	return out
}

// Noise generates white noise with a fixed seed for reproducibility.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// VecSeries zips three component slices into a 3-vector series.
func VecSeries(x, y, z []float64) [][3]float64 {
	out := make([][3]float64, len(x))
	for i := range out {
		out[i] = [3]float64{x[i], y[i], z[i]}
	}

	return out
}

// ScalarSeries lifts a scalar series into 3-vectors with the data in the
// X component, matching the scalar correlation mode convention.
func ScalarSeries(x []float64) [][3]float64 {
	out := make([][3]float64, len(x))
	for i := range out {
		out[i] = [3]float64{x[i], 0, 0}
	}

	return out
}

// Delayed returns a copy of x shifted right by d steps, padded at the
// front by cycling from the end (periodic delay).
func Delayed(x []float64, d int) []float64 {
	n := len(x)
	out := make([]float64, n)
	for i := range out {
		out[i] = x[((i-d)%n+n)%n]
	}

	return out
}
