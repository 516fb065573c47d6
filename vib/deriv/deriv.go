// Package deriv estimates velocity and current-dipole channels from
// discretely sampled positions or dipoles by finite differences.
//
// Trajectories frequently carry only positions or electric dipoles; the
// velocity-weighted (current) moments needed for vibrational spectra are
// then derived numerically. The scheme and boundary policy are closed
// tagged variants dispatched by a switch: the legal combinations are finite
// and known at design time.
package deriv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vibspec/vib/moment"
)

// Errors returned by the differentiation routines.
var (
	ErrInsufficientSamples = errors.New("deriv: insufficient samples")
	ErrUnknownScheme       = errors.New("deriv: unknown scheme")
	ErrUnknownBoundary     = errors.New("deriv: unknown boundary policy")
)

// Scheme selects the finite-difference stencil.
type Scheme int

const (
	// Central2 is the 2nd-order central difference (x[i+1]-x[i-1])/(2Δt),
	// with O(Δt²) truncation error.
	Central2 Scheme = iota

	// Central5 is the 4th-order five-point central difference
	// (-x[i+2]+8x[i+1]-8x[i-1]+x[i-2])/(12Δt), with O(Δt⁴) truncation error.
	Central5

	// Forward is the one-sided difference (x[i+1]-x[i])/Δt, O(Δt).
	Forward

	// Backward is the one-sided difference (x[i]-x[i-1])/Δt, O(Δt).
	Backward
)

// String returns the scheme name.
func (s Scheme) String() string {
	switch s {
	case Central2:
		return "central-2"
	case Central5:
		return "central-5"
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("scheme(%d)", int(s))
	}
}

// Boundary selects how samples near the series edges are handled by the
// central schemes. One-sided schemes ignore it.
type Boundary int

const (
	// Drop discards edge points the stencil cannot reach; the output is
	// shorter than the input.
	Drop Boundary = iota

	// OneSided falls back to lower-order one-sided (or narrower central)
	// stencils at the edges; the output keeps the input length.
	OneSided
)

// minSamples returns the minimum series length the scheme requires.
func minSamples(s Scheme) int {
	switch s {
	case Central2:
		return 3
	case Central5:
		return 5
	default:
		return 2
	}
}

// cropRange returns the half-open source index range [lo, hi) that the
// output of diffSlice covers for the given input length.
func cropRange(n int, scheme Scheme, boundary Boundary) (lo, hi int) {
	switch scheme {
	case Forward:
		return 0, n - 1
	case Backward:
		return 1, n
	case Central2:
		if boundary == Drop {
			return 1, n - 1
		}

		return 0, n
	case Central5:
		if boundary == Drop {
			return 2, n - 2
		}

		return 0, n
	default:
		return 0, n
	}
}

// Differentiate derives the time derivative of one channel. The output
// length depends on the scheme and boundary policy; see Derive for a
// variant that keeps a whole series consistent.
func Differentiate(ch moment.Channel, dt float64, scheme Scheme, boundary Boundary) (moment.Channel, error) {
	if dt <= 0 {
		return moment.Channel{}, fmt.Errorf("deriv: time step must be > 0: %v", dt)
	}

	if boundary != Drop && boundary != OneSided {
		return moment.Channel{}, fmt.Errorf("deriv: boundary %d: %w", int(boundary), ErrUnknownBoundary)
	}

	n := ch.Len()
	if min := minSamples(scheme); n < min {
		return moment.Channel{}, fmt.Errorf("deriv: %s needs at least %d samples, have %d: %w",
			scheme, min, n, ErrInsufficientSamples)
	}

	x, err := diffSlice(ch.X, dt, scheme, boundary)
	if err != nil {
		return moment.Channel{}, err
	}

	y, _ := diffSlice(ch.Y, dt, scheme, boundary)
	z, _ := diffSlice(ch.Z, dt, scheme, boundary)

	return moment.Channel{X: x, Y: y, Z: z}, nil
}

// Derive differentiates the src channel of a series and returns a new
// series with the result attached as dst. When the stencil drops edge
// points, every channel is cropped to the covered range so all channels
// keep identical length and time alignment.
func Derive(s *moment.Series, src, dst string, scheme Scheme, boundary Boundary) (*moment.Series, error) {
	ch, err := s.Channel(src)
	if err != nil {
		return nil, err
	}

	derived, err := Differentiate(ch, s.Dt(), scheme, boundary)
	if err != nil {
		return nil, err
	}

	lo, hi := cropRange(s.Len(), scheme, boundary)

	cropped := s
	if lo != 0 || hi != s.Len() {
		cropped, err = s.SliceSteps(lo, hi)
		if err != nil {
			return nil, err
		}
	}

	return cropped.WithChannel(dst, derived)
}

func diffSlice(x []float64, dt float64, scheme Scheme, boundary Boundary) ([]float64, error) {
	n := len(x)

	switch scheme {
	case Forward:
		out := make([]float64, n-1)
		for i := 0; i < n-1; i++ {
			out[i] = (x[i+1] - x[i]) / dt
		}

		return out, nil

	case Backward:
		out := make([]float64, n-1)
		for i := 1; i < n; i++ {
			out[i-1] = (x[i] - x[i-1]) / dt
		}

		return out, nil

	case Central2:
		if boundary == Drop {
			out := make([]float64, n-2)
			for i := 1; i < n-1; i++ {
				out[i-1] = (x[i+1] - x[i-1]) / (2 * dt)
			}

			return out, nil
		}

		out := make([]float64, n)
		out[0] = (x[1] - x[0]) / dt
		for i := 1; i < n-1; i++ {
			out[i] = (x[i+1] - x[i-1]) / (2 * dt)
		}
		out[n-1] = (x[n-1] - x[n-2]) / dt

		return out, nil

	case Central5:
		if boundary == Drop {
			out := make([]float64, n-4)
			for i := 2; i < n-2; i++ {
				out[i-2] = (-x[i+2] + 8*x[i+1] - 8*x[i-1] + x[i-2]) / (12 * dt)
			}

			return out, nil
		}

		out := make([]float64, n)
		out[0] = (x[1] - x[0]) / dt
		out[1] = (x[2] - x[0]) / (2 * dt)
		for i := 2; i < n-2; i++ {
			out[i] = (-x[i+2] + 8*x[i+1] - 8*x[i-1] + x[i-2]) / (12 * dt)
		}
		out[n-2] = (x[n-1] - x[n-3]) / (2 * dt)
		out[n-1] = (x[n-1] - x[n-2]) / dt

		return out, nil

	default:
		return nil, fmt.Errorf("deriv: scheme %d: %w", int(scheme), ErrUnknownScheme)
	}
}
