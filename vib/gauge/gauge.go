// Package gauge shifts magnetic moments between reference origins.
//
// Magnetic dipoles are gauge-dependent: a moment reported relative to one
// origin transforms to another origin through the current dipole,
// m' = m + ½ (r − o) × j, where r is the moment's position and o the new
// origin. In periodic cells the separation r − o is wrapped to its minimum
// image first. Distributed-gauge pipelines shift all molecular moments to
// a common origin before correlating.
package gauge

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vibspec/vib/moment"
)

// Cross returns the cross product a × b.
func Cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// MinimumImage wraps the separation d into the minimum-image convention of
// an orthorhombic cell with edge lengths cell. Axes with a non-positive
// cell length are left open (unwrapped).
func MinimumImage(d, cell [3]float64) [3]float64 {
	for i := range d {
		if cell[i] > 0 {
			d[i] -= cell[i] * math.Round(d[i]/cell[i])
		}
	}

	return d
}

// ShiftMagneticOrigin moves the magnetic moment m, located at pos and
// carrying current dipole j, to the reference origin:
// m' = m + ½ (pos − origin) × j.
func ShiftMagneticOrigin(m, j, pos, origin [3]float64) [3]float64 {
	d := [3]float64{pos[0] - origin[0], pos[1] - origin[1], pos[2] - origin[2]}

	return addHalfCross(m, d, j)
}

// ShiftMagneticOriginPeriodic is ShiftMagneticOrigin with the separation
// wrapped to its minimum image in an orthorhombic cell.
func ShiftMagneticOriginPeriodic(m, j, pos, origin, cell [3]float64) [3]float64 {
	d := [3]float64{pos[0] - origin[0], pos[1] - origin[1], pos[2] - origin[2]}
	d = MinimumImage(d, cell)

	return addHalfCross(m, d, j)
}

func addHalfCross(m, d, j [3]float64) [3]float64 {
	c := Cross(d, j)

	return [3]float64{m[0] + 0.5*c[0], m[1] + 0.5*c[1], m[2] + 0.5*c[2]}
}

// ShiftChannel moves a whole magnetic channel to a common origin using the
// per-frame positions and current dipoles. All channels must share one
// length.
func ShiftChannel(m, j, pos moment.Channel, origin [3]float64) (moment.Channel, error) {
	return shiftChannel(m, j, pos, origin, [3]float64{}, false)
}

// ShiftChannelPeriodic is ShiftChannel under orthorhombic periodic
// boundary conditions.
func ShiftChannelPeriodic(m, j, pos moment.Channel, origin, cell [3]float64) (moment.Channel, error) {
	return shiftChannel(m, j, pos, origin, cell, true)
}

func shiftChannel(m, j, pos moment.Channel, origin, cell [3]float64, periodic bool) (moment.Channel, error) {
	n := m.Len()
	if j.Len() != n || pos.Len() != n {
		return moment.Channel{}, fmt.Errorf("gauge: channel lengths %d/%d/%d differ: %w",
			n, j.Len(), pos.Len(), moment.ErrShape)
	}

	out := moment.Channel{
		X: make([]float64, n),
		Y: make([]float64, n),
		Z: make([]float64, n),
	}

	for i := 0; i < n; i++ {
		var shifted [3]float64
		if periodic {
			shifted = ShiftMagneticOriginPeriodic(m.Vec(i), j.Vec(i), pos.Vec(i), origin, cell)
		} else {
			shifted = ShiftMagneticOrigin(m.Vec(i), j.Vec(i), pos.Vec(i), origin)
		}

		out.X[i] = shifted[0]
		out.Y[i] = shifted[1]
		out.Z[i] = shifted[2]
	}

	return out, nil
}
