// Package units provides read-only unit-conversion contexts for spectral axes.
//
// Molecular-dynamics trajectories carry their time step in whatever unit the
// simulation engine used (seconds, femtoseconds, atomic time units). A Context
// pins that choice down once and converts transform bin indices into physical
// frequencies without any package-level mutable state, so the same computation
// is reproducible under different unit systems.
package units

import "math"

// Physical constants.
const (
	// SpeedOfLightCmPerS is the speed of light in vacuum in cm/s.
	SpeedOfLightCmPerS = 2.99792458e10

	// SecondsPerFemtosecond converts femtoseconds to seconds.
	SecondsPerFemtosecond = 1e-15

	// SecondsPerAtomicTime converts atomic time units (ħ/E_h) to seconds.
	SecondsPerAtomicTime = 2.4188843265857e-17
)

// Context converts a simulation time base into spectroscopic units.
//
// TimeUnit is the duration of one simulation time unit in seconds.
// SpeedOfLight is in cm/s and is kept as a field so tests can use
// round numbers. The zero value is not valid; use one of the
// constructors.
type Context struct {
	TimeUnit     float64
	SpeedOfLight float64
}

// SI returns a context for time steps given in seconds.
func SI() Context {
	return Context{TimeUnit: 1, SpeedOfLight: SpeedOfLightCmPerS}
}

// Femtoseconds returns a context for time steps given in femtoseconds.
func Femtoseconds() Context {
	return Context{TimeUnit: SecondsPerFemtosecond, SpeedOfLight: SpeedOfLightCmPerS}
}

// AtomicTime returns a context for time steps given in atomic time units.
func AtomicTime() Context {
	return Context{TimeUnit: SecondsPerAtomicTime, SpeedOfLight: SpeedOfLightCmPerS}
}

// Valid reports whether the context carries usable conversion factors.
func (c Context) Valid() bool {
	return c.TimeUnit > 0 && c.SpeedOfLight > 0 &&
		!math.IsInf(c.TimeUnit, 0) && !math.IsInf(c.SpeedOfLight, 0)
}

// Hertz returns the frequency in Hz of bin k for a transform of total
// samples over a time step dt (in simulation time units).
func (c Context) Hertz(k, total int, dt float64) float64 {
	return float64(k) / (float64(total) * dt * c.TimeUnit)
}

// Wavenumber converts a frequency in Hz to spectroscopic wavenumber (cm⁻¹).
func (c Context) Wavenumber(hz float64) float64 {
	return hz / c.SpeedOfLight
}
