// Package moment holds per-frame molecular moment trajectories.
//
// A Series maps channel names (electric dipole, magnetic dipole, current
// dipole, position, or anything an upstream reader provides) to 3-vector
// time series sharing one time-step spacing. The series is the sole data
// source of the correlation pipeline and is immutable after construction:
// derived quantities are attached by building a new series.
//
// Storage is component-major (separate X/Y/Z slices) so that the
// correlation engine's per-lag products run as contiguous block operations.
package moment
