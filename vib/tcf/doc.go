// Package tcf computes time-correlation functions between moment channels.
//
// The engine averages the per-origin product of two 3-vector channels over
// all (or a strided subset of) time origins for each lag τ = 0..L. Channel
// means are removed by default so the resulting TCF is a fluctuation
// correlation without a spurious zero-frequency offset.
//
// Autocorrelations are real and even by construction. Cross-correlations
// keep both time orderings (C_AB and C_BA): their antisymmetric part is
// exactly the chirality-sensitive signal of electric-magnetic correlation
// and must survive into the spectral transform.
//
// The all-origins path uses FFT-based correlation above a small size
// threshold; the strided-origin path accumulates directly. Both are
// synchronous pure functions over immutable inputs.
package tcf
