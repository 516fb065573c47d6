// Package spectral transforms time-correlation functions into one-sided
// frequency-domain spectra.
//
// The pipeline is window → even/odd extension → zero-pad → FFT → unit
// conversion. Spectral resolution is fixed by the lag window length L·Δt;
// zero-padding only densifies the output grid. Unit conversion goes through
// an injected units.Context so the same computation is reproducible under
// different simulation time bases.
package spectral
