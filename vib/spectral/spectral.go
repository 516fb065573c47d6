package spectral

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vibspec/vib/moment"
	"github.com/cwbudde/algo-vibspec/vib/tcf"
	"github.com/cwbudde/algo-vibspec/vib/units"
	"github.com/cwbudde/algo-vibspec/vib/window"
)

// Errors returned by the spectral transform.
var (
	ErrNilFunction    = errors.New("spectral: nil or empty correlation function")
	ErrInvalidPadding = errors.New("spectral: zero padding factor must be >= 1")
	ErrInvalidUnits   = errors.New("spectral: invalid unit context")
)

// FrequencyUnit selects the unit of the output frequency axis.
type FrequencyUnit int

const (
	// Hertz is cycles per second.
	Hertz FrequencyUnit = iota

	// Wavenumber is spectroscopic cm⁻¹.
	Wavenumber
)

// String returns the unit name.
func (u FrequencyUnit) String() string {
	switch u {
	case Hertz:
		return "Hz"
	case Wavenumber:
		return "cm^-1"
	default:
		return fmt.Sprintf("unit(%d)", int(u))
	}
}

// Config holds the spectral transform parameters.
//
// Prefactor is the convention constant multiplying all intensities; it is
// deliberately an explicit field because absorption and chirality-difference
// conventions differ between references. Zero means 1. ZeroPaddingFactor
// densifies the frequency grid without changing resolution (resolution is
// set by L·Δt); zero means 1. Decay is the exponential window's decay
// constant; zero means the window default.
type Config struct {
	Window            window.Kind
	Decay             float64
	ZeroPaddingFactor int
	Unit              FrequencyUnit
	Units             units.Context
	Prefactor         float64
}

// Spectrum is a one-sided frequency-domain spectrum with monotonically
// increasing frequency axis. Values stay complex: the real part derives
// from the even part of the correlation function, the imaginary part from
// the odd (chirality-carrying) part.
type Spectrum struct {
	Freq   []float64
	Values []complex128
	Unit   FrequencyUnit
	Dt     float64
}

// Len returns the number of frequency bins.
func (s *Spectrum) Len() int { return len(s.Freq) }

// Real returns the real parts of all bins.
func (s *Spectrum) Real() []float64 {
	out := make([]float64, len(s.Values))
	for i, v := range s.Values {
		out[i] = real(v)
	}

	return out
}

// Imag returns the imaginary parts of all bins.
func (s *Spectrum) Imag() []float64 {
	out := make([]float64, len(s.Values))
	for i, v := range s.Values {
		out[i] = imag(v)
	}

	return out
}

// Magnitude returns |S[k]| for all bins.
func (s *Spectrum) Magnitude() []float64 {
	if len(s.Values) == 0 {
		return nil
	}

	re := s.Real()
	im := s.Imag()
	out := make([]float64, len(s.Values))
	vecmath.Magnitude(out, re, im)

	return out
}

// Power returns |S[k]|² for all bins.
func (s *Spectrum) Power() []float64 {
	if len(s.Values) == 0 {
		return nil
	}

	re := s.Real()
	im := s.Imag()
	out := make([]float64, len(s.Values))
	vecmath.Power(out, re, im)

	return out
}

// PeakIndex returns the bin with the largest magnitude, excluding the DC
// bin. Returns -1 for an empty spectrum.
func (s *Spectrum) PeakIndex() int {
	mag := s.Magnitude()
	if len(mag) < 2 {
		return -1
	}

	peak := 1
	for i := 2; i < len(mag); i++ {
		if mag[i] > mag[peak] {
			peak = i
		}
	}

	return peak
}

// Transform converts a correlation function into a one-sided spectrum.
//
// The correlation function is tapered by the configured lag window on |τ|,
// extended to negative lags (even extension for autocorrelations; the
// reverse branch for cross-correlations), zero-padded to the next power of
// two at or above ZeroPaddingFactor·(2L+1), and transformed with an FFT
// plan. Bins k = 0..M/2 are kept; the frequency axis follows
// f[k] = k/(M·Δt) converted through the unit context.
func Transform(fn *tcf.Function, cfg Config) (*Spectrum, error) {
	if fn == nil || fn.Len() == 0 {
		return nil, ErrNilFunction
	}

	factor := cfg.ZeroPaddingFactor
	if factor == 0 {
		factor = 1
	}

	if factor < 1 {
		return nil, fmt.Errorf("spectral: factor %d: %w", cfg.ZeroPaddingFactor, ErrInvalidPadding)
	}

	uc := cfg.Units
	if uc == (units.Context{}) {
		uc = units.SI()
	}

	if !uc.Valid() {
		return nil, fmt.Errorf("spectral: time unit %v, speed of light %v: %w",
			uc.TimeUnit, uc.SpeedOfLight, ErrInvalidUnits)
	}

	prefactor := cfg.Prefactor
	if prefactor == 0 {
		prefactor = 1
	}

	maxLag := fn.MaxLag()

	var winOpts []window.Option
	if cfg.Decay > 0 {
		winOpts = append(winOpts, window.WithDecay(cfg.Decay))
	}

	taper, err := window.Lag(cfg.Window, maxLag+1, winOpts...)
	if err != nil {
		return nil, err
	}

	size := nextPowerOf2(factor * (2*maxLag + 1))

	// Two-sided sequence in FFT wrap order: lag τ at index τ, lag -τ at
	// index M-τ, zeros in between.
	buf := make([]complex128, size)
	buf[0] = complex(fn.At(0)*taper[0], 0)

	for lag := 1; lag <= maxLag; lag++ {
		buf[lag] = complex(fn.At(lag)*taper[lag], 0)
		buf[size-lag] = complex(fn.At(-lag)*taper[lag], 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("spectral: failed to create FFT plan: %w", err)
	}

	bins := make([]complex128, size)
	if err := plan.Forward(bins, buf); err != nil {
		return nil, fmt.Errorf("spectral: forward FFT failed: %w", err)
	}

	half := size/2 + 1
	out := &Spectrum{
		Freq:   make([]float64, half),
		Values: make([]complex128, half),
		Unit:   cfg.Unit,
		Dt:     fn.Dt,
	}

	for k := 0; k < half; k++ {
		hz := uc.Hertz(k, size, fn.Dt)
		if cfg.Unit == Wavenumber {
			out.Freq[k] = uc.Wavenumber(hz)
		} else {
			out.Freq[k] = hz
		}

		out.Values[k] = complex(prefactor, 0) * bins[k]
	}

	return out, nil
}

// Density correlates a channel with itself and transforms the result in
// one step, the common path for power and absorption spectra.
func Density(s *moment.Series, channel string, maxLag int, cfg Config, opts ...tcf.Option) (*Spectrum, error) {
	fn, err := tcf.Correlate(s, channel, channel, maxLag, opts...)
	if err != nil {
		return nil, err
	}

	return Transform(fn, cfg)
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
