package tcf

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vibspec/vib/moment"
)

// Errors returned by the correlation engine.
var (
	ErrEmptySeries    = errors.New("tcf: empty series")
	ErrLagOutOfRange  = errors.New("tcf: lag out of range")
	ErrUnknownMode    = errors.New("tcf: unknown correlation mode")
	ErrInvalidOrigins = errors.New("tcf: invalid origin count")
	ErrIncompatible   = errors.New("tcf: incompatible correlation functions")
)

// Mode selects how two 3-vector channels are reduced to a scalar product
// per time-origin.
type Mode int

const (
	// ModeVectorTrace takes the dot product a(t)·b(t+τ), the trace of the
	// outer product. This is the default for spectroscopic TCFs.
	ModeVectorTrace Mode = iota

	// ModeScalar multiplies the X components only; scalar channels store
	// their data in X with Y and Z zero.
	ModeScalar

	// ModeVectorCross reduces the cross product a(t)×b(t+τ) to the sum of
	// its Cartesian components.
	ModeVectorCross
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeVectorTrace:
		return "vector-trace"
	case ModeScalar:
		return "scalar"
	case ModeVectorCross:
		return "vector-cross"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Option configures a correlation run.
type Option func(*config)

type config struct {
	mode      Mode
	origins   int
	raw       bool
	normalize bool
}

func defaultConfig() config {
	return config{mode: ModeVectorTrace}
}

// WithMode selects the vector reduction mode.
func WithMode(m Mode) Option {
	return func(c *config) {
		c.mode = m
	}
}

// WithOrigins restricts the averaging to a strided subset of n time
// origins drawn from the shared origin range 0..N-L-1, so every lag
// averages over the same origins. The default uses all valid origins
// per lag (unbiased 1/(N-τ) estimator).
func WithOrigins(n int) Option {
	return func(c *config) {
		c.origins = n
	}
}

// WithRawMoments disables the default mean removal, correlating the raw
// moments instead of their fluctuations. Spectroscopic TCFs normally keep
// mean removal on to avoid a spurious zero-frequency offset.
func WithRawMoments() Option {
	return func(c *config) {
		c.raw = true
	}
}

// WithNormalization divides the result by its zero-lag value.
func WithNormalization() Option {
	return func(c *config) {
		c.normalize = true
	}
}

// Function is a time-correlation function over lags τ = 0..L.
//
// For an autocorrelation (ChannelA == ChannelB) the function is real and
// even; Reverse is nil and negative lags mirror the forward branch. For a
// cross-correlation the Reverse branch holds C_BA(τ), so the extension to
// negative lags C_AB(-τ) = C_BA(τ) preserves the antisymmetric part — the
// chirality signal.
type Function struct {
	ChannelA   string
	ChannelB   string
	Dt         float64
	Auto       bool
	Normalized bool

	// Forward holds C_AB(τ) for τ = 0..MaxLag.
	Forward []float64
	// Reverse holds C_BA(τ) for τ = 0..MaxLag; nil for autocorrelations.
	Reverse []float64
}

// MaxLag returns the maximum lag L.
func (f *Function) MaxLag() int { return len(f.Forward) - 1 }

// Len returns the number of forward lags, L+1.
func (f *Function) Len() int { return len(f.Forward) }

// At returns the correlation value at lag τ for τ in [-MaxLag, MaxLag].
// Negative lags follow C_AB(-τ) = C_BA(τ); autocorrelations mirror the
// forward branch.
func (f *Function) At(lag int) float64 {
	if lag >= 0 {
		return f.Forward[lag]
	}

	if f.Auto || f.Reverse == nil {
		return f.Forward[-lag]
	}

	return f.Reverse[-lag]
}

// Even returns the symmetric part (C(τ)+C(-τ))/2 at lag τ ≥ 0.
func (f *Function) Even(lag int) float64 {
	return 0.5 * (f.At(lag) + f.At(-lag))
}

// Odd returns the antisymmetric part (C(τ)-C(-τ))/2 at lag τ ≥ 0.
// It vanishes identically for autocorrelations.
func (f *Function) Odd(lag int) float64 {
	return 0.5 * (f.At(lag) - f.At(-lag))
}

// Correlate computes the time-correlation function between two channels of
// a series for lags 0..maxLag.
//
// maxLag may be as large as N-1; statistics degrade for lags beyond about
// N/2, which is left to the caller's judgment and not warned about. Mean
// removal is on by default (see WithRawMoments).
func Correlate(s *moment.Series, chanA, chanB string, maxLag int, opts ...Option) (*Function, error) {
	if s == nil || s.Len() == 0 {
		return nil, fmt.Errorf("tcf: %q vs %q: %w", chanA, chanB, ErrEmptySeries)
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := s.Len()
	if maxLag < 0 || maxLag >= n {
		return nil, fmt.Errorf("tcf: lag %d for %d samples (%q vs %q): %w",
			maxLag, n, chanA, chanB, ErrLagOutOfRange)
	}

	a, err := s.Channel(chanA)
	if err != nil {
		return nil, err
	}

	b, err := s.Channel(chanB)
	if err != nil {
		return nil, err
	}

	if cfg.origins != 0 {
		if cfg.origins < 0 || cfg.origins > n-maxLag {
			return nil, fmt.Errorf("tcf: %d origins for %d samples at lag %d (max %d): %w",
				cfg.origins, n, maxLag, n-maxLag, ErrInvalidOrigins)
		}
	}

	if !cfg.raw {
		a = a.Fluctuation()
		if chanB == chanA {
			b = a
		} else {
			b = b.Fluctuation()
		}
	}

	auto := chanA == chanB

	forward, err := correlatePair(a, b, maxLag, cfg)
	if err != nil {
		return nil, err
	}

	fn := &Function{
		ChannelA: chanA,
		ChannelB: chanB,
		Dt:       s.Dt(),
		Auto:     auto,
		Forward:  forward,
	}

	if !auto {
		reverse, err := correlatePair(b, a, maxLag, cfg)
		if err != nil {
			return nil, err
		}

		fn.Reverse = reverse
	}

	if cfg.normalize {
		normalize(fn)
	}

	return fn, nil
}

func normalize(fn *Function) {
	zeroLag := fn.Forward[0]
	if zeroLag == 0 {
		return
	}

	for i := range fn.Forward {
		fn.Forward[i] /= zeroLag
	}

	for i := range fn.Reverse {
		fn.Reverse[i] /= zeroLag
	}

	fn.Normalized = true
}
