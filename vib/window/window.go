// Package window provides lag-window (taper) functions for time-correlation
// functions.
//
// A correlation function computed up to a finite maximum lag L is an abrupt
// truncation of the true TCF; transforming it directly causes Gibbs-type
// ringing in the spectrum. The windows here are one-sided tapers over
// τ = 0..L with w[0] = 1, applied symmetrically on |τ| before the even/odd
// extension. The set of kinds is a closed enum: the legal variants are
// finite and known at design time.
package window

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Kind identifies a lag-window function.
type Kind int

const (
	Rectangular Kind = iota
	Triangular
	Welch
	Hann
	Hamming
	Blackman
	Exponential
)

// ErrUnknownKind is returned for window kinds outside the closed set.
var ErrUnknownKind = errors.New("window: unknown window kind")

// DefaultDecay is the decay constant used by the exponential window when
// none is configured: the taper falls to e⁻⁵ ≈ 0.0067 at the maximum lag.
const DefaultDecay = 5.0

// String returns the window name.
func (k Kind) String() string {
	switch k {
	case Rectangular:
		return "rectangular"
	case Triangular:
		return "triangular"
	case Welch:
		return "welch"
	case Hann:
		return "hann"
	case Hamming:
		return "hamming"
	case Blackman:
		return "blackman"
	case Exponential:
		return "exponential"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Parse returns the Kind for a window name.
func Parse(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rectangular", "rect":
		return Rectangular, nil
	case "triangular", "triangle":
		return Triangular, nil
	case "welch":
		return Welch, nil
	case "hann":
		return Hann, nil
	case "hamming":
		return Hamming, nil
	case "blackman":
		return Blackman, nil
	case "exponential", "exp":
		return Exponential, nil
	default:
		return 0, fmt.Errorf("window: %q: %w", name, ErrUnknownKind)
	}
}

// Option configures lag-window generation.
type Option func(*config)

type config struct {
	decay float64
}

func defaultConfig() config {
	return config{decay: DefaultDecay}
}

// WithDecay sets the exponential window's decay constant: the taper is
// exp(-decay·τ/L). Other kinds ignore it.
func WithDecay(decay float64) Option {
	return func(c *config) {
		c.decay = decay
	}
}

// Lag returns one-sided lag-window coefficients w[0..length-1] with w[0]=1.
func Lag(k Kind, length int, opts ...Option) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("window: length must be > 0: %d", length)
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if k == Exponential && cfg.decay <= 0 {
		return nil, fmt.Errorf("window: exponential decay constant must be > 0: %v", cfg.decay)
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out, nil
	}

	for i := range out {
		x := float64(i) / float64(length-1)

		v, err := eval(k, x, cfg)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

// Apply multiplies buf in place by the selected lag window.
func Apply(k Kind, buf []float64, opts ...Option) error {
	if len(buf) == 0 {
		return nil
	}

	coeffs, err := Lag(k, len(buf), opts...)
	if err != nil {
		return err
	}

	vecmath.MulBlockInPlace(buf, coeffs)

	return nil
}

func eval(k Kind, x float64, cfg config) (float64, error) {
	switch k {
	case Rectangular:
		return 1, nil
	case Triangular:
		return 1 - x, nil
	case Welch:
		return 1 - x*x, nil
	case Hann:
		return 0.5 * (1 + math.Cos(math.Pi*x)), nil
	case Hamming:
		return 0.54 + 0.46*math.Cos(math.Pi*x), nil
	case Blackman:
		return 0.42 + 0.5*math.Cos(math.Pi*x) + 0.08*math.Cos(2*math.Pi*x), nil
	case Exponential:
		return math.Exp(-cfg.decay * x), nil
	default:
		return 0, fmt.Errorf("window: kind %d: %w", int(k), ErrUnknownKind)
	}
}

// Kinds returns all window kinds in declaration order.
func Kinds() []Kind {
	return []Kind{Rectangular, Triangular, Welch, Hann, Hamming, Blackman, Exponential}
}
