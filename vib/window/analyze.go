package window

import "errors"

var errEmptyCoeffs = errors.New("window: coefficients must not be empty")

// Analysis holds numerically computed properties of a lag window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// HalfPoint is the first lag index (as a fraction of the window
	// length) where the taper drops below 0.5.
	HalfPoint float64
}

// Analyze computes summary properties of the given window coefficients.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	sum := 0.0
	sumSq := 0.0
	half := 1.0
	found := false

	for i, c := range coeffs {
		sum += c
		sumSq += c * c

		if !found && c < 0.5 {
			half = float64(i) / float64(n)
			found = true
		}
	}

	a := Analysis{
		CoherentGain: sum / float64(n),
		HalfPoint:    half,
	}

	if sum != 0 {
		a.ENBW = float64(n) * sumSq / (sum * sum)
	}

	return a
}

// ENBW returns the equivalent noise bandwidth in bins for a window.
func ENBW(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errors.New("window: coherent gain is zero")
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}
