package tcf

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vibspec/vib/moment"
)

// fftThreshold is the series length above which the all-origins path uses
// FFT-based correlation instead of sliding products.
const fftThreshold = 64

// pairTerm is one scalar correlation contributing to a vector reduction.
type pairTerm struct {
	p, q []float64
	w    float64
}

// termsFor expands a correlation mode into the scalar component
// correlations it is built from. The cross-product reduction
// Σᵢ (a×b)ᵢ expands into six signed component products.
func termsFor(mode Mode, a, b moment.Channel) ([]pairTerm, error) {
	switch mode {
	case ModeScalar:
		return []pairTerm{{a.X, b.X, 1}}, nil
	case ModeVectorTrace:
		return []pairTerm{
			{a.X, b.X, 1},
			{a.Y, b.Y, 1},
			{a.Z, b.Z, 1},
		}, nil
	case ModeVectorCross:
		return []pairTerm{
			{a.Y, b.Z, 1}, {a.Z, b.Y, -1},
			{a.Z, b.X, 1}, {a.X, b.Z, -1},
			{a.X, b.Y, 1}, {a.Y, b.X, -1},
		}, nil
	default:
		return nil, fmt.Errorf("tcf: mode %d: %w", int(mode), ErrUnknownMode)
	}
}

// correlatePair computes the per-lag averaged correlation of two channels
// under the configured mode and origin policy.
func correlatePair(a, b moment.Channel, maxLag int, cfg config) ([]float64, error) {
	terms, err := termsFor(cfg.mode, a, b)
	if err != nil {
		return nil, err
	}

	out := make([]float64, maxLag+1)

	for _, term := range terms {
		var corr []float64

		switch {
		case cfg.origins > 0:
			corr = stridedCorr(term.p, term.q, maxLag, cfg.origins)
		case len(term.p) >= fftThreshold:
			corr, err = fftCorr(term.p, term.q, maxLag)
			if err != nil {
				return nil, err
			}
		default:
			corr = slidingCorr(term.p, term.q, maxLag)
		}

		for i := range out {
			out[i] += term.w * corr[i]
		}
	}

	return out, nil
}

// slidingCorr averages p[t]·q[t+τ] over all valid origins per lag
// (unbiased 1/(N-τ) estimator).
func slidingCorr(p, q []float64, maxLag int) []float64 {
	n := len(p)
	out := make([]float64, maxLag+1)
	scratch := make([]float64, n)

	for lag := 0; lag <= maxLag; lag++ {
		m := n - lag
		prod := scratch[:m]
		vecmath.MulBlock(prod, p[:m], q[lag:lag+m])

		sum := 0.0
		for _, v := range prod {
			sum += v
		}

		out[lag] = sum / float64(m)
	}

	return out
}

// stridedCorr averages p[t]·q[t+τ] over a strided subset of origins drawn
// from the shared range 0..n-maxLag-1, so every lag uses the same origins.
func stridedCorr(p, q []float64, maxLag, origins int) []float64 {
	n := len(p)
	valid := n - maxLag

	stride := valid / origins
	if stride < 1 {
		stride = 1
	}

	out := make([]float64, maxLag+1)
	count := 0

	for t := 0; t < valid && count < origins; t += stride {
		for lag := 0; lag <= maxLag; lag++ {
			out[lag] += p[t] * q[t+lag]
		}

		count++
	}

	for lag := range out {
		out[lag] /= float64(count)
	}

	return out
}

// fftCorr computes the all-origins correlation sums via
// IFFT(conj(FFT(p))·FFT(q)) with zero-padding past the maximum lag so the
// circular correlation never wraps, then applies the per-lag 1/(N-τ)
// normalization.
func fftCorr(p, q []float64, maxLag int) ([]float64, error) {
	n := len(p)
	size := nextPowerOf2(n + maxLag)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("tcf: failed to create FFT plan: %w", err)
	}

	pPadded := make([]complex128, size)
	qPadded := make([]complex128, size)

	for i := 0; i < n; i++ {
		pPadded[i] = complex(p[i], 0)
		qPadded[i] = complex(q[i], 0)
	}

	pFreq := make([]complex128, size)
	qFreq := make([]complex128, size)

	if err := plan.Forward(pFreq, pPadded); err != nil {
		return nil, fmt.Errorf("tcf: forward FFT failed: %w", err)
	}

	if err := plan.Forward(qFreq, qPadded); err != nil {
		return nil, fmt.Errorf("tcf: forward FFT failed: %w", err)
	}

	// conj(P)·Q accumulates Σ_t p[t]·q[t+τ] at index τ.
	prod := make([]complex128, size)
	for i := range prod {
		pConj := complex(real(pFreq[i]), -imag(pFreq[i]))
		prod[i] = pConj * qFreq[i]
	}

	corr := make([]complex128, size)
	if err := plan.Inverse(corr, prod); err != nil {
		return nil, fmt.Errorf("tcf: inverse FFT failed: %w", err)
	}

	out := make([]float64, maxLag+1)
	for lag := 0; lag <= maxLag; lag++ {
		out[lag] = real(corr[lag]) / float64(n-lag)
	}

	return out, nil
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
