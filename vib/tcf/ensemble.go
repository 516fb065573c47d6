package tcf

import (
	"fmt"

	"github.com/cwbudde/algo-vibspec/vib/moment"
)

// Average combines correlation functions from independent trajectories or
// molecular units into their ensemble mean. All functions must share the
// same maximum lag, time step, and auto/cross character; channel labels are
// taken from the first function.
func Average(fns []*Function) (*Function, error) {
	if len(fns) == 0 {
		return nil, fmt.Errorf("tcf: nothing to average: %w", ErrIncompatible)
	}

	first := fns[0]
	out := &Function{
		ChannelA: first.ChannelA,
		ChannelB: first.ChannelB,
		Dt:       first.Dt,
		Auto:     first.Auto,
		Forward:  make([]float64, first.Len()),
	}

	if !first.Auto {
		out.Reverse = make([]float64, first.Len())
	}

	for i, fn := range fns {
		if fn.Len() != first.Len() {
			return nil, fmt.Errorf("tcf: function %d has %d lags, want %d: %w",
				i, fn.Len(), first.Len(), ErrIncompatible)
		}

		if fn.Dt != first.Dt {
			return nil, fmt.Errorf("tcf: function %d has dt %v, want %v: %w",
				i, fn.Dt, first.Dt, ErrIncompatible)
		}

		if fn.Auto != first.Auto {
			return nil, fmt.Errorf("tcf: function %d mixes auto and cross correlations: %w",
				i, ErrIncompatible)
		}

		for lag := range out.Forward {
			out.Forward[lag] += fn.Forward[lag]
		}

		for lag := range out.Reverse {
			out.Reverse[lag] += fn.Reverse[lag]
		}
	}

	inv := 1 / float64(len(fns))
	for lag := range out.Forward {
		out.Forward[lag] *= inv
	}

	for lag := range out.Reverse {
		out.Reverse[lag] *= inv
	}

	return out, nil
}

// CorrelateEnsemble correlates the same channel pair across several series
// and returns the ensemble-averaged correlation function. All series must
// share the same time step and be long enough for maxLag.
func CorrelateEnsemble(list []*moment.Series, chanA, chanB string, maxLag int, opts ...Option) (*Function, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("tcf: %q vs %q: %w", chanA, chanB, ErrEmptySeries)
	}

	fns := make([]*Function, len(list))

	for i, s := range list {
		fn, err := Correlate(s, chanA, chanB, maxLag, opts...)
		if err != nil {
			return nil, fmt.Errorf("tcf: series %d: %w", i, err)
		}

		fns[i] = fn
	}

	return Average(fns)
}
