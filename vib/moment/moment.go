package moment

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/algo-vibspec/stats/series"
)

// Errors returned by series construction and channel access.
var (
	ErrShape          = errors.New("moment: malformed channel data")
	ErrUnknownChannel = errors.New("moment: unknown channel")
)

// Canonical channel names used throughout the pipeline. Upstream readers
// are free to register additional names.
const (
	ElectricDipole = "mu"
	MagneticDipole = "m"
	CurrentDipole  = "j"
	Position       = "r"
)

// Channel stores one moment type as a component-major series: X[i], Y[i],
// Z[i] form the 3-vector at time step i. Component-major layout keeps the
// per-lag products in the correlation engine as contiguous block operations.
type Channel struct {
	X, Y, Z []float64
}

// NewChannel copies a slice of 3-vectors into a component-major channel.
func NewChannel(vecs [][3]float64) Channel {
	ch := Channel{
		X: make([]float64, len(vecs)),
		Y: make([]float64, len(vecs)),
		Z: make([]float64, len(vecs)),
	}

	for i, v := range vecs {
		ch.X[i] = v[0]
		ch.Y[i] = v[1]
		ch.Z[i] = v[2]
	}

	return ch
}

// Len returns the number of time steps in the channel.
func (c Channel) Len() int { return len(c.X) }

// Vec returns the 3-vector at time step i.
func (c Channel) Vec(i int) [3]float64 {
	return [3]float64{c.X[i], c.Y[i], c.Z[i]}
}

// Mean returns the per-component time average of the channel.
func (c Channel) Mean() [3]float64 {
	return [3]float64{series.Mean(c.X), series.Mean(c.Y), series.Mean(c.Z)}
}

// Fluctuation returns a copy of the channel with its time average removed
// from every component.
func (c Channel) Fluctuation() Channel {
	mean := c.Mean()
	out := c.clone()

	for i := range out.X {
		out.X[i] -= mean[0]
		out.Y[i] -= mean[1]
		out.Z[i] -= mean[2]
	}

	return out
}

// Scaled returns a copy of the channel with every component multiplied by s.
func (c Channel) Scaled(s float64) Channel {
	out := c.clone()
	for i := range out.X {
		out.X[i] *= s
		out.Y[i] *= s
		out.Z[i] *= s
	}

	return out
}

// Slice returns a copy of the channel restricted to time steps [lo, hi).
func (c Channel) Slice(lo, hi int) Channel {
	out := Channel{
		X: make([]float64, hi-lo),
		Y: make([]float64, hi-lo),
		Z: make([]float64, hi-lo),
	}
	copy(out.X, c.X[lo:hi])
	copy(out.Y, c.Y[lo:hi])
	copy(out.Z, c.Z[lo:hi])

	return out
}

func (c Channel) clone() Channel {
	return c.Slice(0, c.Len())
}

// WeightedSum returns the per-step weighted sum of several channels of
// equal length. This is how mass- or charge-weighted collective moments
// are built from per-unit channels.
func WeightedSum(chs []Channel, weights []float64) (Channel, error) {
	if len(chs) == 0 {
		return Channel{}, fmt.Errorf("moment: no channels to sum: %w", ErrShape)
	}

	if len(chs) != len(weights) {
		return Channel{}, fmt.Errorf("moment: %d channels but %d weights: %w",
			len(chs), len(weights), ErrShape)
	}

	n := chs[0].Len()
	out := Channel{
		X: make([]float64, n),
		Y: make([]float64, n),
		Z: make([]float64, n),
	}

	for k, ch := range chs {
		if ch.Len() != n {
			return Channel{}, fmt.Errorf("moment: channel %d has %d steps, want %d: %w",
				k, ch.Len(), n, ErrShape)
		}

		w := weights[k]
		for i := range out.X {
			out.X[i] += w * ch.X[i]
			out.Y[i] += w * ch.Y[i]
			out.Z[i] += w * ch.Z[i]
		}
	}

	return out, nil
}

// Series is an immutable container of per-frame moment channels sharing a
// common time-step spacing. All channels have identical length. Construction
// copies the input data; accessors return views that callers must treat as
// read-only.
type Series struct {
	dt       float64
	n        int
	channels map[string]Channel
}

// New builds a series from per-frame 3-vector arrays keyed by channel name.
// dt is the time-step spacing in simulation time units. All channels must
// have the same, non-zero length.
func New(dt float64, channels map[string][][3]float64) (*Series, error) {
	converted := make(map[string]Channel, len(channels))
	for name, vecs := range channels {
		converted[name] = NewChannel(vecs)
	}

	return FromChannels(dt, converted)
}

// FromChannels builds a series from already component-major channels.
// The channel data is copied.
func FromChannels(dt float64, channels map[string]Channel) (*Series, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("moment: time step must be > 0: %v", dt)
	}

	if len(channels) == 0 {
		return nil, fmt.Errorf("moment: series needs at least one channel: %w", ErrShape)
	}

	s := &Series{
		dt:       dt,
		n:        -1,
		channels: make(map[string]Channel, len(channels)),
	}

	for name, ch := range channels {
		if len(ch.X) != len(ch.Y) || len(ch.X) != len(ch.Z) {
			return nil, fmt.Errorf("moment: channel %q has ragged components (%d/%d/%d): %w",
				name, len(ch.X), len(ch.Y), len(ch.Z), ErrShape)
		}

		if s.n < 0 {
			s.n = ch.Len()
		} else if ch.Len() != s.n {
			return nil, fmt.Errorf("moment: channel %q has %d steps, want %d: %w",
				name, ch.Len(), s.n, ErrShape)
		}

		s.channels[name] = ch.clone()
	}

	if s.n == 0 {
		return nil, fmt.Errorf("moment: channels are empty: %w", ErrShape)
	}

	return s, nil
}

// Len returns the number of time steps in the series.
func (s *Series) Len() int { return s.n }

// Dt returns the time-step spacing in simulation time units.
func (s *Series) Dt() float64 { return s.dt }

// Names returns the channel names in sorted order.
func (s *Series) Names() []string {
	names := make([]string, 0, len(s.channels))
	for name := range s.channels {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Has reports whether the series carries the named channel.
func (s *Series) Has(name string) bool {
	_, ok := s.channels[name]
	return ok
}

// Channel returns the named channel. The returned data is shared with the
// series and must not be modified.
func (s *Series) Channel(name string) (Channel, error) {
	ch, ok := s.channels[name]
	if !ok {
		return Channel{}, fmt.Errorf("moment: channel %q (have %v): %w",
			name, s.Names(), ErrUnknownChannel)
	}

	return ch, nil
}

// WithChannel returns a new series carrying all existing channels plus the
// given one. The new channel must match the series length.
func (s *Series) WithChannel(name string, ch Channel) (*Series, error) {
	if ch.Len() != s.n {
		return nil, fmt.Errorf("moment: channel %q has %d steps, want %d: %w",
			name, ch.Len(), s.n, ErrShape)
	}

	channels := make(map[string]Channel, len(s.channels)+1)
	for existing, c := range s.channels {
		channels[existing] = c
	}

	channels[name] = ch

	return FromChannels(s.dt, channels)
}

// SliceSteps returns a new series restricted to time steps [lo, hi) across
// all channels.
func (s *Series) SliceSteps(lo, hi int) (*Series, error) {
	if lo < 0 || hi > s.n || lo >= hi {
		return nil, fmt.Errorf("moment: step range [%d, %d) out of [0, %d): %w",
			lo, hi, s.n, ErrShape)
	}

	channels := make(map[string]Channel, len(s.channels))
	for name, ch := range s.channels {
		channels[name] = ch.Slice(lo, hi)
	}

	return FromChannels(s.dt, channels)
}
