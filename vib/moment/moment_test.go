package moment

import (
	"errors"
	"math"
	"testing"
)

func vecs(n int, f func(i int) [3]float64) [][3]float64 {
	out := make([][3]float64, n)
	for i := range out {
		out[i] = f(i)
	}

	return out
}

func TestNew(t *testing.T) {
	s, err := New(0.5, map[string][][3]float64{
		ElectricDipole: vecs(4, func(i int) [3]float64 { return [3]float64{float64(i), 0, 0} }),
		MagneticDipole: vecs(4, func(i int) [3]float64 { return [3]float64{0, float64(i), 0} }),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if s.Len() != 4 {
		t.Errorf("Len = %d, want 4", s.Len())
	}

	if s.Dt() != 0.5 {
		t.Errorf("Dt = %v, want 0.5", s.Dt())
	}

	names := s.Names()
	if len(names) != 2 || names[0] != MagneticDipole || names[1] != ElectricDipole {
		t.Errorf("Names = %v, want sorted [m mu]", names)
	}

	ch, err := s.Channel(ElectricDipole)
	if err != nil {
		t.Fatalf("Channel: %v", err)
	}

	if got := ch.Vec(2); got != [3]float64{2, 0, 0} {
		t.Errorf("Vec(2) = %v", got)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(0, map[string][][3]float64{"mu": vecs(2, func(int) [3]float64 { return [3]float64{} })}); err == nil {
		t.Error("New should fail for dt = 0")
	}

	if _, err := New(1, nil); !errors.Is(err, ErrShape) {
		t.Errorf("New with no channels: err = %v, want ErrShape", err)
	}

	_, err := New(1, map[string][][3]float64{
		"mu": vecs(3, func(int) [3]float64 { return [3]float64{} }),
		"m":  vecs(4, func(int) [3]float64 { return [3]float64{} }),
	})
	if !errors.Is(err, ErrShape) {
		t.Errorf("mismatched lengths: err = %v, want ErrShape", err)
	}

	_, err = New(1, map[string][][3]float64{"mu": nil})
	if !errors.Is(err, ErrShape) {
		t.Errorf("empty channel: err = %v, want ErrShape", err)
	}
}

func TestFromChannelsRagged(t *testing.T) {
	_, err := FromChannels(1, map[string]Channel{
		"mu": {X: []float64{1, 2}, Y: []float64{1}, Z: []float64{1, 2}},
	})
	if !errors.Is(err, ErrShape) {
		t.Errorf("ragged components: err = %v, want ErrShape", err)
	}
}

func TestImmutability(t *testing.T) {
	src := vecs(3, func(i int) [3]float64 { return [3]float64{float64(i), 0, 0} })

	s, err := New(1, map[string][][3]float64{"mu": src})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	src[0][0] = 99

	ch, _ := s.Channel("mu")
	if ch.X[0] != 0 {
		t.Error("mutating the input slice must not affect the series")
	}
}

func TestUnknownChannel(t *testing.T) {
	s, _ := New(1, map[string][][3]float64{"mu": vecs(2, func(int) [3]float64 { return [3]float64{} })})

	_, err := s.Channel("nope")
	if !errors.Is(err, ErrUnknownChannel) {
		t.Errorf("err = %v, want ErrUnknownChannel", err)
	}

	if s.Has("nope") || !s.Has("mu") {
		t.Error("Has reports wrong channels")
	}
}

func TestFluctuation(t *testing.T) {
	ch := NewChannel(vecs(4, func(i int) [3]float64 { return [3]float64{float64(i), 1, -2} }))

	fluct := ch.Fluctuation()

	mean := fluct.Mean()
	for c, v := range mean {
		if math.Abs(v) > 1e-15 {
			t.Errorf("component %d mean after fluctuation = %v, want 0", c, v)
		}
	}

	// Original unchanged.
	if ch.X[0] != 0 || ch.Y[0] != 1 {
		t.Error("Fluctuation must not modify the receiver")
	}
}

func TestScaled(t *testing.T) {
	ch := NewChannel([][3]float64{{1, 2, 3}})

	got := ch.Scaled(2).Vec(0)
	if got != [3]float64{2, 4, 6} {
		t.Errorf("Scaled = %v", got)
	}
}

func TestWithChannel(t *testing.T) {
	s, _ := New(1, map[string][][3]float64{"mu": vecs(3, func(int) [3]float64 { return [3]float64{} })})

	extra := NewChannel(vecs(3, func(i int) [3]float64 { return [3]float64{0, 0, float64(i)} }))

	s2, err := s.WithChannel("j", extra)
	if err != nil {
		t.Fatalf("WithChannel: %v", err)
	}

	if !s2.Has("j") || !s2.Has("mu") {
		t.Error("new series should carry both channels")
	}

	if s.Has("j") {
		t.Error("original series must stay unchanged")
	}

	short := NewChannel(vecs(2, func(int) [3]float64 { return [3]float64{} }))
	if _, err := s.WithChannel("j", short); !errors.Is(err, ErrShape) {
		t.Errorf("short channel: err = %v, want ErrShape", err)
	}
}

func TestSliceSteps(t *testing.T) {
	s, _ := New(1, map[string][][3]float64{
		"mu": vecs(5, func(i int) [3]float64 { return [3]float64{float64(i), 0, 0} }),
	})

	sub, err := s.SliceSteps(1, 4)
	if err != nil {
		t.Fatalf("SliceSteps: %v", err)
	}

	if sub.Len() != 3 {
		t.Errorf("Len = %d, want 3", sub.Len())
	}

	ch, _ := sub.Channel("mu")
	if ch.X[0] != 1 || ch.X[2] != 3 {
		t.Errorf("slice content = %v", ch.X)
	}

	if _, err := s.SliceSteps(3, 2); !errors.Is(err, ErrShape) {
		t.Errorf("inverted range: err = %v, want ErrShape", err)
	}
}

func TestWeightedSum(t *testing.T) {
	a := NewChannel([][3]float64{{1, 0, 0}, {2, 0, 0}})
	b := NewChannel([][3]float64{{0, 1, 0}, {0, 2, 0}})

	sum, err := WeightedSum([]Channel{a, b}, []float64{2, 3})
	if err != nil {
		t.Fatalf("WeightedSum: %v", err)
	}

	if got := sum.Vec(1); got != [3]float64{4, 6, 0} {
		t.Errorf("Vec(1) = %v, want {4 6 0}", got)
	}

	if _, err := WeightedSum([]Channel{a}, []float64{1, 2}); !errors.Is(err, ErrShape) {
		t.Errorf("weights mismatch: err = %v, want ErrShape", err)
	}

	short := NewChannel([][3]float64{{0, 0, 0}})
	if _, err := WeightedSum([]Channel{a, short}, []float64{1, 1}); !errors.Is(err, ErrShape) {
		t.Errorf("length mismatch: err = %v, want ErrShape", err)
	}
}
