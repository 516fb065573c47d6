package series

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	if got := Mean([]float64{1, 2, 3, 4}); got != 2.5 {
		t.Errorf("Mean = %v, want 2.5", got)
	}

	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil) = %v, want 0", got)
	}
}

func TestMeanKahanStability(t *testing.T) {
	// Large offset with a tiny oscillation; naive summation loses the
	// oscillation's contribution.
	n := 100000
	x := make([]float64, n)
	for i := range x {
		x[i] = 1e10
		if i%2 == 0 {
			x[i] += 1
		}
	}

	got := Mean(x)
	want := 1e10 + 0.5

	if math.Abs(got-want) > 1e-4 {
		t.Errorf("Mean = %v, want %v", got, want)
	}
}

func TestVariance(t *testing.T) {
	x := []float64{1, -1, 1, -1}
	if got := Variance(x); math.Abs(got-1) > 1e-14 {
		t.Errorf("Variance = %v, want 1", got)
	}

	if got := Variance([]float64{5, 5, 5}); got != 0 {
		t.Errorf("Variance of constant = %v, want 0", got)
	}
}

func TestMoments(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	mean, variance, skewness, _ := Moments(x)
	if mean != 5 {
		t.Errorf("mean = %v, want 5", mean)
	}

	if variance != 4 {
		t.Errorf("variance = %v, want 4", variance)
	}

	// Known positive skew for this classic data set.
	if math.Abs(skewness-0.65625) > 1e-12 {
		t.Errorf("skewness = %v, want 0.65625", skewness)
	}
}

func TestRMS(t *testing.T) {
	if got := RMS([]float64{3, -4}); math.Abs(got-math.Sqrt(12.5)) > 1e-14 {
		t.Errorf("RMS = %v, want %v", got, math.Sqrt(12.5))
	}

	if got := RMS(nil); got != 0 {
		t.Errorf("RMS(nil) = %v, want 0", got)
	}
}

func TestCovariance(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{2, 4, 6, 8}

	got, err := Covariance(a, b)
	if err != nil {
		t.Fatalf("Covariance: %v", err)
	}

	// cov(a, 2a) = 2·var(a) = 2·1.25.
	if math.Abs(got-2.5) > 1e-14 {
		t.Errorf("Covariance = %v, want 2.5", got)
	}

	if _, err := Covariance(a, b[:3]); err == nil {
		t.Error("Covariance should fail on length mismatch")
	}
}

func TestCovarianceSelfEqualsVariance(t *testing.T) {
	x := []float64{0.3, -1.2, 2.5, 0.7, -0.4}

	cov, err := Covariance(x, x)
	if err != nil {
		t.Fatalf("Covariance: %v", err)
	}

	if math.Abs(cov-Variance(x)) > 1e-12 {
		t.Errorf("Covariance(x,x) = %v, Variance = %v", cov, Variance(x))
	}
}
