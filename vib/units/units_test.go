package units

import (
	"math"
	"testing"
)

func TestHertz(t *testing.T) {
	c := SI()

	// Bin k of an M-sample transform over dt seconds: k/(M·dt).
	got := c.Hertz(4, 1024, 0.5)
	want := 4.0 / (1024 * 0.5)

	if math.Abs(got-want) > 1e-15 {
		t.Errorf("Hertz = %v, want %v", got, want)
	}

	if c.Hertz(0, 1024, 0.5) != 0 {
		t.Error("DC bin should map to 0 Hz")
	}
}

func TestFemtoseconds(t *testing.T) {
	c := Femtoseconds()

	// dt = 0.5 fs, 1000 samples: bin 1 is 1/(1000·0.5e-15 s) = 2e12 Hz.
	got := c.Hertz(1, 1000, 0.5)
	if math.Abs(got-2e12) > 1 {
		t.Errorf("Hertz = %v, want 2e12", got)
	}
}

func TestWavenumber(t *testing.T) {
	c := SI()

	// 1 THz is about 33.36 cm^-1.
	got := c.Wavenumber(1e12)
	want := 1e12 / SpeedOfLightCmPerS

	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Wavenumber = %v, want %v", got, want)
	}

	if math.Abs(got-33.356) > 0.01 {
		t.Errorf("Wavenumber(1 THz) = %v, want about 33.356", got)
	}
}

func TestValid(t *testing.T) {
	if !SI().Valid() || !Femtoseconds().Valid() || !AtomicTime().Valid() {
		t.Error("constructed contexts should be valid")
	}

	if (Context{}).Valid() {
		t.Error("zero context should be invalid")
	}

	if (Context{TimeUnit: -1, SpeedOfLight: 1}).Valid() {
		t.Error("negative time unit should be invalid")
	}
}
