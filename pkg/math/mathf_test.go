package math

import (
	"math"
	"testing"
)

func TestClamp01(t *testing.T) {
	cases := []struct{ in, want float32 }{
		{-0.5, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{1.5, 1},
	}
	for _, c := range cases {
		if got := Clamp01(c.in); got != c.want {
			t.Errorf("Clamp01(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, -1, 1); got != 1 {
		t.Errorf("Clamp(5,-1,1) = %v, want 1", got)
	}
	if got := Clamp(-5, -1, 1); got != -1 {
		t.Errorf("Clamp(-5,-1,1) = %v, want -1", got)
	}
	if got := Clamp(0.5, -1, 1); got != 0.5 {
		t.Errorf("Clamp(0.5,-1,1) = %v, want 0.5", got)
	}
}

func TestAbs(t *testing.T) {
	if got := Abs(-3.5); got != 3.5 {
		t.Errorf("Abs(-3.5) = %v, want 3.5", got)
	}
	if got := Abs(3.5); got != 3.5 {
		t.Errorf("Abs(3.5) = %v, want 3.5", got)
	}
}

func TestInfinity(t *testing.T) {
	if !math.IsInf(float64(Infinity()), 1) {
		t.Errorf("Infinity() = %v, want +Inf", Infinity())
	}
}

func TestDegreeRadianConstants(t *testing.T) {
	if got := 180 * Deg2Rad; !approxf(got, float32(math.Pi), 1e-6) {
		t.Errorf("180*Deg2Rad = %v, want pi", got)
	}
	if got := float32(math.Pi) * Rad2Deg; !approxf(got, 180, 1e-3) {
		t.Errorf("pi*Rad2Deg = %v, want 180", got)
	}
}

func TestApproximately(t *testing.T) {
	if !Approximately(1, 1+1e-7) {
		t.Errorf("Approximately(1, 1+1e-7) = false, want true")
	}
	if Approximately(1, 1.001) {
		t.Errorf("Approximately(1, 1.001) = true, want false")
	}
	if !Approximately(0, 0) {
		t.Errorf("Approximately(0, 0) = false, want true")
	}
}

func TestMoveTowardsFloat(t *testing.T) {
	if got := MoveTowardsFloat(0, 10, 3); got != 3 {
		t.Errorf("MoveTowardsFloat(0,10,3) = %v, want 3", got)
	}
	if got := MoveTowardsFloat(0, 10, 15); got != 10 {
		t.Errorf("MoveTowardsFloat(0,10,15) = %v, want 10", got)
	}
	if got := MoveTowardsFloat(10, 0, 3); got != 7 {
		t.Errorf("MoveTowardsFloat(10,0,3) = %v, want 7", got)
	}
}
