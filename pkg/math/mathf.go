// Package math provides the vector math core used by the engine's
// transform, physics, and animation code.
package math

import "math"

// Epsilon is the magnitude below which a vector is treated as zero-length
// by Normalize and the algorithms built on it.
const Epsilon float32 = 1e-5

// Rad2Deg converts radians to degrees when multiplied.
const Rad2Deg float32 = 180 / math.Pi

// Deg2Rad converts degrees to radians when multiplied.
const Deg2Rad float32 = math.Pi / 180

// Infinity returns positive infinity.
func Infinity() float32 {
	return float32(math.Inf(1))
}

// Clamp01 clamps t to the range [0, 1].
func Clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Clamp clamps v to the range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs returns the absolute value of f.
func Abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// Approximately reports whether a and b are equal within floating-point
// noise, scaling the tolerance with the larger operand.
func Approximately(a, b float32) bool {
	tol := 1e-6 * maxf(Abs(a), Abs(b))
	if tol < 8*1.175494e-38 {
		tol = 8 * 1.175494e-38
	}
	return Abs(b-a) < tol
}

// MoveTowardsFloat moves current toward target by at most maxDelta,
// returning target exactly once it is within range.
func MoveTowardsFloat(current, target, maxDelta float32) float32 {
	if Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

func sqrtf(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func acosf(x float32) float32 {
	return float32(math.Acos(float64(x)))
}

func sinf(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func cosf(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
