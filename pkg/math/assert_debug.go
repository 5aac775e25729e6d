//go:build mathdebug

package math

// Precondition checks for the hot-path arithmetic. Compiled in only under
// the mathdebug build tag; a NaN component or zero divisor is a programming
// error in the caller, not a recoverable condition.

func assertFinite(f float32) {
	if f != f {
		panic("math: NaN operand")
	}
}

func assertFinite3(v Vector3) {
	if v.hasNaNs() {
		panic("math: NaN component in " + v.String())
	}
}

func assertNonZero(f float32) {
	if f == 0 {
		panic("math: division by zero")
	}
}
