//go:build !mathdebug

package math

// No-op stand-ins for the mathdebug precondition checks. Empty functions
// inline to nothing, keeping the release hot path unchecked.

func assertFinite(f float32) {}

func assertFinite3(v Vector3) {}

func assertNonZero(f float32) {}
