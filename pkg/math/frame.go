package math

// frameDelta is the frame delta used by SmoothDampFrame, set once per
// frame by the engine loop.
var frameDelta float32 = 1.0 / 60

// SetFrameDelta sets the frame delta read by SmoothDampFrame. Non-positive
// values are ignored. Call from the main loop only.
func SetFrameDelta(dt float32) {
	if dt > 0 {
		frameDelta = dt
	}
}

// FrameDelta returns the current frame delta.
func FrameDelta() float32 {
	return frameDelta
}
