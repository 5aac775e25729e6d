package math

import (
	"fmt"
	"unsafe"
)

// Vector3 is a 3D vector of float32 components. The zero value is the zero
// vector. Vector3 is a plain value type: methods return copies, and only the
// pointer-receiver methods (Set, ScaleBy, Normalize) mutate in place.
type Vector3 struct {
	X, Y, Z float32
}

// Data relies on the three fields being laid out contiguously.
var _ [12]byte = [unsafe.Sizeof(Vector3{})]byte{}

// NewVector3 creates a vector with the given x, y, z components.
func NewVector3(x, y, z float32) Vector3 {
	v := Vector3{x, y, z}
	assertFinite3(v)
	return v
}

// NewVector3XY creates a vector with the given x, y components and z set
// to zero.
func NewVector3XY(x, y float32) Vector3 {
	v := Vector3{x, y, 0}
	assertFinite3(v)
	return v
}

// Vector3FromArray copies the first three elements of a into a vector.
// The caller guarantees len(a) >= 3.
func Vector3FromArray(a []float32) Vector3 {
	return Vector3{a[0], a[1], a[2]}
}

// Zero returns the vector (0, 0, 0).
func Zero() Vector3 { return Vector3{} }

// One returns the vector (1, 1, 1).
func One() Vector3 { return Vector3{1, 1, 1} }

// Forward returns the vector (0, 0, 1).
func Forward() Vector3 { return Vector3{0, 0, 1} }

// Back returns the vector (0, 0, -1).
func Back() Vector3 { return Vector3{0, 0, -1} }

// Up returns the vector (0, 1, 0).
func Up() Vector3 { return Vector3{0, 1, 0} }

// Down returns the vector (0, -1, 0).
func Down() Vector3 { return Vector3{0, -1, 0} }

// Left returns the vector (-1, 0, 0).
func Left() Vector3 { return Vector3{-1, 0, 0} }

// Right returns the vector (1, 0, 0).
func Right() Vector3 { return Vector3{1, 0, 0} }

// At returns the component at index i, mapping 0, 1, 2 to X, Y, Z.
// It panics for any other index.
func (v Vector3) At(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("math: Vector3 index out of range")
}

// SetAt sets the component at index i, mapping 0, 1, 2 to X, Y, Z.
// It panics for any other index.
func (v *Vector3) SetAt(i int, value float32) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic("math: Vector3 index out of range")
	}
}

// Data returns the components as a contiguous [3]float32 buffer aliasing
// X, Y, Z in that order, for interop with external numeric APIs. Writes
// through the returned pointer are visible in the named fields and vice
// versa.
func (v *Vector3) Data() *[3]float32 {
	return (*[3]float32)(unsafe.Pointer(v))
}

// Set replaces all three components.
func (v *Vector3) Set(x, y, z float32) {
	v.X = x
	v.Y = y
	v.Z = z
	assertFinite3(*v)
}

// Add returns v + other.
func (v Vector3) Add(other Vector3) Vector3 {
	assertFinite3(other)
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector3) Sub(other Vector3) Vector3 {
	assertFinite3(other)
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul returns the component-wise product of v and other.
func (v Vector3) Mul(other Vector3) Vector3 {
	assertFinite3(other)
	return Vector3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Scale returns v * s.
func (v Vector3) Scale(s float32) Vector3 {
	assertFinite(s)
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v / s. Dividing by zero is asserted under the mathdebug build
// tag; otherwise it follows IEEE 754 and produces infinities.
func (v Vector3) Div(s float32) Vector3 {
	assertFinite(s)
	assertNonZero(s)
	return Vector3{v.X / s, v.Y / s, v.Z / s}
}

// AddScalar returns v with f added to every component.
func (v Vector3) AddScalar(f float32) Vector3 {
	assertFinite(f)
	return Vector3{v.X + f, v.Y + f, v.Z + f}
}

// SubScalar returns v with f subtracted from every component.
func (v Vector3) SubScalar(f float32) Vector3 {
	assertFinite(f)
	return Vector3{v.X - f, v.Y - f, v.Z - f}
}

// Neg returns -v.
func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// ScalarDiv returns the component-wise quotient (f/x, f/y, f/z).
func ScalarDiv(f float32, v Vector3) Vector3 {
	assertFinite(f)
	assertFinite3(v)
	return Vector3{f / v.X, f / v.Y, f / v.Z}
}

// ScaleBy multiplies v component-wise by scale, in place.
func (v *Vector3) ScaleBy(scale Vector3) {
	assertFinite3(scale)
	v.X *= scale.X
	v.Y *= scale.Y
	v.Z *= scale.Z
}

// SqrMagnitude returns the squared length of v. Preferred over Magnitude
// for comparisons since it avoids the square root.
func (v Vector3) SqrMagnitude() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Magnitude returns the length of v.
func (v Vector3) Magnitude() float32 {
	return sqrtf(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v with a magnitude of 1, or the zero vector when the
// magnitude of v is at or below Epsilon.
func Normalize(v Vector3) Vector3 {
	m := v.Magnitude()
	if m > Epsilon {
		return v.Div(m)
	}
	return Vector3{}
}

// Normalize makes v have a magnitude of 1 in place, zeroing it when its
// magnitude is at or below Epsilon.
func (v *Vector3) Normalize() {
	m := v.Magnitude()
	if m > Epsilon {
		v.X /= m
		v.Y /= m
		v.Z /= m
	} else {
		v.X, v.Y, v.Z = 0, 0, 0
	}
}

// Normalized returns v with a magnitude of 1, following the same policy
// as Normalize.
func (v Vector3) Normalized() Vector3 {
	return Normalize(v)
}

// Dot returns the dot product of a and b.
func Dot(a, b Vector3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed cross product of a and b.
func Cross(a, b Vector3) Vector3 {
	return Vector3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Distance returns the distance between a and b.
func Distance(a, b Vector3) float32 {
	return a.Sub(b).Magnitude()
}

// DistanceSquared returns the squared distance between a and b.
func DistanceSquared(a, b Vector3) float32 {
	return a.Sub(b).SqrMagnitude()
}

// Angle returns the unsigned angle in degrees between from and to, never
// greater than 180. Zero-length inputs normalize to the zero vector, so
// the angle resolves to 90.
func Angle(from, to Vector3) float32 {
	// The dot of two unit vectors can drift past +-1 in float32; acos of
	// that would be NaN.
	d := Clamp(Dot(Normalize(from), Normalize(to)), -1, 1)
	return acosf(d) * Rad2Deg
}

// Project returns the component of vector along onNormal. A degenerate
// onNormal (squared magnitude below 1e-15) carries no direction and yields
// the zero vector.
func Project(vector, onNormal Vector3) Vector3 {
	sqrMag := Dot(onNormal, onNormal)
	if sqrMag < 1e-15 {
		return Vector3{}
	}
	return onNormal.Scale(Dot(vector, onNormal) / sqrMag)
}

// ProjectOnPlane returns vector projected onto the plane through the
// origin with the given normal.
func ProjectOnPlane(vector, planeNormal Vector3) Vector3 {
	return vector.Sub(Project(vector, planeNormal))
}

// Reflect returns inDirection reflected off the plane defined by inNormal.
func Reflect(inDirection, inNormal Vector3) Vector3 {
	return inDirection.Sub(inNormal.Scale(2 * Dot(inNormal, inDirection)))
}

// ClampMagnitude returns vector with its magnitude clamped to maxLength.
// Vectors at or below maxLength are returned unchanged, including the zero
// vector.
func ClampMagnitude(vector Vector3, maxLength float32) Vector3 {
	if vector.SqrMagnitude() > maxLength*maxLength {
		return vector.Normalized().Scale(maxLength)
	}
	return vector
}

// Min returns the vector made from the smallest components of a and b.
func Min(a, b Vector3) Vector3 {
	return Vector3{minf(a.X, b.X), minf(a.Y, b.Y), minf(a.Z, b.Z)}
}

// Max returns the vector made from the largest components of a and b.
func Max(a, b Vector3) Vector3 {
	return Vector3{maxf(a.X, b.X), maxf(a.Y, b.Y), maxf(a.Z, b.Z)}
}

// Lerp linearly interpolates between a and b by t, clamped to [0, 1].
func Lerp(a, b Vector3, t float32) Vector3 {
	t = Clamp01(t)
	return Vector3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// LerpUnclamped linearly interpolates between a and b by t without
// clamping, allowing extrapolation.
func LerpUnclamped(a, b Vector3, t float32) Vector3 {
	return Vector3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// Slerp spherically interpolates between a and b by t, clamped to [0, 1].
// The direction travels the great-circle arc between the directions of a
// and b while the magnitude blends linearly.
func Slerp(a, b Vector3, t float32) Vector3 {
	return SlerpUnclamped(a, b, Clamp01(t))
}

// SlerpUnclamped spherically interpolates between a and b by t without
// clamping. When either endpoint is shorter than Epsilon there is no arc
// to travel and the call degrades to LerpUnclamped. Antiparallel
// directions rotate through an arbitrary perpendicular axis.
func SlerpUnclamped(a, b Vector3, t float32) Vector3 {
	magA := a.Magnitude()
	magB := b.Magnitude()
	if magA <= Epsilon || magB <= Epsilon {
		return LerpUnclamped(a, b, t)
	}

	dirA := a.Div(magA)
	dirB := b.Div(magB)
	mag := magA + (magB-magA)*t

	d := Clamp(Dot(dirA, dirB), -1, 1)
	if d > 1-1e-6 {
		// Directions agree, the arc collapses to a straight blend.
		return Normalize(LerpUnclamped(dirA, dirB, t)).Scale(mag)
	}

	var axis Vector3
	if d < -1+1e-6 {
		axis = orthogonal(dirA)
	} else {
		axis = Normalize(Cross(dirA, dirB))
	}
	return rotateAroundAxis(dirA, axis, acosf(d)*t).Scale(mag)
}

// MoveTowards moves current toward target in a straight line by at most
// maxDistanceDelta, returning target exactly once it is within range.
// It never overshoots.
func MoveTowards(current, target Vector3, maxDistanceDelta float32) Vector3 {
	delta := target.Sub(current)
	sqrDist := delta.SqrMagnitude()
	if sqrDist == 0 || (maxDistanceDelta >= 0 && sqrDist <= maxDistanceDelta*maxDistanceDelta) {
		return target
	}
	return current.Add(delta.Scale(maxDistanceDelta / sqrtf(sqrDist)))
}

// RotateTowards rotates the direction of current toward the direction of
// target by at most maxRadiansDelta, and moves the magnitude toward the
// magnitude of target by at most maxMagnitudeDelta. When either vector is
// shorter than Epsilon there is no direction to rotate and the call
// degrades to MoveTowards.
func RotateTowards(current, target Vector3, maxRadiansDelta, maxMagnitudeDelta float32) Vector3 {
	magCur := current.Magnitude()
	magTgt := target.Magnitude()
	if magCur <= Epsilon || magTgt <= Epsilon {
		return MoveTowards(current, target, maxMagnitudeDelta)
	}

	dirCur := current.Div(magCur)
	dirTgt := target.Div(magTgt)
	mag := MoveTowardsFloat(magCur, magTgt, maxMagnitudeDelta)

	d := Clamp(Dot(dirCur, dirTgt), -1, 1)
	if d > 1-1e-6 {
		return dirTgt.Scale(mag)
	}
	angle := acosf(d)
	if angle <= maxRadiansDelta {
		return dirTgt.Scale(mag)
	}

	var axis Vector3
	if d < -1+1e-6 {
		axis = orthogonal(dirCur)
	} else {
		axis = Normalize(Cross(dirCur, dirTgt))
	}
	return rotateAroundAxis(dirCur, axis, maxRadiansDelta).Scale(mag)
}

// SmoothDamp gradually changes current toward target over time using a
// critically damped spring, never exceeding maxSpeed. It returns the new
// position and the new velocity; callers must persist the velocity and
// pass it back on the next call. smoothTime is the approximate time to
// reach the target and is floored at 0.0001.
func SmoothDamp(current, target, currentVelocity Vector3, smoothTime, maxSpeed, deltaTime float32) (Vector3, Vector3) {
	smoothTime = maxf(0.0001, smoothTime)
	omega := 2 / smoothTime
	x := omega * deltaTime
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	origTarget := target
	change := ClampMagnitude(current.Sub(target), maxSpeed*smoothTime)
	target = current.Sub(change)

	temp := currentVelocity.Add(change.Scale(omega)).Scale(deltaTime)
	velocity := currentVelocity.Sub(temp.Scale(omega)).Scale(exp)
	output := target.Add(change.Add(temp).Scale(exp))

	if Dot(origTarget.Sub(current), output.Sub(origTarget)) > 0 {
		output = origTarget
		velocity = Vector3{}
	}
	return output, velocity
}

// SmoothDampFrame is SmoothDamp using the package frame delta, for callers
// inside the engine loop that do not thread deltaTime explicitly.
func SmoothDampFrame(current, target, currentVelocity Vector3, smoothTime, maxSpeed float32) (Vector3, Vector3) {
	return SmoothDamp(current, target, currentVelocity, smoothTime, maxSpeed, frameDelta)
}

// OrthoNormalize makes normal unit length and tangent unit length and
// orthogonal to normal, in place. A degenerate normal falls back to
// Right(); a tangent that is zero or parallel to normal falls back to an
// arbitrary perpendicular. On return the two vectors are always orthogonal
// unit vectors.
func OrthoNormalize(normal, tangent *Vector3) {
	*normal = Normalize(*normal)
	if normal.SqrMagnitude() == 0 {
		*normal = Right()
	}
	*tangent = Normalize(tangent.Sub(Project(*tangent, *normal)))
	if tangent.SqrMagnitude() == 0 {
		*tangent = orthogonal(*normal)
	}
}

// OrthoNormalize3 is OrthoNormalize extended with a binormal, which is
// derived as the cross product completing a right-handed orthonormal
// basis.
func OrthoNormalize3(normal, tangent, binormal *Vector3) {
	OrthoNormalize(normal, tangent)
	*binormal = Cross(*normal, *tangent)
}

// Equals reports whether v and other are indistinguishable within
// floating-point noise, comparing squared distance against an epsilon
// derived from a ~1e-5 per-axis tolerance.
func (v Vector3) Equals(other Vector3) bool {
	return DistanceSquared(v, other) < 9.99999944e-11
}

// String returns a "(x, y, z)" representation for logging and debugging.
func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

func (v Vector3) hasNaNs() bool {
	return v.X != v.X || v.Y != v.Y || v.Z != v.Z
}

// orthogonal returns an arbitrary unit vector perpendicular to v.
// v must be non-zero.
func orthogonal(v Vector3) Vector3 {
	if Abs(v.X) > Abs(v.Z) {
		return Normalize(Vector3{-v.Y, v.X, 0})
	}
	return Normalize(Vector3{0, -v.Z, v.Y})
}

// rotateAroundAxis rotates v around the unit axis by angle radians using
// the Rodrigues formula.
func rotateAroundAxis(v, axis Vector3, angle float32) Vector3 {
	c := cosf(angle)
	s := sinf(angle)
	return v.Scale(c).
		Add(Cross(axis, v).Scale(s)).
		Add(axis.Scale(Dot(axis, v) * (1 - c)))
}
