package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a 3-component vector used both for spatial positions/directions
// and for linear RGB color. Its field layout matches gonum's r3.Vec so the
// two convert freely; the plain arithmetic (Add/Subtract/Cross/Dot/...)
// defers to gonum's package-level functions instead of reimplementing them.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) r3() r3.Vec { return r3.Vec(v) }

func fromR3(v r3.Vec) Vec3 { return Vec3(v) }

// Add returns the sum of two vectors.
func (v Vec3) Add(other Vec3) Vec3 {
	return fromR3(r3.Add(v.r3(), other.r3()))
}

// Subtract returns the difference of two vectors.
func (v Vec3) Subtract(other Vec3) Vec3 {
	return fromR3(r3.Sub(v.r3(), other.r3()))
}

// Multiply returns the vector scaled by a scalar.
func (v Vec3) Multiply(scalar float64) Vec3 {
	return fromR3(r3.Scale(scalar, v.r3()))
}

// Length returns the magnitude of the vector.
func (v Vec3) Length() float64 {
	return r3.Norm(v.r3())
}

// LengthSquared returns the squared magnitude of the vector.
func (v Vec3) LengthSquared() float64 {
	return r3.Norm2(v.r3())
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(other Vec3) float64 {
	return r3.Dot(v.r3(), other.r3())
}

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(other Vec3) Vec3 {
	return fromR3(r3.Cross(v.r3(), other.r3()))
}

// Normalize returns a unit vector in the same direction, or the zero
// vector if v has zero length.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}
	return fromR3(r3.Scale(1.0/length, v.r3()))
}

// MultiplyVec returns the component-wise (Hadamard) product of two vectors.
// r3 has no notion of this since it's a spatial-only operation; used here
// for color modulation (attenuation * incoming radiance).
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z}
}

// Square returns the component-wise square of the vector.
func (v Vec3) Square() Vec3 {
	return v.MultiplyVec(v)
}

// Clamp returns a vector with components clamped to [minVal, maxVal].
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: math.Max(minVal, math.Min(maxVal, v.X)),
		Y: math.Max(minVal, math.Min(maxVal, v.Y)),
		Z: math.Max(minVal, math.Min(maxVal, v.Z)),
	}
}

// GammaCorrect applies gamma correction to linear color values.
func (v Vec3) GammaCorrect(gamma float64) Vec3 {
	invGamma := 1.0 / gamma
	return Vec3{
		X: math.Pow(math.Max(0, v.X), invGamma),
		Y: math.Pow(math.Max(0, v.Y), invGamma),
		Z: math.Pow(math.Max(0, v.Z), invGamma),
	}
}

// Luminance returns the perceptual luminance of a linear RGB color.
func (v Vec3) Luminance() float64 {
	return 0.2126*v.X + 0.7152*v.Y + 0.0722*v.Z
}

// Negate returns the negative of the vector.
func (v Vec3) Negate() Vec3 {
	return fromR3(r3.Scale(-1, v.r3()))
}

// IsZero reports whether every component is exactly zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Equals reports whether two vectors are equal within a small tolerance,
// to absorb floating-point rounding differences between equivalent
// computations.
func (v Vec3) Equals(other Vec3) bool {
	const epsilon = 1e-6
	return math.Abs(v.X-other.X) < epsilon &&
		math.Abs(v.Y-other.Y) < epsilon &&
		math.Abs(v.Z-other.Z) < epsilon
}

// Color3 is the color-domain alias for Vec3 (linear RGB, no alpha).
type Color3 = Vec3

// Vec2 is a 2-component vector, used for UV coordinates and 2D sample
// tuples drawn from a Sampler.
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2.
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Ray is a half-line: origin plus direction, valid for t >= the caller's
// chosen epsilon.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
