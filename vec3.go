package tube

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Forward and Up are the reference axes. A ring's cross-section lies in the
// plane spanned by its local X and Y axes and faces along its local Z axis.
var (
	Forward = Vec3{Z: 1}
	Up      = Vec3{Y: 1}
)

type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Vec returns the vector ⟨x, y, z⟩.
func Vec(x, y, z float64) Vec3 {
	return Vec3{
		X: x,
		Y: y,
		Z: z,
	}
}

// FromR3 converts a gonum vector.
func FromR3(v r3.Vec) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// R3 returns the vector as a gonum vector.
func (v Vec3) R3() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// Splat returns the vector's x, y and z coordinates.
func (v Vec3) Splat() (float64, float64, float64) {
	return v.X, v.Y, v.Z
}

func (v Vec3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return r3.Dot(v.R3(), o.R3())
}

// Cross returns the cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return FromR3(r3.Cross(v.R3(), o.R3()))
}

// Hypot returns the magnitude of the vector.
func (v Vec3) Hypot() float64 {
	return r3.Norm(v.R3())
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec3.Hypot].
func (v Vec3) Hypot2() float64 {
	return r3.Norm2(v.R3())
}

// Lerp linearly interpolates between two vectors.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// This produces a NaN vector if the magnitude is 0. Use [Vec3.NormalizeOr]
// for vectors that may be degenerate.
func (v Vec3) Normalize() Vec3 {
	return v.Mul(1.0 / v.Hypot())
}

// NormalizeOr is like [Vec3.Normalize] but returns fallback for vectors
// whose magnitude is zero or not finite.
func (v Vec3) NormalizeOr(fallback Vec3) Vec3 {
	l := v.Hypot()
	if l < epsilon || math.IsInf(l, 0) || math.IsNaN(l) {
		return fallback
	}
	return FromR3(r3.Unit(v.R3()))
}

// IsZero reports whether the vector is shorter than the package tolerance.
func (v Vec3) IsZero() bool {
	return v.Hypot2() < epsilon*epsilon
}

// Angle returns the unsigned angle between v and o in radians.
func (v Vec3) Angle(o Vec3) float64 {
	c := r3.Cos(v.R3(), o.R3())
	return math.Acos(max(-1, min(1, c)))
}

// IsInf reports whether at least one of x, y and z is infinite.
func (v Vec3) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

// IsNaN reports whether at least one of x, y and z is NaN.
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec3) Add(o Vec3) Vec3 {
	return FromR3(r3.Add(v.R3(), o.R3()))
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec3) Sub(o Vec3) Vec3 {
	return FromR3(r3.Sub(v.R3(), o.R3()))
}

func (v Vec3) Mul(f float64) Vec3 {
	return FromR3(r3.Scale(f, v.R3()))
}

func (v Vec3) Div(f float64) Vec3 {
	return Vec3{
		X: v.X / f,
		Y: v.Y / f,
		Z: v.Z / f,
	}
}

// Negate returns a new vector with the signs of x, y and z flipped.
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}
