package tube

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Rotation is a rotation in 3D space, represented as a unit quaternion.
//
// The zero value is treated as the identity rotation, so that knots without
// an explicit twist don't need to be initialized.
type Rotation quat.Number

// Identity returns the rotation that leaves all vectors unchanged.
func Identity() Rotation {
	return Rotation{Real: 1}
}

// AxisAngle returns the rotation by angle θ, in radians, around axis.
// A degenerate axis yields the identity.
func AxisAngle(axis Vec3, th float64) Rotation {
	if axis.IsZero() {
		return Identity()
	}
	return Rotation(r3.NewRotation(th, axis.Normalize().R3()))
}

func (r Rotation) num() quat.Number {
	if r == (Rotation{}) {
		return quat.Number{Real: 1}
	}
	return quat.Number(r)
}

func (r Rotation) String() string {
	q := r.num()
	return fmt.Sprintf("(%g%+gi%+gj%+gk)", q.Real, q.Imag, q.Jmag, q.Kmag)
}

// IsIdentity reports whether r leaves vectors unchanged.
func (r Rotation) IsIdentity() bool {
	q := r.num()
	// q and -q are the same rotation.
	return math.Abs(math.Abs(q.Real)-1) < epsilon
}

// Mul returns the composition of r and o. The result applies o first and r
// second, such that r.Mul(o).Rotate(v) == r.Rotate(o.Rotate(v)).
func (r Rotation) Mul(o Rotation) Rotation {
	return Rotation(quat.Mul(r.num(), o.num()))
}

// Inverse returns the rotation that undoes r.
func (r Rotation) Inverse() Rotation {
	return Rotation(quat.Conj(r.Normalize().num()))
}

// Normalize returns r scaled to unit length. Rotations whose magnitude is zero
// or not finite normalize to the identity.
func (r Rotation) Normalize() Rotation {
	q := r.num()
	l := quat.Abs(q)
	if l < epsilon || math.IsInf(l, 0) || math.IsNaN(l) {
		return Identity()
	}
	return Rotation(quat.Scale(1/l, q))
}

// Rotate applies the rotation to v.
func (r Rotation) Rotate(v Vec3) Vec3 {
	return FromR3(r3.Rotation(r.num()).Rotate(v.R3()))
}

// Forward returns the image of the +Z axis.
func (r Rotation) Forward() Vec3 { return r.Rotate(Forward) }

// Up returns the image of the +Y axis.
func (r Rotation) Up() Vec3 { return r.Rotate(Up) }

// Right returns the image of the +X axis.
func (r Rotation) Right() Vec3 { return r.Rotate(Vec3{X: 1}) }

func (r Rotation) dot(o Rotation) float64 {
	a, b := r.num(), o.num()
	return a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
}

// Slerp spherically interpolates between a and b along the shorter arc.
// t is clamped to [0, 1].
func Slerp(a, b Rotation, t float64) Rotation {
	t = max(0, min(1, t))
	qa, qb := a.Normalize().num(), b.Normalize().num()
	d := Rotation(qa).dot(Rotation(qb))
	if d < 0 {
		qb = quat.Scale(-1, qb)
		d = -d
	}
	if d > 1-1e-6 {
		// The rotations are nearly identical and sin(θ) vanishes; a normalized
		// linear interpolation is indistinguishable.
		q := quat.Add(quat.Scale(1-t, qa), quat.Scale(t, qb))
		return Rotation(q).Normalize()
	}
	th := math.Acos(d)
	s := math.Sin(th)
	wa := math.Sin((1-t)*th) / s
	wb := math.Sin(t*th) / s
	return Rotation(quat.Add(quat.Scale(wa, qa), quat.Scale(wb, qb)))
}

// LookRotation returns the rotation that maps the +Z axis onto forward and
// the +Y axis as close to up as possible.
//
// The construction is singular when forward is zero or parallel to up. In
// that case LookRotation returns the identity and false.
func LookRotation(forward, up Vec3) (Rotation, bool) {
	f := forward.NormalizeOr(Vec3{})
	if f.IsZero() {
		return Identity(), false
	}
	right := up.Cross(f)
	if right.Hypot() < singularTolerance {
		return Identity(), false
	}
	right = right.Normalize()
	u := f.Cross(right)

	// Columns of the rotation matrix are right, u and f.
	m00, m01, m02 := right.X, u.X, f.X
	m10, m11, m12 := right.Y, u.Y, f.Y
	m20, m21, m22 := right.Z, u.Z, f.Z

	var q quat.Number
	switch trace := m00 + m11 + m22; {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		q = quat.Number{
			Real: 0.25 / s,
			Imag: (m21 - m12) * s,
			Jmag: (m02 - m20) * s,
			Kmag: (m10 - m01) * s,
		}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		q = quat.Number{
			Real: (m21 - m12) / s,
			Imag: 0.25 * s,
			Jmag: (m01 + m10) / s,
			Kmag: (m02 + m20) / s,
		}
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		q = quat.Number{
			Real: (m02 - m20) / s,
			Imag: (m01 + m10) / s,
			Jmag: 0.25 * s,
			Kmag: (m12 + m21) / s,
		}
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		q = quat.Number{
			Real: (m10 - m01) / s,
			Imag: (m02 + m20) / s,
			Jmag: (m12 + m21) / s,
			Kmag: 0.25 * s,
		}
	}
	return Rotation(q).Normalize(), true
}
