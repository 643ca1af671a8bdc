package tube

import "fmt"

// Knot is a control point of a piecewise cubic Bézier curve.
//
// Tangents are stored as absolute points, not as offsets from the position.
// Use [Knot.InVec] and [Knot.OutVec] for the local tangent vectors.
type Knot struct {
	Position   Point
	TangentIn  Point
	TangentOut Point
	// Twist is rotated into the frame of every ring near the knot, on top of
	// the rotation that follows the curve.
	Twist Rotation
}

// TangentMode describes how setting one of a knot's tangents affects the
// other.
type TangentMode uint8

const (
	// Free tangents are independent of each other.
	Free TangentMode = iota
	// Aligned keeps the other tangent's direction but matches its length to
	// the tangent that was set.
	Aligned
	// Mirrored sets the other tangent to the exact reflection of the tangent
	// that was set.
	Mirrored
)

func (m TangentMode) String() string {
	switch m {
	case Free:
		return "free"
	case Aligned:
		return "aligned"
	case Mirrored:
		return "mirrored"
	default:
		return fmt.Sprintf("TangentMode(%d)", uint8(m))
	}
}

// ParseTangentMode returns the mode named s, as produced by
// [TangentMode.String].
func ParseTangentMode(s string) (TangentMode, error) {
	switch s {
	case "free", "":
		return Free, nil
	case "aligned":
		return Aligned, nil
	case "mirrored":
		return Mirrored, nil
	default:
		return Free, fmt.Errorf("unknown tangent mode %q", s)
	}
}

// Side names one of a knot's two tangents.
type Side uint8

const (
	In Side = iota
	Out
)

func (s Side) String() string {
	if s == In {
		return "in"
	}
	return "out"
}

// K returns a knot at pos with both tangents collapsed onto it.
func K(pos Point) Knot {
	return Knot{
		Position:   pos,
		TangentIn:  pos,
		TangentOut: pos,
	}
}

// InVec returns the incoming tangent relative to the knot's position.
func (k Knot) InVec() Vec3 {
	return k.TangentIn.Sub(k.Position)
}

// OutVec returns the outgoing tangent relative to the knot's position.
func (k Knot) OutVec() Vec3 {
	return k.TangentOut.Sub(k.Position)
}

// Reversed returns the knot with its tangents swapped, as seen when
// traversing the curve backwards.
func (k Knot) Reversed() Knot {
	k.TangentIn, k.TangentOut = k.TangentOut, k.TangentIn
	return k
}

// SetPosition moves the knot to p. Both tangents move with it.
func (k *Knot) SetPosition(p Point) {
	d := p.Sub(k.Position)
	k.Position = p
	k.TangentIn = k.TangentIn.Translate(d)
	k.TangentOut = k.TangentOut.Translate(d)
}

// SetTangentIn sets the incoming tangent and updates the outgoing tangent
// according to mode.
func (k *Knot) SetTangentIn(t Point, mode TangentMode) {
	k.TangentIn = t
	*k = Enforce(*k, In, mode)
}

// SetTangentOut sets the outgoing tangent and updates the incoming tangent
// according to mode.
func (k *Knot) SetTangentOut(t Point, mode TangentMode) {
	k.TangentOut = t
	*k = Enforce(*k, Out, mode)
}

// Enforce returns k with the tangent opposite to master adjusted to satisfy
// mode.
func Enforce(k Knot, master Side, mode TangentMode) Knot {
	src, dst := k.OutVec(), k.InVec()
	if master == In {
		src, dst = dst, src
	}

	switch mode {
	case Free:
		return k
	case Aligned:
		// A collapsed tangent has no direction to keep.
		dst = dst.NormalizeOr(Vec3{}).Mul(src.Hypot())
	case Mirrored:
		dst = src.Negate()
	default:
		return k
	}

	if master == In {
		k.TangentOut = k.Position.Translate(dst)
	} else {
		k.TangentIn = k.Position.Translate(dst)
	}
	return k
}

// AutoTangents returns a copy of knots with Catmull-Rom tangents, such that the
// curve passes smoothly through every knot. Each tangent is tension times a
// sixth of the vector from the knot's predecessor to its successor. End knots
// of open curves use their single neighbor instead. Positions and twists are
// kept.
func AutoTangents(knots []Knot, closed bool, tension float64) []Knot {
	out := make([]Knot, len(knots))
	copy(out, knots)
	n := len(knots)
	if n < 2 {
		for i := range out {
			out[i].TangentIn = out[i].Position
			out[i].TangentOut = out[i].Position
		}
		return out
	}
	for i := range knots {
		prev, next := neighbors(n, i, closed)
		if prev < 0 {
			prev = i
		}
		if next < 0 {
			next = i
		}
		d := knots[next].Position.Sub(knots[prev].Position).Mul(tension).Div(6)
		if prev == i || next == i {
			// One-sided difference spans a single segment instead of two.
			d = d.Mul(2)
		}
		out[i].TangentOut = knots[i].Position.Translate(d)
		out[i].TangentIn = knots[i].Position.Translate(d.Negate())
	}
	return out
}

// neighbors returns the indices of the knots before and after i, or -1 where
// an open curve ends.
func neighbors(n, i int, closed bool) (prev, next int) {
	prev, next = i-1, i+1
	if closed {
		prev = (i - 1 + n) % n
		next = (i + 1) % n
		if prev == i {
			prev = -1
		}
		if next == i {
			next = -1
		}
		return prev, next
	}
	if next >= n {
		next = -1
	}
	return prev, next
}
