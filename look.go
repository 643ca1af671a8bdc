package tube

// lookParam is the parameter of the short arcs that LookDirection samples
// toward each neighbor.
const lookParam = 0.1

// LookDirection estimates the curve's direction at knots[index].
//
// prev and next are the indices of the neighboring knots, or negative if the
// knot has no such neighbor. The estimate samples a short quadratic arc toward
// each neighbor and averages the two directions. At the ends of an open curve
// only one side contributes. Without any usable neighbor the result is
// [Forward].
func LookDirection(knots []Knot, index, prev, next int) Vec3 {
	k := knots[index]

	var ahead, behind Vec3
	if next >= 0 {
		ahead = QuadraticPosition(k, knots[next], lookParam).Sub(k.Position).NormalizeOr(Vec3{})
	}
	if prev >= 0 {
		// Walk backwards along the incoming tangent and flip the result.
		behind = k.Position.Sub(QuadraticPosition(k.Reversed(), knots[prev], lookParam)).NormalizeOr(Vec3{})
	}

	switch {
	case !ahead.IsZero() && !behind.IsZero():
		return ahead.Add(behind).Mul(0.5).NormalizeOr(ahead)
	case !ahead.IsZero():
		return ahead
	case !behind.IsZero():
		return behind
	default:
		return Forward
	}
}
