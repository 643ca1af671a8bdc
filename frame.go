package tube

import "math"

// MaxSecant bounds the corner correction returned by [RingRotation]. Corners
// approaching a full reversal would otherwise inflate rings without limit.
const MaxSecant = 4.0

// RingRotation computes the orientation of the ring at points[i] and the
// secant factor by which its radius must grow to keep the tube's wall
// thickness at a corner.
//
// Interior points, and every point of a closed polyline, face along the
// average of the incoming and outgoing directions. The end points of an open
// polyline face along their only segment and have a secant of 1.
//
// Where the direction is zero or parallel to [Up], no look rotation exists
// and the identity is returned.
func RingRotation(points []Point, i int, closed bool) (Rotation, float64) {
	n := len(points)
	if n < 2 {
		return Identity(), 1
	}

	var dir Vec3
	secant := 1.0
	prev, next := neighbors(n, i, closed)
	switch {
	case prev >= 0 && next >= 0:
		coming := points[i].Sub(points[prev]).NormalizeOr(Vec3{})
		leaving := points[next].Sub(points[i]).NormalizeOr(Vec3{})
		dir = coming.Add(leaving).Mul(0.5).NormalizeOr(Vec3{})
		if !coming.IsZero() && !dir.IsZero() {
			secant = min(1/math.Cos(coming.Angle(dir)), MaxSecant)
		}
	case next >= 0:
		dir = points[next].Sub(points[i])
	case prev >= 0:
		dir = points[i].Sub(points[prev])
	}

	rot, ok := LookRotation(dir, Up)
	if !ok {
		Logger().Debug("degenerate ring direction", "index", i, "direction", dir)
		return Identity(), 1
	}
	return rot, secant
}
