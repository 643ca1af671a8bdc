package tube

import (
	"iter"
)

// Sample is a point on a spline together with the twist interpolated from its
// bounding knots.
type Sample struct {
	Position Point
	Rotation Rotation
}

// Spline is a sequence of knots connected by cubic Bézier segments.
type Spline struct {
	Knots []Knot
	// Closed connects the last knot back to the first.
	Closed bool
}

// Len returns the number of segments.
func (s Spline) Len() int {
	n := len(s.Knots)
	switch {
	case n < 2:
		return 0
	case s.Closed:
		return n
	default:
		return n - 1
	}
}

// Segments returns an iterator over the index of each segment's first knot and
// the segment's curve.
func (s Spline) Segments() iter.Seq2[int, CubicBez] {
	return func(yield func(int, CubicBez) bool) {
		n := len(s.Knots)
		for i := range s.Len() {
			if !yield(i, Segment(s.Knots[i], s.Knots[(i+1)%n])) {
				return
			}
		}
	}
}

// Arclen returns the length of the spline.
func (s Spline) Arclen(accuracy float64) float64 {
	var l float64
	segs := max(s.Len(), 1)
	for _, c := range s.Segments() {
		l += c.Arclen(accuracy / float64(segs))
	}
	return l
}

// Sample subdivides every segment into columns sub-segments and returns
// their start points. An open spline also includes its final knot, so that it
// yields Len()*columns+1 samples; a closed spline yields Len()*columns
// samples and the first sample doubles as the end.
//
// Each sample's rotation is the spherical interpolation between the twists
// of the segment's knots.
func (s Spline) Sample(columns int) []Sample {
	columns = max(columns, 1)
	segs := s.Len()
	if segs == 0 {
		return nil
	}
	n := len(s.Knots)
	count := segs * columns
	if !s.Closed {
		count++
	}

	out := make([]Sample, 0, count)
	for i := range segs {
		a, b := s.Knots[i], s.Knots[(i+1)%n]
		steps := columns
		if !s.Closed && i == segs-1 {
			steps++
		}
		for j := range steps {
			t := float64(j) / float64(columns)
			out = append(out, Sample{
				Position: CubicPosition(a, b, t),
				Rotation: Slerp(a.Twist, b.Twist, t),
			})
		}
	}
	return out
}

// KnotFrame returns the orientation of the curve at knot i: the look rotation
// along [LookDirection], composed with the knot's twist.
func (s Spline) KnotFrame(i int) Rotation {
	prev, next := neighbors(len(s.Knots), i, s.Closed)
	dir := LookDirection(s.Knots, i, prev, next)
	look, _ := LookRotation(dir, Up)
	return look.Mul(s.Knots[i].Twist)
}
