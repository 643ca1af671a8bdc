package tube

import (
	"math"
)

// MinRows is the smallest cross-section resolution; a ring needs at least
// three sides to enclose area.
const MinRows = 3

// Params controls the shape of an extruded tube.
type Params struct {
	// Radius of the cross-section. Negative and non-finite radii are treated
	// as 0.
	Radius float64
	// Columns is the number of samples per knot-to-knot segment. Values
	// below 1 are treated as 1.
	Columns int
	// Rows is the number of sides of the cross-section. Values below
	// [MinRows] are treated as MinRows.
	Rows int
	// Closed connects the last knot back to the first.
	Closed bool
	// Smooth tags all faces with [TubeSmoothingGroup].
	Smooth bool
	// CornerCorrection scales every ring's radius by the secant factor of
	// [RingRotation], so that the tube keeps its thickness at sharp bends.
	CornerCorrection bool
}

// DefaultParams returns the parameters of a smooth tube of radius 0.5 with
// eight sides and eight columns per segment.
func DefaultParams() Params {
	return Params{
		Radius:  0.5,
		Columns: 8,
		Rows:    8,
		Smooth:  true,
	}
}

// normalize clamps p into the supported range.
func (p Params) normalize() Params {
	log := Logger()
	if p.Rows < MinRows {
		log.Debug("clamping rows", "rows", p.Rows, "min", MinRows)
		p.Rows = MinRows
	}
	if p.Columns < 1 {
		log.Debug("clamping columns", "columns", p.Columns)
		p.Columns = 1
	}
	if !(p.Radius >= 0) || math.IsInf(p.Radius, 1) {
		log.Debug("clamping radius", "radius", p.Radius)
		p.Radius = 0
	}
	return p
}

// VertexRing returns the 2*rows vertices of the ring around center. Every side
// of the ring gets its own pair of vertices, at angles 2πk/rows and
// 2π(k+1)/rows in the ring's local XY plane.
func VertexRing(center Point, rot Rotation, radius float64, rows int) []Point {
	return appendVertexRing(make([]Point, 0, 2*rows), center, rot, radius, rows)
}

func appendVertexRing(dst []Point, center Point, rot Rotation, radius float64, rows int) []Point {
	step := 2 * math.Pi / float64(rows)
	for k := range rows {
		for _, th := range [2]float64{float64(k) * step, float64(k+1) * step} {
			off := VecFromAngle(th).Mul(radius).Lift()
			dst = append(dst, center.Translate(rot.Rotate(off)))
		}
	}
	return dst
}

// Assemble builds the tube around a polyline.
//
// rotations holds the twist of each position and may be nil or shorter than
// positions, in which case missing twists are the identity. Fewer than two
// positions produce an empty mesh.
//
// Each segment of the polyline gets two rings of its own, so the mesh has
// 4*rows positions and rows faces per segment and no two segments share
// vertices.
func Assemble(positions []Point, rotations []Rotation, p Params) Mesh {
	p = p.normalize()
	n := len(positions)
	if n < 2 {
		return Mesh{}
	}
	segs := n - 1
	if p.Closed {
		segs = n
	}

	ring := func(i int) (Rotation, float64) {
		rot, secant := RingRotation(positions, i, p.Closed)
		if i < len(rotations) {
			rot = rot.Mul(rotations[i])
		}
		r := p.Radius
		if p.CornerCorrection {
			r *= secant
		}
		return rot, r
	}

	rows := p.Rows
	var group uint32 = NoSmoothingGroup
	if p.Smooth {
		group = TubeSmoothingGroup
	}
	m := Mesh{
		Positions: make([]Point, 0, segs*4*rows),
		Faces:     make([]Face, 0, segs*rows),
	}

	// Ring i's frame is needed by segments i-1 and i.
	rotA, radA := ring(0)
	for i := range segs {
		j := (i + 1) % n
		rotB, radB := ring(j)

		a := uint32(len(m.Positions))
		b := a + uint32(2*rows)
		m.Positions = appendVertexRing(m.Positions, positions[i], rotA, radA, rows)
		m.Positions = appendVertexRing(m.Positions, positions[j], rotB, radB, rows)

		for k := range uint32(rows) {
			a0, a1 := a+2*k, a+2*k+1
			b0, b1 := b+2*k, b+2*k+1
			m.Faces = append(m.Faces, Face{
				Indices:        [6]uint32{a0, a1, b0, a1, b1, b0},
				SmoothingGroup: group,
			})
		}
		rotA, radA = rotB, radB
	}
	return m
}

// Extrude samples the spline through knots and builds a tube around it.
// Fewer than two knots produce an empty mesh.
func Extrude(knots []Knot, p Params) Mesh {
	if len(knots) < 2 {
		return Mesh{}
	}
	p = p.normalize()
	samples := Spline{Knots: knots, Closed: p.Closed}.Sample(p.Columns)
	positions := make([]Point, len(samples))
	rotations := make([]Rotation, len(samples))
	for i, s := range samples {
		positions[i] = s.Position
		rotations[i] = s.Rotation
	}
	return Assemble(positions, rotations, p)
}
