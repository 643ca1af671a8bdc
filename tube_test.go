package tube

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func squareKnots() []Knot {
	return []Knot{
		K(Pt(0, 0, 0)),
		K(Pt(2, 0, 0)),
		K(Pt(2, 0, 2)),
		K(Pt(0, 0, 2)),
	}
}

func TestExtrudeTwoKnots(t *testing.T) {
	a := Knot{Position: Pt(0, 0, 0), TangentIn: Pt(0, 0, 0), TangentOut: Pt(1, 0, 0)}
	b := Knot{Position: Pt(3, 0, 0), TangentIn: Pt(2, 0, 0), TangentOut: Pt(3, 0, 0)}
	m := Extrude([]Knot{a, b}, Params{Radius: 0.5, Rows: 4, Columns: 1})

	if got := m.NumFaces(); got != 4 {
		t.Errorf("got %d faces, want 4", got)
	}
	if got := m.NumVertices(); got != 16 {
		t.Errorf("got %d positions, want 16", got)
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	for i, p := range m.Positions {
		// The first ring sits at a, the second at b.
		wantX := 0.0
		if i >= 8 {
			wantX = 3
		}
		if math.Abs(p.X-wantX) > 1e-9 {
			t.Errorf("position %d: got x = %v, want %v", i, p.X, wantX)
		}
		if r := math.Hypot(p.Y, p.Z); math.Abs(r-0.5) > 1e-9 {
			t.Errorf("position %d: got radius %v, want 0.5", i, r)
		}
	}
}

func TestExtrudeSingleKnot(t *testing.T) {
	for _, closed := range []bool{false, true} {
		m := Extrude([]Knot{K(Pt(1, 2, 3))}, Params{Radius: 1, Rows: 8, Columns: 4, Closed: closed})
		if !m.IsEmpty() {
			t.Errorf("closed=%t: got %d positions and %d faces, want none", closed, m.NumVertices(), m.NumFaces())
		}
	}
	if m := Extrude(nil, DefaultParams()); !m.IsEmpty() {
		t.Error("got a mesh for no knots")
	}
}

func TestExtrudeCoincidentKnots(t *testing.T) {
	knots := []Knot{K(Pt(1, 1, 1)), K(Pt(1, 1, 1))}
	m := Extrude(knots, Params{Radius: 0.5, Rows: 4, Columns: 3})
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}
	for i, p := range m.Positions {
		if p.IsNaN() || p.IsInf() {
			t.Errorf("position %d is %v", i, p)
		}
	}
}

func TestExtrudeOpen(t *testing.T) {
	knots := AutoTangents(squareKnots(), false, 1)
	for _, rows := range []int{3, 5, 16} {
		m := Extrude(knots, Params{Radius: 0.1, Rows: rows, Columns: 1})
		segs := len(knots) - 1
		if got, want := m.NumFaces(), rows*segs; got != want {
			t.Errorf("rows=%d: got %d faces, want %d", rows, got, want)
		}
		if got, want := m.NumVertices(), 4*rows*segs; got != want {
			t.Errorf("rows=%d: got %d positions, want %d", rows, got, want)
		}
		if err := m.Validate(); err != nil {
			t.Error(err)
		}
	}
}

func TestExtrudeClosed(t *testing.T) {
	knots := AutoTangents(squareKnots(), true, 1)
	const rows, columns = 6, 3
	m := Extrude(knots, Params{Radius: 0.1, Rows: rows, Columns: columns, Closed: true})
	segs := len(knots) * columns
	if got, want := m.NumFaces(), rows*segs; got != want {
		t.Errorf("got %d faces, want %d", got, want)
	}
	if got, want := m.NumVertices(), 4*rows*segs; got != want {
		t.Errorf("got %d positions, want %d", got, want)
	}
	if err := m.Validate(); err != nil {
		t.Fatal(err)
	}

	// The last segment ends where the first one starts.
	for k := range 2 * rows {
		diff(t, m.Positions[len(m.Positions)-2*rows+k], m.Positions[k], approx)
	}
}

func TestAssembleSegments(t *testing.T) {
	points := []Point{Pt(0, 0, 0), Pt(1, 0, 0), Pt(2, 0, 0), Pt(3, 0, 0)}
	open := Assemble(points, nil, Params{Radius: 1, Rows: 3})
	if got := open.NumFaces(); got != 3*3 {
		t.Errorf("open: got %d faces, want 9", got)
	}
	closed := Assemble(points, nil, Params{Radius: 1, Rows: 3, Closed: true})
	if got := closed.NumFaces(); got != 4*3 {
		t.Errorf("closed: got %d faces, want 12", got)
	}
	if got := closed.NumVertices(); got != 4*4*3 {
		t.Errorf("closed: got %d positions, want 48", got)
	}
	if m := Assemble(points[:1], nil, Params{Radius: 1, Rows: 3}); !m.IsEmpty() {
		t.Error("got a mesh for a single point")
	}
}

func TestAssembleClamping(t *testing.T) {
	points := []Point{Pt(0, 0, 0), Pt(0, 0, 1)}
	m := Assemble(points, nil, Params{Radius: math.NaN(), Rows: -2})
	if got := m.NumFaces(); got != MinRows {
		t.Errorf("got %d faces, want %d", got, MinRows)
	}
	for i, p := range m.Positions {
		// A zero radius collapses the rings onto the curve.
		if math.Hypot(p.X, p.Y) != 0 {
			t.Errorf("position %d: got %v, want it on the axis", i, p)
		}
	}
}

func TestAssembleTwist(t *testing.T) {
	points := []Point{Pt(0, 0, 0), Pt(0, 0, 1)}
	twists := []Rotation{Identity(), AxisAngle(Forward, math.Pi/2)}
	m := Assemble(points, twists, Params{Radius: 1, Rows: 4})
	// The first vertex of each ring lies on the local X axis.
	diff(t, m.Positions[0], Pt(1, 0, 0), approx)
	diff(t, m.Positions[8], Pt(0, 1, 1), approx)

	// Missing twists are the identity.
	m = Assemble(points, twists[:1], Params{Radius: 1, Rows: 4})
	diff(t, m.Positions[8], Pt(1, 0, 1), approx)
}

func TestAssembleSmoothingGroups(t *testing.T) {
	points := []Point{Pt(0, 0, 0), Pt(1, 0, 0), Pt(2, 0, 1)}
	for _, smooth := range []bool{false, true} {
		want := uint32(NoSmoothingGroup)
		if smooth {
			want = TubeSmoothingGroup
		}
		m := Assemble(points, nil, Params{Radius: 1, Rows: 5, Smooth: smooth})
		for i, f := range m.Faces {
			if f.SmoothingGroup != want {
				t.Errorf("smooth=%t: face %d has group %d, want %d", smooth, i, f.SmoothingGroup, want)
			}
		}
	}
}

func TestAssembleCornerCorrection(t *testing.T) {
	points := []Point{Pt(0, 0, 0), Pt(2, 0, 0), Pt(2, 0, 2), Pt(0, 0, 2)}
	p := Params{Radius: 0.5, Rows: 4, Closed: true}
	plain := Assemble(points, nil, p)
	p.CornerCorrection = true
	corrected := Assemble(points, nil, p)

	for k := range 8 {
		if d := plain.Positions[k].Distance(points[0]); math.Abs(d-0.5) > 1e-9 {
			t.Errorf("vertex %d: got radius %v, want 0.5", k, d)
		}
		if d := corrected.Positions[k].Distance(points[0]); math.Abs(d-0.5*math.Sqrt2) > 1e-9 {
			t.Errorf("vertex %d: got corrected radius %v, want %v", k, d, 0.5*math.Sqrt2)
		}
	}
}

func TestAssembleOutwardWinding(t *testing.T) {
	knots := AutoTangents(squareKnots(), true, 1)
	const rows = 8
	p := Params{Radius: 0.25, Rows: rows, Columns: 4, Closed: true}
	m := Extrude(knots, p)
	samples := Spline{Knots: knots, Closed: true}.Sample(p.Columns)

	for i, f := range m.Faces {
		// Faces are emitted segment by segment.
		seg := i / rows
		a := samples[seg].Position
		b := samples[(seg+1)%len(samples)].Position
		axis := a.Midpoint(b).R3()
		for _, tri := range f.Triangles() {
			tr := r3.Triangle{
				m.Positions[tri[0]].R3(),
				m.Positions[tri[1]].R3(),
				m.Positions[tri[2]].R3(),
			}
			if r3.Dot(tr.Normal(), r3.Sub(tr.Centroid(), axis)) <= 0 {
				t.Errorf("face %d: triangle %v faces inwards", i, tri)
			}
		}
	}

	n := 0
	for range m.Triangles() {
		n++
	}
	if n != m.NumTriangles() {
		t.Errorf("iterated %d triangles, want %d", n, m.NumTriangles())
	}
}

func TestVertexRing(t *testing.T) {
	ring := VertexRing(Pt(1, 2, 3), Identity(), 2, 4)
	want := []Point{
		Pt(3, 2, 3), Pt(1, 4, 3),
		Pt(1, 4, 3), Pt(-1, 2, 3),
		Pt(-1, 2, 3), Pt(1, 0, 3),
		Pt(1, 0, 3), Pt(3, 2, 3),
	}
	diff(t, want, ring, approx)
}

func TestExtrudeNoErrors(t *testing.T) {
	// Validate never fails on extruded meshes, even for hostile input.
	inputs := [][]Knot{
		{K(Pt(0, 0, 0)), K(Pt(0, 5, 0)), K(Pt(0, 10, 0))},
		{K(Pt(0, 0, 0)), K(Pt(1, 0, 0)), K(Pt(0, 0, 0))},
		{{Position: Pt(0, 0, 0), TangentOut: Pt(0, 0, 0)}, {Position: Pt(0, 0, 0), TangentIn: Pt(1, 1, 1)}},
	}
	for i, knots := range inputs {
		for _, closed := range []bool{false, true} {
			m := Extrude(knots, Params{Radius: 1, Rows: 3, Columns: 2, Closed: closed})
			if err := m.Validate(); err != nil {
				t.Errorf("input %d, closed=%t: %v", i, closed, err)
			}
			if errors.Is(m.Validate(), ErrNaNPosition) {
				t.Errorf("input %d, closed=%t: NaN positions", i, closed)
			}
		}
	}
}
