package tube

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// NoSmoothingGroup marks faces whose edges are all hard.
	NoSmoothingGroup = 0
	// TubeSmoothingGroup is the group of every face of a smooth tube.
	TubeSmoothingGroup = 1
)

var (
	ErrIndexOutOfRange = errors.New("face index out of range")
	ErrNaNPosition     = errors.New("position is NaN")
)

// Face is a quad split into two triangles. Indices holds the vertex indices of
// both triangles, counter-clockwise when seen from outside.
type Face struct {
	Indices [6]uint32
	// SmoothingGroup tags faces whose shared edges get averaged normals.
	// [NoSmoothingGroup] means none.
	SmoothingGroup uint32
}

// Triangles returns the face's two triangles.
func (f Face) Triangles() [2][3]uint32 {
	i := f.Indices
	return [2][3]uint32{{i[0], i[1], i[2]}, {i[3], i[4], i[5]}}
}

// Mesh holds the vertex and face buffers produced by extrusion.
type Mesh struct {
	Positions []Point
	Faces     []Face
}

func (m Mesh) NumVertices() int {
	return len(m.Positions)
}

func (m Mesh) NumFaces() int {
	return len(m.Faces)
}

func (m Mesh) NumTriangles() int {
	return 2 * len(m.Faces)
}

func (m Mesh) IsEmpty() bool {
	return len(m.Positions) == 0 && len(m.Faces) == 0
}

// Triangles returns an iterator over the mesh's triangles. It must only be
// used on meshes that pass [Mesh.Validate].
func (m Mesh) Triangles() iter.Seq[r3.Triangle] {
	return func(yield func(r3.Triangle) bool) {
		for _, f := range m.Faces {
			for _, tri := range f.Triangles() {
				t := r3.Triangle{
					m.Positions[tri[0]].R3(),
					m.Positions[tri[1]].R3(),
					m.Positions[tri[2]].R3(),
				}
				if !yield(t) {
					return
				}
			}
		}
	}
}

// Area returns the total surface area of the mesh.
func (m Mesh) Area() float64 {
	var a float64
	for t := range m.Triangles() {
		a += t.Area()
	}
	return a
}

// BoundingBox returns the smallest axis-aligned box that contains all
// positions. It is the zero box for empty meshes.
func (m Mesh) BoundingBox() r3.Box {
	if len(m.Positions) == 0 {
		return r3.Box{}
	}
	inf := math.Inf(1)
	lo := r3.Vec{X: inf, Y: inf, Z: inf}
	hi := r3.Vec{X: -inf, Y: -inf, Z: -inf}
	for _, p := range m.Positions {
		lo = r3.Vec{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
		hi = r3.Vec{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
	}
	return r3.Box{Min: lo, Max: hi}
}

// Validate checks that every face references existing positions and that no
// position is NaN.
func (m Mesh) Validate() error {
	for i, p := range m.Positions {
		if p.IsNaN() {
			return fmt.Errorf("position %d: %w", i, ErrNaNPosition)
		}
	}
	n := uint32(len(m.Positions))
	for i, f := range m.Faces {
		for _, idx := range f.Indices {
			if idx >= n {
				return fmt.Errorf("face %d: index %d of %d positions: %w", i, idx, n, ErrIndexOutOfRange)
			}
		}
	}
	return nil
}

// WriteOBJ writes the mesh in Wavefront OBJ format. Smoothing groups are
// written as "s" statements.
func (m Mesh) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d faces\n", len(m.Positions), len(m.Faces))

	var buf []byte
	for _, p := range m.Positions {
		buf = append(buf[:0], 'v')
		for _, c := range [3]float64{p.X, p.Y, p.Z} {
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, c, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}

	group := int64(-1)
	for _, f := range m.Faces {
		if g := int64(f.SmoothingGroup); g != group {
			group = g
			if g == NoSmoothingGroup {
				bw.WriteString("s off\n")
			} else {
				fmt.Fprintf(bw, "s %d\n", g)
			}
		}
		for _, tri := range f.Triangles() {
			// OBJ indices are 1-based.
			fmt.Fprintf(bw, "f %d %d %d\n", tri[0]+1, tri[1]+1, tri[2]+1)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing OBJ: %w", err)
	}
	return nil
}
