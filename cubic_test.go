package tube

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicBezDeriv(t *testing.T) {
	// A twisted curve.
	c := CubicBez{
		Pt(0.0, 0.0, 0.0),
		Pt(1.0/3.0, 0.0, 1.0),
		Pt(2.0/3.0, 1.0/3.0, -1.0),
		Pt(1.0, 1.0, 0.0),
	}
	deriv := c.Differentiate()

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := Vec3(deriv.Eval(ts))
		if l := d.Sub(dApprox).Hypot(); l >= delta*20 {
			t.Errorf("got difference of %g, want at most %g", l, delta*20)
		}
		diff(t, d, c.Tangent(ts))
	}
}

func TestCubicPositionEndpoints(t *testing.T) {
	a := Knot{Position: Pt(1, 2, 3), TangentOut: Pt(5, -1, 2)}
	b := Knot{Position: Pt(-4, 0, 9), TangentIn: Pt(0, 7, 7)}
	diff(t, CubicPosition(a, b, 0), a.Position)
	diff(t, CubicPosition(a, b, 1), b.Position)
	// t is clamped.
	diff(t, CubicPosition(a, b, -3), a.Position)
	diff(t, CubicPosition(a, b, 42), b.Position)
}

func TestCubicPositionStraight(t *testing.T) {
	a := Knot{Position: Pt(0, 0, 0), TangentOut: Pt(1, 1, 1)}
	b := Knot{Position: Pt(4, 4, 4), TangentIn: Pt(2, 2, 2)}
	for i := range 11 {
		ts := float64(i) / 10
		p := CubicPosition(a, b, ts)
		// The point lies on the segment from a to b.
		v := p.Sub(a.Position)
		if c := v.Cross(b.Position.Sub(a.Position)).Hypot(); c > 1e-12 {
			t.Errorf("t=%g: %v is off the line by %g", ts, p, c)
		}
		if p.X < 0 || p.X > 4 {
			t.Errorf("t=%g: %v is outside the segment", ts, p)
		}
	}
}

func TestCubicArclen(t *testing.T) {
	// A straight line with evenly spaced control points.
	c := CubicBez{Pt(0, 0, 0), Pt(1, 2, 2), Pt(2, 4, 4), Pt(3, 6, 6)}
	if l := c.Arclen(1e-9); math.Abs(l-9) > 1e-9 {
		t.Errorf("got length %v, want 9", l)
	}

	// A quarter circle approximation in the XZ plane.
	const k = 0.5519150244935105707435627
	c = CubicBez{Pt(1, 0, 0), Pt(1, 0, k), Pt(k, 0, 1), Pt(0, 0, 1)}
	if l := c.Arclen(1e-9); math.Abs(l-math.Pi/2) > 1e-3 {
		t.Errorf("got length %v, want about π/2", l)
	}
}

func TestCubicSubdivide(t *testing.T) {
	c := CubicBez{Pt(0, 0, 0), Pt(1, 2, 0), Pt(3, -1, 2), Pt(4, 0, 1)}
	c0, c1 := c.Subdivide()
	for i := range 5 {
		ts := float64(i) / 4
		diff(t, c0.Eval(ts), c.Eval(ts/2), cmpopts.EquateApprox(0, 1e-12))
		diff(t, c1.Eval(ts), c.Eval(0.5+ts/2), cmpopts.EquateApprox(0, 1e-12))
	}
}

func BenchmarkCubicArclen(b *testing.B) {
	c := CubicBez{Pt(20, 40, 0), Pt(40, 80, 10), Pt(-40, 40, -5), Pt(42, 62, 3)}
	for i := range 5 {
		acc := 1.0 / math.Pow(10, float64(2*i))
		b.Run(fmt.Sprintf("1e-%d", 2*i), func(b *testing.B) {
			for range b.N {
				c.Arclen(acc)
			}
		})
	}
}
