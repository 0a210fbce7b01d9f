package geom_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvlgeo/geom"
)

// TestOrient covers the three orientation classes with exact inputs.
func TestOrient(t *testing.T) {
	cases := []struct {
		name    string
		p, q, r geom.Point
		want    geom.Orientation
	}{
		{"CounterClockwise", geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 0}, geom.Point{X: 1, Y: 1}, geom.CounterClockwise},
		{"Clockwise", geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 0}, geom.Point{X: 1, Y: -1}, geom.Clockwise},
		{"Collinear", geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 2}, geom.Point{X: 4, Y: 4}, geom.Collinear},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := geom.Orient(tc.p, tc.q, tc.r); got != tc.want {
				t.Errorf("Orient(%v,%v,%v) = %v; want %v", tc.p, tc.q, tc.r, got, tc.want)
			}
		})
	}
}

// TestIsLeft_DirectionFlip checks that flipping dir mirrors the predicate and
// that collinear points are never strictly left.
func TestIsLeft_DirectionFlip(t *testing.T) {
	p0 := geom.Point{X: 0, Y: 0}
	p1 := geom.Point{X: 4, Y: 0}
	above := geom.Point{X: 2, Y: 1}
	on := geom.Point{X: 2, Y: 0}

	if !geom.IsLeft(p0, p1, above, true) {
		t.Error("IsLeft(above, dir=true) = false; want true")
	}
	if geom.IsLeft(p0, p1, above, false) {
		t.Error("IsLeft(above, dir=false) = true; want false")
	}
	if geom.IsLeft(p0, p1, on, true) || geom.IsLeft(p0, p1, on, false) {
		t.Error("IsLeft(collinear) = true; want false for both directions")
	}
	if !geom.IsLeftOn(p0, p1, on, true) || !geom.IsLeftOn(p0, p1, on, false) {
		t.Error("IsLeftOn(collinear) = false; want true for both directions")
	}
}

// TestAngle verifies the degree values on axis-aligned rays and the clamp
// behavior for an exactly straight angle.
func TestAngle(t *testing.T) {
	b := geom.Point{X: 0, Y: 0}
	cases := []struct {
		name string
		a, c geom.Point
		want float64
	}{
		{"Right", geom.Point{X: 1, Y: 0}, geom.Point{X: 0, Y: 1}, 90},
		{"Straight", geom.Point{X: -1, Y: 0}, geom.Point{X: 1, Y: 0}, 180},
		{"Acute", geom.Point{X: 1, Y: 0}, geom.Point{X: 1, Y: 1}, 45},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := geom.Angle(tc.a, b, tc.c)
			if err != nil {
				t.Fatalf("Angle error: %v", err)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Angle = %v; want %v", got, tc.want)
			}
		})
	}
}

// TestAngle_ZeroLengthRay ensures coincident points surface the hard error.
func TestAngle_ZeroLengthRay(t *testing.T) {
	b := geom.Point{X: 1, Y: 1}
	if _, err := geom.Angle(b, b, geom.Point{X: 2, Y: 2}); !errors.Is(err, geom.ErrZeroLengthRay) {
		t.Errorf("Angle(coincident) error = %v; want ErrZeroLengthRay", err)
	}
	if _, err := geom.Angle(geom.Point{X: 0, Y: 0}, b, b); !errors.Is(err, geom.ErrZeroLengthRay) {
		t.Errorf("Angle(coincident c) error = %v; want ErrZeroLengthRay", err)
	}
}

// TestSegmentsIntersect exercises the general case, shared endpoints,
// collinear overlap, and disjoint segments.
func TestSegmentsIntersect(t *testing.T) {
	pt := func(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }
	cases := []struct {
		name       string
		a, b, c, d geom.Point
		want       bool
	}{
		{"Crossing", pt(0, 0), pt(4, 4), pt(0, 4), pt(4, 0), true},
		{"SharedEndpoint", pt(0, 0), pt(2, 2), pt(0, 0), pt(4, 1), true},
		{"CollinearOverlap", pt(0, 0), pt(4, 0), pt(2, 0), pt(6, 0), true},
		{"CollinearDisjoint", pt(0, 0), pt(1, 0), pt(3, 0), pt(6, 0), false},
		{"Disjoint", pt(0, 0), pt(1, 1), pt(3, 0), pt(4, 1), false},
		{"TouchMidpoint", pt(0, 0), pt(4, 0), pt(2, 0), pt(2, 3), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := geom.SegmentsIntersect(tc.a, tc.b, tc.c, tc.d); got != tc.want {
				t.Errorf("SegmentsIntersect = %v; want %v", got, tc.want)
			}
		})
	}
}

// TestAngleComparators pins the shared-epsilon tie handling.
func TestAngleComparators(t *testing.T) {
	if !geom.EqualAngles(90, 90+5e-7) {
		t.Error("EqualAngles within epsilon = false; want true")
	}
	if geom.GreaterAngle(90+5e-7, 90) {
		t.Error("GreaterAngle within epsilon = true; want false")
	}
	if !geom.GreaterAngle(91, 90) || !geom.LessAngle(89, 90) {
		t.Error("GreaterAngle/LessAngle outside epsilon misclassified")
	}
}

// TestPointArithmetic checks the vector helpers round-trip.
func TestPointArithmetic(t *testing.T) {
	p := geom.Point{X: 3, Y: 4}
	if got := p.Magnitude(); got != 5 {
		t.Errorf("Magnitude = %v; want 5", got)
	}
	if got := p.Sub(p); got != (geom.Point{}) {
		t.Errorf("Sub(self) = %v; want origin", got)
	}
	if got := p.Normalize().Magnitude(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Normalize magnitude = %v; want 1", got)
	}
	if got := p.Add(geom.Point{X: 1, Y: -4}); got != (geom.Point{X: 4, Y: 0}) {
		t.Errorf("Add = %v; want (4,0)", got)
	}
	if got := p.Scale(2).Div(2); got != p {
		t.Errorf("Scale/Div round-trip = %v; want %v", got, p)
	}
}

// TestPathLength sums a simple L-shaped polyline.
func TestPathLength(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}}
	if got := geom.PathLength(pts); got != 7 {
		t.Errorf("PathLength = %v; want 7", got)
	}
	if got := geom.PathLength(pts[:1]); got != 0 {
		t.Errorf("PathLength(single) = %v; want 0", got)
	}
}
