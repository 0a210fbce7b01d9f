package geom

import (
	"errors"
	"math"
)

// Epsilon is the tolerance shared by every approximate predicate in this
// package. Ordering, pruning, and bridging logic all compare through it, so
// ties resolve the same way everywhere.
const Epsilon = 1e-6

// ErrZeroLengthRay indicates Angle was called with coincident points.
// It signals malformed input geometry and aborts the operation that hit it.
var ErrZeroLengthRay = errors.New("geom: angle ray has zero length")

// Orientation classifies an ordered point triple.
type Orientation int

const (
	// Collinear: the three points lie on one line.
	Collinear Orientation = iota
	// Clockwise: r lies to the right of the directed line p->q.
	Clockwise
	// CounterClockwise: r lies to the left of the directed line p->q.
	CounterClockwise
)

// Orient returns the exact orientation of (p, q, r) via the sign of
// cross(q-p, r-p). No tolerance is applied; Orient exists for the
// segment-intersection special cases, which need exact collinearity.
func Orient(p, q, r Point) Orientation {
	val := (q.X-p.X)*(r.Y-p.Y) - (r.X-p.X)*(q.Y-p.Y)
	switch {
	case val > 0:
		return CounterClockwise
	case val < 0:
		return Clockwise
	default:
		return Collinear
	}
}

// cross2 returns the signed area term of (p0, p1, p), twice the signed
// triangle area.
func cross2(p0, p1, p Point) float64 {
	return (p1.X-p0.X)*(p.Y-p0.Y) - (p.X-p0.X)*(p1.Y-p0.Y)
}

// IsLeft reports whether p lies strictly to the left of the directed edge
// p0->p1. When dir is false the sign flips, so the same predicate serves a
// chain walked with the opposite handedness.
func IsLeft(p0, p1, p Point, dir bool) bool {
	area := cross2(p0, p1, p)
	if !dir {
		area = -area
	}

	return area > Epsilon
}

// IsLeftOn is the non-strict variant of IsLeft: it admits points on the edge
// itself (within Epsilon). Used when a candidate bridging edge must have
// nothing strictly outside it.
func IsLeftOn(p0, p1, p Point, dir bool) bool {
	area := cross2(p0, p1, p)
	if !dir {
		area = -area
	}

	return area >= -Epsilon
}

// Angle returns the unsigned angle, in degrees, at vertex b between the rays
// b->a and b->c. A zero-length ray returns ErrZeroLengthRay: coincident
// points are a hard precondition violation, never a quietly handled case.
func Angle(a, b, c Point) (float64, error) {
	ba := a.Sub(b)
	bc := c.Sub(b)

	magBA := ba.Magnitude()
	magBC := bc.Magnitude()
	if magBA == 0 || magBC == 0 {
		return 0, ErrZeroLengthRay
	}

	cos := (ba.X*bc.X + ba.Y*bc.Y) / (magBA * magBC)
	// Clamp to the acos domain; accumulated round-off can push cos just past ±1.
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos) * 180 / math.Pi, nil
}

// GreaterAngle reports a > b beyond Epsilon.
func GreaterAngle(a, b float64) bool {
	return a-b > Epsilon
}

// EqualAngles reports |a - b| <= Epsilon.
func EqualAngles(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// LessAngle reports a < b beyond Epsilon.
func LessAngle(a, b float64) bool {
	return a-b < -Epsilon
}

// onSegment reports whether r lies within the bounding box of segment pq,
// assuming r is already known to be collinear with it. Bounds are widened by
// Epsilon so endpoint contact counts as containment.
func onSegment(p, q, r Point) bool {
	return math.Min(p.X, q.X)-Epsilon <= r.X && r.X <= math.Max(p.X, q.X)+Epsilon &&
		math.Min(p.Y, q.Y)-Epsilon <= r.Y && r.Y <= math.Max(p.Y, q.Y)+Epsilon
}

// SegmentsIntersect reports whether segments ab and cd share at least one
// point. General case: opposite orientations on both sides. Degenerate case:
// an endpoint collinear with, and inside the bounding box of, the other
// segment.
func SegmentsIntersect(a, b, c, d Point) bool {
	o1 := Orient(a, b, c)
	o2 := Orient(a, b, d)
	o3 := Orient(c, d, a)
	o4 := Orient(c, d, b)

	if o1 != o2 && o3 != o4 {
		return true
	}

	if o1 == Collinear && onSegment(a, b, c) {
		return true
	}
	if o2 == Collinear && onSegment(a, b, d) {
		return true
	}
	if o3 == Collinear && onSegment(c, d, a) {
		return true
	}
	if o4 == Collinear && onSegment(c, d, b) {
		return true
	}

	return false
}
