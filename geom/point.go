package geom

import "math"

// Point is an immutable 2-D coordinate. Two points are the same entity iff
// their coordinates compare equal with ==; nothing in this module perturbs a
// stored coordinate, so equality survives the whole pipeline bit-for-bit.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by the scalar s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns p divided by the scalar s. Division by zero follows IEEE 754.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Magnitude returns the Euclidean length of the vector p.
func (p Point) Magnitude() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return p.Sub(q).Magnitude()
}

// Normalize returns the unit vector in the direction of p.
// The zero vector normalizes to itself.
func (p Point) Normalize() Point {
	m := p.Magnitude()
	if m == 0 {
		return p
	}

	return p.Div(m)
}

// PathLength returns the total Euclidean length of the polyline pts.
// Fewer than two points have length 0.
func PathLength(pts []Point) float64 {
	var total float64
	for i := 1; i < len(pts); i++ {
		total += pts[i].Dist(pts[i-1])
	}

	return total
}
