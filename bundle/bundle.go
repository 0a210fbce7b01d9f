package bundle

import (
	"github.com/katalvlaran/lvlgeo/geom"
)

// New builds a Sequence over the given skeleton. The skeleton needs at least
// two distinct vertices; the first and last are the fixed path terminals and
// never carry bundles.
func New(skeleton []geom.Point, radius float64, opts ...Option) (*Sequence, error) {
	if len(skeleton) < 2 {
		return nil, ErrShortSkeleton
	}
	for i := 0; i < len(skeleton); i++ {
		for j := i + 1; j < len(skeleton); j++ {
			if skeleton[i] == skeleton[j] {
				return nil, ErrDuplicateVertex
			}
		}
	}

	s := &Sequence{
		skeleton:  append([]geom.Point(nil), skeleton...),
		radius:    radius,
		endpoints: make([][]geom.Point, len(skeleton)),
		effective: radius,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Skeleton returns the skeleton vertices. Callers must treat the slice as
// read-only.
func (s *Sequence) Skeleton() []geom.Point {
	return s.skeleton
}

// Radius returns the maximum segment length the sequence was built with.
func (s *Sequence) Radius() float64 {
	return s.radius
}

// EffectiveRadius returns the radius in force: the construction radius, or
// the min-clearance radius once Preprocess has run.
func (s *Sequence) EffectiveRadius() float64 {
	return s.effective
}

// Endpoints returns the angularly ordered outer endpoints of skeleton vertex
// i. The slice is read-only; it is nil for terminal and bundle-free vertices.
func (s *Sequence) Endpoints(i int) []geom.Point {
	if i < 0 || i >= len(s.endpoints) {
		return nil
	}

	return s.endpoints[i]
}

// AddSegment adds an outer endpoint to the bundle of the given skeleton
// vertex, locating the vertex by exact coordinate equality.
func (s *Sequence) AddSegment(vertex, endpoint geom.Point) error {
	for i, v := range s.skeleton {
		if v == vertex {
			return s.AddSegmentAt(i, endpoint)
		}
	}

	return ErrVertexNotFound
}

// AddSegmentAt adds an outer endpoint to the bundle of skeleton vertex i,
// keeping the bundle sorted by ascending angle from the previous-vertex
// reference edge. Every failure leaves the sequence unchanged.
func (s *Sequence) AddSegmentAt(i int, endpoint geom.Point) error {
	if i < 0 || i >= len(s.skeleton) {
		return ErrVertexNotFound
	}
	if i == 0 || i == len(s.skeleton)-1 {
		return ErrTerminalVertex
	}

	vertex := s.skeleton[i]
	if vertex.Dist(endpoint) > s.radius {
		if !s.clamp {
			return ErrSegmentTooLong
		}
		endpoint = clampToRadius(vertex, endpoint, s.radius)
	}

	prev := s.skeleton[i-1]
	next := s.skeleton[i+1]

	interior, err := geom.Angle(prev, vertex, next)
	if err != nil {
		return err
	}
	toEndpoint, err := geom.Angle(prev, vertex, endpoint)
	if err != nil {
		return err
	}
	fromEndpoint, err := geom.Angle(endpoint, vertex, next)
	if err != nil {
		return err
	}
	// The endpoint splits the interior angle iff the two sub-angles sum back
	// to it; anything on or past the straight continuation fails here.
	if !geom.EqualAngles(interior, toEndpoint+fromEndpoint) {
		return ErrOutsideSector
	}

	for j, p := range s.endpoints[i] {
		stored, err := geom.Angle(prev, vertex, p)
		if err != nil {
			return err
		}
		if geom.EqualAngles(stored, toEndpoint) {
			return ErrDuplicateAngle
		}
		if geom.GreaterAngle(stored, toEndpoint) {
			s.endpoints[i] = append(s.endpoints[i], geom.Point{})
			copy(s.endpoints[i][j+1:], s.endpoints[i][j:])
			s.endpoints[i][j] = endpoint

			return nil
		}
	}
	s.endpoints[i] = append(s.endpoints[i], endpoint)

	return nil
}

// Preprocess recomputes the radius as half the minimum pairwise distance
// between skeleton vertices and clamps every stored endpoint to it. After
// this pass bundles from different vertices can no longer overlap, so the
// boundary chains derived later cannot self-intersect through them.
func (s *Sequence) Preprocess() {
	minRadius := s.radius
	for i := 0; i < len(s.skeleton); i++ {
		for j := i + 1; j < len(s.skeleton); j++ {
			if d := 0.5 * s.skeleton[i].Dist(s.skeleton[j]); d < minRadius {
				minRadius = d
			}
		}
	}
	s.effective = minRadius

	for i, vertex := range s.skeleton {
		for j, endpoint := range s.endpoints[i] {
			if vertex.Dist(endpoint) > minRadius {
				s.endpoints[i][j] = clampToRadius(vertex, endpoint, minRadius)
			}
		}
	}
}

// clampToRadius projects endpoint back onto the circle of the given radius
// around vertex, preserving its direction.
func clampToRadius(vertex, endpoint geom.Point, radius float64) geom.Point {
	dir := endpoint.Sub(vertex).Normalize()

	return vertex.Add(dir.Scale(radius))
}
