// Package bundle defines the sequence-of-bundles model, its options, and
// sentinel errors.
package bundle

import (
	"errors"

	"github.com/katalvlaran/lvlgeo/geom"
)

// Sentinel errors for sequence construction and endpoint validation.
var (
	// ErrShortSkeleton indicates the skeleton has fewer than two vertices.
	ErrShortSkeleton = errors.New("bundle: skeleton must have at least two vertices")
	// ErrDuplicateVertex indicates the skeleton repeats a coordinate.
	ErrDuplicateVertex = errors.New("bundle: skeleton vertices must be distinct")
	// ErrVertexNotFound indicates the addressed vertex is not in the skeleton.
	ErrVertexNotFound = errors.New("bundle: vertex not in skeleton")
	// ErrTerminalVertex indicates a segment was addressed to the first or last
	// skeleton vertex, which never carry bundles.
	ErrTerminalVertex = errors.New("bundle: terminal vertices cannot carry segments")
	// ErrSegmentTooLong indicates an endpoint beyond the radius without clamp mode.
	ErrSegmentTooLong = errors.New("bundle: segment longer than max radius")
	// ErrOutsideSector indicates an endpoint outside the vertex's interior
	// angular sector (the sub-angle sum check failed).
	ErrOutsideSector = errors.New("bundle: segment must lie inside the sector smaller than pi")
	// ErrDuplicateAngle indicates an endpoint at an angular position already
	// occupied in the bundle; the insertion is a no-op.
	ErrDuplicateAngle = errors.New("bundle: duplicate angular position in bundle")
)

// Sentinel errors for the sectioned text loader. All of them are fatal for
// the load operation: the partially built sequence is discarded.
var (
	// ErrMissingRadius indicates the input has no Radius: line.
	ErrMissingRadius = errors.New("bundle: input missing required Radius")
	// ErrMissingVertices indicates the input has an empty Vertices: section.
	ErrMissingVertices = errors.New("bundle: input missing required Vertices")
	// ErrMalformedLine indicates a data line that does not parse in its section.
	ErrMalformedLine = errors.New("bundle: malformed input line")
	// ErrSegmentIndex indicates a LineSegments record with an out-of-range
	// vertex index.
	ErrSegmentIndex = errors.New("bundle: segment vertex index out of range")
)

// Sequence is a skeleton with one (possibly empty) bundle of outer endpoints
// per interior vertex. The skeleton is immutable after New; endpoints mutate
// only through AddSegment and the one-shot Preprocess clamp.
type Sequence struct {
	skeleton  []geom.Point
	radius    float64
	endpoints [][]geom.Point
	clamp     bool
	effective float64 // radius in force after Preprocess; radius before
}

// Option configures sequence construction.
type Option func(*Sequence)

// WithClamping makes over-length endpoints be projected back onto the radius
// instead of rejected. It is the mode in force whenever global preprocessing
// is requested, since Preprocess clamps unconditionally anyway.
func WithClamping() Option {
	return func(s *Sequence) {
		s.clamp = true
	}
}
