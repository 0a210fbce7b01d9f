package funnel

import (
	"errors"

	"github.com/katalvlaran/lvlgeo/geom"
)

// ChainID selects the boundary chain the sweep starts on.
type ChainID int

const (
	// ChainP starts the sweep on chain P.
	ChainP ChainID = iota
	// ChainQ starts the sweep on chain Q.
	ChainQ
)

// String implements fmt.Stringer.
func (c ChainID) String() string {
	switch c {
	case ChainP:
		return "P"
	case ChainQ:
		return "Q"
	default:
		return "unknown"
	}
}

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilPolygon indicates a nil polygon argument.
	ErrNilPolygon = errors.New("funnel: nil polygon")
	// ErrMissingLabels indicates rope pruning was requested on a polygon
	// built without rope labels.
	ErrMissingLabels = errors.New("funnel: rope pruning needs rope labels")
	// ErrNoBridge indicates no bridging edge separates the frontier from the
	// opposite chain. The input does not bound a simple polygon.
	ErrNoBridge = errors.New("funnel: no bridging edge found")
)

// Tracer receives the tangent polyline each time a sweep phase completes:
// once per bridging edge and once at the goal.
type Tracer interface {
	Stage(points []geom.Point)
}

// Option configures a ShortestPath run.
type Option func(*config)

type config struct {
	prune  bool
	tracer Tracer
}

// WithRopePruning skips the crossing scan while consecutive added points
// stay on one convex rope. Requires a polygon built with rope labels.
func WithRopePruning() Option {
	return func(c *config) {
		c.prune = true
	}
}

// WithTracer streams completed tangent polylines to t.
func WithTracer(t Tracer) Option {
	return func(c *config) {
		c.tracer = t
	}
}
